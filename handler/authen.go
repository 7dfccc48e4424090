package handler

import (
	"errors"
	"fmt"
	"log"

	"tour_manager/constants"
	"tour_manager/database"
	"tour_manager/helper"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Register(c *fiber.Ctx) error {
	input := c.Locals("inputRegister").(model.RegisterInput)
	db := database.DB

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		if existing.IsActive {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMAIL_ALREADY_EXISTS, nil)
		}
		// A stale unverified signup is replaced, not resurrected.
		if err := db.Where("user_id = ?", existing.ID).Delete(&model.OTP{}).Error; err != nil {
			log.Printf("failed to clear otps for replaced user %d: %v", existing.ID, err)
		}
		if err := db.Delete(&model.UserAccount{}, existing.ID).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Registration failed: %s", err.Error()), err)
		}
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	user := model.UserAccount{
		Email:        input.Email,
		Username:     helper.GenerateUsername(input.FullName),
		FullName:     input.FullName,
		PasswordHash: hashed,
		AuthProvider: constants.AUTH_PROVIDER_EMAIL,
		IsActive:     false,
	}

	var otp *model.OTP
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := helper.ProvisionUser(tx, &user); err != nil {
			return err
		}
		otp, err = helper.CreateOTPForUser(tx, user.ID)
		return err
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Registration failed: %s", err.Error()), err)
	}

	utils.SendVerificationEmail(user.Email, user.FullName, otp.Code)

	verificationToken, err := helper.GenerateOTPToken(user.ID, false)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful. OTP sent to email.",
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
		},
		"verificationToken": verificationToken,
	})
}

func Login(c *fiber.Ctx) error {
	input := c.Locals("inputLogin").(model.LoginInput)

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil || !helper.CheckPasswordHash(input.Password, user.PasswordHash) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
	}
	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, nil)
	}
	if user.IsBanned {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_BANNED, nil)
	}

	tokens, err := helper.GenerateTokenPair(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"access":  tokens.AccessToken,
		"refresh": tokens.RefreshToken,
	})
}

// Logout revokes the presented refresh token so it cannot be reused.
func Logout(c *fiber.Ctx) error {
	var input model.RefreshInput
	if err := c.BodyParser(&input); err == nil && input.Refresh != "" {
		if _, jti, remaining, err := helper.ParseRefreshToken(input.Refresh); err == nil {
			database.BlacklistToken(jti, remaining)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully.",
	})
}

func VerifyToken(c *fiber.Ctx) error {
	input := c.Locals("inputVerifyToken").(model.VerifyTokenInput)

	if _, _, err := helper.ParseOTPToken(input.Token); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TOKEN, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Valid token.",
	})
}

func VerifyOTP(c *fiber.Ctx) error {
	input := c.Locals("inputVerifyOTP").(model.VerifyOTPInput)
	db := database.DB

	userId, _, err := helper.ParseOTPToken(input.Token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TOKEN, err)
	}

	var user model.UserAccount
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	otp, err := helper.FindValidOTP(user.ID, input.OTP)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if otp == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_OTP, nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("is_active", true).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", user.ID).Delete(&model.OTP{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tokens, err := helper.GenerateTokenPair(&user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"access":  tokens.AccessToken,
		"refresh": tokens.RefreshToken,
	})
}

func ForgetPassword(c *fiber.Ctx) error {
	input := c.Locals("inputForgetPassword").(model.ForgetPasswordInput)
	db := database.DB

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No account found with this email.", nil)
	}

	otp, err := helper.CreateOTPForUser(db, user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendPasswordResetEmail(user.Email, user.FullName, otp.Code)

	passResetToken, err := helper.GenerateOTPToken(user.ID, false)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent successfully.",
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
		},
		"passResetToken": passResetToken,
	})
}

func ForgetPasswordOTPVerify(c *fiber.Ctx) error {
	input := c.Locals("inputVerifyOTP").(model.VerifyOTPInput)
	db := database.DB

	userId, _, err := helper.ParseOTPToken(input.Token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_RESET_TOKEN, err)
	}

	var user model.UserAccount
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	otp, err := helper.FindValidOTP(user.ID, input.OTP)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if otp == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_OTP, nil)
	}

	verifiedToken, err := helper.GenerateOTPToken(user.ID, true)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Only the code that was just used is consumed.
	if err := db.Delete(&model.OTP{}, otp.ID).Error; err != nil {
		log.Printf("failed to delete used otp %d: %v", otp.ID, err)
	}

	return c.JSON(fiber.Map{
		"success":               true,
		"message":               "OTP verified. You can now reset your password.",
		"passwordResetVerified": verifiedToken,
	})
}

func ForgotPasswordSet(c *fiber.Ctx) error {
	input := c.Locals("inputSetPassword").(model.SetPasswordInput)
	db := database.DB

	userId, verified, err := helper.ParseOTPToken(input.Token)
	if err != nil || !verified {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired verified token.", err)
	}

	var user model.UserAccount
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := db.Model(&user).Update("password_hash", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset successfully.",
	})
}

func ResendRegistrationOTP(c *fiber.Ctx) error {
	return resendOTP(c, true)
}

func ResendForgetPasswordOTP(c *fiber.Ctx) error {
	return resendOTP(c, false)
}

func resendOTP(c *fiber.Ctx, registration bool) error {
	input := c.Locals("inputVerifyToken").(model.VerifyTokenInput)
	db := database.DB

	userId, _, err := helper.ParseOTPToken(input.Token)
	if err != nil {
		if registration {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TOKEN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_RESET_TOKEN, err)
	}

	var user model.UserAccount
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if registration && user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ALREADY_VERIFIED, nil)
	}

	otp, err := helper.CreateOTPForUser(db, user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if registration {
		utils.SendVerificationEmail(user.Email, user.FullName, otp.Code)
		return c.JSON(fiber.Map{
			"success": true,
			"message": "OTP resent successfully to your email.",
		})
	}

	utils.SendPasswordResetEmail(user.Email, user.FullName, otp.Code)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset OTP resent successfully to your email.",
	})
}

func GoogleLogin(c *fiber.Ctx) error {
	input := c.Locals("inputGoogleLogin").(model.GoogleLoginInput)
	db := database.DB

	profile, err := helper.VerifyGoogleToken(c.Context(), input.IdToken)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_GOOGLE_TOKEN, nil)
	}

	user, err := helper.UpsertGoogleUser(db, profile)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if user.IsBanned {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_BANNED, nil)
	}

	tokens, err := helper.GenerateTokenPair(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"access":  tokens.AccessToken,
		"refresh": tokens.RefreshToken,
	})
}

// RefreshToken rotates the pair: the old refresh jti is revoked the moment a
// new one is issued.
func RefreshToken(c *fiber.Ctx) error {
	input := c.Locals("inputRefresh").(model.RefreshInput)
	db := database.DB

	userId, jti, remaining, err := helper.ParseRefreshToken(input.Refresh)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_REFRESH_TOKEN, err)
	}

	var user model.UserAccount
	if err := db.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_REFRESH_TOKEN, err)
	}
	if user.IsBanned {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_BANNED, nil)
	}

	tokens, err := helper.GenerateTokenPair(&user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.BlacklistToken(jti, remaining)

	return c.JSON(fiber.Map{
		"success": true,
		"access":  tokens.AccessToken,
		"refresh": tokens.RefreshToken,
	})
}
