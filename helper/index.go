package helper

import (
	"errors"
	"fmt"
	"log"
	"time"

	"tour_manager/config"
	"tour_manager/database"
	"tour_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func jwtSecret() []byte {
	return []byte(config.App.JWTSecret)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.UserAccount, error) {
	db := database.DB
	var user model.UserAccount
	if err := db.Where(&model.UserAccount{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(config.App.AccessTokenTTL).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

// GenerateRefreshToken issues a refresh token carrying a fresh jti so
// individual tokens can be revoked on rotation or logout.
func GenerateRefreshToken(userId uint) (string, string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	jti := uuid.NewString()

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = userId
	claims["jti"] = jti
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(config.App.RefreshTokenTTL).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, jti, err
}

func GenerateTokenPair(user *model.UserAccount) (model.TokenData, error) {
	access, err := GenerateAccessToken(model.TokenClaim{UserId: user.ID, Email: user.Email})
	if err != nil {
		return model.TokenData{}, err
	}
	refresh, _, err := GenerateRefreshToken(user.ID)
	if err != nil {
		return model.TokenData{}, err
	}
	return model.TokenData{AccessToken: access, RefreshToken: refresh}, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// ParseRefreshToken returns the subject, jti and remaining lifetime of a
// refresh token, rejecting anything malformed or already revoked.
func ParseRefreshToken(tokenString string) (uint, string, time.Duration, error) {
	token, err := ParseToken(tokenString)
	if err != nil || !token.Valid {
		return 0, "", 0, errors.New("invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", 0, errors.New("invalid refresh token")
	}
	userIdFloat, ok := claims["userId"].(float64)
	if !ok || userIdFloat == 0 {
		return 0, "", 0, errors.New("invalid refresh token")
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return 0, "", 0, errors.New("invalid refresh token")
	}
	if database.IsTokenBlacklisted(jti) {
		return 0, "", 0, errors.New("refresh token revoked")
	}
	var remaining time.Duration
	if exp, ok := claims["exp"].(float64); ok {
		remaining = time.Until(time.Unix(int64(exp), 0))
	}
	return uint(userIdFloat), jti, remaining, nil
}

// GenerateOTPToken issues the short-lived token that accompanies an emailed
// OTP. verified is stamped after a successful reset-OTP check so the final
// set-password call can prove it went through the full chain.
func GenerateOTPToken(userId uint, verified bool) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	now := time.Now()
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = userId
	claims["iat"] = now.Unix()
	claims["nbf"] = now.Unix()
	claims["exp"] = now.Add(config.App.OTPTokenTTL).Unix()
	if verified {
		claims["verified"] = true
	}

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func ParseOTPToken(tokenString string) (uint, bool, error) {
	token, err := ParseToken(tokenString)
	if err != nil || !token.Valid {
		return 0, false, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false, errors.New("invalid token")
	}
	userIdFloat, ok := claims["user_id"].(float64)
	if !ok || userIdFloat == 0 {
		return 0, false, errors.New("invalid token")
	}
	verified, _ := claims["verified"].(bool)
	return uint(userIdFloat), verified, nil
}

// GetInfoUserFromToken resolves the authenticated user, falling back to a
// guest claim for routes mounted behind the optional-auth middleware.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, model.UserAccount) {
	var emptyUser model.UserAccount
	var guestClaim = model.TokenClaim{UserId: 0, Email: ""}

	u := c.Locals("user")
	if u == nil {
		return guestClaim, emptyUser
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return guestClaim, emptyUser
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return guestClaim, emptyUser
	}

	userIdFloat, _ := claims["userId"].(float64)
	if userIdFloat == 0 {
		return guestClaim, emptyUser
	}
	email, _ := claims["email"].(string)

	tokenClaim := model.TokenClaim{UserId: uint(userIdFloat), Email: email}

	var user model.UserAccount
	db := database.DB
	if err := db.First(&user, tokenClaim.UserId).Error; err != nil {
		log.Printf("user not found (id=%d): %v", tokenClaim.UserId, err)
		return guestClaim, emptyUser
	}

	return tokenClaim, user
}
