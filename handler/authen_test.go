package handler_test

import (
	"net/http"
	"testing"

	"tour_manager/database"
	"tour_manager/helper"
	"tour_manager/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterVerifyLoginFlow(t *testing.T) {
	resp, body := doJSON(t, "POST", "/api/v1/auth/register", "", map[string]any{
		"email":    "flow@test.local",
		"password": "password123",
		"fullName": "Flow User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	verificationToken, _ := body["verificationToken"].(string)
	require.NotEmpty(t, verificationToken)

	var user model.UserAccount
	require.NoError(t, database.DB.Where("email = ?", "flow@test.local").First(&user).Error)
	assert.False(t, user.IsActive)

	var prefs model.NotificationPreference
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&prefs).Error)
	assert.True(t, prefs.TourReminders)
	assert.False(t, prefs.MarketingEmails)

	var otp model.OTP
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&otp).Error)

	// Cannot log in until verified.
	resp, _ = doJSON(t, "POST", "/api/v1/auth/login", "", map[string]any{
		"email":    "flow@test.local",
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = doJSON(t, "POST", "/api/v1/auth/verify-otp", "", map[string]any{
		"token": verificationToken,
		"otp":   otp.Code,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["access"])
	assert.NotEmpty(t, body["refresh"])

	require.NoError(t, database.DB.First(&user, user.ID).Error)
	assert.True(t, user.IsActive)

	// OTPs are cleared on activation, so the same code is dead.
	resp, body = doJSON(t, "POST", "/api/v1/auth/verify-otp", "", map[string]any{
		"token": verificationToken,
		"otp":   otp.Code,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid or expired OTP.", body["message"])

	resp, body = doJSON(t, "POST", "/api/v1/auth/login", "", map[string]any{
		"email":    "flow@test.local",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["access"])
}

func TestRegisterReplacesInactiveDuplicate(t *testing.T) {
	resp, _ := doJSON(t, "POST", "/api/v1/auth/register", "", map[string]any{
		"email":    "dupe@test.local",
		"password": "password123",
		"fullName": "First Try",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, "POST", "/api/v1/auth/register", "", map[string]any{
		"email":    "dupe@test.local",
		"password": "password123",
		"fullName": "Second Try",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	database.DB.Model(&model.UserAccount{}).Where("email = ?", "dupe@test.local").Count(&count)
	assert.Equal(t, int64(1), count)

	var user model.UserAccount
	require.NoError(t, database.DB.Where("email = ?", "dupe@test.local").First(&user).Error)
	assert.Equal(t, "Second Try", user.FullName)
}

func TestRegisterRejectsInvalidPayload(t *testing.T) {
	resp, _ := doJSON(t, "POST", "/api/v1/auth/register", "", map[string]any{
		"email":    "not-an-email",
		"password": "short",
		"fullName": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Nothing may be persisted for a rejected payload.
	var count int64
	database.DB.Model(&model.UserAccount{}).Where("email = ?", "not-an-email").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterRejectsActiveDuplicate(t *testing.T) {
	createActiveUser(t, "taken@test.local")

	resp, body := doJSON(t, "POST", "/api/v1/auth/register", "", map[string]any{
		"email":    "taken@test.local",
		"password": "password123",
		"fullName": "Too Late",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email is already registered.", body["message"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	createActiveUser(t, "creds@test.local")

	resp, _ := doJSON(t, "POST", "/api/v1/auth/login", "", map[string]any{
		"email":    "creds@test.local",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, "POST", "/api/v1/auth/login", "", map[string]any{
		"email":    "nobody@test.local",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestForgetPasswordChain(t *testing.T) {
	user, _ := createActiveUser(t, "reset@test.local")

	resp, body := doJSON(t, "POST", "/api/v1/auth/forget-password", "", map[string]any{
		"email": "reset@test.local",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resetToken, _ := body["passResetToken"].(string)
	require.NotEmpty(t, resetToken)

	var otp model.OTP
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).Order("id DESC").First(&otp).Error)

	// The plain reset token is not enough to set a password.
	resp, _ = doJSON(t, "POST", "/api/v1/auth/forgot-password-set", "", map[string]any{
		"token":       resetToken,
		"newPassword": "newpassword456",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, "POST", "/api/v1/auth/forget-password-otp-verify", "", map[string]any{
		"token": resetToken,
		"otp":   otp.Code,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	verifiedToken, _ := body["passwordResetVerified"].(string)
	require.NotEmpty(t, verifiedToken)

	resp, _ = doJSON(t, "POST", "/api/v1/auth/forgot-password-set", "", map[string]any{
		"token":       verifiedToken,
		"newPassword": "newpassword456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, "POST", "/api/v1/auth/login", "", map[string]any{
		"email":    "reset@test.local",
		"password": "newpassword456",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, "POST", "/api/v1/auth/login", "", map[string]any{
		"email":    "reset@test.local",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestForgetPasswordUnknownEmail(t *testing.T) {
	resp, _ := doJSON(t, "POST", "/api/v1/auth/forget-password", "", map[string]any{
		"email": "ghost@test.local",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRefreshTokenRotation(t *testing.T) {
	_, body := doJSON(t, "POST", "/api/v1/auth/register", "", map[string]any{
		"email":    "rotate@test.local",
		"password": "password123",
		"fullName": "Rotate User",
	})
	verificationToken := body["verificationToken"].(string)

	var user model.UserAccount
	require.NoError(t, database.DB.Where("email = ?", "rotate@test.local").First(&user).Error)
	var otp model.OTP
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&otp).Error)

	resp, body := doJSON(t, "POST", "/api/v1/auth/verify-otp", "", map[string]any{
		"token": verificationToken,
		"otp":   otp.Code,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	refresh := body["refresh"].(string)

	resp, body = doJSON(t, "POST", "/api/v1/auth/token/refresh", "", map[string]any{
		"refresh": refresh,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["access"])
	assert.NotEmpty(t, body["refresh"])
	assert.NotEqual(t, refresh, body["refresh"])

	resp, _ = doJSON(t, "POST", "/api/v1/auth/token/refresh", "", map[string]any{
		"refresh": "garbage-token",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshRotationRevokesOldToken(t *testing.T) {
	mr := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() {
		_ = database.RedisClient.Close()
		database.RedisClient = nil
	}()

	user, _ := createActiveUser(t, "revoke@test.local")
	refresh, jti, err := helper.GenerateRefreshToken(user.ID)
	require.NoError(t, err)

	resp, body := doJSON(t, "POST", "/api/v1/auth/token/refresh", "", map[string]any{
		"refresh": refresh,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["refresh"])

	assert.True(t, mr.Exists("blacklist:"+jti))

	// Replaying the rotated-out token must fail.
	resp, _ = doJSON(t, "POST", "/api/v1/auth/token/refresh", "", map[string]any{
		"refresh": refresh,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileGetAndPatch(t *testing.T) {
	_, access := createActiveUser(t, "profile@test.local")

	resp, body := doJSON(t, "GET", "/api/v1/auth/profile", access, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "profile@test.local", data["email"])

	resp, body = doJSON(t, "PATCH", "/api/v1/auth/profile", access, map[string]any{
		"mobileNumber":   "01700000001",
		"presentAddress": "Dhaka",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]any)
	assert.Equal(t, "01700000001", data["mobileNumber"])
	assert.Equal(t, "Dhaka", data["presentAddress"])
	assert.Equal(t, "Test User", data["fullName"])
	assert.NotNil(t, data["profileUpdatedAt"])

	resp, _ = doJSON(t, "GET", "/api/v1/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
