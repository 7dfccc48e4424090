package constants

const (
	ERROR_INPUT          = "Invalid input"
	ERROR_INTERNAL_ERROR = "Internal server error"

	MISSING_LOGIN_INPUT   = "Email and password are required"
	INVALID_CREDENTIALS   = "Invalid email or password."
	ACCOUNT_NOT_ACTIVE    = "Account is not active. Please verify your email."
	ACCOUNT_BANNED        = "Account is banned."
	EMAIL_ALREADY_EXISTS  = "Email is already registered."
	USER_NOT_FOUND        = "User not found."
	INVALID_TOKEN         = "Invalid or expired token."
	INVALID_RESET_TOKEN   = "Invalid or expired reset token."
	INVALID_OTP           = "Invalid or expired OTP."
	ALREADY_VERIFIED      = "User already verified."
	INVALID_GOOGLE_TOKEN  = "Invalid Google token."
	INVALID_REFRESH_TOKEN = "Invalid refresh token."

	TOUR_NOT_FOUND        = "Tour not found."
	BOOKING_NOT_FOUND     = "Booking not found."
	BOOKING_SUBMITTED     = "Booking already submitted."
	DEADLINE_PASSED       = "Booking deadline has passed."
	TERMS_NOT_ACCEPTED    = "You must accept the terms and conditions."
	PREFERENCES_NOT_FOUND = "Notification preferences not found."
)

const (
	AUTH_PROVIDER_EMAIL  = "email"
	AUTH_PROVIDER_GOOGLE = "google"
)
