package router

import (
	"tour_manager/handler"
	"tour_manager/middleware"
	"tour_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", middleware.Protected(), handler.Logout)
	auth.Post("/verify-token", validate.VerifyToken(), handler.VerifyToken)
	auth.Post("/verify-otp", validate.VerifyOTP(), handler.VerifyOTP)
	auth.Post("/forget-password", validate.ForgetPassword(), handler.ForgetPassword)
	auth.Post("/forget-password-otp-verify", validate.VerifyOTP(), handler.ForgetPasswordOTPVerify)
	auth.Post("/forgot-password-set", validate.SetPassword(), handler.ForgotPasswordSet)
	auth.Post("/resend-registration-otp", validate.VerifyToken(), handler.ResendRegistrationOTP)
	auth.Post("/resend-forget-password-otp", validate.VerifyToken(), handler.ResendForgetPasswordOTP)
	auth.Post("/google", validate.GoogleLogin(), handler.GoogleLogin)
	auth.Post("/token/refresh", validate.Refresh(), handler.RefreshToken)
	auth.Get("/profile", middleware.Protected(), handler.GetProfile)
	auth.Patch("/profile", middleware.Protected(), validate.UpdateProfile(), handler.UpdateProfile)
	auth.Post("/profile/picture", middleware.Protected(), handler.UploadProfilePic)

	tour := v1.Group("/tour", logger.New())
	tour.Get("/list", middleware.OptionalJWT(), handler.GetTours)
	tour.Get("/upcoming", middleware.OptionalJWT(), handler.GetUpcomingTours)
	tour.Get("/past", middleware.OptionalJWT(), handler.GetPastTours)
	tour.Get("/detail/:slug", middleware.OptionalJWT(), handler.GetTourBySlug)
	tour.Get("/join/:slug", middleware.Protected(), handler.GetJoinTour)
	tour.Post("/join/:slug", middleware.Protected(), validate.JoinTour(), handler.JoinTour)
	tour.Get("/confirm/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetConfirmBooking)
	tour.Post("/confirm/:bookingId", middleware.Protected(), validate.GetById("bookingId"), validate.ConfirmBooking(), handler.ConfirmBooking)
	tour.Get("/live/:slug", websocket.New(handler.TourAvailabilitySocket))

	notification := v1.Group("/notification", logger.New())
	notification.Get("/preference", middleware.Protected(), handler.GetPreferences)
	notification.Patch("/preference", middleware.Protected(), validate.UpdatePreference(), handler.UpdatePreferences)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
}
