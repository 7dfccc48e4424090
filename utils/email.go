package utils

import (
	"fmt"
	"log"

	"tour_manager/config"

	"gopkg.in/gomail.v2"
)

func sendMail(to, subject, htmlBody string) error {
	cfg := config.App
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return d.DialAndSend(m)
}

// SendVerificationEmail mails a registration OTP (async).
func SendVerificationEmail(to, fullName, otp string) {
	go func() {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your verification code is <b>%s</b>. It expires in 5 minutes.</p>",
			fullName, otp)
		if err := sendMail(to, "Verify your email", body); err != nil {
			log.Printf("failed to send verification email to %s: %v", to, err)
		}
	}()
}

// SendPasswordResetEmail mails a password-reset OTP (async).
func SendPasswordResetEmail(to, fullName, otp string) {
	go func() {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your password reset code is <b>%s</b>. It expires in 5 minutes.</p><p>If you did not request this, you can ignore this email.</p>",
			fullName, otp)
		if err := sendMail(to, "Reset your password", body); err != nil {
			log.Printf("failed to send password reset email to %s: %v", to, err)
		}
	}()
}

// SendBookingPendingEmail confirms a submitted booking with its reference (async).
func SendBookingPendingEmail(to, fullName, tourTitle, reference string, upfront float64) {
	go func() {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your booking for <b>%s</b> has been submitted.</p><p>Reference: <b>%s</b></p><p>Please pay the upfront amount of %.2f to secure your spot.</p>",
			fullName, tourTitle, reference, upfront)
		if err := sendMail(to, "Booking submitted: "+reference, body); err != nil {
			log.Printf("failed to send booking email to %s: %v", to, err)
		}
	}()
}

// SendTourReminderEmail nudges a paid traveller the day before departure.
func SendTourReminderEmail(to, fullName, tourTitle, meetingPoint string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p><b>%s</b> starts within 24 hours.</p><p>Meeting point: %s</p>",
		fullName, tourTitle, meetingPoint)
	return sendMail(to, "Your tour starts soon: "+tourTitle, body)
}
