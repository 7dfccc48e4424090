package helper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour_manager/config"
	"tour_manager/constants"
	"tour_manager/model"

	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type GoogleProfile struct {
	Email    string
	Name     string
	Picture  string
	GoogleId string
}

// VerifyGoogleToken validates a Google ID token against the web and android
// client IDs and returns the embedded profile.
func VerifyGoogleToken(ctx context.Context, rawToken string) (*GoogleProfile, error) {
	audiences := []string{config.App.GoogleClientID, config.App.GoogleAndroidClientID}

	var payload *idtoken.Payload
	var err error
	for _, aud := range audiences {
		if aud == "" {
			continue
		}
		payload, err = idtoken.Validate(ctx, rawToken, aud)
		if err == nil {
			break
		}
	}
	if payload == nil {
		if err == nil {
			err = errors.New("no google client id configured")
		}
		return nil, err
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return nil, errors.New("unexpected token issuer")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("token has no email claim")
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &GoogleProfile{
		Email:    email,
		Name:     name,
		Picture:  picture,
		GoogleId: payload.Subject,
	}, nil
}

// UpsertGoogleUser resolves the account behind a verified Google profile.
// First sight creates an active user (Google accounts skip the OTP flow);
// an existing email account gets google_id linked exactly once.
func UpsertGoogleUser(db *gorm.DB, profile *GoogleProfile) (*model.UserAccount, error) {
	user, err := GetUserByEmail(profile.Email)
	if err != nil {
		return nil, err
	}

	if user != nil {
		if user.GoogleId == nil {
			updates := map[string]any{
				"google_id":     profile.GoogleId,
				"auth_provider": constants.AUTH_PROVIDER_GOOGLE,
			}
			if err := db.Model(user).Updates(updates).Error; err != nil {
				return nil, err
			}
		}
		return user, nil
	}

	randomPassword, err := HashPassword(fmt.Sprintf("google-%d", time.Now().UnixNano()))
	if err != nil {
		return nil, err
	}
	newUser := model.UserAccount{
		Email:        profile.Email,
		Username:     GenerateUsername(profile.Name),
		FullName:     profile.Name,
		PasswordHash: randomPassword,
		ProfilePic:   profile.Picture,
		AuthProvider: constants.AUTH_PROVIDER_GOOGLE,
		GoogleId:     &profile.GoogleId,
		IsActive:     true,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return ProvisionUser(tx, &newUser)
	}); err != nil {
		return nil, err
	}
	return &newUser, nil
}
