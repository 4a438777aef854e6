package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dan9191/loan-service/internal/models"
	"github.com/Dan9191/loan-service/internal/utils"
)

// Login authenticates an admin and returns a JWT token
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.store.FindAdminByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		return "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}
	if err != nil {
		return "", err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	token, err := utils.GenerateToken(admin.ID, admin.Username, s.config.JWTSecret, s.config.JWTTTL, s.clock())
	if err != nil {
		return "", err
	}

	s.log.Infof("Admin logged in: %s", admin.Username)
	return token, nil
}

// EnsureAdmin creates the admin account unless it already exists
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: admin username and password are required", models.ErrValidation)
	}

	_, err := s.store.FindAdminByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    s.now(),
	}
	if err := s.store.CreateAdmin(ctx, admin); err != nil && !errors.Is(err, models.ErrConflict) {
		return err
	}

	s.log.Infof("Admin created: %s", username)
	return nil
}
