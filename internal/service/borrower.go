package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Dan9191/loan-service/internal/models"
	"github.com/Dan9191/loan-service/internal/utils"
)

// RegisterBorrower adds a borrower to the directory. The national identifier is kept encrypted,
// with a keyed hash for lookups.
func (s *Service) RegisterBorrower(ctx context.Context, in models.BorrowerInput) (*models.Borrower, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)
	nationalID := utils.NormalizeNationalID(in.NationalID)
	if name == "" || phone == "" || nationalID == "" || address == "" {
		return nil, fmt.Errorf("%w: name, phone, cnic and address are required", models.ErrValidation)
	}

	encrypted, err := utils.Encrypt(nationalID, s.config.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt cnic: %w", err)
	}

	now := s.now()
	borrower := &models.Borrower{
		ID:               uuid.NewString(),
		Name:             name,
		Phone:            phone,
		NationalID:       nationalID,
		Address:          address,
		Email:            strings.TrimSpace(in.Email),
		NationalIDHash:   utils.HashNationalID(nationalID, s.config.HMACSecret),
		NationalIDCipher: encrypted,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.store.CreateBorrower(ctx, borrower); err != nil {
		return nil, err
	}

	s.log.Infof("Borrower registered: %s", borrower.ID)
	return borrower, nil
}

// ListBorrowers returns every registered borrower with the national identifier decrypted
func (s *Service) ListBorrowers(ctx context.Context) ([]models.Borrower, error) {
	borrowers, err := s.store.ListBorrowers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range borrowers {
		if err := s.revealNationalID(&borrowers[i]); err != nil {
			return nil, err
		}
	}
	return borrowers, nil
}

func (s *Service) revealNationalID(b *models.Borrower) error {
	plain, err := utils.Decrypt(b.NationalIDCipher, s.config.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to decrypt cnic of borrower %s: %w", b.ID, err)
	}
	b.NationalID = plain
	return nil
}
