package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/loan-service/internal/models"
	"github.com/Dan9191/loan-service/internal/utils"
)

// Page selects a slice of a listing; pages start at 1.
type Page struct {
	Number int
	Size   int
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func (p Page) filter() models.LoanFilter {
	number, size := p.Number, p.Size
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return models.LoanFilter{Offset: (number - 1) * size, Limit: size}
}

// ListLoans returns one page of all loans
func (s *Service) ListLoans(ctx context.Context, page Page) ([]models.Loan, error) {
	return s.store.ListLoans(ctx, page.filter())
}

// ListLoansByStatus returns one page of the loans in the given settlement status
func (s *Service) ListLoansByStatus(ctx context.Context, status models.PaymentStatus, page Page) ([]models.Loan, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, status)
	}
	filter := page.filter()
	filter.Status = status
	return s.store.ListLoans(ctx, filter)
}

// ListLoansByNationalID returns every loan of the borrower holding the national identifier.
// An unknown identifier yields an empty list.
func (s *Service) ListLoansByNationalID(ctx context.Context, nationalID string) ([]models.Loan, error) {
	normalized := utils.NormalizeNationalID(nationalID)
	if normalized == "" {
		return nil, fmt.Errorf("%w: cnic is required", models.ErrValidation)
	}

	borrower, err := s.store.FindBorrowerByNationalIDHash(ctx, utils.HashNationalID(normalized, s.config.HMACSecret))
	if errors.Is(err, models.ErrNotFound) {
		return []models.Loan{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.store.ListLoans(ctx, models.LoanFilter{BorrowerID: borrower.ID})
}

// ListLoansByDueMonth returns the loans with at least one installment due in the given month
func (s *Service) ListLoansByDueMonth(ctx context.Context, year int, month time.Month) ([]models.Loan, error) {
	if year < 1 || month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: invalid month %d-%d", models.ErrValidation, year, month)
	}
	loc := s.now().Location()
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return s.store.ListLoans(ctx, models.LoanFilter{DueFrom: from, DueTo: from.AddDate(0, 1, 0)})
}
