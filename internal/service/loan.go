package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Dan9191/loan-service/internal/events"
	"github.com/Dan9191/loan-service/internal/loan"
	"github.com/Dan9191/loan-service/internal/models"
)

// maxUpdateAttempts bounds re-reads after an optimistic version conflict.
const maxUpdateAttempts = 3

// CreateLoan originates a loan for a borrower on the configured terms
func (s *Service) CreateLoan(ctx context.Context, borrowerID string, principal decimal.Decimal) (*models.Loan, error) {
	if borrowerID == "" {
		return nil, fmt.Errorf("%w: borrower id is required", models.ErrValidation)
	}
	if !principal.IsPositive() {
		return nil, fmt.Errorf("%w: loan amount must be positive", models.ErrValidation)
	}

	if _, err := s.store.FindBorrowerByID(ctx, borrowerID); err != nil {
		return nil, err
	}

	// Early, friendlier refusal; the store enforces the rule atomically on insert.
	active, err := s.store.FindLoanByBorrowerAndStatus(ctx, borrowerID, models.StatusUnpaid)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: borrower %s already has unpaid loan %s", models.ErrConflict, borrowerID, active.ID)
	case !errors.Is(err, models.ErrNotFound):
		return nil, err
	}

	now := s.now()
	schedule, err := loan.GenerateSchedule(loan.Terms{
		Principal:      principal,
		InterestRate:   s.config.LoanInterestRate,
		DurationMonths: s.config.LoanDurationMonths,
		DueDay:         s.config.LoanDueDay,
		StartDate:      now,
	})
	if err != nil {
		return nil, err
	}

	l := &models.Loan{
		ID:           uuid.NewString(),
		BorrowerID:   borrowerID,
		Principal:    principal,
		InterestRate: s.config.LoanInterestRate,
		TotalAmount:  schedule.TotalAmount,
		StartDate:    now,
		EndDate:      schedule.EndDate,
		DueDay:       s.config.LoanDueDay,
		Status:       models.StatusUnpaid,
		Installments: schedule.Installments,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateLoan(ctx, l); err != nil {
		if errors.Is(err, models.ErrConflict) {
			s.log.Warnf("Loan refused for borrower %s: %v", borrowerID, err)
		}
		return nil, err
	}

	s.log.Infof("Loan %s created for borrower %s: total %s in %d installments",
		l.ID, borrowerID, l.TotalAmount.StringFixed(2), len(l.Installments))
	s.publish(ctx, events.LoanCreated, events.NewLoanCreated(*l))
	return l, nil
}

// GetLoan retrieves a loan by id
func (s *Service) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	if loanID == "" {
		return nil, fmt.Errorf("%w: loan id is required", models.ErrValidation)
	}
	return s.store.FindLoanByID(ctx, loanID)
}

// ApplyPayment settles the current installment of a loan as of the service clock.
//
// When the loan has nothing left to pay the outcome is loan.AlreadySettled and the returned
// error is nil; a loan whose status had not caught up with its installments is flipped to paid
// and persisted on the way.
func (s *Service) ApplyPayment(ctx context.Context, loanID string) (*models.Loan, loan.Outcome, error) {
	if loanID == "" {
		return nil, 0, fmt.Errorf("%w: loan id is required", models.ErrValidation)
	}

	unlock, err := s.locker.Lock(ctx, "loan:"+loanID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to lock loan %s: %w: %w", loanID, models.ErrStorage, err)
	}
	defer unlock()

	for attempt := 1; ; attempt++ {
		current, err := s.store.FindLoanByID(ctx, loanID)
		if err != nil {
			return nil, 0, err
		}
		s.localize(current)

		now := s.now()
		index := current.CurrentInstallment()
		next, outcome := loan.ApplyPayment(*current, now)

		if outcome == loan.AlreadySettled && current.Status == models.StatusPaid {
			return &next, outcome, nil
		}

		next.UpdatedAt = now
		err = s.store.UpdateLoan(ctx, &next)
		if errors.Is(err, models.ErrStaleVersion) && attempt < maxUpdateAttempts {
			s.log.Warnf("Loan %s changed concurrently, retrying payment (attempt %d)", loanID, attempt)
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		if outcome == loan.Applied {
			overdue := loan.IsOverdue(now, current.Installments[index].DueDate)
			s.log.Infof("Installment %d of loan %s paid (overdue: %t)", index+1, loanID, overdue)
			s.publish(ctx, events.LoanInstallmentPaid, events.NewInstallmentPaid(next, index, overdue))
		}
		if next.Status == models.StatusPaid && current.Status != models.StatusPaid {
			s.log.Infof("Loan %s settled", loanID)
			s.publish(ctx, events.LoanSettled, events.NewLoanSettled(next))
		}
		return &next, outcome, nil
	}
}

// publish never fails the caller: the state change it describes is already committed.
func (s *Service) publish(ctx context.Context, routingKey string, event events.LoanEvent) {
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		s.log.Errorf("Failed to publish %s for loan %s: %v", routingKey, event.LoanID, err)
	}
}
