package service

import (
	"context"

	"github.com/Dan9191/loan-service/internal/loan"
	"github.com/Dan9191/loan-service/internal/models"
)

// reminderBatch is how many unpaid loans are read per store call.
const reminderBatch = 100

// SendRepaymentReminders emails every borrower whose current installment is due within the
// configured lead time or already overdue. It returns how many reminders were sent; individual
// delivery failures are logged and skipped.
func (s *Service) SendRepaymentReminders(ctx context.Context) (int, error) {
	if s.notifier == nil {
		s.log.Debug("Reminders disabled: no notifier configured")
		return 0, nil
	}

	now := s.now()
	horizon := now.AddDate(0, 0, s.config.ReminderLeadDays)
	sent := 0

	for offset := 0; ; offset += reminderBatch {
		loans, err := s.store.ListLoans(ctx, models.LoanFilter{
			Status: models.StatusUnpaid,
			Offset: offset,
			Limit:  reminderBatch,
		})
		if err != nil {
			return sent, err
		}

		for _, l := range loans {
			s.localize(&l)
			index := l.CurrentInstallment()
			if index < 0 {
				continue
			}
			current := l.Installments[index]
			overdue := loan.IsOverdue(now, current.DueDate)
			if !overdue && current.DueDate.After(horizon) {
				continue
			}

			borrower, err := s.store.FindBorrowerByID(ctx, l.BorrowerID)
			if err != nil {
				s.log.Warnf("Skipping reminder for loan %s: %v", l.ID, err)
				continue
			}
			if borrower.Email == "" {
				continue
			}

			if err := s.notifier.SendInstallmentReminder(borrower.Email, borrower.Name, current.DueDate, current.Amount, overdue); err != nil {
				s.log.Warnf("Reminder for loan %s not delivered: %v", l.ID, err)
				continue
			}
			sent++
		}

		if len(loans) < reminderBatch {
			break
		}
	}

	s.log.Infof("Repayment reminders sent: %d", sent)
	return sent, nil
}
