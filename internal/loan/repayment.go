package loan

import (
	"time"

	"github.com/Dan9191/loan-service/internal/models"
)

// Outcome tells the caller what ApplyPayment did.
type Outcome int

const (
	// Applied means an installment was settled.
	Applied Outcome = iota + 1
	// AlreadySettled means the loan had no outstanding installment; nothing was paid.
	AlreadySettled
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case AlreadySettled:
		return "already_settled"
	default:
		return "unknown"
	}
}

// ApplyPayment settles the earliest unpaid installment of l as of now and returns the resulting
// loan. The input is left untouched.
//
// An installment paid after its due date is closed, but its amount rolls over into the next
// installment; when it was the last one, a new installment for the same amount is appended one
// month later. Installments are always settled in order.
func ApplyPayment(l models.Loan, now time.Time) (models.Loan, Outcome) {
	next := l.Clone()

	idx := next.CurrentInstallment()
	if idx < 0 {
		next.Status = models.StatusPaid
		return next, AlreadySettled
	}

	paidAt := now
	current := next.Installments[idx]
	current.Status = models.StatusPaid
	current.PaidAt = &paidAt
	next.Installments[idx] = current

	if IsOverdue(now, current.DueDate) {
		if idx+1 < len(next.Installments) {
			following := &next.Installments[idx+1]
			following.Amount = following.Amount.Add(current.Amount)
		} else {
			day := next.DueDay
			if day == 0 {
				day = current.DueDate.Day()
			}
			next.Installments = append(next.Installments, models.Installment{
				Amount:  current.Amount,
				DueDate: ShiftMonths(current.DueDate, 1, day),
				Status:  models.StatusUnpaid,
			})
		}
	}

	if next.AllPaid() {
		next.Status = models.StatusPaid
	}
	return next, Applied
}
