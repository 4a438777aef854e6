package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/loan-service/internal/models"
)

// Routing keys of loan lifecycle events.
const (
	LoanCreated         = "loan.created"
	LoanInstallmentPaid = "loan.installment_paid"
	LoanSettled         = "loan.settled"
)

// LoanEvent is the payload published for every loan lifecycle change.
type LoanEvent struct {
	Type        string               `json:"type"`
	LoanID      string               `json:"loan_id"`
	BorrowerID  string               `json:"borrower_id"`
	Status      models.PaymentStatus `json:"status"`
	Installment *int                 `json:"installment,omitempty"`
	Amount      decimal.Decimal      `json:"amount"`
	Overdue     bool                 `json:"overdue,omitempty"`
	OccurredAt  time.Time            `json:"occurred_at"`
}

// NewLoanCreated describes a newly originated loan.
func NewLoanCreated(l models.Loan) LoanEvent {
	return LoanEvent{
		Type:       LoanCreated,
		LoanID:     l.ID,
		BorrowerID: l.BorrowerID,
		Status:     l.Status,
		Amount:     l.TotalAmount,
		OccurredAt: l.CreatedAt,
	}
}

// NewInstallmentPaid describes the settlement of installment index of l.
func NewInstallmentPaid(l models.Loan, index int, overdue bool) LoanEvent {
	i := index
	return LoanEvent{
		Type:        LoanInstallmentPaid,
		LoanID:      l.ID,
		BorrowerID:  l.BorrowerID,
		Status:      l.Status,
		Installment: &i,
		Amount:      l.Installments[index].Amount,
		Overdue:     overdue,
		OccurredAt:  l.UpdatedAt,
	}
}

// NewLoanSettled describes a loan whose installments are all paid.
func NewLoanSettled(l models.Loan) LoanEvent {
	return LoanEvent{
		Type:       LoanSettled,
		LoanID:     l.ID,
		BorrowerID: l.BorrowerID,
		Status:     l.Status,
		Amount:     l.TotalAmount,
		OccurredAt: l.UpdatedAt,
	}
}
