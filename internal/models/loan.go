package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a loan or of one of its installments.
type PaymentStatus string

const (
	StatusUnpaid PaymentStatus = "unpaid"
	StatusPaid   PaymentStatus = "paid"
)

// Valid reports whether s is a known status.
func (s PaymentStatus) Valid() bool {
	return s == StatusUnpaid || s == StatusPaid
}

// Installment represents one scheduled repayment of a loan
type Installment struct {
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"due_date"`
	Status  PaymentStatus   `json:"status"`
	PaidAt  *time.Time      `json:"paid_at,omitempty"`
}

// Loan represents a fixed-term, fixed-rate installment loan
type Loan struct {
	ID           string          `json:"id"`
	BorrowerID   string          `json:"borrower_id"`
	Principal    decimal.Decimal `json:"loan_amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TotalAmount  decimal.Decimal `json:"total_loan_amount"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	DueDay       int             `json:"due_day"`
	Status       PaymentStatus   `json:"loan_return_status"`
	Installments []Installment   `json:"installments"`
	Version      int             `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Clone returns a copy of the loan that shares no installment memory with l.
func (l Loan) Clone() Loan {
	next := l
	if l.Installments != nil {
		next.Installments = make([]Installment, len(l.Installments))
		for i, inst := range l.Installments {
			if inst.PaidAt != nil {
				paidAt := *inst.PaidAt
				inst.PaidAt = &paidAt
			}
			next.Installments[i] = inst
		}
	}
	return next
}

// CurrentInstallment returns the index of the first unpaid installment, or -1.
func (l Loan) CurrentInstallment() int {
	for i, inst := range l.Installments {
		if inst.Status == StatusUnpaid {
			return i
		}
	}
	return -1
}

// AllPaid reports whether every installment has been paid.
func (l Loan) AllPaid() bool {
	return l.CurrentInstallment() == -1
}

// Outstanding is the sum of the unpaid installment amounts.
func (l Loan) Outstanding() decimal.Decimal {
	total := decimal.Zero
	for _, inst := range l.Installments {
		if inst.Status == StatusUnpaid {
			total = total.Add(inst.Amount)
		}
	}
	return total
}

// LoanFilter narrows loan listings. Zero values mean "any".
type LoanFilter struct {
	Status     PaymentStatus
	BorrowerID string
	// DueFrom and DueTo select loans having at least one installment due in [DueFrom, DueTo).
	DueFrom time.Time
	DueTo   time.Time
	Offset  int
	Limit   int
}
