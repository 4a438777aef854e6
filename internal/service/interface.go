package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/loan-service/internal/models"
)

// Store persists borrowers, loans and admins. Implementations report duplicates with
// models.ErrConflict, missing rows with models.ErrNotFound and infrastructure failures with
// models.ErrStorage. CreateLoan must refuse a second unpaid loan for a borrower atomically.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_service.go -package=mock_service
type Store interface {
	CreateBorrower(ctx context.Context, b *models.Borrower) error
	FindBorrowerByID(ctx context.Context, id string) (*models.Borrower, error)
	FindBorrowerByNationalIDHash(ctx context.Context, hash string) (*models.Borrower, error)
	ListBorrowers(ctx context.Context) ([]models.Borrower, error)

	CreateLoan(ctx context.Context, l *models.Loan) error
	FindLoanByID(ctx context.Context, id string) (*models.Loan, error)
	FindLoanByBorrowerAndStatus(ctx context.Context, borrowerID string, status models.PaymentStatus) (*models.Loan, error)
	UpdateLoan(ctx context.Context, l *models.Loan) error
	ListLoans(ctx context.Context, filter models.LoanFilter) ([]models.Loan, error)

	CreateAdmin(ctx context.Context, a *models.Admin) error
	FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// Locker serializes work on a key. The returned func releases it.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// Publisher delivers loan events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body interface{}) error
}

// Notifier sends repayment reminders to borrowers.
type Notifier interface {
	SendInstallmentReminder(to, name string, dueDate time.Time, amount decimal.Decimal, overdue bool) error
}
