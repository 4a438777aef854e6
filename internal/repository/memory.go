package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Dan9191/loan-service/internal/models"
)

// MemoryRepository keeps everything in process memory. It honours the same conflict and
// versioning rules as Repository and is used for local runs and tests.
type MemoryRepository struct {
	mu            sync.RWMutex
	borrowers     map[string]models.Borrower
	borrowerOrder []string
	loans         map[string]models.Loan
	loanOrder     []string
	admins        map[string]models.Admin
}

// NewMemoryRepository initializes an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		borrowers: make(map[string]models.Borrower),
		loans:     make(map[string]models.Loan),
		admins:    make(map[string]models.Admin),
	}
}

// CreateBorrower stores a borrower
func (r *MemoryRepository) CreateBorrower(ctx context.Context, b *models.Borrower) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.borrowers {
		if existing.NationalIDHash == b.NationalIDHash || existing.Phone == b.Phone {
			return fmt.Errorf("%w: borrower with this CNIC or phone already exists", models.ErrConflict)
		}
	}
	r.borrowers[b.ID] = *b
	r.borrowerOrder = append(r.borrowerOrder, b.ID)
	return nil
}

// FindBorrowerByID retrieves a borrower by id
func (r *MemoryRepository) FindBorrowerByID(ctx context.Context, id string) (*models.Borrower, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.borrowers[id]
	if !ok {
		return nil, fmt.Errorf("borrower %w", models.ErrNotFound)
	}
	return &b, nil
}

// FindBorrowerByNationalIDHash retrieves a borrower by national identifier hash
func (r *MemoryRepository) FindBorrowerByNationalIDHash(ctx context.Context, hash string) (*models.Borrower, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.borrowers {
		if b.NationalIDHash == hash {
			found := b
			return &found, nil
		}
	}
	return nil, fmt.Errorf("borrower %w", models.ErrNotFound)
}

// ListBorrowers returns every borrower in registration order
func (r *MemoryRepository) ListBorrowers(ctx context.Context) ([]models.Borrower, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	borrowers := make([]models.Borrower, 0, len(r.borrowerOrder))
	for _, id := range r.borrowerOrder {
		borrowers = append(borrowers, r.borrowers[id])
	}
	return borrowers, nil
}

// CreateLoan stores a loan unless its borrower already has an unpaid one. The check and the
// insert happen under one lock.
func (r *MemoryRepository) CreateLoan(ctx context.Context, l *models.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loans[l.ID]; ok {
		return fmt.Errorf("%w: loan %s already exists", models.ErrConflict, l.ID)
	}
	if l.Status == models.StatusUnpaid {
		for _, existing := range r.loans {
			if existing.BorrowerID == l.BorrowerID && existing.Status == models.StatusUnpaid {
				return fmt.Errorf("%w: borrower %s already has an unpaid loan", models.ErrConflict, l.BorrowerID)
			}
		}
	}
	r.loans[l.ID] = l.Clone()
	r.loanOrder = append(r.loanOrder, l.ID)
	return nil
}

// FindLoanByID retrieves a loan by id
func (r *MemoryRepository) FindLoanByID(ctx context.Context, id string) (*models.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.loans[id]
	if !ok {
		return nil, fmt.Errorf("loan %w", models.ErrNotFound)
	}
	clone := l.Clone()
	return &clone, nil
}

// FindLoanByBorrowerAndStatus retrieves the most recent loan of a borrower in the given status
func (r *MemoryRepository) FindLoanByBorrowerAndStatus(ctx context.Context, borrowerID string, status models.PaymentStatus) (*models.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.loanOrder) - 1; i >= 0; i-- {
		l := r.loans[r.loanOrder[i]]
		if l.BorrowerID == borrowerID && l.Status == status {
			clone := l.Clone()
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("loan %w", models.ErrNotFound)
}

// UpdateLoan replaces a loan if its version still matches and advances l.Version
func (r *MemoryRepository) UpdateLoan(ctx context.Context, l *models.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.loans[l.ID]
	if !ok || stored.Version != l.Version {
		return models.ErrStaleVersion
	}

	next := stored
	next.Status = l.Status
	next.Installments = l.Clone().Installments
	next.UpdatedAt = l.UpdatedAt
	next.Version = stored.Version + 1
	r.loans[l.ID] = next
	l.Version = next.Version
	return nil
}

// ListLoans returns the loans matching filter in creation order
func (r *MemoryRepository) ListLoans(ctx context.Context, filter models.LoanFilter) ([]models.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.Loan{}
	for _, id := range r.loanOrder {
		l := r.loans[id]
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.BorrowerID != "" && l.BorrowerID != filter.BorrowerID {
			continue
		}
		if !filter.DueFrom.IsZero() && !filter.DueTo.IsZero() && !hasInstallmentDueIn(l, filter) {
			continue
		}
		matched = append(matched, l.Clone())
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []models.Loan{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func hasInstallmentDueIn(l models.Loan, filter models.LoanFilter) bool {
	for _, inst := range l.Installments {
		if !inst.DueDate.Before(filter.DueFrom) && inst.DueDate.Before(filter.DueTo) {
			return true
		}
	}
	return false
}

// CreateAdmin stores an admin account
func (r *MemoryRepository) CreateAdmin(ctx context.Context, a *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[a.Username]; ok {
		return fmt.Errorf("%w: admin %s already exists", models.ErrConflict, a.Username)
	}
	r.admins[a.Username] = *a
	return nil
}

// FindAdminByUsername retrieves an admin by username
func (r *MemoryRepository) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[username]
	if !ok {
		return nil, fmt.Errorf("admin %w", models.ErrNotFound)
	}
	return &a, nil
}
