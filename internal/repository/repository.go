package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/Dan9191/loan-service/internal/models"
)

const uniqueViolation = "23505"

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the schema if it does not exist yet
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return storageErr("migrate schema", err)
	}
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, models.ErrStorage, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// CreateBorrower inserts a borrower; duplicate phone or national identifier is a conflict
func (r *Repository) CreateBorrower(ctx context.Context, b *models.Borrower) error {
	query := `
		INSERT INTO lending.borrowers (id, name, phone, national_id_hash, national_id_enc, address, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, b.ID, b.Name, b.Phone, b.NationalIDHash, b.NationalIDCipher,
		b.Address, b.Email, b.CreatedAt, b.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: borrower with this CNIC or phone already exists", models.ErrConflict)
	}
	if err != nil {
		return storageErr("create borrower", err)
	}
	return nil
}

const borrowerColumns = `id, name, phone, national_id_hash, national_id_enc, address, email, created_at, updated_at`

func scanBorrower(row interface{ Scan(...interface{}) error }) (*models.Borrower, error) {
	b := &models.Borrower{}
	err := row.Scan(&b.ID, &b.Name, &b.Phone, &b.NationalIDHash, &b.NationalIDCipher, &b.Address, &b.Email,
		&b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// FindBorrowerByID retrieves a borrower by id
func (r *Repository) FindBorrowerByID(ctx context.Context, id string) (*models.Borrower, error) {
	return r.findBorrower(ctx, "id", id)
}

// FindBorrowerByNationalIDHash retrieves a borrower by the keyed hash of the national identifier
func (r *Repository) FindBorrowerByNationalIDHash(ctx context.Context, hash string) (*models.Borrower, error) {
	return r.findBorrower(ctx, "national_id_hash", hash)
}

func (r *Repository) findBorrower(ctx context.Context, column, value string) (*models.Borrower, error) {
	query := `SELECT ` + borrowerColumns + ` FROM lending.borrowers WHERE ` + column + ` = $1`
	b, err := scanBorrower(r.db.QueryRowContext(ctx, query, value))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("borrower %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("find borrower", err)
	}
	return b, nil
}

// ListBorrowers returns every borrower ordered by registration time
func (r *Repository) ListBorrowers(ctx context.Context) ([]models.Borrower, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+borrowerColumns+` FROM lending.borrowers ORDER BY created_at, id`)
	if err != nil {
		return nil, storageErr("list borrowers", err)
	}
	defer rows.Close()

	borrowers := []models.Borrower{}
	for rows.Next() {
		b, err := scanBorrower(rows)
		if err != nil {
			return nil, storageErr("scan borrower", err)
		}
		borrowers = append(borrowers, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list borrowers", err)
	}
	return borrowers, nil
}

// CreateLoan inserts a loan. The partial unique index rejects a second unpaid loan for the
// same borrower, which is reported as a conflict.
func (r *Repository) CreateLoan(ctx context.Context, l *models.Loan) error {
	installments, err := json.Marshal(l.Installments)
	if err != nil {
		return storageErr("encode installments", err)
	}
	query := `
		INSERT INTO lending.loans (id, borrower_id, principal, interest_rate, total_amount, start_date, end_date,
			due_day, status, installments, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.db.ExecContext(ctx, query, l.ID, l.BorrowerID, l.Principal, l.InterestRate, l.TotalAmount,
		l.StartDate, l.EndDate, l.DueDay, string(l.Status), string(installments), l.Version, l.CreatedAt, l.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: borrower %s already has an unpaid loan", models.ErrConflict, l.BorrowerID)
	}
	if err != nil {
		return storageErr("create loan", err)
	}
	return nil
}

const loanColumns = `id, borrower_id, principal, interest_rate, total_amount, start_date, end_date,
	due_day, status, installments, version, created_at, updated_at`

func scanLoan(row interface{ Scan(...interface{}) error }) (*models.Loan, error) {
	l := &models.Loan{}
	var status string
	var installments []byte
	err := row.Scan(&l.ID, &l.BorrowerID, &l.Principal, &l.InterestRate, &l.TotalAmount, &l.StartDate, &l.EndDate,
		&l.DueDay, &status, &installments, &l.Version, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	l.Status = models.PaymentStatus(status)
	if err := json.Unmarshal(installments, &l.Installments); err != nil {
		return nil, fmt.Errorf("failed to decode installments of loan %s: %w", l.ID, err)
	}
	return l, nil
}

// FindLoanByID retrieves a loan with its installments
func (r *Repository) FindLoanByID(ctx context.Context, id string) (*models.Loan, error) {
	l, err := scanLoan(r.db.QueryRowContext(ctx, `SELECT `+loanColumns+` FROM lending.loans WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("loan %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("find loan", err)
	}
	return l, nil
}

// FindLoanByBorrowerAndStatus retrieves the most recent loan of a borrower in the given status
func (r *Repository) FindLoanByBorrowerAndStatus(ctx context.Context, borrowerID string, status models.PaymentStatus) (*models.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM lending.loans WHERE borrower_id = $1 AND status = $2
		ORDER BY created_at DESC LIMIT 1`
	l, err := scanLoan(r.db.QueryRowContext(ctx, query, borrowerID, string(status)))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("loan %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("find loan", err)
	}
	return l, nil
}

// UpdateLoan replaces the mutable part of a loan if nobody changed it since it was read, and
// advances l.Version.
func (r *Repository) UpdateLoan(ctx context.Context, l *models.Loan) error {
	installments, err := json.Marshal(l.Installments)
	if err != nil {
		return storageErr("encode installments", err)
	}
	query := `
		UPDATE lending.loans
		SET status = $1, installments = $2, version = version + 1, updated_at = $3
		WHERE id = $4 AND version = $5`
	res, err := r.db.ExecContext(ctx, query, string(l.Status), string(installments), l.UpdatedAt, l.ID, l.Version)
	if err != nil {
		return storageErr("update loan", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("update loan", err)
	}
	if affected == 0 {
		return models.ErrStaleVersion
	}
	l.Version++
	return nil
}

// ListLoans returns the loans matching filter ordered by creation time
func (r *Repository) ListLoans(ctx context.Context, filter models.LoanFilter) ([]models.Loan, error) {
	var (
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		where = append(where, "status = "+arg(string(filter.Status)))
	}
	if filter.BorrowerID != "" {
		where = append(where, "borrower_id = "+arg(filter.BorrowerID))
	}
	if !filter.DueFrom.IsZero() && !filter.DueTo.IsZero() {
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM jsonb_array_elements(installments) AS i
			WHERE (i->>'due_date')::timestamptz >= %s AND (i->>'due_date')::timestamptz < %s)`,
			arg(filter.DueFrom), arg(filter.DueTo)))
	}

	var query strings.Builder
	query.WriteString(`SELECT ` + loanColumns + ` FROM lending.loans`)
	if len(where) > 0 {
		query.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	query.WriteString(" ORDER BY created_at, id")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT " + arg(filter.Limit))
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET " + arg(filter.Offset))
	}

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, storageErr("list loans", err)
	}
	defer rows.Close()

	loans := []models.Loan{}
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, storageErr("scan loan", err)
		}
		loans = append(loans, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list loans", err)
	}
	return loans, nil
}

// CreateAdmin inserts an admin account
func (r *Repository) CreateAdmin(ctx context.Context, a *models.Admin) error {
	query := `INSERT INTO lending.admins (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Username, a.PasswordHash, a.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: admin %s already exists", models.ErrConflict, a.Username)
	}
	if err != nil {
		return storageErr("create admin", err)
	}
	return nil
}

// FindAdminByUsername retrieves an admin by username
func (r *Repository) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	a := &models.Admin{}
	query := `SELECT id, username, password_hash, created_at FROM lending.admins WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("admin %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("find admin", err)
	}
	return a, nil
}
