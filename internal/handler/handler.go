package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/loan-service/internal/loan"
	"github.com/Dan9191/loan-service/internal/models"
	"github.com/Dan9191/loan-service/internal/service"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createLoanRequest struct {
	TargetUserID string          `json:"target_user_id"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
}

// Register handles borrower registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input models.BorrowerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, fmt.Errorf("%w: invalid request body", models.ErrValidation))
		return
	}

	user, err := h.svc.RegisterBorrower(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	})
}

// ListUsers returns every registered borrower
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListBorrowers(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "All users fetched Successfully",
		"users":   users,
	})
}

// Login handles admin authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: invalid request body", models.ErrValidation))
		return
	}

	token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
	})
}

// CreateLoan originates a loan for a registered borrower
func (h *Handler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: invalid request body", models.ErrValidation))
		return
	}

	l, err := h.svc.CreateLoan(r.Context(), req.TargetUserID, req.LoanAmount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Loan added Successfully",
		"loan":    l,
	})
}

// ListLoans returns one page of all loans
func (h *Handler) ListLoans(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	loans, err := h.svc.ListLoans(r.Context(), page)
	h.writeLoans(w, loans, err, "Loans fetched Successfully")
}

// ListPaidLoans returns one page of settled loans
func (h *Handler) ListPaidLoans(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, models.StatusPaid, "Paid loans fetched Successfully")
}

// ListUnpaidLoans returns one page of outstanding loans
func (h *Handler) ListUnpaidLoans(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, models.StatusUnpaid, "Unpaid loans fetched Successfully")
}

func (h *Handler) listByStatus(w http.ResponseWriter, r *http.Request, status models.PaymentStatus, message string) {
	page, err := pageFromQuery(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	loans, err := h.svc.ListLoansByStatus(r.Context(), status, page)
	h.writeLoans(w, loans, err, message)
}

// GetLoan returns a single loan
func (h *Handler) GetLoan(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.GetLoan(r.Context(), mux.Vars(r)["loanId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"loan":    l,
	})
}

// ReturnLoan pays the current installment of a loan
func (h *Handler) ReturnLoan(w http.ResponseWriter, r *http.Request) {
	l, outcome, err := h.svc.ApplyPayment(r.Context(), mux.Vars(r)["loanId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	if outcome == loan.AlreadySettled {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "All installments are already paid",
			"loan":    l,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Installment paid successfully",
		"loan":    l,
	})
}

// LoansByCNIC returns the loans of the borrower holding the given CNIC
func (h *Handler) LoansByCNIC(w http.ResponseWriter, r *http.Request) {
	cnic := mux.Vars(r)["cnic"]
	loans, err := h.svc.ListLoansByNationalID(r.Context(), cnic)
	h.writeLoans(w, loans, err, fmt.Sprintf("Loans for CNIC %s fetched Successfully", cnic))
}

// LoansByMonth returns the loans with an installment due in the given month
func (h *Handler) LoansByMonth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, yearErr := strconv.Atoi(vars["year"])
	month, monthErr := strconv.Atoi(vars["month"])
	if yearErr != nil || monthErr != nil {
		h.writeError(w, fmt.Errorf("%w: year and month must be numbers", models.ErrValidation))
		return
	}

	loans, err := h.svc.ListLoansByDueMonth(r.Context(), year, time.Month(month))
	h.writeLoans(w, loans, err, fmt.Sprintf("Loans for %d-%02d fetched Successfully", year, month))
}

func (h *Handler) writeLoans(w http.ResponseWriter, loans []models.Loan, err error, message string) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
		"loans":   loans,
	})
}

func pageFromQuery(r *http.Request) (service.Page, error) {
	page := service.Page{Number: 1, Size: 10}
	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return page, fmt.Errorf("%w: page must be a positive number", models.ErrValidation)
		}
		page.Number = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return page, fmt.Errorf("%w: limit must be a positive number", models.ErrValidation)
		}
		page.Size = n
	}
	return page, nil
}

// writeError maps domain errors to HTTP statuses. Storage failures are logged and hidden.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"
	switch {
	case errors.Is(err, models.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrUnauthorized):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, models.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	default:
		h.log.Errorf("Request failed: %v", err)
	}
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
