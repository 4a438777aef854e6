package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/loan-service/internal/config"
	"github.com/Dan9191/loan-service/internal/middleware"
)

// NewRouter wires the API routes under /api/v1
func NewRouter(h *Handler, cfg *config.Config, logger *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(logger))
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	// Public routes
	api.HandleFunc("/admin/login", h.Login).Methods("POST")

	// Protected routes
	authRouter := api.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/users/register", h.Register).Methods("POST")
	authRouter.HandleFunc("/users", h.ListUsers).Methods("GET")

	authRouter.HandleFunc("/loans", h.CreateLoan).Methods("POST")
	authRouter.HandleFunc("/loans", h.ListLoans).Methods("GET")
	authRouter.HandleFunc("/loans/paid", h.ListPaidLoans).Methods("GET")
	authRouter.HandleFunc("/loans/unpaid", h.ListUnpaidLoans).Methods("GET")
	authRouter.HandleFunc("/loans/cnic/{cnic}", h.LoansByCNIC).Methods("GET")
	authRouter.HandleFunc("/loans/month/{year:[0-9]+}/{month:[0-9]+}", h.LoansByMonth).Methods("GET")
	authRouter.HandleFunc("/loans/{loanId}", h.GetLoan).Methods("GET")
	authRouter.HandleFunc("/loans/{loanId}/return", h.ReturnLoan).Methods("POST")

	return r
}
