package service_test

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/loan-service/internal/config"
	"github.com/Dan9191/loan-service/internal/models"
	"github.com/Dan9191/loan-service/internal/repository"
	"github.com/Dan9191/loan-service/internal/service"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock { return &fakeClock{now: now} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "jwt-secret",
		JWTTTL:             time.Hour,
		HMACSecret:         "hmac-secret",
		EncryptionKey:      bytes.Repeat([]byte{0x07}, 32),
		ReminderLeadDays:   3,
		LoanDurationMonths: 9,
		LoanInterestRate:   decimal.RequireFromString("0.20"),
		LoanDueDay:         13,
		Location:           time.UTC,
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fixture struct {
	svc   *service.Service
	store *repository.MemoryRepository
	clock *fakeClock
}

func newFixture(t *testing.T, opts ...service.Option) fixture {
	t.Helper()
	return newFixtureWithConfig(t, testConfig(), opts...)
}

func newFixtureWithConfig(t *testing.T, cfg *config.Config, opts ...service.Option) fixture {
	t.Helper()
	store := repository.NewMemoryRepository()
	clock := newFakeClock(time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC))
	opts = append([]service.Option{service.WithClock(clock.Now)}, opts...)
	return fixture{
		svc:   service.NewService(store, testLogger(), cfg, opts...),
		store: store,
		clock: clock,
	}
}

func (f fixture) borrower(t *testing.T, cnic, phone, email string) *models.Borrower {
	t.Helper()
	b, err := f.svc.RegisterBorrower(context.Background(), models.BorrowerInput{
		Name:       "Ayesha Khan",
		Phone:      phone,
		NationalID: cnic,
		Address:    "Karachi",
		Email:      email,
	})
	require.NoError(t, err)
	return b
}
