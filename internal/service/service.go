package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/loan-service/internal/config"
	"github.com/Dan9191/loan-service/internal/events"
	"github.com/Dan9191/loan-service/internal/lock"
	"github.com/Dan9191/loan-service/internal/models"
)

// Service handles business logic
type Service struct {
	store     Store
	locker    Locker
	publisher Publisher
	notifier  Notifier
	log       *logrus.Logger
	config    *config.Config
	clock     func() time.Time
}

// Option customizes a Service
type Option func(*Service)

// WithClock replaces the wall clock used for origination and overdue checks
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithLocker replaces the in-process per-loan lock
func WithLocker(l Locker) Option {
	return func(s *Service) { s.locker = l }
}

// WithPublisher sets where loan events are sent
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithNotifier enables repayment reminders
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// NewService initializes a new service
func NewService(store Store, log *logrus.Logger, cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		store:     store,
		locker:    lock.NewKeyedMutex(),
		publisher: events.NewLogPublisher(log),
		log:       log,
		config:    cfg,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) location() *time.Location {
	if s.config.Location == nil {
		return time.UTC
	}
	return s.config.Location
}

func (s *Service) now() time.Time {
	return s.clock().In(s.location())
}

// localize moves the installment dates of l into the service time zone. Stores may hand dates
// back with a fixed offset, which goes stale across a daylight saving change.
func (s *Service) localize(l *models.Loan) {
	loc := s.location()
	for i := range l.Installments {
		inst := &l.Installments[i]
		inst.DueDate = inst.DueDate.In(loc)
		if inst.PaidAt != nil {
			paidAt := inst.PaidAt.In(loc)
			inst.PaidAt = &paidAt
		}
	}
}
