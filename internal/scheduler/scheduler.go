package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// jobTimeout bounds a single reminder run.
const jobTimeout = 5 * time.Minute

// ReminderRunner sends the due repayment reminders and reports how many went out.
type ReminderRunner interface {
	SendRepaymentReminders(ctx context.Context) (int, error)
}

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron   *cron.Cron
	runner ReminderRunner
	logger *logrus.Logger
	spec   string
}

// NewScheduler creates a scheduler running the reminder job on the cron schedule spec, evaluated in loc.
func NewScheduler(runner ReminderRunner, logger *logrus.Logger, spec string, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.PrintfLogger(logger)), cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
	)
	return &Scheduler{
		cron:   c,
		runner: runner,
		logger: logger,
		spec:   spec,
	}
}

// Start registers the reminder job and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runReminders); err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	s.logger.Infof("Scheduled repayment reminder job: %s", s.spec)
	s.cron.Start()
	return nil
}

// Stop stops the scheduler; the returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	sent, err := s.runner.SendRepaymentReminders(ctx)
	if err != nil {
		s.logger.Errorf("Repayment reminder job failed after %d reminders: %v", sent, err)
		return
	}
	s.logger.WithFields(logrus.Fields{
		"sent":        sent,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Repayment reminder job finished")
}
