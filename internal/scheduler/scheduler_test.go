package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	calls chan struct{}
	sent  int
	err   error
}

func (r *stubRunner) SendRepaymentReminders(ctx context.Context) (int, error) {
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("job context has no deadline")
	}
	select {
	case r.calls <- struct{}{}:
	default:
	}
	return r.sent, r.err
}

func TestRunReminders(t *testing.T) {
	logger, hook := test.NewNullLogger()

	s := NewScheduler(&stubRunner{sent: 4}, logger, "0 9 * * *", nil)
	s.runReminders()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, 4, entry.Data["sent"])
}

func TestRunReminders_Failure(t *testing.T) {
	logger, hook := test.NewNullLogger()

	s := NewScheduler(&stubRunner{sent: 1, err: errors.New("store unavailable")}, logger, "0 9 * * *", time.UTC)
	s.runReminders()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Contains(t, entry.Message, "store unavailable")
}

func TestStart_InvalidSchedule(t *testing.T) {
	logger, _ := test.NewNullLogger()

	s := NewScheduler(&stubRunner{}, logger, "every tuesday", time.UTC)
	assert.Error(t, s.Start())
}

func TestStart_RunsJob(t *testing.T) {
	logger, _ := test.NewNullLogger()
	runner := &stubRunner{calls: make(chan struct{}, 1)}

	s := NewScheduler(runner, logger, "@every 1s", time.UTC)
	require.NoError(t, s.Start())
	defer s.Stop()

	select {
	case <-runner.calls:
	case <-time.After(3 * time.Second):
		t.Fatal("reminder job did not run")
	}
}
