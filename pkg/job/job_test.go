package job

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestService_RunsJobUntilCancelled(t *testing.T) {
	var calls atomic.Int32

	s := NewService(testLogger()).RegisterJob("count", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()

	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, stopped, calls.Load())
}

func TestService_SurvivesErrorsAndPanics(t *testing.T) {
	var calls atomic.Int32

	s := NewService(testLogger()).RegisterJob("flaky", 5*time.Millisecond, func(context.Context) error {
		n := calls.Add(1)
		if n == 1 {
			panic("boom")
		}

		return errors.New("failed")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()
}

func TestService_TryRegisterJob(t *testing.T) {
	s := NewService(testLogger()).
		TryRegisterJob(false, "disabled", time.Second, func(context.Context) error { return nil }).
		TryRegisterJob(true, "zero interval", 0, func(context.Context) error { return nil }).
		RegisterJob("enabled", time.Second, func(context.Context) error { return nil })

	require.Len(t, s.jobs, 1)
	require.Equal(t, "enabled", s.jobs[0].name)
}

func TestService_RunIsBoundedByInterval(t *testing.T) {
	type deadline struct {
		left time.Duration
		ok   bool
	}

	deadlines := make(chan deadline, 1)

	s := NewService(testLogger()).RegisterJob("slow", 20*time.Millisecond, func(ctx context.Context) error {
		dl, ok := ctx.Deadline()

		select {
		case deadlines <- deadline{left: time.Until(dl), ok: ok}:
		default:
		}

		<-ctx.Done()

		return ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	select {
	case d := <-deadlines:
		require.True(t, d.ok)
		require.LessOrEqual(t, d.left, 20*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}

	cancel()
	s.Stop()
}
