package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	timeout  time.Duration
	fn       func(ctx context.Context) error
}

// Service runs registered jobs on fixed intervals until the context is done.
// Each job runs once immediately on Start. A run is cancelled when it takes
// longer than its interval.
type Service struct {
	l    *slog.Logger
	jobs []job
	wg   sync.WaitGroup
}

func NewService(l *slog.Logger) *Service {
	return &Service{l: l.WithGroup("jobs")}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob skips disabled jobs and jobs with a non-positive interval.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled || interval <= 0 {
		s.l.Info("job disabled", "job", name)
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		timeout:  interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)

		go s.loop(ctx, j)
	}
}

func (s *Service) loop(ctx context.Context, j job) {
	defer s.wg.Done()

	l := s.l.With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		start := time.Now()

		err := s.run(ctx, l, j)
		if err != nil {
			l.Error("job failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		} else {
			l.Debug("job done", "duration_ms", time.Since(start).Milliseconds())
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) run(ctx context.Context, l *slog.Logger, j job) (err error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return j.fn(ctx)
}

// Stop waits for running jobs; cancel the Start context first.
func (s *Service) Stop() {
	s.wg.Wait()
}
