package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job represents a scheduled job
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	jobs   []Job
	logger *slog.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewScheduler creates a new cron scheduler
func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		jobs:   make([]Job, 0),
		logger: logger.With(slog.String("component", "cron")),
	}
}

// AddJob adds a job to the scheduler. Jobs with a non-positive interval are ignored.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	if interval <= 0 {
		s.logger.Info("Cron job disabled", "name", name)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	})
	s.logger.Info("Cron job registered", "name", name, "interval", interval)
}

// Jobs returns the registered jobs
func (s *Scheduler) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.jobs...)
}

// Start begins running all scheduled jobs until ctx is done or Stop is called
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, s.cancel = context.WithCancel(ctx)
	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(ctx, job)
	}

	s.logger.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop gracefully stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
	s.logger.Info("Cron scheduler stopped")
}

// runJob runs a single job on its schedule
func (s *Scheduler) runJob(ctx context.Context, job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	// Run immediately on start
	s.executeJob(ctx, job)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(ctx, job)
		}
	}
}

// executeJob executes a job and logs results
func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	start := time.Now()
	s.logger.Debug("Cron job starting", "name", job.Name)

	if err := job.Fn(ctx); err != nil {
		s.logger.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		s.logger.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs all jobs once (useful for testing)
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, job := range s.Jobs() {
		s.executeJob(ctx, job)
	}
}
