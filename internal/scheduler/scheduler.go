package scheduler

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"ResearchDigest/internal/config"
	"ResearchDigest/internal/generator"
	"ResearchDigest/internal/logger"
)

// RunStats summarises one scheduled regeneration pass.
type RunStats struct {
	RunID     string
	Generated int
	Failed    int
}

// Scheduler regenerates stock summaries on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Generator *generator.Generator
	// Stocks limits regeneration to these codes; empty means every stock under the stocks dir.
	Stocks []string

	mu   sync.Mutex
	last RunStats
}

// NewScheduler creates a new Scheduler. Overlapping runs are skipped.
func NewScheduler(gen *generator.Generator, stocks []string) *Scheduler {
	cronLogger := cron.PrintfLogger(logger.Log)
	return &Scheduler{
		Cron: cron.New(
			cron.WithParser(config.CronParser),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		Generator: gen,
		Stocks:    stocks,
	}
}

// Register adds the regeneration task with the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, func() { s.RunNow() }); err != nil {
		return fmt.Errorf("register summary task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.Log.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	logger.Log.Info("scheduler stopped")
}

// RunNow regenerates the summaries immediately.
func (s *Scheduler) RunNow() RunStats {
	stats := RunStats{RunID: uuid.NewString()}
	log := logger.Log.WithField("run_id", stats.RunID)
	log.Info("running summary task")

	if len(s.Stocks) == 0 {
		results, failed, err := s.Generator.GenerateAll()
		if err != nil {
			log.WithError(err).Error("list stocks failed")
		}
		stats.Generated, stats.Failed = len(results), failed
	} else {
		results, failed := s.Generator.GenerateMany(s.Stocks)
		stats.Generated, stats.Failed = len(results), failed
	}

	log.WithField("generated", stats.Generated).WithField("failed", stats.Failed).Info("summary task finished")

	s.mu.Lock()
	s.last = stats
	s.mu.Unlock()
	return stats
}

// LastRun returns the stats of the most recent run.
func (s *Scheduler) LastRun() RunStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
