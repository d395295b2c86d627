package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openpoen/backend/internal/config"
	"github.com/openpoen/backend/internal/consent"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Refresher renews the access token of the linked account when needed.
type Refresher interface {
	Refresh(ctx context.Context) (bool, error)
}

// Scheduler runs the ingestion on the configured schedule.
type Scheduler struct {
	cron      *cron.Cron
	runner    *Runner
	refresher Refresher
	loc       *time.Location
	timeout   time.Duration
}

// NewScheduler creates a scheduler that ingests transactions on the
// schedule from the configuration, in the configured timezone. Before each
// ingestion the access token is refreshed if it is about to expire.
func NewScheduler(c config.Config, runner *Runner, refresher Refresher) (*Scheduler, error) {
	logger := log.With().Str("component", "scheduler").Logger()
	cronLogger := cron.PrintfLogger(&logger)

	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		runner:    runner,
		refresher: refresher,
		loc:       loc,
		timeout:   30 * time.Minute,
	}

	if _, err := s.cron.AddFunc(c.IngestSchedule, s.Run); err != nil {
		return nil, fmt.Errorf("invalid INGEST_SCHEDULE %q: %w", c.IngestSchedule, err)
	}

	log.Info().Str("schedule", c.IngestSchedule).Str("timezone", loc.String()).Msg("Scheduled ingestion")
	return s, nil
}

// Run refreshes the access token if needed and runs an ingestion.
func (s *Scheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if s.refresher != nil {
		_, err := s.refresher.Refresh(ctx)
		if err != nil && !errors.Is(err, consent.ErrNoLinkedAccount) {
			log.Warn().Err(err).Str("kind", string(KindOf(err))).Msg("Refreshing the access token failed")
		}
	}

	report := s.runner.IngestJob(ctx)
	if report.OK && !report.Skipped {
		log.Info().Int("new", report.NewCount).Msg("Scheduled ingestion finished")
	}
}

// Start starts the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done when running jobs
// have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Next returns the time of the next scheduled ingestion.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Schedule.Next(time.Now().In(s.loc))
}
