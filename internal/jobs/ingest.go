package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/ingest"
	"github.com/openpoen/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	ingestLockName = "ingest"
	ingestLease    = time.Hour
)

// Ingestor runs a single ingestion.
type Ingestor interface {
	Run(ctx context.Context) (ingest.Result, error)
}

// JobReport is the result of an ingestion job.
type JobReport struct {
	OK       bool   `json:"ok" example:"true"`
	NewCount int    `json:"newCount" example:"12"`
	Skipped  bool   `json:"skipped" example:"false"` // Another ingestion was running, nothing was done
	Kind     Kind   `json:"kind,omitempty" example:"bank-unavailable"`
	Message  string `json:"message,omitempty" example:"De bank is op dit moment niet bereikbaar. Probeer het later nog eens."`
	Err      error  `json:"-"`
}

// Runner makes sure that at most one ingestion runs at a time.
type Runner struct {
	mu       sync.Mutex
	ingestor Ingestor
	db       *gorm.DB
	holder   string
}

func NewRunner(ingestor Ingestor) *Runner {
	return &Runner{ingestor: ingestor}
}

// WithLease makes the runner take a lease in the database for every
// ingestion, so that ingestions in other processes are skipped, too.
func (r *Runner) WithLease(db *gorm.DB) *Runner {
	r.db = db
	r.holder = uuid.New().String()
	return r
}

func skipped() JobReport {
	log.Info().Msg("Ingestion already in progress, skipping")
	ingestRuns.WithLabelValues("skipped").Inc()
	return JobReport{OK: true, Skipped: true}
}

func failed(err error) JobReport {
	kind := KindOf(err)
	log.Error().Err(err).Str("kind", string(kind)).Msg("Ingestion failed")
	ingestRuns.WithLabelValues("error").Inc()

	return JobReport{Kind: kind, Message: Message(kind), Err: err}
}

// IngestJob runs an ingestion. When another ingestion is in progress, it
// returns immediately with Skipped set.
func (r *Runner) IngestJob(ctx context.Context) JobReport {
	if !r.mu.TryLock() {
		return skipped()
	}
	defer r.mu.Unlock()

	if r.db != nil {
		ok, err := models.AcquireJobLock(r.db.WithContext(ctx), ingestLockName, r.holder, time.Now(), ingestLease)
		if err != nil {
			return failed(err)
		}
		if !ok {
			return skipped()
		}

		defer func() {
			if err := models.ReleaseJobLock(r.db, ingestLockName, r.holder); err != nil {
				log.Error().Err(err).Msg("Could not release the ingestion lease")
			}
		}()
	}

	result, err := r.ingestor.Run(ctx)
	if err != nil {
		return failed(err)
	}

	ingestRuns.WithLabelValues("ok").Inc()
	ingestPayments.Add(float64(result.New))

	return JobReport{OK: true, NewCount: result.New}
}

// Ingest runs an ingestion and returns its error, if any.
func (r *Runner) Ingest(ctx context.Context) error {
	return r.IngestJob(ctx).Err
}
