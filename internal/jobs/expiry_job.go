package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ExpiryJobName is the name of the offer expiry sweep job
const ExpiryJobName = "offer_expiry_sweep"

// DefaultExpiryTimeout bounds a single sweep run
const DefaultExpiryTimeout = 2 * time.Minute

// OfferExpiryService defines the interface for expiring overdue offers.
// This interface allows the job to call the service without importing the
// service package directly.
type OfferExpiryService interface {
	// ExpireOverdue marks active offers past their validity date as expired.
	// Returns the number of offers transitioned.
	ExpireOverdue(ctx context.Context) (int, error)
}

// ExpiryJob sweeps active offers whose valid_until date has passed and
// moves them to the expired status.
type ExpiryJob struct {
	offerService OfferExpiryService
	logger       *zap.Logger
	timeout      time.Duration
}

// NewExpiryJob creates a new offer expiry sweep job.
func NewExpiryJob(offerService OfferExpiryService, logger *zap.Logger, timeout time.Duration) *ExpiryJob {
	if timeout <= 0 {
		timeout = DefaultExpiryTimeout
	}
	return &ExpiryJob{
		offerService: offerService,
		logger:       logger,
		timeout:      timeout,
	}
}

// Run executes the expiry sweep. Called by the scheduler according to the
// configured cron expression.
func (j *ExpiryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	expired, err := j.offerService.ExpireOverdue(ctx)
	if err != nil {
		j.logger.Error("offer expiry sweep failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	if expired > 0 {
		j.logger.Info("offer expiry sweep completed",
			zap.Int("expired", expired),
			zap.Duration("duration", time.Since(start)))
	}
}

// RegisterExpiryJob registers the expiry sweep with the scheduler.
// The cronExpr should be a valid cron expression (e.g. "@hourly").
func RegisterExpiryJob(scheduler *Scheduler, offerService OfferExpiryService, logger *zap.Logger, cronExpr string, timeout time.Duration) error {
	job := NewExpiryJob(offerService, logger, timeout)
	return scheduler.AddJob(ExpiryJobName, cronExpr, job.Run)
}
