package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/tutorkit/tutorbook/internal/service"
)

// Scheduler drives background pattern expansion: once immediately at
// startup, then on a cron schedule so projected lessons always reach the
// configured horizon.
type Scheduler struct {
	booking *service.BookingService
	logger  *zap.Logger
	cron    *cron.Cron
}

func NewScheduler(booking *service.BookingService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		booking: booking,
		logger:  logger,
		cron:    cron.New(),
	}
}

// Start runs an immediate expansion and registers the recurring one.
// spec is a standard 5-field cron expression, e.g. "0 3 * * *".
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	s.logger.Info("Starting background scheduler", zap.String("cron", spec))

	s.expand(ctx)

	_, err := s.cron.AddFunc(spec, func() { s.expand(ctx) })
	if err != nil {
		return fmt.Errorf("register expansion schedule %q: %w", spec, err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running expansion to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) expand(ctx context.Context) {
	created := s.booking.ExpandAll(ctx)
	s.logger.Info("Automatic pattern expansion completed", zap.Int("lessons_created", created))
}
