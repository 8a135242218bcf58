// Package reconcile periodically repairs denormalized catalog counters.
package reconcile

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/product"
)

// DefaultSchedule runs reconciliation hourly.
const DefaultSchedule = "@every 1h"

var parser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Recounter recomputes brand and category counters.
type Recounter interface {
	RecountCounters(ctx context.Context) ([]product.Correction, error)
}

// Reconciler runs RecountCounters on a cron schedule.
type Reconciler struct {
	store    Recounter
	schedule string

	mu sync.Mutex // serializes runs
}

// New creates a Reconciler. An empty schedule falls back to DefaultSchedule.
func New(store Recounter, schedule string) *Reconciler {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Reconciler{store: store, schedule: schedule}
}

// RunOnce performs a single reconciliation and returns the corrections.
func (r *Reconciler) RunOnce(ctx context.Context) ([]product.Correction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fixed, err := r.store.RecountCounters(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "recount counters")
	}

	lg := zctx.From(ctx)
	for _, c := range fixed {
		lg.Warn("Counter drift corrected",
			zap.String("kind", c.Kind),
			zap.String("title", c.Title),
			zap.Int("was", c.Was),
			zap.Int("now", c.Now),
		)
	}
	return fixed, nil
}

// Run schedules reconciliation and blocks until ctx is done. A run in
// progress is allowed to finish before Run returns.
func (r *Reconciler) Run(ctx context.Context) error {
	c := cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(r.schedule, func() {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			zctx.From(ctx).Error("Reconciliation failed", zap.Error(err))
		}
	})
	if err != nil {
		return errors.Wrapf(err, "parse schedule %q", r.schedule)
	}

	zctx.From(ctx).Info("Reconciler started", zap.String("schedule", r.schedule))
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
