package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/commonhall/commonhall/internal/community/store"
)

// ReconcileService periodically recomputes the denormalized post counters
// from the likes/comments tables and corrects any drift. The write paths keep
// the counters transactionally consistent, so a non-empty pass here points at
// a bug or at out-of-band data surgery; either way the pass restores the
// invariant.
type ReconcileService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewReconcileService creates a reconciler with the given interval.
// If interval is 0 or negative, defaults to 15 minutes.
func NewReconcileService(store store.Store, logger *slog.Logger, interval time.Duration) *ReconcileService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &ReconcileService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically reconciles counters.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *ReconcileService) Start() {
	go s.run()
	s.Logger.Info("counter reconciler started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress pass.
func (s *ReconcileService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("counter reconciler stopped")
}

// run is the main background worker loop.
func (s *ReconcileService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a pass immediately on startup
	if _, err := s.Reconcile(context.Background()); err != nil {
		s.Logger.Error("reconciliation pass failed", "error", err)
	}

	for {
		select {
		case <-ticker.C:
			if _, err := s.Reconcile(context.Background()); err != nil {
				s.Logger.Error("reconciliation pass failed", "error", err)
			}
		case <-s.stopCh:
			return
		}
	}
}

// Reconcile runs a single pass and returns the number of posts corrected.
// Storage errors are retried with doubling backoff before giving up; the
// next ticker pass picks up whatever this one could not finish.
func (s *ReconcileService) Reconcile(ctx context.Context) (int, error) {
	drifts, err := s.listDriftWithRetry(ctx)
	if err != nil {
		return 0, err
	}
	if len(drifts) == 0 {
		return 0, nil
	}

	corrected := 0
	for _, d := range drifts {
		err := s.Store.WithTx(ctx, func(tx store.Tx) error {
			// Recompute inside the transaction; the snapshot from the
			// drift scan may already be stale.
			likes, err := tx.Likes().CountByPost(ctx, d.PostID)
			if err != nil {
				return err
			}
			comments, err := tx.Comments().CountByPost(ctx, d.PostID)
			if err != nil {
				return err
			}
			return tx.Posts().SetCounters(ctx, d.PostID, likes, comments)
		})
		if err != nil {
			s.Logger.Error("failed to correct post counters", "error", err, "post_id", d.PostID)
			continue
		}
		corrected++
		s.Logger.Warn("corrected drifted post counters",
			"post_id", d.PostID,
			"stored_likes", d.StoredLikes, "actual_likes", d.ActualLikes,
			"stored_comments", d.StoredComments, "actual_comments", d.ActualComments)
	}

	s.Logger.Info("reconciliation pass completed", "drifted", len(drifts), "corrected", corrected)
	return corrected, nil
}

func (s *ReconcileService) listDriftWithRetry(ctx context.Context) ([]store.CounterDrift, error) {
	backoff := 100 * time.Millisecond
	var lastErr error
	for attempt := 0; attempt < 4; attempt++ {
		drifts, err := s.Store.Posts().ListCounterDrift(ctx)
		if err == nil {
			return drifts, nil
		}
		lastErr = err

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}
	return nil, lastErr
}
