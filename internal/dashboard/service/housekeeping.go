package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tikkaspice/opsboard/internal/dashboard/store"
)

// HousekeepingService periodically sweeps goals rows whose location has been
// deleted. The goals table has no foreign key to locations, so a delete
// leaves the targets row behind until this job removes it.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs a sweep.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a sweep immediately on startup
	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep deletes orphaned goals rows and logs how many were removed. It is
// exported so tests and admin tooling can trigger a sweep directly.
func (s *HousekeepingService) Sweep(ctx context.Context) {
	deleted, err := s.Store.Goals().DeleteOrphaned(ctx)
	if err != nil {
		s.Logger.Error("failed to delete orphaned goals", "error", err)
		return
	}
	if deleted > 0 {
		s.Logger.Info("deleted orphaned goals", "count", deleted)
	}
}
