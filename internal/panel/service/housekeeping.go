package service

import (
	"log/slog"
	"time"

	"github.com/aussiebroadwan/pandda/pkg/dialog"
)

// HousekeepingService periodically closes dialogs an operator walked away
// from so the per-session dialog managers do not pile up.
type HousekeepingService struct {
	Dialogs  *dialog.Registry
	Logger   *slog.Logger
	Interval time.Duration
	IdleTTL  time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. A non-positive
// interval defaults to 1 minute and a non-positive idle TTL to 30 minutes.
func NewHousekeepingService(dialogs *dialog.Registry, logger *slog.Logger, interval, idleTTL time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Minute
	}
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}

	return &HousekeepingService{
		Dialogs:  dialogs,
		Logger:   logger,
		Interval: interval,
		IdleTTL:  idleTTL,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "dialog_idle_ttl", s.IdleTTL)
}

// Stop blocks until the worker has finished its current sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stopCh:
			return
		}
	}
}

// Sweep closes idle dialogs once and returns how many it closed.
func (s *HousekeepingService) Sweep() int {
	closed := s.Dialogs.Reap(s.IdleTTL)
	if closed > 0 {
		s.Logger.Info("closed idle dialogs", "count", closed, "sessions", s.Dialogs.Len())
	} else {
		s.Logger.Debug("no idle dialogs", "sessions", s.Dialogs.Len())
	}
	return closed
}
