package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"bakehouse-backend/internal/session"
)

// Scheduler runs the periodic maintenance jobs. The only job today is the
// session sweep: expired logins are dropped from the in-memory registry so
// abandoned ledgers do not pile up.
type Scheduler struct {
	cron   *cron.Cron
	store  *session.Store
	logger *zap.Logger
}

func New(store *session.Store, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:   cron.New(),
		store:  store,
		logger: logger,
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc("@hourly", s.sweepSessions); err != nil {
		s.logger.Error("failed to schedule session sweep", zap.Error(err))
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sweepSessions() {
	removed := s.store.Sweep()
	if removed > 0 {
		s.logger.Info("swept expired sessions", zap.Int("removed", removed))
	}
}
