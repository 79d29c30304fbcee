package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/cmpinhao/empenho-api/internal/config"
	"github.com/cmpinhao/empenho-api/internal/service/audit"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	auditSvc *audit.Service
	cfg      config.Config
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, auditSvc *audit.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour, dom, month, dow).
	c := cron.New()

	return &Scheduler{
		cron:     c,
		auditSvc: auditSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("audit_schedule", s.cfg.Audit.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Audit.CronSchedule, s.runLinkAudit)
	if err != nil {
		s.logger.Error("failed to schedule link audit", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runLinkAudit() {
	s.logger.Info("running link audit")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := s.auditSvc.Run(ctx)
	if err != nil {
		s.logger.Error("link audit failed", zap.Error(err))
		return
	}

	s.logger.Info("link audit report stored",
		zap.Int("checked", report.Checked),
		zap.Int("broken", len(report.BrokenLinks)),
	)
}
