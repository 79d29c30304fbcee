package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmpinhao/empenho-api/internal/config"
	"github.com/cmpinhao/empenho-api/internal/service/audit"
)

func TestScheduler(t *testing.T) {
	t.Run("should register the audit job for a valid schedule", func(t *testing.T) {
		cfg := config.Config{Audit: config.AuditConfig{CronSchedule: "0 2 * * *"}}
		s := NewScheduler(cfg, audit.NewService(nil, nil, nil, nil), nil)

		s.Start()
		defer s.Stop()

		assert.Len(t, s.cron.Entries(), 1)
	})

	t.Run("should keep running without jobs on an invalid schedule", func(t *testing.T) {
		cfg := config.Config{Audit: config.AuditConfig{CronSchedule: "not a schedule"}}
		s := NewScheduler(cfg, audit.NewService(nil, nil, nil, nil), nil)

		s.Start()
		defer s.Stop()

		assert.Empty(t, s.cron.Entries())
	})
}
