package audit

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cmpinhao/empenho-api/internal/domain/models"
	"github.com/cmpinhao/empenho-api/internal/repository/mongodb"
	"github.com/cmpinhao/empenho-api/internal/repository/sheets"
	"github.com/cmpinhao/empenho-api/pkg/clients/portal"
)

// Service audits the detail links carried by stored empenhos and persists a
// summary of each run.
type Service struct {
	store  mongodb.Repository
	sheets sheets.Repository
	portal portal.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new audit service instance. The sheets repository may be
// nil, in which case runs are only stored in MongoDB.
func NewService(store mongodb.Repository, sheetsRepo sheets.Repository, portalClient portal.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		sheets: sheetsRepo,
		portal: portalClient,
		logger: logger,
		now:    time.Now,
	}
}

// Run probes the link_Detalhes URL of every stored empenho, stores the
// resulting report and appends a summary row to the audit spreadsheet when
// one is configured. Records without a link are counted as skipped.
func (s *Service) Run(ctx context.Context) (models.LinkAuditReport, error) {
	empenhos, err := s.store.List(ctx)
	if err != nil {
		return models.LinkAuditReport{}, fmt.Errorf("load empenhos for audit: %w", err)
	}

	report := models.LinkAuditReport{
		RunAt:       s.now(),
		BrokenLinks: make([]models.BrokenLink, 0),
	}

	for _, empenho := range empenhos {
		url := strings.TrimSpace(empenho.LinkDetalhes)
		if url == "" {
			report.Skipped++
			continue
		}
		report.Checked++

		status, err := s.portal.CheckLink(ctx, url)
		if err != nil {
			s.logger.Debug("link check failed", zap.String("url", url), zap.Error(err))
			report.BrokenLinks = append(report.BrokenLinks, models.BrokenLink{
				EmpenhoID: empenho.ID.Hex(),
				Numero:    empenho.Numero,
				URL:       url,
				Reason:    err.Error(),
			})
			continue
		}
		if status >= http.StatusBadRequest {
			report.BrokenLinks = append(report.BrokenLinks, models.BrokenLink{
				EmpenhoID:  empenho.ID.Hex(),
				Numero:     empenho.Numero,
				URL:        url,
				StatusCode: status,
			})
			continue
		}
		report.Healthy++
	}

	report.CreatedAt = s.now()
	if err := s.store.SaveLinkAuditReport(ctx, report); err != nil {
		return models.LinkAuditReport{}, fmt.Errorf("save link audit report: %w", err)
	}

	if s.sheets != nil {
		if err := s.sheets.AppendAuditRow(ctx, report); err != nil {
			s.logger.Warn("failed to append audit row to sheet", zap.Error(err))
		}
	}

	s.logger.Info("link audit finished",
		zap.Int("checked", report.Checked),
		zap.Int("healthy", report.Healthy),
		zap.Int("broken", len(report.BrokenLinks)),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}
