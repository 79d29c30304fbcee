package sheets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/cmpinhao/empenho-api/internal/config"
	"github.com/cmpinhao/empenho-api/internal/domain/models"
)

// auditSheetRange is the tab and columns that receive audit summaries.
const auditSheetRange = "Auditorias!A:F"

// Repository defines the persistence operations supported by the Google Sheets adapter.
type Repository interface {
	AppendAuditRow(ctx context.Context, report models.LinkAuditReport) error
}

// GoogleSheetRepository implements the Repository interface using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendAuditRow appends one summary row for the given audit run.
func (r *GoogleSheetRepository) AppendAuditRow(ctx context.Context, report models.LinkAuditReport) error {
	sampleURL := ""
	if len(report.BrokenLinks) > 0 {
		sampleURL = report.BrokenLinks[0].URL
	}

	values := []interface{}{
		report.RunAt.Format(time.RFC3339),
		report.Checked,
		report.Healthy,
		len(report.BrokenLinks),
		report.Skipped,
		sampleURL,
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, auditSheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append audit row into range %s: %w", auditSheetRange, err)
	}

	r.logger.Debug("audit row appended to sheet", zap.String("range", auditSheetRange))
	return nil
}
