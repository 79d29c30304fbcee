package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cmpinhao/empenho-api/internal/domain/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, empenho models.Empenho) (models.Empenho, error) {
	args := m.Called(ctx, empenho)
	return args.Get(0).(models.Empenho), args.Error(1)
}

func (m *MockStore) List(ctx context.Context) ([]models.Empenho, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Empenho), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, id primitive.ObjectID) (models.Empenho, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Empenho), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, id primitive.ObjectID, update models.EmpenhoUpdate) (models.Empenho, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(models.Empenho), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) SaveLinkAuditReport(ctx context.Context, report models.LinkAuditReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

type MockSheets struct {
	mock.Mock
}

func (m *MockSheets) AppendAuditRow(ctx context.Context, report models.LinkAuditReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

type MockPortal struct {
	mock.Mock
}

func (m *MockPortal) CheckLink(ctx context.Context, url string) (int, error) {
	args := m.Called(ctx, url)
	return args.Int(0), args.Error(1)
}

func auditedEmpenho(numero, link string) models.Empenho {
	return models.Empenho{
		ID:           primitive.NewObjectID(),
		Numero:       numero,
		LinkDetalhes: link,
	}
}

func TestService_Run(t *testing.T) {
	fixedNow := time.Date(2025, 3, 14, 2, 0, 0, 0, time.UTC)

	t.Run("should classify every stored link and store the report", func(t *testing.T) {
		store := new(MockStore)
		portalClient := new(MockPortal)

		healthy := auditedEmpenho("25000001", "https://portal.example.gov.br/ok")
		broken := auditedEmpenho("25000002", "https://portal.example.gov.br/gone")
		unreachable := auditedEmpenho("25000003", "https://portal.example.gov.br/down")
		linkless := auditedEmpenho("25000004", "   ")

		store.On("List", mock.Anything).
			Return([]models.Empenho{healthy, broken, unreachable, linkless}, nil).Once()
		portalClient.On("CheckLink", mock.Anything, healthy.LinkDetalhes).Return(200, nil).Once()
		portalClient.On("CheckLink", mock.Anything, broken.LinkDetalhes).Return(404, nil).Once()
		portalClient.On("CheckLink", mock.Anything, unreachable.LinkDetalhes).
			Return(0, errors.New("connection refused")).Once()
		store.On("SaveLinkAuditReport", mock.Anything, mock.AnythingOfType("models.LinkAuditReport")).
			Return(nil).Once()

		svc := NewService(store, nil, portalClient, nil)
		svc.now = func() time.Time { return fixedNow }

		report, err := svc.Run(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, fixedNow, report.RunAt)
		assert.Equal(t, 3, report.Checked)
		assert.Equal(t, 1, report.Healthy)
		assert.Equal(t, 1, report.Skipped)
		assert.Len(t, report.BrokenLinks, 2)

		assert.Equal(t, broken.ID.Hex(), report.BrokenLinks[0].EmpenhoID)
		assert.Equal(t, 404, report.BrokenLinks[0].StatusCode)
		assert.Equal(t, unreachable.ID.Hex(), report.BrokenLinks[1].EmpenhoID)
		assert.Contains(t, report.BrokenLinks[1].Reason, "connection refused")

		store.AssertExpectations(t)
		portalClient.AssertExpectations(t)
	})

	t.Run("should append a spreadsheet row when a sheet is configured", func(t *testing.T) {
		store := new(MockStore)
		sheetsRepo := new(MockSheets)
		portalClient := new(MockPortal)

		empenho := auditedEmpenho("25000001", "https://portal.example.gov.br/ok")
		store.On("List", mock.Anything).Return([]models.Empenho{empenho}, nil).Once()
		portalClient.On("CheckLink", mock.Anything, empenho.LinkDetalhes).Return(200, nil).Once()
		store.On("SaveLinkAuditReport", mock.Anything, mock.Anything).Return(nil).Once()
		sheetsRepo.On("AppendAuditRow", mock.Anything, mock.MatchedBy(func(r models.LinkAuditReport) bool {
			return r.Checked == 1 && r.Healthy == 1
		})).Return(nil).Once()

		svc := NewService(store, sheetsRepo, portalClient, nil)
		svc.now = func() time.Time { return fixedNow }

		_, err := svc.Run(context.Background())

		assert.NoError(t, err)
		sheetsRepo.AssertExpectations(t)
	})

	t.Run("should tolerate a failing spreadsheet append", func(t *testing.T) {
		store := new(MockStore)
		sheetsRepo := new(MockSheets)
		portalClient := new(MockPortal)

		store.On("List", mock.Anything).Return(make([]models.Empenho, 0), nil).Once()
		store.On("SaveLinkAuditReport", mock.Anything, mock.Anything).Return(nil).Once()
		sheetsRepo.On("AppendAuditRow", mock.Anything, mock.Anything).
			Return(errors.New("sheet unavailable")).Once()

		svc := NewService(store, sheetsRepo, portalClient, nil)

		report, err := svc.Run(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, report.Checked)
	})

	t.Run("should fail when the report cannot be stored", func(t *testing.T) {
		store := new(MockStore)
		portalClient := new(MockPortal)

		store.On("List", mock.Anything).Return(make([]models.Empenho, 0), nil).Once()
		store.On("SaveLinkAuditReport", mock.Anything, mock.Anything).
			Return(errors.New("insert failed")).Once()

		svc := NewService(store, nil, portalClient, nil)

		_, err := svc.Run(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "save link audit report")
	})

	t.Run("should fail when the listing fails", func(t *testing.T) {
		store := new(MockStore)
		portalClient := new(MockPortal)

		store.On("List", mock.Anything).Return(nil, errors.New("find failed")).Once()

		svc := NewService(store, nil, portalClient, nil)

		_, err := svc.Run(context.Background())

		assert.Error(t, err)
		store.AssertNotCalled(t, "SaveLinkAuditReport", mock.Anything, mock.Anything)
	})
}
