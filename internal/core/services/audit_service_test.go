package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	"github.com/kambeshwar/creditnote_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock AuditRepository ---
type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) AppendEntry(ctx context.Context, entry domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

func TestAuditService_Record(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAuditRepository)
	svc := services.NewAuditService(repo)
	at := time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)

	var appended domain.AuditEntry
	repo.On("AppendEntry", ctx, mock.AnythingOfType("domain.AuditEntry")).
		Run(func(args mock.Arguments) { appended = args.Get(1).(domain.AuditEntry) }).
		Return(nil).Once()

	svc.Record(ctx, domain.AuditCreateCN, "Issued KA-EN-CN124", at)

	assert.NotEmpty(t, appended.EntryID)
	assert.Equal(t, domain.AuditCreateCN, appended.Action)
	assert.Equal(t, at, appended.Timestamp)
	repo.AssertExpectations(t)
}

func TestAuditService_Record_SwallowsWriteFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAuditRepository)
	svc := services.NewAuditService(repo)

	repo.On("AppendEntry", ctx, mock.Anything).Return(errors.New("table dropped")).Once()

	// Must not panic or surface the error; the audited op already succeeded.
	svc.Record(ctx, domain.AuditCreateCN, "Issued KA-EN-CN124", time.Now())
	repo.AssertExpectations(t)
}

func TestAuditService_List_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAuditRepository)
	svc := services.NewAuditService(repo)

	repo.On("ListEntries", ctx, 100).Return([]domain.AuditEntry{}, nil).Twice()
	repo.On("ListEntries", ctx, 50).Return([]domain.AuditEntry{}, nil).Once()

	_, err := svc.List(ctx, 0)
	require.NoError(t, err)
	_, err = svc.List(ctx, 9999)
	require.NoError(t, err)
	_, err = svc.List(ctx, 50)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestAuditService_List_NilBecomesEmptySlice(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAuditRepository)
	svc := services.NewAuditService(repo)

	repo.On("ListEntries", ctx, 100).Return([]domain.AuditEntry(nil), nil).Once()

	entries, err := svc.List(ctx, 100)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
