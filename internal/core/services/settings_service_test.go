package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portsrepo "github.com/kambeshwar/creditnote_backend/internal/core/ports/repositories"
	"github.com/kambeshwar/creditnote_backend/internal/core/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) GetProfile(ctx context.Context) (*domain.CompanyProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

func (m *MockSettingsRepository) SaveProfile(ctx context.Context, profile domain.CompanyProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func TestSettingsService_GetSettings_FallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	audit := new(MockAuditService)
	svc := services.NewSettingsService(repo, audit)

	repo.On("GetProfile", ctx).Return(nil, apperrors.NewNotFoundError("no profile saved")).Once()

	profile, err := svc.GetSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCompanyProfile().Name, profile.Name)
	assert.Equal(t, "KA-EN-CN", profile.NotePrefix)
}

func TestSettingsService_GetSettings_ReturnsSavedProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(repo, new(MockAuditService))

	saved := domain.CompanyProfile{Name: "New Trading Name", NotePrefix: "NT-CN"}
	repo.On("GetProfile", ctx).Return(&saved, nil).Once()

	profile, err := svc.GetSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, "New Trading Name", profile.Name)
	assert.Equal(t, "NT-CN", profile.NotePrefix)
}

func TestSettingsService_GetSettings_PropagatesOtherErrors(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(repo, new(MockAuditService))

	repo.On("GetProfile", ctx).Return(nil, errors.New("connection refused")).Once()

	_, err := svc.GetSettings(ctx)
	require.Error(t, err)
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	audit := new(MockAuditService)
	svc := services.NewSettingsService(repo, audit)

	req := dto.UpdateSettingsRequest{
		Name:       "Kambeshwar Agencies",
		GSTIN:      "30AOEPB9968G1ZZ",
		NotePrefix: "KA-EN-CN",
	}

	var saved domain.CompanyProfile
	repo.On("SaveProfile", ctx, mock.AnythingOfType("domain.CompanyProfile")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.CompanyProfile) }).
		Return(nil).Once()
	audit.On("Record", ctx, domain.AuditUpdateSettings, mock.Anything, mock.Anything).Once()

	profile, err := svc.UpdateSettings(ctx, req, "admin")

	require.NoError(t, err)
	assert.Equal(t, "Kambeshwar Agencies", profile.Name)
	assert.Equal(t, "Kambeshwar Agencies", saved.Name)
	assert.Equal(t, "admin", saved.LastUpdatedBy)
	repo.AssertExpectations(t)
	audit.AssertExpectations(t)
}
