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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TemplateRepository ---
type MockTemplateRepository struct {
	mock.Mock
}

var _ portsrepo.TemplateRepositoryFacade = (*MockTemplateRepository)(nil)

func (m *MockTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.Template, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *MockTemplateRepository) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Template), args.Error(1)
}

func (m *MockTemplateRepository) SaveTemplate(ctx context.Context, template domain.Template) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateRepository) UpdateTemplate(ctx context.Context, template domain.Template) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

type TemplateServiceTestSuite struct {
	suite.Suite
	mockTemplateRepo *MockTemplateRepository
	mockPartyRepo    *MockPartyRepository
	mockAudit        *MockAuditService
	service          *services.TemplateService
	party            domain.Party
}

func (suite *TemplateServiceTestSuite) SetupTest() {
	suite.mockTemplateRepo = new(MockTemplateRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockAudit = new(MockAuditService)
	suite.service = services.NewTemplateService(suite.mockTemplateRepo, suite.mockPartyRepo, suite.mockAudit)
	suite.party = domain.Party{
		PartyID: uuid.NewString(),
		Name:    "Sunrise Distributors",
		City:    "Panaji",
	}
}

func (suite *TemplateServiceTestSuite) TestCreateTemplate_SnapshotsPartyName() {
	ctx := context.Background()
	req := dto.CreateTemplateRequest{
		Name:       "Quarterly Incentive",
		PartyID:    suite.party.PartyID,
		Purpose:    "Quarterly Sales Incentive",
		Percentage: decimal.NewFromFloat(2.5),
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.party.PartyID).Return(&suite.party, nil).Once()

	var saved domain.Template
	suite.mockTemplateRepo.On("SaveTemplate", ctx, mock.AnythingOfType("domain.Template")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Template) }).
		Return(nil).Once()
	suite.mockAudit.On("Record", ctx, domain.AuditCreateTemplate, mock.Anything, mock.Anything).Once()

	template, err := suite.service.CreateTemplate(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Equal("Sunrise Distributors", template.PartyName)
	suite.Equal("Sunrise Distributors", saved.PartyName)
	suite.True(saved.Percentage.Equal(decimal.NewFromFloat(2.5)))
}

func (suite *TemplateServiceTestSuite) TestCreateTemplate_UnknownParty() {
	ctx := context.Background()
	req := dto.CreateTemplateRequest{
		Name:       "Quarterly Incentive",
		PartyID:    "missing",
		Purpose:    "Quarterly Sales Incentive",
		Percentage: decimal.NewFromFloat(2.5),
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, "missing").Return(nil, apperrors.NewNotFoundError("party not found")).Once()

	template, err := suite.service.CreateTemplate(ctx, req, "admin")

	suite.Require().Error(err)
	suite.Nil(template)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockTemplateRepo.AssertNotCalled(suite.T(), "SaveTemplate", mock.Anything, mock.Anything)
}

func (suite *TemplateServiceTestSuite) TestUpdateTemplate_RefreshesPartySnapshot() {
	ctx := context.Background()
	templateID := uuid.NewString()
	existing := domain.Template{
		TemplateID: templateID,
		Name:       "Old Name",
		PartyID:    "old-party",
		PartyName:  "Old Party",
		Purpose:    "Old purpose",
		Percentage: decimal.NewFromInt(1),
	}
	req := dto.UpdateTemplateRequest{
		Name:       "Monthly Incentive",
		PartyID:    suite.party.PartyID,
		Purpose:    "Monthly Sales Incentive",
		Percentage: decimal.NewFromInt(3),
	}

	suite.mockTemplateRepo.On("FindTemplateByID", ctx, templateID).Return(&existing, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.party.PartyID).Return(&suite.party, nil).Once()

	var updated domain.Template
	suite.mockTemplateRepo.On("UpdateTemplate", ctx, mock.AnythingOfType("domain.Template")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Template) }).
		Return(nil).Once()
	suite.mockAudit.On("Record", ctx, domain.AuditUpdateTemplate, mock.Anything, mock.Anything).Once()

	template, err := suite.service.UpdateTemplate(ctx, templateID, req, "admin")

	suite.Require().NoError(err)
	suite.Equal("Sunrise Distributors", template.PartyName)
	suite.Equal(suite.party.PartyID, updated.PartyID)
	suite.Equal("admin", updated.LastUpdatedBy)
}

func (suite *TemplateServiceTestSuite) TestDeleteTemplate() {
	ctx := context.Background()
	templateID := uuid.NewString()
	existing := domain.Template{TemplateID: templateID, Name: "Quarterly Incentive"}

	suite.mockTemplateRepo.On("FindTemplateByID", ctx, templateID).Return(&existing, nil).Once()
	suite.mockTemplateRepo.On("DeleteTemplate", ctx, templateID).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, domain.AuditDeleteTemplate, mock.Anything, mock.Anything).Once()

	err := suite.service.DeleteTemplate(ctx, templateID, "admin")

	suite.Require().NoError(err)
	suite.mockTemplateRepo.AssertExpectations(suite.T())
}

func TestTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateServiceTestSuite))
}
