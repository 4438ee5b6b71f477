package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/core/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type PartyServiceTestSuite struct {
	suite.Suite
	mockPartyRepo *MockPartyRepository
	mockAudit     *MockAuditService
	service       portssvc.PartySvcFacade
	userID        string
}

func (suite *PartyServiceTestSuite) SetupTest() {
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockAudit = new(MockAuditService)
	suite.service = services.NewPartyService(suite.mockPartyRepo, suite.mockAudit)
	suite.userID = "admin"
}

// workbook builds an in-memory XLSX with the import header and the given rows.
func (suite *PartyServiceTestSuite) workbook(rows [][]string) *bytes.Reader {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"Name", "Address1", "Address2", "Address3", "City", "Email", "Whatsapp", "GSTIN"}
	suite.Require().NoError(f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		suite.Require().NoError(err)
		suite.Require().NoError(f.SetSheetRow(sheet, cell, &cells))
	}

	buf, err := f.WriteToBuffer()
	suite.Require().NoError(err)
	return bytes.NewReader(buf.Bytes())
}

func (suite *PartyServiceTestSuite) TestCreateParty_Success() {
	ctx := context.Background()
	req := dto.CreatePartyRequest{
		Name:     "Coastal Traders",
		Address1: "Shop 3, Market Road",
		City:     "Margao",
		Email:    "coastal@example.com",
	}

	suite.mockPartyRepo.On("SaveParty", ctx, mock.AnythingOfType("domain.Party")).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, domain.AuditCreateParty, mock.Anything, mock.Anything).Once()

	party, err := suite.service.CreateParty(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(party)
	suite.NotEmpty(party.PartyID)
	suite.Equal("Coastal Traders", party.Name)
	suite.Equal(suite.userID, party.CreatedBy)
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestListParties_NilBecomesEmptySlice() {
	ctx := context.Background()
	suite.mockPartyRepo.On("ListParties", ctx).Return([]domain.Party(nil), nil).Once()

	parties, err := suite.service.ListParties(ctx)

	suite.Require().NoError(err)
	suite.NotNil(parties)
	suite.Empty(parties)
}

func (suite *PartyServiceTestSuite) TestImportParties_ReplacesWholeSet() {
	ctx := context.Background()
	r := suite.workbook([][]string{
		{"Sunrise Distributors", "Plot 14", "Corlim", "", "Panaji", "a@example.com", "9400000001", ""},
		{"Coastal Traders", "Shop 3", "", "", "Margao", "", "", "30AAAAA0000A1Z5"},
	})

	var replaced []domain.Party
	suite.mockPartyRepo.On("ReplaceAllParties", ctx, mock.AnythingOfType("[]domain.Party")).
		Run(func(args mock.Arguments) { replaced = args.Get(1).([]domain.Party) }).
		Return(nil).Once()
	suite.mockAudit.On("Record", ctx, domain.AuditUploadParties, mock.Anything, mock.Anything).Once()

	resp, err := suite.service.ImportParties(ctx, r, "parties.xlsx", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, resp.Imported)
	suite.Empty(resp.Skipped)
	suite.Require().Len(replaced, 2)
	suite.Equal("Sunrise Distributors", replaced[0].Name)
	suite.Equal("Panaji", replaced[0].City)
	suite.Equal("30AAAAA0000A1Z5", replaced[1].GSTIN)
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestImportParties_SkipsRowsMissingNameOrCity() {
	ctx := context.Background()
	r := suite.workbook([][]string{
		{"Sunrise Distributors", "", "", "", "Panaji"},
		{"", "Plot 9", "", "", "Margao"},
		{"Hill View Agencies", "", "", "", ""},
	})

	suite.mockPartyRepo.On("ReplaceAllParties", ctx, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, domain.AuditUploadParties, mock.Anything, mock.Anything).Once()

	resp, err := suite.service.ImportParties(ctx, r, "parties.xlsx", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, resp.Imported)
	// Skipped rows are reported with their 1-based workbook row numbers.
	suite.Equal([]string{"row 3: missing name or city", "row 4: missing name or city"}, resp.Skipped)
}

func (suite *PartyServiceTestSuite) TestImportParties_RejectsHeaderOnlyWorkbook() {
	ctx := context.Background()
	r := suite.workbook(nil)

	resp, err := suite.service.ImportParties(ctx, r, "empty.xlsx", suite.userID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "ReplaceAllParties", mock.Anything, mock.Anything)
}

func (suite *PartyServiceTestSuite) TestImportParties_RejectsNonWorkbook() {
	ctx := context.Background()

	resp, err := suite.service.ImportParties(ctx, bytes.NewReader([]byte("not an xlsx")), "junk.bin", suite.userID)

	suite.Require().Error(err)
	suite.Nil(resp)
}

func TestPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
