package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kambeshwar/creditnote_backend/internal/apperrors"
	"github.com/kambeshwar/creditnote_backend/internal/core/domain"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/dto"
	"github.com/kambeshwar/creditnote_backend/internal/handlers"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/kambeshwar/creditnote_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CreditNoteService ---
type MockCreditNoteService struct {
	mock.Mock
}

var _ portssvc.CreditNoteSvcFacade = (*MockCreditNoteService)(nil)

func (m *MockCreditNoteService) IssueCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest, issuerUserID string) (*dto.IssueCreditNoteResponse, error) {
	args := m.Called(ctx, req, issuerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IssueCreditNoteResponse), args.Error(1)
}

func (m *MockCreditNoteService) PreviewCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest) (*dto.PreviewCreditNoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PreviewCreditNoteResponse), args.Error(1)
}

func (m *MockCreditNoteService) ResendCreditNote(ctx context.Context, number string, recipient domain.ResendRecipient) error {
	args := m.Called(ctx, number, recipient)
	return args.Error(0)
}

// --- Test Suite Setup ---
type CreditNoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCreditNoteService
	jwtSecret   string
	token       string
}

func (suite *CreditNoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "handler-test-secret"
	suite.mockService = new(MockCreditNoteService)

	token, err := utils.GenerateJWT("admin", suite.jwtSecret, time.Hour, "creditnote-backend")
	suite.Require().NoError(err)
	suite.token = token

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterCreditNoteRoutes(v1, suite.mockService, nil)
}

func (suite *CreditNoteHandlerTestSuite) postJSON(path string, body interface{}, authorized bool) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func issueRequestBody() dto.IssueCreditNoteRequest {
	return dto.IssueCreditNoteRequest{
		PartyID:    "5f1c9e9a-0000-4000-8000-000000000001",
		PeriodMode: "quarter",
		Purpose:    "Quarterly Sales Incentive",
		BaseAmount: decimal.NewFromInt(250000),
		Percentage: decimal.NewFromFloat(2.5),
	}
}

// --- Test Cases ---

func (suite *CreditNoteHandlerTestSuite) TestIssueCreditNote_Success() {
	resp := &dto.IssueCreditNoteResponse{
		Note:           dto.CreditNoteResponse{Number: "KA-EN-CN124", Status: "ISSUED"},
		PartyPDFBase64: "cGFydHk=",
		PrintPDFBase64: "cHJpbnQ=",
	}
	suite.mockService.On("IssueCreditNote", mock.Anything, mock.AnythingOfType("dto.IssueCreditNoteRequest"), "admin").Return(resp, nil).Once()

	w := suite.postJSON("/api/v1/credit-notes", issueRequestBody(), true)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.IssueCreditNoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("KA-EN-CN124", got.Note.Number)
	suite.Equal("cGFydHk=", got.PartyPDFBase64)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CreditNoteHandlerTestSuite) TestIssueCreditNote_Unauthorized() {
	w := suite.postJSON("/api/v1/credit-notes", issueRequestBody(), false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "IssueCreditNote", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CreditNoteHandlerTestSuite) TestIssueCreditNote_BadRequestBody() {
	body := issueRequestBody()
	body.PeriodMode = "fortnight" // fails the oneof binding

	w := suite.postJSON("/api/v1/credit-notes", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "IssueCreditNote", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CreditNoteHandlerTestSuite) TestIssueCreditNote_PartyNotFound() {
	suite.mockService.On("IssueCreditNote", mock.Anything, mock.Anything, "admin").
		Return(nil, apperrors.NewNotFoundError("party not found")).Once()

	w := suite.postJSON("/api/v1/credit-notes", issueRequestBody(), true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CreditNoteHandlerTestSuite) TestIssueCreditNote_DispatchFailureIsBadGateway() {
	suite.mockService.On("IssueCreditNote", mock.Anything, mock.Anything, "admin").
		Return(nil, context.DeadlineExceeded).Once()

	w := suite.postJSON("/api/v1/credit-notes", issueRequestBody(), true)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *CreditNoteHandlerTestSuite) TestPreviewCreditNote_Success() {
	resp := &dto.PreviewCreditNoteResponse{Number: "KA-EN-CN125", Advisory: true, PDFBase64: "cHJldmlldw=="}
	suite.mockService.On("PreviewCreditNote", mock.Anything, mock.AnythingOfType("dto.IssueCreditNoteRequest")).Return(resp, nil).Once()

	w := suite.postJSON("/api/v1/credit-notes/preview", issueRequestBody(), true)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.PreviewCreditNoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.Advisory)
	suite.Equal("KA-EN-CN125", got.Number)
}

func (suite *CreditNoteHandlerTestSuite) TestPreviewCreditNote_ValidationError() {
	suite.mockService.On("PreviewCreditNote", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("base amount must be greater than zero")).Once()

	w := suite.postJSON("/api/v1/credit-notes/preview", issueRequestBody(), true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CreditNoteHandlerTestSuite) TestResendCreditNote_Success() {
	suite.mockService.On("ResendCreditNote", mock.Anything, "KA-EN-CN88", domain.ResendToParty).Return(nil).Once()

	w := suite.postJSON("/api/v1/credit-notes/KA-EN-CN88/resend", dto.ResendCreditNoteRequest{Recipient: "party"}, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CreditNoteHandlerTestSuite) TestResendCreditNote_InvalidRecipientRejectedByBinding() {
	w := suite.postJSON("/api/v1/credit-notes/KA-EN-CN88/resend", dto.ResendCreditNoteRequest{Recipient: "everyone"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ResendCreditNote", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CreditNoteHandlerTestSuite) TestResendCreditNote_NotFound() {
	suite.mockService.On("ResendCreditNote", mock.Anything, "KA-EN-CN999", domain.ResendToHeadOffice).
		Return(apperrors.NewNotFoundError("credit note not found")).Once()

	w := suite.postJSON("/api/v1/credit-notes/KA-EN-CN999/resend", dto.ResendCreditNoteRequest{Recipient: "ho"}, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CreditNoteHandlerTestSuite) TestResendCreditNote_EndpointFailureIsBadGateway() {
	suite.mockService.On("ResendCreditNote", mock.Anything, "KA-EN-CN88", domain.ResendToParty).
		Return(context.DeadlineExceeded).Once()

	w := suite.postJSON("/api/v1/credit-notes/KA-EN-CN88/resend", dto.ResendCreditNoteRequest{Recipient: "party"}, true)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func TestCreditNoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CreditNoteHandlerTestSuite))
}
