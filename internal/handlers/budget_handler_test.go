package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"financehub/internal/errors"
	"financehub/internal/models"
	"financehub/internal/services"
	"financehub/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	echo              *echo.Echo
	userID            uuid.UUID
	ctrl              *gomock.Controller
	mockBudgetService *service_mocks.MockBudgetServiceInterface
	handler           *BudgetHandler
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockBudgetService = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.mockBudgetService)
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetHandlerTestSuite) newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *BudgetHandlerTestSuite) TestCreateWeekly_Success() {
	weekStart := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	budget := &models.Budget{
		ID:         uuid.New(),
		UserID:     s.userID,
		Name:       "Week of Jul 15, 2024",
		Amount:     decimal.RequireFromString("200.00"),
		BudgetType: models.BudgetTypeWeekly,
		StartDate:  weekStart,
		IsActive:   true,
	}
	s.mockBudgetService.EXPECT().
		AllocateWeekly(s.userID, decimal.RequireFromString("200.00"), weekStart).
		Return(budget, nil)

	body := `{"amount":"200.00","week_start":"2024-07-15"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/budgets/weekly", body)

	s.NoError(s.handler.CreateWeekly(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestCreateWeekly_MalformedDate() {
	// Rejected before the service is reached.
	body := `{"amount":"200.00","week_start":"July 15"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/budgets/weekly", body)

	s.NoError(s.handler.CreateWeekly(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResponse ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal(string(errors.ValidationInvalidDate), errorResponse.Error.Code)
}

func (s *BudgetHandlerTestSuite) TestCreateMonthly_InvalidPeriod() {
	s.mockBudgetService.EXPECT().
		AllocateMonthly(s.userID, decimal.RequireFromString("600.00"), 13, 2024).
		Return(nil, services.ErrInvalidReportPeriod)

	body := `{"amount":"600.00","month":13,"year":2024}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/budgets/monthly", body)

	s.NoError(s.handler.CreateMonthly(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResponse ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal(string(errors.ValidationOutOfRange), errorResponse.Error.Code)
}

func (s *BudgetHandlerTestSuite) TestCreateMonthly_InsufficientFunds() {
	s.mockBudgetService.EXPECT().
		AllocateMonthly(s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrBudgetInsufficientFunds)

	body := `{"amount":"9999.00","month":7,"year":2024}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/budgets/monthly", body)

	s.NoError(s.handler.CreateMonthly(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var errorResponse ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal(string(errors.BudgetInsufficientFunds), errorResponse.Error.Code)
}

func (s *BudgetHandlerTestSuite) TestUpdateAmount_Success() {
	budgetID := uuid.New()
	budget := &models.Budget{
		ID:     budgetID,
		UserID: s.userID,
		Amount: decimal.RequireFromString("250.00"),
	}
	s.mockBudgetService.EXPECT().
		UpdateAmount(s.userID, budgetID, decimal.RequireFromString("250.00")).
		Return(budget, nil)

	body := `{"amount":"250.00"}`
	c, rec := s.newJSONContext(http.MethodPatch, "/api/v1/budgets/"+budgetID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(budgetID.String())

	s.NoError(s.handler.UpdateAmount(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestUpdateAmount_MalformedID() {
	body := `{"amount":"250.00"}`
	c, rec := s.newJSONContext(http.MethodPatch, "/api/v1/budgets/not-a-uuid", body)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.UpdateAmount(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestClose_Success() {
	budgetID := uuid.New()
	s.mockBudgetService.EXPECT().CloseBudget(s.userID, budgetID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/budgets/"+budgetID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(budgetID.String())

	s.NoError(s.handler.Close(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestClose_NotFound() {
	budgetID := uuid.New()
	s.mockBudgetService.EXPECT().CloseBudget(s.userID, budgetID).Return(services.ErrBudgetNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/budgets/"+budgetID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(budgetID.String())

	s.NoError(s.handler.Close(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
