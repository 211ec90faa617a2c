package handlers

import (
	"net/http"
	"time"

	"financehub/internal/dto"
	"financehub/internal/errors"
	"financehub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler manages weekly and monthly budget allocations
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateWeekly allocates a budget for the week containing week_start
func (h *BudgetHandler) CreateWeekly(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	weekStart := time.Now()
	if req.WeekStart != "" {
		weekStart, err = time.Parse("2006-01-02", req.WeekStart)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("week_start must be YYYY-MM-DD"))
		}
	}

	budget, err := h.budgetService.AllocateWeekly(userID, amount, weekStart)
	if err != nil {
		return h.mapBudgetError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: budget, Message: "Weekly budget allocated"})
}

// CreateMonthly allocates a budget for the given calendar month
func (h *BudgetHandler) CreateMonthly(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	now := time.Now()
	month := req.Month
	if month == 0 {
		month = int(now.Month())
	}
	year := req.Year
	if year == 0 {
		year = now.Year()
	}

	budget, err := h.budgetService.AllocateMonthly(userID, amount, month, year)
	if err != nil {
		return h.mapBudgetError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: budget, Message: "Monthly budget allocated"})
}

// UpdateAmount changes a budget's allocated amount
func (h *BudgetHandler) UpdateAmount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.BudgetNotFound)
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	budget, err := h.budgetService.UpdateAmount(userID, budgetID, amount)
	if err != nil {
		return h.mapBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: budget, Message: "Budget updated"})
}

// Close deactivates a budget
func (h *BudgetHandler) Close(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.BudgetNotFound)
	}

	if err := h.budgetService.CloseBudget(userID, budgetID); err != nil {
		return h.mapBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Budget closed"})
}

func (h *BudgetHandler) mapBudgetError(c echo.Context, err error) error {
	switch err {
	case services.ErrInvalidAmount:
		return SendError(c, errors.TransactionInvalidAmount)
	case services.ErrBudgetNotFound:
		return SendError(c, errors.BudgetNotFound)
	case services.ErrBudgetAlreadyExists:
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("A budget already exists for this period"))
	case services.ErrBudgetInsufficientFunds:
		return SendError(c, errors.BudgetInsufficientFunds)
	case services.ErrInvalidReportPeriod:
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("Month must be 1-12 and year positive"))
	default:
		return SendSystemError(c, err)
	}
}
