package handlers

import (
	"net/http"
	"time"

	"financehub/internal/dto"
	"financehub/internal/errors"
	"financehub/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// DashboardHandler serves the dashboard feed and the abbreviated write paths
type DashboardHandler struct {
	dashboardService    services.DashboardServiceInterface
	quickExpenseService services.QuickExpenseServiceInterface
	transactionService  services.TransactionServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	dashboardService services.DashboardServiceInterface,
	quickExpenseService services.QuickExpenseServiceInterface,
	transactionService services.TransactionServiceInterface,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:    dashboardService,
		quickExpenseService: quickExpenseService,
		transactionService:  transactionService,
	}
}

// GetDashboard returns the initial data feed: period totals, chart inputs,
// recent transactions, and the full snapshot
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	feed, err := h.dashboardService.GetDashboard(userID, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, feed)
}

// QuickExpense records an expense through the abbreviated form. Failures
// come back as structured responses with a specific reason; nothing is
// written unless every check passes.
func (h *DashboardHandler) QuickExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.QuickExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	response, err := h.quickExpenseService.RecordExpense(userID, &req, time.Now())
	if err != nil {
		switch err {
		case services.ErrInvalidAmount:
			return SendError(c, errors.TransactionInvalidAmount)
		case services.ErrExpenseCategoryRequired:
			return SendError(c, errors.TransactionNoCategory)
		case services.ErrExceedsAvailableBalance:
			return SendError(c, errors.TransactionExceedsCash)
		case services.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case services.ErrProfileNotFound:
			return SendError(c, errors.ProfileNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, response)
}

// AddCash tops up the cash-on-hand figure via an income transaction
func (h *DashboardHandler) AddCash(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.AddCashRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	txn, profile, err := h.transactionService.AddCashOnHand(userID, amount)
	if err != nil {
		switch err {
		case services.ErrInvalidAmount:
			return SendError(c, errors.TransactionInvalidAmount)
		case services.ErrProfileNotFound:
			return SendError(c, errors.ProfileNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	txnResponse := dto.NewTransactionResponse(txn)
	return c.JSON(http.StatusCreated, dto.QuickExpenseResponse{
		Success:       true,
		Message:       "Cash on hand updated",
		NewCashOnHand: profile.CashOnHand.StringFixed(2),
		Transaction:   &txnResponse,
	})
}
