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

// SavingsHandler records savings entries
type SavingsHandler struct {
	savingsService services.SavingsServiceInterface
}

// NewSavingsHandler creates a new savings handler
func NewSavingsHandler(savingsService services.SavingsServiceInterface) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// Create records a savings entry and its matching transaction
func (h *SavingsHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSavingsRequest
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

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("date must be YYYY-MM-DD"))
		}
	}

	entry, err := h.savingsService.RecordSavings(userID, amount, req.Description, date)
	if err != nil {
		if err == services.ErrInvalidAmount {
			return SendError(c, errors.TransactionInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: entry, Message: "Savings recorded"})
}
