package handlers

import (
	"fmt"
	"net/http"
	"time"

	"financehub/internal/dto"
	"financehub/internal/errors"
	"financehub/internal/models"
	"financehub/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction listing, creation, and export
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	exportService      services.ExportServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	exportService services.ExportServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		exportService:      exportService,
	}
}

// List returns one page of the user's transactions under the active filters,
// together with the summary and expense breakdown of the whole filtered set
// @Summary List transactions
// @Description Filter, sort, and paginate the user's transactions
// @Tags Transactions
// @Produce json
// @Param preset query string false "Date preset: today, this_week, this_month, last_month, this_year, custom"
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Param type query string false "Transaction type: income, expense, savings"
// @Param category query string false "Category ID"
// @Param min_amount query string false "Minimum amount"
// @Param max_amount query string false "Maximum amount"
// @Param search query string false "Case-insensitive title/description search"
// @Param sort query string false "Sort key and direction, e.g. date:desc"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Router /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var params dto.FilterParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	response, err := h.transactionService.ListTransactions(userID, params, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// Create records a full transaction
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	txn, err := h.transactionService.CreateTransaction(userID, &req)
	if err != nil {
		switch err {
		case services.ErrInvalidAmount:
			return SendError(c, errors.TransactionInvalidAmount)
		case models.ErrInvalidTransactionType:
			return SendError(c, errors.TransactionInvalidType)
		case services.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case services.ErrProfileNotFound:
			return SendError(c, errors.ProfileNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	response := dto.NewTransactionResponse(txn)
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    response,
		Message: "Transaction recorded",
	})
}

// Export streams the user's transactions as a CSV download. The same filter
// parameters as the listing apply, but the export ignores pagination and
// covers the whole filtered set.
func (h *TransactionHandler) Export(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var params dto.FilterParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	now := time.Now()
	transactions, err := h.transactionService.FilteredTransactions(userID, params, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	filename, data, err := h.exportService.ExportCSV(transactions, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", data)
}
