package handlers

import (
	"net/http"
	"time"

	"financehub/internal/errors"
	"financehub/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves weekly and monthly spending reports
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Weekly returns the report for the week containing the given start date,
// defaulting to the current week
func (h *ReportHandler) Weekly(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	weekStart := getDateParam(c, "week_start", time.Now())

	report, err := h.reportService.WeeklyReport(userID, weekStart)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// Monthly returns the report for the given month and year, defaulting to the
// current month
func (h *ReportHandler) Monthly(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	now := time.Now()
	month := getIntParam(c, "month", int(now.Month()))
	year := getIntParam(c, "year", now.Year())

	report, err := h.reportService.MonthlyReport(userID, month, year)
	if err != nil {
		if err == services.ErrInvalidReportPeriod {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("Month must be 1-12 and year positive"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
