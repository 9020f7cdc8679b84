package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lakeview/hotel-system/internal/core/ports"
)

// ReportHandler exposes the management summary report.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Summary returns revenue, booking and order breakdowns, top menu items and
// the average rating for a date range. Defaults to the last 30 days.
//
// @Summary      Management summary report
// @Tags         reports
// @Produce      json
// @Param        from  query     string  false  "Range start (YYYY-MM-DD)"
// @Param        to    query     string  false  "Range end (YYYY-MM-DD)"
// @Success      200   {object}  ports.Summary
// @Failure      400   {object}  errorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	var r ports.ReportRange
	if from := c.QueryParam("from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		r.From = t
	}
	if to := c.QueryParam("to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		r.To = t
	}

	summary, err := h.reports.Summary(c.Request().Context(), r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
