package api

import (
	"net/http"
	"time"

	resdto "smartpark/internal/handler/dto/response"
	"smartpark/internal/pkg/clock"
	"smartpark/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
	clock         clock.Clock
}

func NewReportHandler(reportQueries queries.ReportQueries, clock clock.Clock) *ReportHandler {
	return &ReportHandler{
		reportQueries: reportQueries,
		clock:         clock,
	}
}

// @Summary Daily payment report
// @Description List the payments recorded on one calendar day with their total
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day in YYYY-MM-DD format, defaults to today"
// @Success 200 {object} resdto.DailyReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reports/daily [get]
func (h *ReportHandler) DailyReport(c *gin.Context) {
	day := h.clock.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, day.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		day = parsed
	}

	view, err := h.reportQueries.PaymentsForDay(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDailyReportView(view))
}
