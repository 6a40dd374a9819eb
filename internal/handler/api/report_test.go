//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"smartpark/internal/domain/user"
	"smartpark/internal/handler/api"
	resdto "smartpark/internal/handler/dto/response"
	"smartpark/internal/pkg/clock"
	"smartpark/internal/pkg/errs"
	"smartpark/internal/usecase/queries"
	"smartpark/tests/common/httptest"
	queriesmock "smartpark/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReportQueries
	clock       *clock.MockClock
	handler     *api.ReportHandler
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	s.handler = api.NewReportHandler(s.mockQueries, s.clock)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleViewer)
		c.Next()
	}

	s.router.GET("/reports/daily", authMiddleware, s.handler.DailyReport)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

// ================================================================================
// TestDailyReport
// ================================================================================

func (s *ReportHandlerTestSuite) TestDailyReport() {
	url := "/reports/daily"

	paymentDate := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	exitTime := paymentDate.Add(-5 * time.Minute)
	driverName := "Jean Bosco"
	returnView := &queries.DailyReportView{
		Date:        "2026-08-30",
		TotalAmount: 1500,
		Count:       2,
		Payments: []*queries.ReportRow{
			{
				PaymentID:       uuid.New(),
				AmountPaid:      500,
				PaymentDate:     paymentDate,
				RecordID:        uuid.New(),
				SlotNumber:      "A1",
				PlateNumber:     "RAB123C",
				DriverName:      &driverName,
				EntryTime:       paymentDate.Add(-time.Hour),
				ExitTime:        &exitTime,
				DurationMinutes: 55,
			},
			{
				PaymentID:       uuid.New(),
				AmountPaid:      1000,
				PaymentDate:     paymentDate,
				RecordID:        uuid.New(),
				SlotNumber:      "B2",
				PlateNumber:     "RAC456D",
				DriverName:      nil,
				EntryTime:       paymentDate.Add(-2 * time.Hour),
				ExitTime:        &exitTime,
				DurationMinutes: 115,
			},
		},
	}

	s.Run("success: defaults to the current day", func() {
		s.mockQueries.EXPECT().PaymentsForDay(gomock.Any(), s.clock.Now()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.DailyReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-08-30", response.Date)
		s.Equal(int64(1500), response.TotalAmount)
		s.Equal(2, response.Count)
		s.Require().Len(response.Payments, 2)
		s.Equal("Jean Bosco", response.Payments[0].DriverName)
	})

	s.Run("success: a row without a car keeps an empty driverName", func() {
		s.mockQueries.EXPECT().PaymentsForDay(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.True(strings.Contains(rec.Body.String(), `"driverName":""`))

		var response resdto.DailyReportResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Require().Len(response.Payments, 2)
		s.Equal("", response.Payments[1].DriverName)
	})

	s.Run("success: honors an explicit date", func() {
		day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().PaymentsForDay(gomock.Any(), day).
			Return(&queries.DailyReportView{Date: "2026-08-01", Payments: []*queries.ReportRow{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-08-01", nil, "bearer-token")

		var response resdto.DailyReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-08-01", response.Date)
		s.Empty(response.Payments)
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=30-08-2026", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().PaymentsForDay(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("db failure")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
