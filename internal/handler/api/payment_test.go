//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"smartpark/internal/domain/user"
	"smartpark/internal/handler/api"
	resdto "smartpark/internal/handler/dto/response"
	"smartpark/internal/usecase/commands"
	"smartpark/internal/usecase/queries"
	"smartpark/tests/common/builder"
	"smartpark/tests/common/httptest"
	"smartpark/tests/common/testutil"
	commandsmock "smartpark/tests/mock/commands"
	queriesmock "smartpark/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleOperator)
		c.Next()
	}

	s.router.POST("/records/:id/payments", authMiddleware, s.handler.Pay)
	s.router.GET("/records/:id/payments", authMiddleware, s.handler.GetPayment)
	s.router.GET("/records/:id/fee", authMiddleware, s.handler.QuoteFee)
	s.router.GET("/payments", authMiddleware, s.handler.ListPayments)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestPay
// ================================================================================

func (s *PaymentHandlerTestSuite) TestPay() {
	recordID := uuid.New()
	url := "/records/" + recordID.String() + "/payments"

	reqBody := builder.NewPaymentBuilder().BuildPayRequestDTO()
	returnView := builder.NewPaymentBuilder().WithParkingRecordID(recordID).BuildView()

	s.Run("success: returns 201 Created for valid payment", func() {
		s.mockCommands.EXPECT().Pay(gomock.Any(), recordID, reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(recordID, response.ParkingRecordID)
		s.Equal(reqBody.AmountPaid, response.AmountPaid)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: amountPaid (required)", mutate: testutil.Field("amountPaid", nil)},
			{name: "zero amountPaid", mutate: testutil.Field("amountPaid", 0)},
			{name: "negative amountPaid", mutate: testutil.Field("amountPaid", -500)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/records/invalid-uuid/payments"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, invalidURL, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid record ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "record not found",
				commandsError:  commands.ErrRecordNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Record not found",
			},
			{
				name:           "record not completed",
				commandsError:  commands.ErrRecordNotCompleted,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Record is not completed",
			},
			{
				name:           "payment already exists",
				commandsError:  commands.ErrPaymentAlreadyExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Payment already exists for this record",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Pay(gomock.Any(), recordID, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestQuoteFee
// ================================================================================

func (s *PaymentHandlerTestSuite) TestQuoteFee() {
	recordID := uuid.New()
	url := "/records/" + recordID.String() + "/fee"

	returnView := &queries.FeeQuoteView{
		RecordID:        recordID,
		DurationMinutes: 90,
		BilledHours:     2,
		Amount:          1000,
	}

	s.Run("success: returns 200 OK with FeeQuoteResponse", func() {
		s.mockQueries.EXPECT().QuoteForRecord(gomock.Any(), recordID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.FeeQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(recordID, response.RecordID)
		s.Equal(int32(90), response.DurationMinutes)
		s.Equal(2, response.BilledHours)
		s.Equal(int64(1000), response.Amount)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "record not found",
				queriesError:   queries.ErrRecordNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Record not found",
			},
			{
				name:           "record not completed",
				queriesError:   queries.ErrRecordNotCompleted,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Record is not completed",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().QuoteForRecord(gomock.Any(), recordID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetPayment
// ================================================================================

func (s *PaymentHandlerTestSuite) TestGetPayment() {
	recordID := uuid.New()
	url := "/records/" + recordID.String() + "/payments"

	returnView := builder.NewPaymentBuilder().WithParkingRecordID(recordID).BuildView()

	s.Run("success: returns 200 OK with PaymentResponse", func() {
		s.mockQueries.EXPECT().GetByRecordID(gomock.Any(), recordID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(recordID, response.ParkingRecordID)
	})

	s.Run("error: 404 Not Found for missing payment", func() {
		s.mockQueries.EXPECT().GetByRecordID(gomock.Any(), recordID).
			Return(nil, queries.ErrPaymentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment not found")
	})
}

// ================================================================================
// TestListPayments
// ================================================================================

func (s *PaymentHandlerTestSuite) TestListPayments() {
	url := "/payments"

	views := []*queries.PaymentView{
		builder.NewPaymentBuilder().BuildView(),
		builder.NewPaymentBuilder().WithAmountPaid(500).BuildView(),
	}

	s.Run("success: returns all payments", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
