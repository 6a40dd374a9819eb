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

type CarHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCarCommands
	mockQueries  *queriesmock.MockCarQueries
	handler      *api.CarHandler
}

func (s *CarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCarCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCarQueries(s.mockCtrl)
	s.handler = api.NewCarHandler(s.mockCommands, s.mockQueries)

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

	s.router.POST("/cars", authMiddleware, s.handler.RegisterCar)
	s.router.GET("/cars", authMiddleware, s.handler.ListCars)
	s.router.GET("/cars/:plate", authMiddleware, s.handler.GetCar)
	s.router.PATCH("/cars/:plate", authMiddleware, s.handler.UpdateCar)
	s.router.DELETE("/cars/:plate", authMiddleware, s.handler.DeleteCar)
}

func (s *CarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarHandlerTestSuite))
}

// ================================================================================
// TestRegisterCar
// ================================================================================

func (s *CarHandlerTestSuite) TestRegisterCar() {
	url := "/cars"

	reqBody := builder.NewCarBuilder().BuildRegisterRequestDTO()
	returnView := builder.NewCarBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.PlateNumber, response.PlateNumber)
		s.Equal(returnView.DriverName, response.DriverName)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: plateNumber (required)", mutate: testutil.Field("plateNumber", nil)},
			{name: "missing field: driverName (required)", mutate: testutil.Field("driverName", nil)},
			{name: "missing field: phoneNumber (required)", mutate: testutil.Field("phoneNumber", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid car details",
			},
			{
				name:           "car already registered",
				commandsError:  commands.ErrCarAlreadyExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Car already registered",
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
				s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetCar
// ================================================================================

func (s *CarHandlerTestSuite) TestGetCar() {
	url := "/cars/RAB123C"

	returnView := builder.NewCarBuilder().BuildView()

	s.Run("success: returns 200 OK with CarResponse", func() {
		s.mockQueries.EXPECT().GetByPlate(gomock.Any(), "RAB123C").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("RAB123C", response.PlateNumber)
	})

	s.Run("error: 404 Not Found for missing car", func() {
		s.mockQueries.EXPECT().GetByPlate(gomock.Any(), "RAB123C").
			Return(nil, queries.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})
}

// ================================================================================
// TestUpdateCar
// ================================================================================

func (s *CarHandlerTestSuite) TestUpdateCar() {
	url := "/cars/RAB123C"

	reqBody := builder.NewCarBuilder().WithDriverName("Alice Uwase").BuildUpdateRequestDTO()
	returnView := builder.NewCarBuilder().WithDriverName("Alice Uwase").BuildView()

	s.Run("success: returns 200 OK with updated car", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "RAB123C", reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Alice Uwase", response.DriverName)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid car details",
			},
			{
				name:           "car not found",
				commandsError:  commands.ErrCarNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car not found",
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
				s.mockCommands.EXPECT().Update(gomock.Any(), "RAB123C", reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeleteCar
// ================================================================================

func (s *CarHandlerTestSuite) TestDeleteCar() {
	url := "/cars/RAB123C"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "RAB123C").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid plate number",
			},
			{
				name:           "car not found",
				commandsError:  commands.ErrCarNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car not found",
			},
			{
				name:           "car has parking records",
				commandsError:  commands.ErrCarInUse,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Car has parking records",
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
				s.mockCommands.EXPECT().Delete(gomock.Any(), "RAB123C").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
