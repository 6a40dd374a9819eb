//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"smartpark/internal/domain/user"
	"smartpark/internal/handler/dto/request"
	resdto "smartpark/internal/handler/dto/response"
	"smartpark/internal/pkg/cookie"
	"smartpark/tests/common/authtest"
	"smartpark/tests/common/dbtest"
	"smartpark/tests/common/httptest"
	"smartpark/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "operator@example.com", string(user.RoleOperator))
	dbtest.CreateTestUser(s.T(), s.DB, "viewer@example.com", string(user.RoleViewer))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleOperator))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "operator@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "operator@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password too short",
			email:          "operator@example.com",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var response resdto.LoginResponse
				httptest.DecodeResponseBody(t, w.Body, &response)
				require.NotEmpty(t, response.AccessToken)
				require.Equal(t, tt.email, response.User.Email)

				accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				require.NotNil(t, accessCookie)
				require.NotEmpty(t, accessCookie.Value)
				refreshCookie := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
				require.NotNil(t, refreshCookie)
				require.NotEmpty(t, refreshCookie.Value)
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("register then login", func() {
		t := s.T()

		reqBody := request.RegisterUserRequest{
			Email:    "newuser@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		token := authtest.LoginUser(t, s.Router, "newuser@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("duplicate email is rejected", func() {
		t := s.T()

		reqBody := request.RegisterUserRequest{
			Email:    "operator@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "operator@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		httptest.DecodeResponseBody(t, w.Body, &response)
		require.Equal(t, "operator@example.com", response.Email)
		require.Equal(t, string(user.RoleOperator), response.Role)
	})

	s.Run("rejects requests without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("rotates tokens using the refresh cookie", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "operator@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		cookies := httptest.ExtractCookies(w)
		refreshed := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusNoContent, refreshed.Code, refreshed.Body.String())

		newAccess := httptest.ExtractCookie(refreshed, cookie.AccessTokenCookieName)
		require.NotNil(t, newAccess)
		require.NotEmpty(t, newAccess.Value)
	})

	s.Run("rejects a missing refresh token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("rejects an access token used as a refresh token", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "operator@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: token}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the session cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "operator@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(w))
	})
}
