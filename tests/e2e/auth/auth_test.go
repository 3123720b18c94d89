//go:build e2e

package auth_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"koskita/internal/domain/user"
	"koskita/internal/handler/dto/request"
	resdto "koskita/internal/handler/dto/response"
	"koskita/tests/common/authtest"
	"koskita/tests/common/dbtest"
	"koskita/tests/common/httptest"
	"koskita/tests/e2e"

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
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "seller@example.com", string(user.RoleSeller))
	dbtest.CreateTestUser(s.T(), s.DB, "renter@example.com", string(user.RoleRenter))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleRenter))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func decodeData(t *testing.T, raw []byte, target any) {
	t.Helper()
	var env httptest.Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, target))
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		email          string
		password       string
		role           string
		expectedStatus int
	}{
		{
			name:           "registers a renter",
			email:          "newrenter@example.com",
			password:       "password123",
			role:           "renter",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "registers a seller",
			email:          "newseller@example.com",
			password:       "password123",
			role:           "seller",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rejects admin registration",
			email:          "newadmin@example.com",
			password:       "password123",
			role:           "admin",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects duplicate email",
			email:          "renter@example.com",
			password:       "password123",
			role:           "renter",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects short password",
			email:          "short@example.com",
			password:       "short",
			role:           "renter",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.RegisterRequest{
				Email:    tt.email,
				Password: tt.password,
				Role:     tt.role,
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var res resdto.RegisterResponse
				decodeData(t, w.Body.Bytes(), &res)
				require.NotEmpty(t, res.UserID)

				// And the new account can log in immediately.
				authtest.LoginUser(t, s.Router, tt.email, tt.password)
			}
		})
	}
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
			email:          "renter@example.com",
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
			email:          "renter@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
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
			name:           "empty password",
			email:          "renter@example.com",
			password:       "",
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
				var loginRes resdto.LoginResponse
				decodeData(t, w.Body.Bytes(), &loginRes)
				require.NotEmpty(t, loginRes.AccessToken)
				require.NotEmpty(t, loginRes.RefreshToken)
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.email, loginRes.User.Email)

				// Tokens also arrive as cookies.
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

				// last_login is stamped on successful login.
				var lastLogin any
				err := s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin)
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
	}{
		{
			name: "valid refresh token",
			setupRefreshToken: func() string {
				reqBody := request.LoginRequest{
					Email:    "renter@example.com",
					Password: "password123",
				}
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
				var loginRes resdto.LoginResponse
				decodeData(s.T(), w.Body.Bytes(), &loginRes)
				return loginRes.RefreshToken
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid refresh token",
			setupRefreshToken: func() string {
				return "invalid-refresh-token"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing refresh token",
			setupRefreshToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.RefreshRequest{RefreshToken: tt.setupRefreshToken()}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var refreshRes resdto.TokenPairResponse
				decodeData(t, w.Body.Bytes(), &refreshRes)
				require.NotEmpty(t, refreshRes.AccessToken)
				require.NotEmpty(t, refreshRes.RefreshToken)
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
	}{
		{
			name: "valid token",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "renter@example.com", "password123")
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid token",
			setupToken: func() string {
				return "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "no token",
			setupToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, tt.setupToken())
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
	}{
		{
			name: "admin user",
			setupUser: func() (string, string, string) {
				email := "admin2@example.com"
				role := string(user.RoleAdmin)
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "renter user",
			setupUser: func() (string, string, string) {
				email := "renter2@example.com"
				role := string(user.RoleRenter)
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid token",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "no token",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res resdto.UserResponse
				decodeData(t, w.Body.Bytes(), &res)
				require.Equal(t, email, res.Email)
				require.Equal(t, role, res.Role)
				require.NotContains(t, w.Body.String(), "password")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleRenter))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleRenter)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous requests", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/bookings"},
			{http.MethodGet, "/api/favorites"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "expected 401 for %s %s", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("multiple sessions stay valid", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "renter@example.com", "password123")
		token2 := authtest.LoginUser(t, s.Router, "renter@example.com", "password123")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
	})
}
