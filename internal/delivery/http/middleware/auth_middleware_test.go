package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"performiq/internal/domain/constants"
	"performiq/internal/domain/service"
	"performiq/internal/errors"
	mockService "performiq/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID, orgID := uuid.New(), uuid.New()
	claims := &service.Claims{UserID: userID, OrgID: orgID, Roles: []string{constants.RoleMember}}

	tests := []struct {
		name       string
		header     string
		orgHeader  string
		setup      func(m *mockService.MockTokenService)
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "matching org header",
			header:    "Bearer good",
			orgHeader: orgID.String(),
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "foreign org header",
			header:    "Bearer good",
			orgHeader: uuid.NewString(),
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(claims, nil)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/integrations", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			if tt.orgHeader != "" {
				req.Header.Set(HeaderXOrgID, tt.orgHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				got, ok := OrgID(c)
				assert.True(t, ok)
				assert.Equal(t, orgID, got)
				assert.Equal(t, userID, c.Get(constants.ContextKeyUserID))
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		roles      any
		wantStatus int
	}{
		{name: "admin", roles: []string{constants.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "member", roles: []string{constants.RoleMember}, wantStatus: http.StatusForbidden},
		{name: "no roles", roles: nil, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockService.NewMockTokenService(t))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/admin/jobs/run", nil), rec)
			if tt.roles != nil {
				c.Set(constants.ContextKeyRoles, tt.roles)
			}

			require.NoError(t, m.RequireRole(constants.RoleAdmin)(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
