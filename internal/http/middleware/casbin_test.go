package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEnforcer builds an in-memory enforcer with the production matcher
func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()
	modelText := `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && regexMatch(r.act, p.act)
`
	m, err := model.NewModelFromString(modelText)
	require.NoError(t, err)
	e, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	return e
}

func TestCasbinMW_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		role           string
		method         string
		path           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "admin may mutate the catalog",
			role:           "ADMIN",
			method:         http.MethodPost,
			path:           "/api/v1/movie/add-movie",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "admin may delete",
			role:           "ADMIN",
			method:         http.MethodDelete,
			path:           "/api/v1/movie/delete/5",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "plain user is denied",
			role:           "USER",
			method:         http.MethodPost,
			path:           "/api/v1/movie/add-movie",
			expectedStatus: http.StatusForbidden,
			expectedError:  "Access Denied",
		},
		{
			name:           "missing role",
			role:           "",
			method:         http.MethodPost,
			path:           "/api/v1/movie/add-movie",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Role not found in token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enforcer := newTestEnforcer(t)
			_, err := enforcer.AddPolicy("role_admin", "/api/v1/movie/*", "(GET|POST|PUT|DELETE)")
			require.NoError(t, err)

			router := gin.New()
			router.Use(func(c *gin.Context) {
				if tt.role != "" {
					c.Set("user_role", tt.role)
				}
				c.Next()
			})
			mw := NewCasbinMW(enforcer)
			router.Handle(tt.method, "/api/v1/movie/*any", mw.Enforce(), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
