// api/middleware/auth_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/etmf/api/config"
	"github.com/dev-mohitbeniwal/etmf/api/middleware"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

const testSecret = "test-secret"

func authRouter(cfg config.AuthConfiguration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth(cfg))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(util.ContextKeyUserID))
	})
	return r
}

func signedToken(t *testing.T, method jwt.SigningMethod, key interface{}, subject string) string {
	claims := middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Username: "alice",
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func whoami(r *gin.Engine, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r := authRouter(config.AuthConfiguration{Enabled: true, JWTSecret: testSecret})

	t.Run("ValidToken", func(t *testing.T) {
		w := whoami(r, "Authorization", "Bearer "+signedToken(t, jwt.SigningMethodHS256, []byte(testSecret), "user-42"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-42", w.Body.String())
	})

	t.Run("NoToken", func(t *testing.T) {
		w := whoami(r, "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("WrongSecret", func(t *testing.T) {
		w := whoami(r, "Authorization", "Bearer "+signedToken(t, jwt.SigningMethodHS256, []byte("other"), "user-42"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Unauthorized")
	})

	t.Run("MissingSubject", func(t *testing.T) {
		w := whoami(r, "Authorization", "Bearer "+signedToken(t, jwt.SigningMethodHS256, []byte(testSecret), ""))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Garbage", func(t *testing.T) {
		w := whoami(r, "Authorization", "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthDisabledUsesDevHeader(t *testing.T) {
	r := authRouter(config.AuthConfiguration{DevUserHeader: "X-User-ID"})

	w := whoami(r, "X-User-ID", "dev-user")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dev-user", w.Body.String())

	w = whoami(r, "Authorization", "Bearer ignored")
	assert.Empty(t, w.Body.String())
}
