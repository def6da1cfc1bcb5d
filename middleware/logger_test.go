// api/middleware/logger_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
	"github.com/dev-mohitbeniwal/etmf/api/middleware"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })
	return logs
}

func loggedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Logger())
	r.GET("/documents", func(c *gin.Context) {
		c.Set(util.ContextKeyUserID, "user-7")
		c.String(http.StatusOK, c.GetString(util.ContextKeyRequestID))
	})
	return r
}

func TestLoggerTagsRequests(t *testing.T) {
	t.Run("GeneratesID", func(t *testing.T) {
		logs := observeLogs(t)
		w := httptest.NewRecorder()
		loggedRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents", nil))

		requestID := w.Header().Get(util.HeaderRequestID)
		require.NotEmpty(t, requestID)
		assert.Equal(t, requestID, w.Body.String())

		entries := logs.FilterMessage("Request processed").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, requestID, fields["requestId"])
		assert.Equal(t, "user-7", fields["actor"])
		assert.Equal(t, "/documents", fields["path"])
		assert.EqualValues(t, http.StatusOK, fields["status"])
	})

	t.Run("KeepsCallerID", func(t *testing.T) {
		logs := observeLogs(t)
		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		req.Header.Set(util.HeaderRequestID, "trace-abc")
		w := httptest.NewRecorder()
		loggedRouter().ServeHTTP(w, req)

		assert.Equal(t, "trace-abc", w.Header().Get(util.HeaderRequestID))
		entries := logs.FilterField(zap.String("requestId", "trace-abc")).All()
		assert.Len(t, entries, 1)
	})

	t.Run("ReplacesOversizedID", func(t *testing.T) {
		observeLogs(t)
		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		req.Header.Set(util.HeaderRequestID, strings.Repeat("x", 200))
		w := httptest.NewRecorder()
		loggedRouter().ServeHTTP(w, req)

		got := w.Header().Get(util.HeaderRequestID)
		assert.NotEmpty(t, got)
		assert.Less(t, len(got), 200)
	})
}
