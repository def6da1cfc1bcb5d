// api/controller/helpers_test.go
package controller_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/util"
)

type routeRegistrar interface {
	RegisterRoutes(r *gin.RouterGroup)
}

// setupRouter mounts the controller under /api/v1. A non-empty actor is attached to every request.
func setupRouter(controller routeRegistrar, actor string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.ContextWithFallback = true
	if actor != "" {
		r.Use(func(c *gin.Context) {
			c.Set(util.ContextKeyUserID, actor)
			c.Next()
		})
	}
	controller.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func perform(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
