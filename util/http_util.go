// api/util/http_util.go
package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
)

// ContextKeyUserID is where the auth middleware stores the acting user.
const ContextKeyUserID = "requestingUserID"

// ContextKeyRequestID is where the logging middleware stores the request id.
const ContextKeyRequestID = "requestID"

// HeaderRequestID carries the request id in and out of the API.
const HeaderRequestID = "X-Request-ID"

// RequestLogFields labels a log entry with the request id and acting user of c.
func RequestLogFields(c *gin.Context) []zap.Field {
	return logger.RequestFields(c.GetString(ContextKeyRequestID), c.GetString(ContextKeyUserID))
}

func RespondWithError(c *gin.Context, code int, message string, err error) {
	fields := append(RequestLogFields(c),
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	logger.Error(message, fields...)
	c.JSON(code, gin.H{"error": message, "kind": etmf_errors.KindName(etmf_errors.KindOf(err))})
}

// RespondWithServiceError maps an error's kind onto its HTTP status.
func RespondWithServiceError(c *gin.Context, err error) {
	kind := etmf_errors.KindOf(err)
	code := StatusForKind(kind)
	fields := append(RequestLogFields(c),
		zap.Error(err),
		zap.String("kind", etmf_errors.KindName(kind)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	if code >= http.StatusInternalServerError {
		logger.Error("Request failed", fields...)
	} else {
		logger.Warn("Request rejected", fields...)
	}

	message := err.Error()
	if kind == etmf_errors.ErrInternalServer {
		message = "internal server error"
	}
	c.AbortWithStatusJSON(code, gin.H{"error": message, "kind": etmf_errors.KindName(kind)})
}

func StatusForKind(kind error) int {
	switch kind {
	case etmf_errors.ErrNotFound:
		return http.StatusNotFound
	case etmf_errors.ErrConflict, etmf_errors.ErrInvalidState, etmf_errors.ErrOutOfOrder:
		return http.StatusConflict
	case etmf_errors.ErrValidation, etmf_errors.ErrInvalidPagination:
		return http.StatusBadRequest
	case etmf_errors.ErrStorageUnavailable:
		return http.StatusServiceUnavailable
	case etmf_errors.ErrTimeout:
		return http.StatusGatewayTimeout
	case etmf_errors.ErrUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func GetUserIDFromContext(c *gin.Context) (string, error) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", etmf_errors.New(etmf_errors.ErrUnauthorized, "no authenticated user")
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return "", etmf_errors.New(etmf_errors.ErrUnauthorized, "no authenticated user")
	}
	return id, nil
}
