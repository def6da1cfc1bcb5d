// api/util/http_util_test.go
package util_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

func TestStatusForKind(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, util.StatusForKind(etmf_errors.ErrNotFound))
	assert.Equal(t, http.StatusConflict, util.StatusForKind(etmf_errors.ErrConflict))
	assert.Equal(t, http.StatusConflict, util.StatusForKind(etmf_errors.ErrInvalidState))
	assert.Equal(t, http.StatusConflict, util.StatusForKind(etmf_errors.ErrOutOfOrder))
	assert.Equal(t, http.StatusBadRequest, util.StatusForKind(etmf_errors.ErrValidation))
	assert.Equal(t, http.StatusBadRequest, util.StatusForKind(etmf_errors.ErrInvalidPagination))
	assert.Equal(t, http.StatusServiceUnavailable, util.StatusForKind(etmf_errors.ErrStorageUnavailable))
	assert.Equal(t, http.StatusGatewayTimeout, util.StatusForKind(etmf_errors.ErrTimeout))
	assert.Equal(t, http.StatusUnauthorized, util.StatusForKind(etmf_errors.ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, util.StatusForKind(etmf_errors.ErrInternalServer))
}

func TestRespondWithServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("KnownKind", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/documents/x", nil)

		util.RespondWithServiceError(c, etmf_errors.ErrDocumentNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.True(t, c.IsAborted())
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "NotFound", body["kind"])
		assert.Equal(t, etmf_errors.ErrDocumentNotFound.Error(), body["error"])
	})

	t.Run("InternalHidesCause", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/trials", nil)

		util.RespondWithServiceError(c, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error","kind":"Internal"}`, w.Body.String())
	})
}

func TestGetUserIDFromContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := util.GetUserIDFromContext(c)
	assert.ErrorIs(t, err, etmf_errors.ErrUnauthorized)

	c.Set(util.ContextKeyUserID, "user-1")
	id, err := util.GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}
