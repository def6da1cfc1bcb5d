// api/util/helper/api_test.go
package helper_util_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	helper_util "github.com/dev-mohitbeniwal/etmf/api/util/helper"
)

func contextWithQuery(query string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/items?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	limit, offset, err := helper_util.GetPaginationParams(contextWithQuery(""))
	require.NoError(t, err)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 0, offset)

	limit, offset, err = helper_util.GetPaginationParams(contextWithQuery("limit=200&offset=40"))
	require.NoError(t, err)
	assert.Equal(t, 200, limit)
	assert.Equal(t, 40, offset)

	for _, query := range []string{"limit=0", "limit=201", "limit=ten", "offset=-1", "offset=x"} {
		_, _, err := helper_util.GetPaginationParams(contextWithQuery(query))
		assert.ErrorIs(t, err, etmf_errors.ErrInvalidPagination, query)
	}
}

func TestParseTime(t *testing.T) {
	ts, err := helper_util.ParseTime("2024-03-15T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC), ts)

	day, err := helper_util.ParseTime("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), day)

	_, err = helper_util.ParseTime("15/03/2024")
	assert.ErrorIs(t, err, etmf_errors.ErrValidation)

	none, err := helper_util.ParseNullableTime("")
	require.NoError(t, err)
	assert.Nil(t, none)
}
