package helper_util

import (
	"strconv"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/gin-gonic/gin"
)

const MaxPageSize = 200

func GetPaginationParams(c *gin.Context) (limit int, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > MaxPageSize {
		return 0, 0, etmf_errors.Newf(etmf_errors.ErrInvalidPagination, "limit must be between 1 and %d", MaxPageSize)
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, etmf_errors.New(etmf_errors.ErrInvalidPagination, "offset must be a non-negative integer")
	}
	return limit, offset, nil
}
