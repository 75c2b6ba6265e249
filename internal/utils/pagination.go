// internal/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListParams carries the query parameters shared by the list endpoints.
// Pagination is limit/offset based; omitting limit returns the full set,
// which is what the storefront expects for category pages.
type ListParams struct {
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
	Sort     string `json:"sort"`
	Search   string `json:"search"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

const maxListLimit = 100

func GetListParams(c *gin.Context) ListParams {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit < 0 {
		limit = 0
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return ListParams{
		Limit:    limit,
		Offset:   offset,
		Sort:     c.Query("sort"),
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
}

func ApplyLimitOffset(db *gorm.DB, params ListParams) *gorm.DB {
	if params.Limit > 0 {
		db = db.Limit(params.Limit)
		if params.Offset > 0 {
			db = db.Offset(params.Offset)
		}
	}
	return db
}
