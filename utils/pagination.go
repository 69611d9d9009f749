package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPaginationParams extracts pagination parameters from the request
func GetPaginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPaginationLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxPaginationLimit {
		limit = DefaultPaginationLimit
	}

	return page, limit
}
