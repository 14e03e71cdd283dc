package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"oficina/internal/shared/constants"
)

type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size from the query string. Invalid
// or missing values fall back to defaults, page is capped at
// constants.MaxPage and page_size at maxPageSize.
func ParsePagination(c *gin.Context, defaultPageSize, maxPageSize int) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	if page > constants.MaxPage {
		page = constants.MaxPage
	}
	pageSize := parseQueryInt(c, "page_size", defaultPageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// ParseQueryInt returns the positive integer query value for key or def.
func ParseQueryInt(c *gin.Context, key string, def int) int {
	return parseQueryInt(c, key, def)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// ApplyPagination calculates slice indices for in-memory pagination.
// Pages past the end yield an empty range.
func ApplyPagination(total, page, pageSize int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || page-1 > total/pageSize {
		return total, total
	}
	start = (page - 1) * pageSize
	end = start + pageSize

	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return start, end
}

func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
