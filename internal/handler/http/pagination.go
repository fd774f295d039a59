package http

import "github.com/boxline/boxline-backend-go/internal/handler/http/response"

// paginationMeta mirrors the service-side defaults so the meta block
// reflects the page actually served.
func paginationMeta(page, limit int, total int64) *response.Meta {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
