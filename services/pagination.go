package services

// PageRequest carries 1-based pagination and sorting parameters.
type PageRequest struct {
	Page      int    `json:"page"`
	Size      int    `json:"size"`
	SortField string `json:"sort_field"`
	Direction string `json:"direction"` // "asc" or "desc"
}

func DefaultPageRequest() PageRequest {
	return PageRequest{Page: 1, Size: 10, SortField: "id", Direction: "asc"}
}

func (r PageRequest) offset() int {
	page := r.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * r.limit()
}

func (r PageRequest) limit() int {
	if r.Size < 1 {
		return 10
	}
	return r.Size
}

// sortableFields whitelists column names accepted from the boundary.
var sortableFields = map[string]bool{
	"id":         true,
	"user_name":  true,
	"email":      true,
	"role":       true,
	"created_at": true,
	"updated_at": true,
}

func (r PageRequest) order() string {
	field := r.SortField
	if !sortableFields[field] {
		field = "id"
	}
	dir := "asc"
	if r.Direction == "desc" {
		dir = "desc"
	}
	return field + " " + dir
}

// PageResult is one page of results plus the counts the boundary needs to
// render pagination controls.
type PageResult[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"total_pages"`
	TotalElements int64 `json:"total_elements"`
	Size          int   `json:"size"`
	Page          int   `json:"page"`
	Empty         bool  `json:"empty"`
}

func newPageResult[T any](content []T, total int64, req PageRequest) PageResult[T] {
	limit := req.limit()
	pages := int((total + int64(limit) - 1) / int64(limit))
	page := req.Page
	if page < 1 {
		page = 1
	}
	return PageResult[T]{
		Content:       content,
		TotalPages:    pages,
		TotalElements: total,
		Size:          limit,
		Page:          page,
		Empty:         len(content) == 0,
	}
}
