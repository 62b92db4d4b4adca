package types

// PaginationResponse represents standardized pagination metadata
type PaginationResponse struct {
	Total       int `json:"total"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	Limit       int `json:"limit"`
}

// ListResponse represents a paginated response with items
type ListResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

// NewPaginationResponse creates a new pagination response.
// totalPages is ceil(total/limit); a zero limit means the query was
// unlimited and everything fits on a single page.
func NewPaginationResponse(total, limit, page int) PaginationResponse {
	totalPages := 1
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PaginationResponse{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
	}
}

// NewListResponse creates a new list response with pagination
func NewListResponse[T any](items []T, total, limit, page int) ListResponse[T] {
	return ListResponse[T]{
		Items:      items,
		Pagination: NewPaginationResponse(total, limit, page),
	}
}
