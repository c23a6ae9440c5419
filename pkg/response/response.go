package response

// ErrorResponse is the envelope for every failed request. Details is only
// populated for validation failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Paginated wraps a page of results together with the paging arithmetic the
// clients rely on.
type Paginated struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Data       any   `json:"data"`
}
