package domain

// Pagination carries paging params for list endpoints.
type Pagination struct {
	Limit int `json:"limit"`
	Total int `json:"total,omitempty"`
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
