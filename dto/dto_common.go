package dto

// Pagination accompanies every list response.
type Pagination struct {
	TotalItems  int64 `json:"totalItems"  example:"25"`
	TotalPages  int64 `json:"totalPages"  example:"3"`
	CurrentPage int64 `json:"currentPage" example:"1"`
	Limit       int64 `json:"limit"       example:"10"`
}

// NewPagination computes totalPages = ceil(totalItems / limit).
func NewPagination(totalItems, page, limit int64) Pagination {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return Pagination{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
	}
}
