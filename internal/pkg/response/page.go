package response

// PageResponse is the standard wrapper for list endpoints.
// The reservation API uses the same shape, so it also decodes remote list responses.
type PageResponse[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// NewPageResponse is a helper to quickly create a response
func NewPageResponse[T any](items []T, page, pageSize, total int) PageResponse[T] {
	// Handle empty slice to avoid JSON outputting null
	if items == nil {
		items = make([]T, 0)
	}

	return PageResponse[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
}

// MapPage converts the items of a page while keeping its paging metadata.
func MapPage[T, U any](p PageResponse[T], fn func(T) U) PageResponse[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return NewPageResponse(items, p.Page, p.PageSize, p.Total)
}
