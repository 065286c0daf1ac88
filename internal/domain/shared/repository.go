package shared

// Filter represents query filter options shared by all list operations
type Filter struct {
	Page     int
	Limit    int
	OrderBy  string
	OrderDir string
	Search   string
}

// MaxPageSize caps the number of rows a single page may return
const MaxPageSize = 100

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:  1,
		Limit: 10,
	}
}

// Normalize clamps the filter to sane pagination values
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
}

// Offset returns the row offset for the current page
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// PageMeta is the pagination envelope shared by every list endpoint
type PageMeta struct {
	TotalItems   int64 `json:"total_items"`
	ItemCount    int   `json:"item_count"`
	ItemsPerPage int   `json:"items_per_page"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
}

// Page represents one page of results plus its pagination metadata
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// NewPage assembles a page from the returned items and the total row count
func NewPage[T any](items []T, total int64, page, limit int) Page[T] {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	return Page[T]{
		Items: items,
		Meta: PageMeta{
			TotalItems:   total,
			ItemCount:    len(items),
			ItemsPerPage: limit,
			TotalPages:   totalPages,
			CurrentPage:  page,
		},
	}
}
