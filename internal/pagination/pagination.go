// Package pagination slices an ordered candidate set into deterministic pages.
package pagination

// PageInfo carries count metadata for a paginated result.
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns the 1-based page slice [(page-1)*pageSize, page*pageSize)
// of items, intersected with bounds, plus count metadata computed before
// slicing. Page and pageSize are clamped to at least 1. An out-of-range page
// yields an empty slice with TotalCount still populated; it is not an error.
//
// The candidate set must already be deterministically ordered (stable sort
// key such as the identifier) — slicing an unordered set is a correctness bug
// in the caller.
func Paginate[T any](items []T, page, pageSize int) ([]T, PageInfo) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	info := PageInfo{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []T{}, info
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return items[start:end], info
}
