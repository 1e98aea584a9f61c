// Package paging implements the list pagination contract shared by every
// table view in the dashboard: 1-based clamped page state, deterministic
// slicing, and the page-number window rendered by the pagination control.
package paging

// windowSize is the number of page buttons shown around the current page
// before the control falls back to "1 …" / "… N" edges.
const windowSize = 5

// Pages describes the pagination state for one view of a collection.
type Pages struct {
	// TotalItems is the size of the underlying collection.
	TotalItems int

	// PageSize is the configured page size (> 0).
	PageSize int

	// TotalPages is max(1, ceil(TotalItems/PageSize)).
	TotalPages int

	// Page is the displayed page, always clamped into [1, TotalPages].
	// An out-of-range request is silently corrected, never rejected.
	Page int
}

// Compute derives the pagination state for a collection of totalItems
// entries viewed at the requested page. pageSize must be positive; a
// non-positive value is treated as 1 rather than panicking.
func Compute(totalItems, pageSize, requested int) Pages {
	if pageSize < 1 {
		pageSize = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return Pages{
		TotalItems: totalItems,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Page:       clamp(requested, 1, totalPages),
	}
}

// SlicePage returns the visible slice of items for the requested page,
// applying the same clamping as Compute. The last page may be shorter than
// pageSize. The returned slice aliases items.
func SlicePage[T any](items []T, pageSize, requested int) []T {
	p := Compute(len(items), pageSize, requested)

	start := (p.Page - 1) * p.PageSize
	if start >= len(items) {
		return items[:0]
	}
	end := min(start+p.PageSize, len(items))
	return items[start:end]
}

// HasPrev reports whether a "Previous" affordance is enabled.
func (p Pages) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a "Next" affordance is enabled.
func (p Pages) HasNext() bool { return p.Page < p.TotalPages }

// ShowControl reports whether the pagination control should render at all.
// A collection that fits within a single page shows no affordance.
func (p Pages) ShowControl() bool { return p.TotalPages > 1 }

// Item is one element of the rendered page-number strip: either a numbered
// button or an ellipsis separator.
type Item struct {
	// Number is the page this item navigates to; 0 for an ellipsis.
	Number int

	// Ellipsis marks a "…" separator item.
	Ellipsis bool

	// Current marks the displayed page; its button is disabled.
	Current bool
}

// Window returns the page-number items to render. When TotalPages fits the
// window every page number is shown. Otherwise a centered window around the
// current page is shown, with a leading "1 …" and/or trailing "… N" whenever
// the window does not already include the first/last page.
func (p Pages) Window() []Item {
	if p.TotalPages <= windowSize {
		items := make([]Item, 0, p.TotalPages)
		for n := 1; n <= p.TotalPages; n++ {
			items = append(items, Item{Number: n, Current: n == p.Page})
		}
		return items
	}

	start := clamp(p.Page-windowSize/2, 1, p.TotalPages-windowSize+1)
	end := start + windowSize - 1

	items := make([]Item, 0, windowSize+4)
	if start > 1 {
		items = append(items, Item{Number: 1})
		if start > 2 {
			items = append(items, Item{Ellipsis: true})
		}
	}
	for n := start; n <= end; n++ {
		items = append(items, Item{Number: n, Current: n == p.Page})
	}
	if end < p.TotalPages {
		if end < p.TotalPages-1 {
			items = append(items, Item{Ellipsis: true})
		}
		items = append(items, Item{Number: p.TotalPages})
	}
	return items
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
