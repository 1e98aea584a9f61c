package paging

// Controller holds the mutable pagination state for one list view. It exists
// so every search-and-paginate view shares the same behaviour: page requests
// are clamped lazily at view time, and any change to the filter predicate
// resets the view to page 1.
type Controller struct {
	pageSize  int
	requested int
	filterKey string
}

// NewController creates per-view pagination state starting at page 1.
func NewController(pageSize int) *Controller {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Controller{pageSize: pageSize, requested: 1}
}

// SetPage records a page request. Out-of-range values are kept as-is and
// clamped when the view is computed, so a shrinking collection self-corrects.
func (c *Controller) SetPage(page int) { c.requested = page }

// SetFilter records the current filter/search predicate key. Whenever the
// key changes the view resets to page 1.
func (c *Controller) SetFilter(key string) {
	if key != c.filterKey {
		c.filterKey = key
		c.requested = 1
	}
}

// PageSize returns the configured page size.
func (c *Controller) PageSize() int { return c.pageSize }

// View computes the current pagination state and visible slice for items.
func View[T any](c *Controller, items []T) (Pages, []T) {
	pages := Compute(len(items), c.pageSize, c.requested)
	return pages, SlicePage(items, c.pageSize, c.requested)
}
