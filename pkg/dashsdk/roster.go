package dashsdk

import (
	"strings"

	"github.com/tikkaspice/opsboard/pkg/paging"
)

// RosterView is the client-side model behind the locations table: the full
// roster held in memory, a case-insensitive search box, and shared paging
// state. Changing the search query resets the view to page 1.
type RosterView struct {
	locations []Location
	query     string
	pager     *paging.Controller
}

// NewRosterView creates an empty roster view with the given page size.
func NewRosterView(pageSize int) *RosterView {
	return &RosterView{pager: paging.NewController(pageSize)}
}

// SetLocations replaces the backing roster, typically after ListLocations.
func (v *RosterView) SetLocations(locations []Location) {
	v.locations = locations
}

// SetQuery updates the search box contents.
func (v *RosterView) SetQuery(query string) {
	v.query = strings.TrimSpace(query)
	v.pager.SetFilter(strings.ToLower(v.query))
}

// SetPage requests a page; out-of-range values are clamped at view time.
func (v *RosterView) SetPage(page int) {
	v.pager.SetPage(page)
}

// Visible returns the pagination state and the rows for the current page,
// after applying the search filter across name and address.
func (v *RosterView) Visible() (paging.Pages, []Location) {
	return paging.View(v.pager, v.filtered())
}

func (v *RosterView) filtered() []Location {
	if v.query == "" {
		return v.locations
	}

	needle := strings.ToLower(v.query)
	var out []Location
	for _, loc := range v.locations {
		if strings.Contains(strings.ToLower(loc.Name), needle) ||
			strings.Contains(strings.ToLower(loc.Address), needle) {
			out = append(out, loc)
		}
	}
	return out
}
