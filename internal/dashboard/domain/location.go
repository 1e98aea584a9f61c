package domain

import (
	"time"

	"github.com/tikkaspice/opsboard/pkg/idx"
)

// Location is a single restaurant site. PosLocationID is the identifier the
// external point-of-sale system uses for the same site.
type Location struct {
	ID            idx.ID
	Name          string
	Address       string
	PosLocationID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
