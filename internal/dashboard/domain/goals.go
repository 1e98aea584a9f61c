package domain

import (
	"time"

	"github.com/tikkaspice/opsboard/pkg/idx"
)

// Goals holds the operational targets for one location: weekly sales and
// hours targets, labor and food cost percentages, and sales-per-man-hour.
// Goals rows reference locations by ID only, with no enforced foreign key,
// so a row can outlive its location until housekeeping removes it.
type Goals struct {
	LocationID    idx.ID
	SalesGoal     float64
	LaborCostGoal float64
	HoursGoal     float64
	SPMHGoal      float64
	FoodCostGoal  float64
	UpdatedAt     time.Time
}
