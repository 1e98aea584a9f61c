package service

import (
	"context"
	"errors"
	"time"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/store"
	"github.com/tikkaspice/opsboard/pkg/idx"
)

// GoalsService manages per-location operational targets.
type GoalsService struct {
	Store store.Store
}

// GetForLocation returns the goals for a location. A location with no saved
// goals yet gets a zero-valued record rather than an error.
func (s *GoalsService) GetForLocation(ctx context.Context, locationID idx.ID) (domain.Goals, error) {
	if _, err := s.Store.Locations().Get(ctx, locationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Goals{}, ErrLocationNotFound
		}
		return domain.Goals{}, err
	}

	goals, err := s.Store.Goals().GetByLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Goals{LocationID: locationID}, nil
		}
		return domain.Goals{}, err
	}
	return goals, nil
}

// GoalsInput carries the writable target values.
type GoalsInput struct {
	SalesGoal     float64
	LaborCostGoal float64
	HoursGoal     float64
	SPMHGoal      float64
	FoodCostGoal  float64
}

func (in GoalsInput) validate() error {
	fields := []struct {
		path  string
		value float64
	}{
		{"salesGoal", in.SalesGoal},
		{"laborCostGoal", in.LaborCostGoal},
		{"hoursGoal", in.HoursGoal},
		{"spmhGoal", in.SPMHGoal},
		{"foodCostGoal", in.FoodCostGoal},
	}

	var violations []FieldViolation
	for _, f := range fields {
		if f.value < 0 {
			violations = append(violations, FieldViolation{
				Path:    f.path,
				Message: "Must be a non-negative number",
			})
		}
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// Save upserts the goals for a location in a single statement, so concurrent
// saves settle on one writer's complete record.
func (s *GoalsService) Save(ctx context.Context, locationID idx.ID, in GoalsInput) (domain.Goals, error) {
	if err := in.validate(); err != nil {
		return domain.Goals{}, err
	}

	goals := domain.Goals{
		LocationID:    locationID,
		SalesGoal:     in.SalesGoal,
		LaborCostGoal: in.LaborCostGoal,
		HoursGoal:     in.HoursGoal,
		SPMHGoal:      in.SPMHGoal,
		FoodCostGoal:  in.FoodCostGoal,
		UpdatedAt:     time.Now().UTC(),
	}

	// Existence check and upsert share one transaction so a concurrent
	// location delete cannot slip a fresh orphan past the check.
	err := s.Store.WithTx(ctx, func(tx store.Store) error {
		if _, err := tx.Locations().Get(ctx, locationID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrLocationNotFound
			}
			return err
		}
		return tx.Goals().Upsert(ctx, goals)
	})
	if err != nil {
		return domain.Goals{}, err
	}
	return goals, nil
}
