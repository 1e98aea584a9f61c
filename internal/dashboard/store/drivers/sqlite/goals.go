package sqlite

import (
	"context"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/pkg/idx"
)

type goalsRepo struct {
	db dbtx
}

func (r *goalsRepo) GetByLocation(ctx context.Context, locationID idx.ID) (domain.Goals, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT location_id, sales_goal, labor_cost_goal, hours_goal,
		       spmh_goal, food_cost_goal, updated_at
		FROM goals WHERE location_id = ?`, locationID.String())

	var (
		g  domain.Goals
		id string
	)
	err := row.Scan(&id, &g.SalesGoal, &g.LaborCostGoal, &g.HoursGoal,
		&g.SPMHGoal, &g.FoodCostGoal, &g.UpdatedAt)
	if err != nil {
		return domain.Goals{}, mapNotFound(err)
	}
	g.LocationID = idx.ID(id)
	return g, nil
}

func (r *goalsRepo) Upsert(ctx context.Context, goals domain.Goals) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO goals (location_id, sales_goal, labor_cost_goal, hours_goal,
		                   spmh_goal, food_cost_goal, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (location_id) DO UPDATE SET
			sales_goal = excluded.sales_goal,
			labor_cost_goal = excluded.labor_cost_goal,
			hours_goal = excluded.hours_goal,
			spmh_goal = excluded.spmh_goal,
			food_cost_goal = excluded.food_cost_goal,
			updated_at = excluded.updated_at`,
		goals.LocationID.String(), goals.SalesGoal, goals.LaborCostGoal,
		goals.HoursGoal, goals.SPMHGoal, goals.FoodCostGoal, goals.UpdatedAt)
	return err
}

func (r *goalsRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM goals
		WHERE location_id NOT IN (SELECT id FROM locations)`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
