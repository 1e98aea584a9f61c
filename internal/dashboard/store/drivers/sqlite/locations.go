package sqlite

import (
	"context"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/store"
	"github.com/tikkaspice/opsboard/pkg/idx"
)

type locationsRepo struct {
	db dbtx
}

const locationColumns = `id, name, address, pos_location_id, created_at, updated_at`

func (r *locationsRepo) List(ctx context.Context, limit, offset int64) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+locationColumns+` FROM locations
		ORDER BY name, id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

func (r *locationsRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations`).Scan(&n)
	return n, err
}

func (r *locationsRepo) Get(ctx context.Context, id idx.ID) (domain.Location, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = ?`, id.String())
	return scanLocation(row)
}

func (r *locationsRepo) Create(ctx context.Context, loc domain.Location) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO locations (id, name, address, pos_location_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		loc.ID.String(), loc.Name, loc.Address, loc.PosLocationID,
		loc.CreatedAt, loc.UpdatedAt)
	return mapConstraint(err)
}

func (r *locationsRepo) Update(ctx context.Context, loc domain.Location) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE locations
		SET name = ?, address = ?, pos_location_id = ?, updated_at = ?
		WHERE id = ?`,
		loc.Name, loc.Address, loc.PosLocationID, loc.UpdatedAt, loc.ID.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *locationsRepo) Delete(ctx context.Context, id idx.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanLocation(row rowScanner) (domain.Location, error) {
	var (
		loc domain.Location
		id  string
	)
	err := row.Scan(&id, &loc.Name, &loc.Address, &loc.PosLocationID,
		&loc.CreatedAt, &loc.UpdatedAt)
	if err != nil {
		return domain.Location{}, mapNotFound(err)
	}
	loc.ID = idx.ID(id)
	return loc, nil
}
