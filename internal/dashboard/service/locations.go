package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/store"
	"github.com/tikkaspice/opsboard/pkg/idx"
)

var ErrLocationNotFound = errors.New("location_not_found")

// FieldViolation reports one invalid input field.
type FieldViolation struct {
	Path    string
	Message string
}

// ValidationError aggregates field violations so handlers can render a 400
// envelope with each offending field.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string { return "validation failed" }

// LocationService manages the restaurant location roster.
type LocationService struct {
	Store store.Store
}

// LocationPage is one page of the roster plus the totals the pagination
// control is built from.
type LocationPage struct {
	Locations  []domain.Location
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// List returns one page of locations ordered by name. page is 1-based and
// out-of-range pages clamp rather than error.
func (s *LocationService) List(ctx context.Context, page, limit int64) (LocationPage, error) {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}

	total, err := s.Store.Locations().Count(ctx)
	if err != nil {
		return LocationPage{}, err
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	locations, err := s.Store.Locations().List(ctx, limit, (page-1)*limit)
	if err != nil {
		return LocationPage{}, err
	}

	return LocationPage{
		Locations:  locations,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *LocationService) Get(ctx context.Context, id idx.ID) (domain.Location, error) {
	loc, err := s.Store.Locations().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Location{}, ErrLocationNotFound
		}
		return domain.Location{}, err
	}
	return loc, nil
}

// LocationInput carries the writable fields for a create or update.
type LocationInput struct {
	Name          string
	Address       string
	PosLocationID string
}

func (in *LocationInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.PosLocationID = strings.TrimSpace(in.PosLocationID)

	var violations []FieldViolation
	if in.Name == "" {
		violations = append(violations, FieldViolation{Path: "name", Message: "Name is required"})
	}
	if in.Address == "" {
		violations = append(violations, FieldViolation{Path: "address", Message: "Address is required"})
	}
	if in.PosLocationID == "" {
		violations = append(violations, FieldViolation{Path: "posLocationId", Message: "POS location ID is required"})
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func (s *LocationService) Create(ctx context.Context, in LocationInput) (domain.Location, error) {
	if err := in.validate(); err != nil {
		return domain.Location{}, err
	}

	now := time.Now().UTC()
	loc := domain.Location{
		ID:            idx.New(),
		Name:          in.Name,
		Address:       in.Address,
		PosLocationID: in.PosLocationID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Store.Locations().Create(ctx, loc); err != nil {
		return domain.Location{}, err
	}
	return loc, nil
}

func (s *LocationService) Update(ctx context.Context, id idx.ID, in LocationInput) (domain.Location, error) {
	if err := in.validate(); err != nil {
		return domain.Location{}, err
	}

	// Read-modify-write under one transaction so two concurrent updates
	// cannot interleave their field writes.
	var loc domain.Location
	err := s.Store.WithTx(ctx, func(tx store.Store) error {
		var err error
		loc, err = tx.Locations().Get(ctx, id)
		if err != nil {
			return err
		}

		loc.Name = in.Name
		loc.Address = in.Address
		loc.PosLocationID = in.PosLocationID
		loc.UpdatedAt = time.Now().UTC()
		return tx.Locations().Update(ctx, loc)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Location{}, ErrLocationNotFound
		}
		return domain.Location{}, err
	}
	return loc, nil
}

// Delete removes a location. Its goals row, if present, is left behind for
// the housekeeping sweep.
func (s *LocationService) Delete(ctx context.Context, id idx.ID) error {
	if err := s.Store.Locations().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLocationNotFound
		}
		return err
	}
	return nil
}
