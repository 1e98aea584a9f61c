package dashsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListLocations fetches one page of the roster.
func (s *Session) ListLocations(ctx context.Context, page, limit int64) (LocationListData, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("limit", fmt.Sprintf("%d", limit))

	var data LocationListData
	err := s.doAuth(ctx, http.MethodGet, "/api/locations?"+q.Encode(), nil, &data)
	return data, err
}

// GetLocation fetches a single location by ID.
func (s *Session) GetLocation(ctx context.Context, id string) (Location, error) {
	var data LocationData
	err := s.doAuth(ctx, http.MethodGet, "/api/locations/"+url.PathEscape(id), nil, &data)
	return data.Location, err
}

// CreateLocation adds a location to the roster.
func (s *Session) CreateLocation(ctx context.Context, req LocationRequest) (Location, error) {
	var data LocationData
	err := s.doAuth(ctx, http.MethodPost, "/api/locations", req, &data)
	return data.Location, err
}

// UpdateLocation rewrites a location's fields.
func (s *Session) UpdateLocation(ctx context.Context, id string, req LocationRequest) (Location, error) {
	var data LocationData
	err := s.doAuth(ctx, http.MethodPut, "/api/locations/"+url.PathEscape(id), req, &data)
	return data.Location, err
}

// DeleteLocation removes a location.
func (s *Session) DeleteLocation(ctx context.Context, id string) error {
	return s.doAuth(ctx, http.MethodDelete, "/api/locations/"+url.PathEscape(id), nil, nil)
}
