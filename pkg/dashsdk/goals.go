package dashsdk

import (
	"context"
	"net/http"
	"net/url"
)

// GetGoals fetches the operational targets for a location. A location with
// no saved goals yet returns a zero-valued record.
func (s *Session) GetGoals(ctx context.Context, locationID string) (Goals, error) {
	q := url.Values{}
	q.Set("locationId", locationID)

	var data GoalsData
	err := s.doAuth(ctx, http.MethodGet, "/api/goals?"+q.Encode(), nil, &data)
	return data.Goals, err
}

// SaveGoals upserts the full goals record for a location.
func (s *Session) SaveGoals(ctx context.Context, req GoalsRequest) (Goals, error) {
	var data GoalsData
	err := s.doAuth(ctx, http.MethodPut, "/api/goals", req, &data)
	return data.Goals, err
}
