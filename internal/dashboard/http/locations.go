package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/service"
	"github.com/tikkaspice/opsboard/pkg/dashsdk"
	"github.com/tikkaspice/opsboard/pkg/httpx"
	"github.com/tikkaspice/opsboard/pkg/idx"
	"github.com/tikkaspice/opsboard/pkg/slogx"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

func toLocationPayload(loc domain.Location) dashsdk.Location {
	return dashsdk.Location{
		ID:            loc.ID.String(),
		Name:          loc.Name,
		Address:       loc.Address,
		PosLocationID: loc.PosLocationID,
		CreatedAt:     loc.CreatedAt,
		UpdatedAt:     loc.UpdatedAt,
	}
}

// writeServiceError maps the shared service sentinels; handler-specific
// sentinels are handled before calling this.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]httpx.FieldError, len(verr.Violations))
		for i, v := range verr.Violations {
			fields[i] = httpx.FieldError{Path: v.Path, Message: v.Message}
		}
		httpx.WriteValidationError(w, fields)
	case errors.Is(err, service.ErrLocationNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Location not found")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func pathID(r *http.Request) (idx.ID, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	return id, err == nil
}

type LocationListHandler struct {
	LocationService *service.LocationService
}

// ServeHTTP godoc
//
//	@Summary		List Locations
//	@Description	One page of the location roster ordered by name. Out-of-range
//	@Description	pages clamp to the last page rather than erroring.
//	@Tags			Locations
//	@Produce		json
//	@Param			page	query		int	false	"1-based page"	default(1)
//	@Param			limit	query		int	false	"page size, 1-500"	default(50)
//	@Success		200		{object}	httpx.Envelope{data=dashsdk.LocationListData}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope
//	@Failure		403		{object}	httpx.Envelope
//	@Security		BearerAuth
//	@Router			/api/locations [get].
func (h *LocationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(r, "page", 1)
	if !ok || page < 1 {
		httpx.WriteValidationError(w, []httpx.FieldError{
			{Path: "page", Message: "Must be a positive integer"},
		})
		return
	}
	limit, ok := queryInt(r, "limit", defaultPageLimit)
	if !ok || limit < 1 || limit > maxPageLimit {
		httpx.WriteValidationError(w, []httpx.FieldError{
			{Path: "limit", Message: "Must be between 1 and 500"},
		})
		return
	}

	result, err := h.LocationService.List(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	locations := make([]dashsdk.Location, 0, len(result.Locations))
	for _, loc := range result.Locations {
		locations = append(locations, toLocationPayload(loc))
	}

	httpx.WriteSuccess(w, http.StatusOK, "Locations retrieved", dashsdk.LocationListData{
		Locations:  locations,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

func queryInt(r *http.Request, name string, def int64) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type LocationGetHandler struct {
	LocationService *service.LocationService
}

// ServeHTTP godoc
//
//	@Summary		Get Location
//	@Tags			Locations
//	@Produce		json
//	@Param			id	path		string	true	"Location ID"
//	@Success		200	{object}	httpx.Envelope{data=dashsdk.LocationData}
//	@Failure		404	{object}	httpx.Envelope
//	@Security		BearerAuth
//	@Router			/api/locations/{id} [get].
func (h *LocationGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Location not found")
		return
	}

	loc, err := h.LocationService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Location retrieved", dashsdk.LocationData{
		Location: toLocationPayload(loc),
	})
}

type LocationCreateHandler struct {
	LocationService *service.LocationService
}

// ServeHTTP godoc
//
//	@Summary		Create Location
//	@Tags			Locations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.LocationRequest	true	"Location fields"
//	@Success		201		{object}	httpx.Envelope{data=dashsdk.LocationData}
//	@Failure		400		{object}	httpx.Envelope
//	@Security		BearerAuth
//	@Router			/api/locations [post].
func (h *LocationCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dashsdk.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	loc, err := h.LocationService.Create(r.Context(), service.LocationInput{
		Name:          req.Name,
		Address:       req.Address,
		PosLocationID: req.PosLocationID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, "Location created", dashsdk.LocationData{
		Location: toLocationPayload(loc),
	})
}

type LocationUpdateHandler struct {
	LocationService *service.LocationService
}

// ServeHTTP godoc
//
//	@Summary		Update Location
//	@Tags			Locations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Location ID"
//	@Param			request	body		dashsdk.LocationRequest	true	"Location fields"
//	@Success		200		{object}	httpx.Envelope{data=dashsdk.LocationData}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		404		{object}	httpx.Envelope
//	@Security		BearerAuth
//	@Router			/api/locations/{id} [put].
func (h *LocationUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Location not found")
		return
	}

	var req dashsdk.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	loc, err := h.LocationService.Update(r.Context(), id, service.LocationInput{
		Name:          req.Name,
		Address:       req.Address,
		PosLocationID: req.PosLocationID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Location updated", dashsdk.LocationData{
		Location: toLocationPayload(loc),
	})
}

type LocationDeleteHandler struct {
	LocationService *service.LocationService
}

// ServeHTTP godoc
//
//	@Summary		Delete Location
//	@Description	Removes a location. Any goals row for it is swept later by
//	@Description	the housekeeping job.
//	@Tags			Locations
//	@Produce		json
//	@Param			id	path		string	true	"Location ID"
//	@Success		200	{object}	httpx.Envelope
//	@Failure		404	{object}	httpx.Envelope
//	@Security		BearerAuth
//	@Router			/api/locations/{id} [delete].
func (h *LocationDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Location not found")
		return
	}

	if err := h.LocationService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Location deleted", nil)
}
