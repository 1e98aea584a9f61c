package http

import (
	"encoding/json"
	"net/http"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/service"
	"github.com/tikkaspice/opsboard/pkg/dashsdk"
	"github.com/tikkaspice/opsboard/pkg/httpx"
	"github.com/tikkaspice/opsboard/pkg/idx"
)

func toGoalsPayload(g domain.Goals) dashsdk.Goals {
	return dashsdk.Goals{
		LocationID:    g.LocationID.String(),
		SalesGoal:     g.SalesGoal,
		LaborCostGoal: g.LaborCostGoal,
		HoursGoal:     g.HoursGoal,
		SPMHGoal:      g.SPMHGoal,
		FoodCostGoal:  g.FoodCostGoal,
		UpdatedAt:     g.UpdatedAt,
	}
}

type GoalsGetHandler struct {
	GoalsService *service.GoalsService
}

// ServeHTTP godoc
//
//	@Summary		Get Goals
//	@Description	Operational targets for one location. A location with no saved
//	@Description	goals returns a zero-valued record, not a 404.
//	@Tags			Goals
//	@Produce		json
//	@Param			locationId	query		string	true	"Location ID"
//	@Success		200			{object}	httpx.Envelope{data=dashsdk.GoalsData}
//	@Failure		400			{object}	httpx.Envelope
//	@Failure		404			{object}	httpx.Envelope
//	@Security		BearerAuth
//	@Router			/api/goals [get].
func (h *GoalsGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	locationID, err := idx.Parse(r.URL.Query().Get("locationId"))
	if err != nil {
		httpx.WriteValidationError(w, []httpx.FieldError{
			{Path: "locationId", Message: "Location ID is required"},
		})
		return
	}

	goals, err := h.GoalsService.GetForLocation(r.Context(), locationID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Goals retrieved", dashsdk.GoalsData{
		Goals: toGoalsPayload(goals),
	})
}

type GoalsSaveHandler struct {
	GoalsService *service.GoalsService
}

// ServeHTTP godoc
//
//	@Summary		Save Goals
//	@Description	Upserts the full goals record for a location in one atomic
//	@Description	statement.
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.GoalsRequest	true	"Goal values"
//	@Success		200		{object}	httpx.Envelope{data=dashsdk.GoalsData}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		404		{object}	httpx.Envelope
//	@Security		BearerAuth
//	@Router			/api/goals [put].
func (h *GoalsSaveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dashsdk.GoalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	locationID, err := idx.Parse(req.LocationID)
	if err != nil {
		httpx.WriteValidationError(w, []httpx.FieldError{
			{Path: "locationId", Message: "Location ID is required"},
		})
		return
	}

	goals, err := h.GoalsService.Save(r.Context(), locationID, service.GoalsInput{
		SalesGoal:     req.SalesGoal,
		LaborCostGoal: req.LaborCostGoal,
		HoursGoal:     req.HoursGoal,
		SPMHGoal:      req.SPMHGoal,
		FoodCostGoal:  req.FoodCostGoal,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Goals saved", dashsdk.GoalsData{
		Goals: toGoalsPayload(goals),
	})
}
