package http

import (
	"net/http"

	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/httpx"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
)

// PlansHandler handles the plan catalog.
type PlansHandler struct {
	PlanService *service.PlanService
}

// HandleList handles GET /v1/plans
//
//	@Summary		List plans
//	@Tags			Plans
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token with records:read scope"
//	@Success		200				{object}	panelsdk.ListPlansResponse	"List of plans"
//	@Failure		401				{object}	panelsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/plans [get].
func (h *PlansHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	plans, err := h.PlanService.ListPlans(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list plans")
		return
	}

	resp := panelsdk.ListPlansResponse{Plans: make([]panelsdk.Plan, 0, len(plans))}
	for _, p := range plans {
		resp.Plans = append(resp.Plans, toPlanDTO(p))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/plans/{id}
//
//	@Summary		Get plan
//	@Tags			Plans
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token with records:read scope"
//	@Param			id				path		string					true	"Plan ID"
//	@Success		200				{object}	panelsdk.Plan			"The plan"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/plans/{id} [get].
func (h *PlansHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.PlanService.GetPlan(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "get plan")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPlanDTO(p))
}

// HandleCreate handles POST /v1/plans
//
//	@Summary		Create plan
//	@Description	Screens below 1 become 1 and validity is clamped to 1..12 months.
//	@Tags			Plans
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with records:write scope"
//	@Param			request			body		panelsdk.PlanRequest				true	"Plan"
//	@Success		201				{object}	panelsdk.Plan						"The created plan"
//	@Failure		400				{object}	panelsdk.ErrorResponse				"error, error_description"
//	@Failure		422				{object}	panelsdk.ValidationErrorResponse	"code, message, details"
//	@Router			/v1/plans [post].
func (h *PlansHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req panelsdk.PlanRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	p, err := h.PlanService.CreatePlan(r.Context(), toPlanInput(req))
	if err != nil {
		writeServiceError(w, r, err, "create plan")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPlanDTO(p))
}

// HandleUpdate handles PUT /v1/plans/{id}
//
//	@Summary		Update plan
//	@Tags			Plans
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string								true	"Bearer token with records:write scope"
//	@Param			id				path		string								true	"Plan ID"
//	@Param			request			body		panelsdk.PlanRequest				true	"Plan"
//	@Success		200				{object}	panelsdk.Plan						"The updated plan"
//	@Failure		404				{object}	panelsdk.ErrorResponse				"error, error_description"
//	@Failure		422				{object}	panelsdk.ValidationErrorResponse	"code, message, details"
//	@Router			/v1/plans/{id} [put].
func (h *PlansHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req panelsdk.PlanRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	p, err := h.PlanService.UpdatePlan(r.Context(), r.PathValue("id"), toPlanInput(req))
	if err != nil {
		writeServiceError(w, r, err, "update plan")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPlanDTO(p))
}

// HandleDelete handles DELETE /v1/plans/{id}
//
//	@Summary		Delete plan
//	@Description	Fails with 409 while a client still uses the plan.
//	@Tags			Plans
//	@Security		BearerAuth
//	@Param			Authorization	header	string	true	"Bearer token with records:delete scope"
//	@Param			id				path	string	true	"Plan ID"
//	@Success		204				"Plan deleted"
//	@Failure		404				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Failure		409				{object}	panelsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/plans/{id} [delete].
func (h *PlansHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PlanService.DeletePlan(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete plan")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
