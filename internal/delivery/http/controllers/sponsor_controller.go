package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// SponsorController serves the /api/sponsors resource. Mutations require a
// bearer token; the gate lives in the router wiring. Sponsors can also be
// created implicitly through nested event payloads.
type SponsorController struct {
	Logger  *slog.Logger
	Service domain.CRUDService[*domain.Sponsor]
}

func NewSponsorController(logger *slog.Logger, svc domain.CRUDService[*domain.Sponsor]) *SponsorController {
	return &SponsorController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List sponsors
// @Tags sponsors
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/sponsors [get]
func (c *SponsorController) List(w http.ResponseWriter, r *http.Request) {
	sponsors, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sponsors)
}

// Get godoc
// @Summary Get a sponsor by ID
// @Tags sponsors
// @Produce json
// @Param id path int true "Sponsor ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/sponsors/{id} [get]
func (c *SponsorController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	sponsor, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sponsor)
}

// Create godoc
// @Summary Create a sponsor
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sponsor body domain.Sponsor true "Sponsor data; contact must match (99)99999-9999"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Router /api/sponsors [post]
func (c *SponsorController) Create(w http.ResponseWriter, r *http.Request) {
	sponsor := &domain.Sponsor{}
	if !helpers.DecodeJSON(w, r, sponsor) {
		return
	}
	if err := c.Service.Create(r.Context(), sponsor); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/sponsors/%d", sponsor.ID))
	helpers.WriteJSONSuccess(w, http.StatusCreated, sponsor)
}

// Update godoc
// @Summary Update a sponsor
// @Tags sponsors
// @Accept json
// @Security BearerAuth
// @Param id path int true "Sponsor ID"
// @Param sponsor body domain.Sponsor true "Sponsor data (id must match the path)"
// @Success 204 "no content"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/sponsors/{id} [put]
func (c *SponsorController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	sponsor := &domain.Sponsor{}
	if !helpers.DecodeJSON(w, r, sponsor) {
		return
	}
	if err := c.Service.Update(r.Context(), id, sponsor); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Soft-delete a sponsor
// @Tags sponsors
// @Security BearerAuth
// @Param id path int true "Sponsor ID"
// @Success 204 "no content"
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/sponsors/{id} [delete]
func (c *SponsorController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	if err := c.Service.SoftDelete(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
