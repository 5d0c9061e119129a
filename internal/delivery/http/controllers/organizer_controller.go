package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// OrganizerController serves the /api/organizers resource. Mutations require
// a bearer token; the gate lives in the router wiring.
type OrganizerController struct {
	Logger  *slog.Logger
	Service domain.CRUDService[*domain.Organizer]
}

func NewOrganizerController(logger *slog.Logger, svc domain.CRUDService[*domain.Organizer]) *OrganizerController {
	return &OrganizerController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List organizers
// @Tags organizers
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/organizers [get]
func (c *OrganizerController) List(w http.ResponseWriter, r *http.Request) {
	organizers, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, organizers)
}

// Get godoc
// @Summary Get an organizer by ID
// @Tags organizers
// @Produce json
// @Param id path int true "Organizer ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/organizers/{id} [get]
func (c *OrganizerController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	organizer, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, organizer)
}

// Create godoc
// @Summary Create an organizer
// @Tags organizers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param organizer body domain.Organizer true "Organizer data; contact must match (99)99999-9999"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Router /api/organizers [post]
func (c *OrganizerController) Create(w http.ResponseWriter, r *http.Request) {
	organizer := &domain.Organizer{}
	if !helpers.DecodeJSON(w, r, organizer) {
		return
	}
	if err := c.Service.Create(r.Context(), organizer); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/organizers/%d", organizer.ID))
	helpers.WriteJSONSuccess(w, http.StatusCreated, organizer)
}

// Update godoc
// @Summary Update an organizer
// @Tags organizers
// @Accept json
// @Security BearerAuth
// @Param id path int true "Organizer ID"
// @Param organizer body domain.Organizer true "Organizer data (id must match the path)"
// @Success 204 "no content"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/organizers/{id} [put]
func (c *OrganizerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	organizer := &domain.Organizer{}
	if !helpers.DecodeJSON(w, r, organizer) {
		return
	}
	if err := c.Service.Update(r.Context(), id, organizer); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Soft-delete an organizer
// @Tags organizers
// @Security BearerAuth
// @Param id path int true "Organizer ID"
// @Success 204 "no content"
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/organizers/{id} [delete]
func (c *OrganizerController) Delete(w http.ResponseWriter, r *http.Request) {
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
