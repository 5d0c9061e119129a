package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// VenueController serves the /api/venues resource.
type VenueController struct {
	Logger  *slog.Logger
	Service domain.CRUDService[*domain.Venue]
}

func NewVenueController(logger *slog.Logger, svc domain.CRUDService[*domain.Venue]) *VenueController {
	return &VenueController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List venues
// @Tags venues
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/venues [get]
func (c *VenueController) List(w http.ResponseWriter, r *http.Request) {
	venues, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venues)
}

// Get godoc
// @Summary Get a venue by ID
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/venues/{id} [get]
func (c *VenueController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	venue, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}

// Create godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body domain.Venue true "Venue data"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /api/venues [post]
func (c *VenueController) Create(w http.ResponseWriter, r *http.Request) {
	venue := &domain.Venue{}
	if !helpers.DecodeJSON(w, r, venue) {
		return
	}
	if err := c.Service.Create(r.Context(), venue); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/venues/%d", venue.ID))
	helpers.WriteJSONSuccess(w, http.StatusCreated, venue)
}

// Update godoc
// @Summary Update a venue
// @Tags venues
// @Accept json
// @Param id path int true "Venue ID"
// @Param venue body domain.Venue true "Venue data (id must match the path)"
// @Success 204 "no content"
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/venues/{id} [put]
func (c *VenueController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	venue := &domain.Venue{}
	if !helpers.DecodeJSON(w, r, venue) {
		return
	}
	if err := c.Service.Update(r.Context(), id, venue); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Soft-delete a venue
// @Tags venues
// @Param id path int true "Venue ID"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse
// @Router /api/venues/{id} [delete]
func (c *VenueController) Delete(w http.ResponseWriter, r *http.Request) {
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
