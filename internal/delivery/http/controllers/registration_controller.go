package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// RegistrationController serves the /api/registrations resource. A successful
// create triggers a best-effort confirmation email to the participant.
type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.CRUDService[*domain.Registration]
}

func NewRegistrationController(logger *slog.Logger, svc domain.CRUDService[*domain.Registration]) *RegistrationController {
	return &RegistrationController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List registrations
// @Tags registrations
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/registrations [get]
func (c *RegistrationController) List(w http.ResponseWriter, r *http.Request) {
	registrations, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, registrations)
}

// Get godoc
// @Summary Get a registration by ID
// @Tags registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/registrations/{id} [get]
func (c *RegistrationController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	registration, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, registration)
}

// Create godoc
// @Summary Create a registration
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body domain.Registration true "Registration data"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /api/registrations [post]
func (c *RegistrationController) Create(w http.ResponseWriter, r *http.Request) {
	registration := &domain.Registration{}
	if !helpers.DecodeJSON(w, r, registration) {
		return
	}
	if err := c.Service.Create(r.Context(), registration); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/registrations/%d", registration.ID))
	helpers.WriteJSONSuccess(w, http.StatusCreated, registration)
}

// Update godoc
// @Summary Update a registration
// @Tags registrations
// @Accept json
// @Param id path int true "Registration ID"
// @Param registration body domain.Registration true "Registration data (id must match the path)"
// @Success 204 "no content"
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/registrations/{id} [put]
func (c *RegistrationController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	registration := &domain.Registration{}
	if !helpers.DecodeJSON(w, r, registration) {
		return
	}
	if err := c.Service.Update(r.Context(), id, registration); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Soft-delete a registration
// @Tags registrations
// @Param id path int true "Registration ID"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse
// @Router /api/registrations/{id} [delete]
func (c *RegistrationController) Delete(w http.ResponseWriter, r *http.Request) {
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
