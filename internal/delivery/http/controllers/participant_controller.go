package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// ParticipantController serves the /api/participants resource.
type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.CRUDService[*domain.Participant]
}

func NewParticipantController(logger *slog.Logger, svc domain.CRUDService[*domain.Participant]) *ParticipantController {
	return &ParticipantController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List participants
// @Tags participants
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/participants [get]
func (c *ParticipantController) List(w http.ResponseWriter, r *http.Request) {
	participants, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participants)
}

// Get godoc
// @Summary Get a participant by ID
// @Tags participants
// @Produce json
// @Param id path int true "Participant ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/participants/{id} [get]
func (c *ParticipantController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	participant, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participant)
}

// Create godoc
// @Summary Create a participant
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body domain.Participant true "Participant data; national_id must match 999.999.999-99"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /api/participants [post]
func (c *ParticipantController) Create(w http.ResponseWriter, r *http.Request) {
	participant := &domain.Participant{}
	if !helpers.DecodeJSON(w, r, participant) {
		return
	}
	if err := c.Service.Create(r.Context(), participant); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/participants/%d", participant.ID))
	helpers.WriteJSONSuccess(w, http.StatusCreated, participant)
}

// Update godoc
// @Summary Update a participant
// @Tags participants
// @Accept json
// @Param id path int true "Participant ID"
// @Param participant body domain.Participant true "Participant data (id must match the path)"
// @Success 204 "no content"
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/participants/{id} [put]
func (c *ParticipantController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	participant := &domain.Participant{}
	if !helpers.DecodeJSON(w, r, participant) {
		return
	}
	if err := c.Service.Update(r.Context(), id, participant); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Soft-delete a participant
// @Tags participants
// @Param id path int true "Participant ID"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse
// @Router /api/participants/{id} [delete]
func (c *ParticipantController) Delete(w http.ResponseWriter, r *http.Request) {
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
