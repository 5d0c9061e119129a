package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// EventController serves the /api/events resource. Event representations
// embed the sponsor collection, and writes reconcile nested sponsors against
// the store.
type EventController struct {
	Logger  *slog.Logger
	Service domain.CRUDService[*domain.Event]
}

func NewEventController(logger *slog.Logger, svc domain.CRUDService[*domain.Event]) *EventController {
	return &EventController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List events
// @Description Returns all active events with their sponsor collections. Soft-deleted events are excluded.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the event list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Get godoc
// @Summary Get an event by ID
// @Description Returns the active event with its sponsor collection. 404 if absent or soft-deleted.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	event, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Create godoc
// @Summary Create an event
// @Description Creates an event. Nested sponsors with a zero id are inserted as new sponsor rows; sponsors with a non-zero id are linked as-is. Everything commits as one unit.
// @Tags events
// @Accept json
// @Produce json
// @Param event body domain.Event true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	event := &domain.Event{}
	if !helpers.DecodeJSON(w, r, event) {
		return
	}
	if err := c.Service.Create(r.Context(), event); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/events/%d", event.ID))
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update an event
// @Description Replaces the event's mutable fields. A non-empty sponsor list replaces the association set; an empty list leaves it untouched.
// @Tags events
// @Accept json
// @Param id path int true "Event ID"
// @Param event body domain.Event true "Event data (id must match the path)"
// @Success 204 "no content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (id mismatch or validation failure)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	event := &domain.Event{}
	if !helpers.DecodeJSON(w, r, event) {
		return
	}
	if err := c.Service.Update(r.Context(), id, event); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Soft-delete an event
// @Description Marks the event as deleted; the row is retained and excluded from all reads.
// @Tags events
// @Param id path int true "Event ID"
// @Success 204 "no content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
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
