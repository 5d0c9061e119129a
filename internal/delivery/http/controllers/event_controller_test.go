package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCRUDService is a configurable test double for domain.CRUDService.
type fakeCRUDService[T domain.Resource] struct {
	listResult []T
	listErr    error
	getResult  T
	getErr     error
	createErr  error
	createHook func(item T)
	updateErr  error
	deleteErr  error
}

func (f *fakeCRUDService[T]) List(ctx context.Context) ([]T, error) { return f.listResult, f.listErr }
func (f *fakeCRUDService[T]) Get(ctx context.Context, id int) (T, error) {
	return f.getResult, f.getErr
}
func (f *fakeCRUDService[T]) Create(ctx context.Context, item T) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.createHook != nil {
		f.createHook(item)
	}
	return nil
}
func (f *fakeCRUDService[T]) Update(ctx context.Context, id int, item T) error { return f.updateErr }
func (f *fakeCRUDService[T]) SoftDelete(ctx context.Context, id int) error     { return f.deleteErr }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeResponse(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body.Bytes(), &out))
	return out
}

func sampleEvent(id int) *domain.Event {
	return &domain.Event{
		ID:          id,
		Name:        "Tech Summit",
		Description: "Annual summit",
		Date:        time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		Capacity:    500,
		VenueID:     1,
		OrganizerID: 1,
		Sponsors:    []*domain.Sponsor{},
	}
}

func TestEventController_List(t *testing.T) {
	svc := &fakeCRUDService[*domain.Event]{listResult: []*domain.Event{sampleEvent(1)}}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	ctrl.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec.Body)
	data, ok := resp["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
}

func TestEventController_Get(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		svc        *fakeCRUDService[*domain.Event]
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			id:         "1",
			svc:        &fakeCRUDService[*domain.Event]{getResult: sampleEvent(1)},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			id:         "9",
			svc:        &fakeCRUDService[*domain.Event]{getErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "non-numeric id",
			id:         "abc",
			svc:        &fakeCRUDService[*domain.Event]{},
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger(), tt.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/events/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			ctrl.Get(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				resp := decodeResponse(t, rec.Body)
				errObj, ok := resp["error"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, errObj["code"])
			}
		})
	}
}

func TestEventController_Create(t *testing.T) {
	t.Run("success sets location and returns the body", func(t *testing.T) {
		svc := &fakeCRUDService[*domain.Event]{
			createHook: func(e *domain.Event) { e.ID = 42 },
		}
		ctrl := NewEventController(testLogger(), svc)

		body, _ := json.Marshal(sampleEvent(0))
		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/events/42", rec.Header().Get("Location"))
		resp := decodeResponse(t, rec.Body)
		data, ok := resp["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(42), data["id"])
	})

	t.Run("validation failure returns 400 with field messages", func(t *testing.T) {
		svc := &fakeCRUDService[*domain.Event]{
			createErr: &domain.ValidationError{Fields: []string{"name is required"}},
		}
		ctrl := NewEventController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		ctrl.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec.Body)
		errObj := resp["error"].(map[string]any)
		assert.Equal(t, "bad_request", errObj["code"])
		assert.Contains(t, errObj["message"], "name is required")
	})

	t.Run("malformed json returns 400", func(t *testing.T) {
		ctrl := NewEventController(testLogger(), &fakeCRUDService[*domain.Event]{})
		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader([]byte(`{`)))
		rec := httptest.NewRecorder()
		ctrl.Create(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEventController_Update(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeCRUDService[*domain.Event]
		wantStatus int
	}{
		{name: "success is no content", svc: &fakeCRUDService[*domain.Event]{}, wantStatus: http.StatusNoContent},
		{name: "id mismatch", svc: &fakeCRUDService[*domain.Event]{updateErr: domain.ErrIDMismatch}, wantStatus: http.StatusBadRequest},
		{name: "not found", svc: &fakeCRUDService[*domain.Event]{updateErr: domain.ErrNotFound}, wantStatus: http.StatusNotFound},
		{name: "unresolved conflict is a server error", svc: &fakeCRUDService[*domain.Event]{updateErr: domain.ErrConflict}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger(), tt.svc)
			body, _ := json.Marshal(sampleEvent(1))
			req := httptest.NewRequest(http.MethodPut, "/api/events/1", bytes.NewReader(body))
			req.SetPathValue("id", "1")
			rec := httptest.NewRecorder()
			ctrl.Update(rec, req)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Zero(t, rec.Body.Len(), "204 carries no body")
			}
		})
	}
}

func TestEventController_Delete(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeCRUDService[*domain.Event]
		wantStatus int
	}{
		{name: "success is no content", svc: &fakeCRUDService[*domain.Event]{}, wantStatus: http.StatusNoContent},
		{name: "not found", svc: &fakeCRUDService[*domain.Event]{deleteErr: domain.ErrNotFound}, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger(), tt.svc)
			req := httptest.NewRequest(http.MethodDelete, "/api/events/1", nil)
			req.SetPathValue("id", "1")
			rec := httptest.NewRecorder()
			ctrl.Delete(rec, req)
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
