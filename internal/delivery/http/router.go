package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventdesk/internal/delivery/http/controllers"
	"eventdesk/internal/delivery/http/middleware"
	"eventdesk/internal/domain"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Events        *controllers.EventController
	Venues        *controllers.VenueController
	Organizers    *controllers.OrganizerController
	Participants  *controllers.ParticipantController
	Sponsors      *controllers.SponsorController
	Registrations *controllers.RegistrationController
	Auth          *controllers.AuthController
}

// NewRouter initializes the HTTP router with all application routes.
// Organizer and sponsor mutations sit behind the bearer token gate; every
// read and the remaining resources are open.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Events
	mux.HandleFunc("GET /api/events", c.Events.List)
	mux.HandleFunc("GET /api/events/{id}", c.Events.Get)
	mux.HandleFunc("POST /api/events", c.Events.Create)
	mux.HandleFunc("PUT /api/events/{id}", c.Events.Update)
	mux.HandleFunc("DELETE /api/events/{id}", c.Events.Delete)

	// Venues
	mux.HandleFunc("GET /api/venues", c.Venues.List)
	mux.HandleFunc("GET /api/venues/{id}", c.Venues.Get)
	mux.HandleFunc("POST /api/venues", c.Venues.Create)
	mux.HandleFunc("PUT /api/venues/{id}", c.Venues.Update)
	mux.HandleFunc("DELETE /api/venues/{id}", c.Venues.Delete)

	// Organizers (mutations gated)
	mux.HandleFunc("GET /api/organizers", c.Organizers.List)
	mux.HandleFunc("GET /api/organizers/{id}", c.Organizers.Get)
	mux.HandleFunc("POST /api/organizers", requireAuth(c.Organizers.Create))
	mux.HandleFunc("PUT /api/organizers/{id}", requireAuth(c.Organizers.Update))
	mux.HandleFunc("DELETE /api/organizers/{id}", requireAuth(c.Organizers.Delete))

	// Participants
	mux.HandleFunc("GET /api/participants", c.Participants.List)
	mux.HandleFunc("GET /api/participants/{id}", c.Participants.Get)
	mux.HandleFunc("POST /api/participants", c.Participants.Create)
	mux.HandleFunc("PUT /api/participants/{id}", c.Participants.Update)
	mux.HandleFunc("DELETE /api/participants/{id}", c.Participants.Delete)

	// Sponsors (mutations gated)
	mux.HandleFunc("GET /api/sponsors", c.Sponsors.List)
	mux.HandleFunc("GET /api/sponsors/{id}", c.Sponsors.Get)
	mux.HandleFunc("POST /api/sponsors", requireAuth(c.Sponsors.Create))
	mux.HandleFunc("PUT /api/sponsors/{id}", requireAuth(c.Sponsors.Update))
	mux.HandleFunc("DELETE /api/sponsors/{id}", requireAuth(c.Sponsors.Delete))

	// Registrations
	mux.HandleFunc("GET /api/registrations", c.Registrations.List)
	mux.HandleFunc("GET /api/registrations/{id}", c.Registrations.Get)
	mux.HandleFunc("POST /api/registrations", c.Registrations.Create)
	mux.HandleFunc("PUT /api/registrations/{id}", c.Registrations.Update)
	mux.HandleFunc("DELETE /api/registrations/{id}", c.Registrations.Delete)

	// Auth
	mux.HandleFunc("POST /auth/token", c.Auth.Token)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
