package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventdesk/config"
	authadapter "eventdesk/internal/adapters/auth"
	emailadapter "eventdesk/internal/adapters/email"
	httpdelivery "eventdesk/internal/delivery/http"
	"eventdesk/internal/delivery/http/controllers"
	"eventdesk/internal/delivery/http/middleware"
	"eventdesk/internal/repository/postgres"
	"eventdesk/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title EventDesk API
// @version 1.0
// @description Event management REST API: events, venues, organizers, participants, sponsors, and registrations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token obtained from POST /auth/token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("database ping failed", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	venueRepo := postgres.NewVenueRepository(db)
	organizerRepo := postgres.NewOrganizerRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	sponsorRepo := postgres.NewSponsorRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailSvc := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())

	issuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	verifier := authadapter.NewJWTVerifier(cfg.JWTSecret)
	authSvc := services.NewAuthService(cfg.APIClientID, cfg.APIClientSecretHash, authadapter.NewBcryptVerifier(), issuer, cfg.TokenTTL)

	eventSvc := services.NewEventService(eventRepo, sponsorRepo, serviceTimeout)
	venueSvc := services.NewCRUDService(venueRepo, serviceTimeout)
	organizerSvc := services.NewCRUDService(organizerRepo, serviceTimeout)
	participantSvc := services.NewCRUDService(participantRepo, serviceTimeout)
	sponsorSvc := services.NewCRUDService(sponsorRepo, serviceTimeout)
	registrationSvc := services.NewRegistrationService(registrationRepo, participantRepo, eventRepo, emailSvc, logger, serviceTimeout)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Events:        controllers.NewEventController(logger, eventSvc),
		Venues:        controllers.NewVenueController(logger, venueSvc),
		Organizers:    controllers.NewOrganizerController(logger, organizerSvc),
		Participants:  controllers.NewParticipantController(logger, participantSvc),
		Sponsors:      controllers.NewSponsorController(logger, sponsorSvc),
		Registrations: controllers.NewRegistrationController(logger, registrationSvc),
		Auth:          controllers.NewAuthController(logger, authSvc),
	}, verifier, logger)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-serverErr:
		logger.Error("server failed", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	logger.Info("shutdown complete")
}
