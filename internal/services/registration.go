package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eventdesk/internal/domain"
)

// registrationService layers a confirmation email on top of the generic CRUD
// behavior. Email delivery is best effort: a failure is logged and never fails
// the registration itself.
type registrationService struct {
	domain.CRUDService[*domain.Registration]
	participantRepo domain.Repository[*domain.Participant]
	eventRepo       domain.EventRepository
	emailService    domain.EmailService
	logger          *slog.Logger
	timeout         time.Duration
}

// NewRegistrationService returns the registration service. emailService may be
// nil, in which case no confirmation email is attempted.
func NewRegistrationService(
	registrationRepo domain.Repository[*domain.Registration],
	participantRepo domain.Repository[*domain.Participant],
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.CRUDService[*domain.Registration] {
	return &registrationService{
		CRUDService:     NewCRUDService[*domain.Registration](registrationRepo, timeout),
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		emailService:    emailService,
		logger:          logger,
		timeout:         timeout,
	}
}

func (s *registrationService) Create(ctx context.Context, reg *domain.Registration) error {
	if err := s.CRUDService.Create(ctx, reg); err != nil {
		return err
	}
	s.sendConfirmation(ctx, reg)
	return nil
}

func (s *registrationService) sendConfirmation(ctx context.Context, reg *domain.Registration) {
	if s.emailService == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	participant, err := s.participantRepo.GetByID(ctx, reg.ParticipantID)
	if err != nil {
		s.logger.Warn("skipping registration confirmation email",
			"registration_id", reg.ID, "participant_id", reg.ParticipantID, "err", err)
		return
	}
	data := &domain.RegistrationEmailData{
		ParticipantName:  participant.Name,
		ParticipantEmail: participant.Email,
		RegistrationDate: reg.RegistrationDate,
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("event lookup for confirmation email failed",
				"registration_id", reg.ID, "event_id", reg.EventID, "err", err)
		}
	} else {
		data.EventName = event.Name
		data.EventDate = event.Date
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.Warn("registration confirmation email failed",
			"registration_id", reg.ID, "to", participant.Email, "err", err)
	}
}
