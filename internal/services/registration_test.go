package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmailService records confirmation sends; other behavior configurable.
type fakeEmailService struct {
	sendErr error
	sent    []*domain.RegistrationEmailData
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, data)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRegistration(eventID, participantID int) *domain.Registration {
	return &domain.Registration{
		RegistrationDate: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		EventID:          eventID,
		ParticipantID:    participantID,
	}
}

func registrationFixture(t *testing.T) (*fakeRepo[*domain.Registration], *fakeRepo[*domain.Participant], *fakeEventRepo, *domain.Event, *domain.Participant) {
	t.Helper()
	registrationRepo := newFakeRepo[*domain.Registration]()
	participantRepo := newFakeRepo[*domain.Participant]()
	sponsorRepo := newFakeRepo[*domain.Sponsor]()
	eventRepo := newFakeEventRepo(sponsorRepo)

	event := validEvent()
	require.NoError(t, eventRepo.Create(context.Background(), event))
	participant := &domain.Participant{Name: "Carla Dias", Email: "carla@example.com", NationalID: "123.456.789-09"}
	require.NoError(t, participantRepo.Create(context.Background(), participant))
	return registrationRepo, participantRepo, eventRepo, event, participant
}

func TestRegistrationService_Create_SendsConfirmation(t *testing.T) {
	ctx := context.Background()
	registrationRepo, participantRepo, eventRepo, event, participant := registrationFixture(t)
	emailSvc := &fakeEmailService{}
	svc := NewRegistrationService(registrationRepo, participantRepo, eventRepo, emailSvc, testLogger(), 5*time.Second)

	reg := validRegistration(event.ID, participant.ID)
	require.NoError(t, svc.Create(ctx, reg))
	require.NotZero(t, reg.ID)

	require.Len(t, emailSvc.sent, 1)
	data := emailSvc.sent[0]
	assert.Equal(t, "Carla Dias", data.ParticipantName)
	assert.Equal(t, "carla@example.com", data.ParticipantEmail)
	assert.Equal(t, event.Name, data.EventName)
	assert.True(t, data.EventDate.Equal(event.Date))
}

func TestRegistrationService_Create_EmailFailureDoesNotFailCreate(t *testing.T) {
	ctx := context.Background()
	registrationRepo, participantRepo, eventRepo, event, participant := registrationFixture(t)
	emailSvc := &fakeEmailService{sendErr: errors.New("ses unavailable")}
	svc := NewRegistrationService(registrationRepo, participantRepo, eventRepo, emailSvc, testLogger(), 5*time.Second)

	reg := validRegistration(event.ID, participant.ID)
	require.NoError(t, svc.Create(ctx, reg))
	require.NotZero(t, reg.ID)
	_, err := svc.Get(ctx, reg.ID)
	require.NoError(t, err, "registration must be persisted despite email failure")
}

func TestRegistrationService_Create_NilEmailService(t *testing.T) {
	ctx := context.Background()
	registrationRepo, participantRepo, eventRepo, event, participant := registrationFixture(t)
	svc := NewRegistrationService(registrationRepo, participantRepo, eventRepo, nil, testLogger(), 5*time.Second)

	reg := validRegistration(event.ID, participant.ID)
	require.NoError(t, svc.Create(ctx, reg))
}

func TestRegistrationService_Create_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	registrationRepo, participantRepo, eventRepo, _, _ := registrationFixture(t)
	emailSvc := &fakeEmailService{}
	svc := NewRegistrationService(registrationRepo, participantRepo, eventRepo, emailSvc, testLogger(), 5*time.Second)

	err := svc.Create(ctx, &domain.Registration{})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, registrationRepo.byID)
	assert.Empty(t, emailSvc.sent, "no email on failed create")
}

func TestRegistrationService_Create_MissingParticipantSkipsEmail(t *testing.T) {
	ctx := context.Background()
	registrationRepo, participantRepo, eventRepo, event, _ := registrationFixture(t)
	emailSvc := &fakeEmailService{}
	svc := NewRegistrationService(registrationRepo, participantRepo, eventRepo, emailSvc, testLogger(), 5*time.Second)

	reg := validRegistration(event.ID, 999)
	require.NoError(t, svc.Create(ctx, reg), "dangling participant id does not block the registration")
	assert.Empty(t, emailSvc.sent)
}
