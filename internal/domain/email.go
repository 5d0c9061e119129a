package domain

import (
	"context"
	"time"
)

// RegistrationEmailData carries the fields rendered into the registration
// confirmation email.
type RegistrationEmailData struct {
	ParticipantName  string
	ParticipantEmail string
	EventName        string
	EventDate        time.Time
	RegistrationDate time.Time
}

// EmailService sends transactional email for registrations.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationEmailData) error
}

// Mailer delivers a rendered email.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders the named template with data and returns the
// subject and the html and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}
