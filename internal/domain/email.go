package domain

import "context"

// Mailer sends an email with html and/or text bodies.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// UserInviteEmailData is the data needed to render a user invitation email.
type UserInviteEmailData struct {
	Name         string
	Email        string
	Role         string
	TempPassword string
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// EmailService sends application emails.
type EmailService interface {
	SendUserInvite(ctx context.Context, data *UserInviteEmailData) error
}
