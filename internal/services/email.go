package services

import (
	"context"
	"fmt"

	"adminhub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{
		mailer:   mailer,
		renderer: renderer,
	}
}

func (s *emailService) SendUserInvite(_ context.Context, data *domain.UserInviteEmailData) error {
	subject, html, text, err := s.renderer.Render("user_invite", data)
	if err != nil {
		return fmt.Errorf("render user invite email: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		return fmt.Errorf("send user invite email: %w", err)
	}
	return nil
}
