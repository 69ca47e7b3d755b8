// Package mailer sends the console's transactional email through SendGrid.
package mailer

import (
	"context"
	"fmt"

	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	Send(ctx context.Context, msg *models.EmailMessage) error
}

type sendGridService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

type Option func(*sendGridService)

// WithEndpoint points the client at another mail/send URL.
func WithEndpoint(url string) Option {
	return func(s *sendGridService) { s.client.Request.BaseURL = url }
}

func NewEmailService(apiKey, fromEmail, fromName string, opts ...Option) EmailService {
	s := &sendGridService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *sendGridService) Send(ctx context.Context, msg *models.EmailMessage) error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(s.fromName, s.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", msg.To))
	personalization.Subject = msg.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", msg.Content))
	if msg.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", msg.HTMLContent))
	}

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sending %q: %w", msg.Subject, err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected %q with status %d", msg.Subject, resp.StatusCode)
	}

	return nil
}
