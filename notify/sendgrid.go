package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridNotifier mails reset codes through SendGrid.
type SendGridNotifier struct {
	client sendGridClient
	from   *mail.Email
	logger *slog.Logger
}

func NewSendGridNotifier(apiKey, fromName, fromEmail string, logger *slog.Logger) (*SendGridNotifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY is not set in environment variables")
	}
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromEmail),
		logger: logger,
	}, nil
}

func (n *SendGridNotifier) SendResetCode(ctx context.Context, user models.User, code string) error {
	to := mail.NewEmail(user.Name, user.Email)
	message := mail.NewSingleEmail(n.from, resetSubject, to, resetText(code), resetHTML(user.Name, code))

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		n.logger.Error("sendgrid send failed", "email", user.Email, "error", err)
		return fmt.Errorf("send reset email: %w", err)
	}

	if response.StatusCode >= 400 {
		n.logger.Error("sendgrid API error", "status", response.StatusCode, "body", response.Body)
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	n.logger.Info("reset email sent", "email", user.Email, "status", response.StatusCode)
	return nil
}
