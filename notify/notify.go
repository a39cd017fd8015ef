// Package notify delivers password reset codes to users.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/raushankrgupta/nutritrack/models"
)

// Notifier sends a reset code to a registered user.
type Notifier interface {
	SendResetCode(ctx context.Context, user models.User, code string) error
}

const resetSubject = "Password Reset Code"

func resetText(code string) string {
	return fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password.", code)
}

func resetHTML(name, code string) string {
	return fmt.Sprintf("<p>Hello %s,</p><p>Your password reset code is: <strong>%s</strong></p><p>Use this in the app to set a new password.</p>", name, code)
}

// LogNotifier writes codes to the logger. Meant for local development only.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendResetCode(_ context.Context, user models.User, code string) error {
	n.logger.Debug("password reset code issued", "email", user.Email, "code", code)
	return nil
}

// Options selects and configures a Notifier.
type Options struct {
	Provider       string // sendgrid|ses|log
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	AWSRegion      string
}

// New builds the notifier named by opts.Provider.
func New(ctx context.Context, logger *slog.Logger, opts Options) (Notifier, error) {
	switch opts.Provider {
	case "sendgrid":
		return NewSendGridNotifier(opts.SendGridAPIKey, opts.FromName, opts.FromEmail, logger)
	case "ses":
		return NewSESNotifier(ctx, opts.AWSRegion, opts.FromEmail, logger)
	case "", "log":
		return NewLogNotifier(logger), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", opts.Provider)
	}
}
