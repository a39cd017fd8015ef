package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/raushankrgupta/nutritrack/models"
)

type sesClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESNotifier mails reset codes through Amazon SES.
type SESNotifier struct {
	client sesClient
	source string
	logger *slog.Logger
}

func NewSESNotifier(ctx context.Context, region, source string, logger *slog.Logger) (*SESNotifier, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &SESNotifier{client: ses.NewFromConfig(cfg), source: source, logger: logger}, nil
}

func (n *SESNotifier) SendResetCode(ctx context.Context, user models.User, code string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{user.Email},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(resetSubject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(resetText(code))},
				Html: &types.Content{Data: aws.String(resetHTML(user.Name, code))},
			},
		},
		Source: aws.String(n.source),
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		n.logger.Error("SES send failed", "email", user.Email, "error", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	n.logger.Info("reset email sent", "email", user.Email)
	return nil
}
