package email

import (
	"fmt"

	"academy-app/config"
	"academy-app/internal/logger"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Mailer sends a single HTML email and returns the provider message id.
type Mailer interface {
	Send(to, subject, html string) (string, error)
}

// Default is the process-wide mailer, set up once in main.
var Default Mailer

func Init() {
	Default = NewResendMailer(config.RESEND_API_KEY, config.EMAIL_FROM)
}

type resendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) Mailer {
	if apiKey == "" {
		logger.L().Warn("Resend API key is empty")
	}
	return &resendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *resendMailer) Send(to, subject, html string) (string, error) {
	sent, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		logger.L().Error("resend send failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return "", fmt.Errorf("resend send: %w", err)
	}

	logger.L().Info("email sent",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("message_id", sent.Id),
	)
	return sent.Id, nil
}
