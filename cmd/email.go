package main

import (
	"context"
	"log/slog"

	"github.com/finwise-academy/webinar-checkout/api"
	"github.com/finwise-academy/webinar-checkout/mail"
)

var _ mail.Sender = &EmailLogger{}

// mail.Sender that logs out the email contents for local dev
type EmailLogger struct {
	logger *slog.Logger
}

func (el *EmailLogger) SendEmail(ctx context.Context, e mail.Email) error {
	el.logger.Info("email that would be sent",
		slog.Any("to", e.ToAddresses),
		slog.String("subject", e.Subject),
		slog.String("text-body", e.TextBody),
	)

	return nil
}

func createEmailSender(logger *slog.Logger, cfg Config) mail.Sender {
	if cfg.Env == api.LOCAL {
		return &EmailLogger{logger: logger}
	}

	return mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
}
