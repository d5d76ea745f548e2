package mail

import (
	"context"

	gomail "gopkg.in/gomail.v2"
)

var _ Sender = &SMTPSender{}

// SMTPSender opens a transport session per message and closes it after
// sending. The dialer configuration is safe to share across requests.
type SMTPSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(host string, port int, username string, password string) *SMTPSender {
	d := gomail.NewDialer(host, port, username, password)
	// Implicit TLS on the submissions port, STARTTLS otherwise.
	d.SSL = port == 465

	return &SMTPSender{dialer: d}
}

func (s *SMTPSender) SendEmail(ctx context.Context, e Email) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.FromAddress)
	m.SetHeader("To", e.ToAddresses...)
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/plain", e.TextBody)
	if e.HTMLBody != "" {
		m.AddAlternative("text/html", e.HTMLBody)
	}

	// gomail has no context support, so run the send on the side and
	// give up waiting when the context ends.
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return NewDeliveryFailedError("gave up waiting for smtp send", ctx.Err())
	case err := <-errCh:
		if err != nil {
			return NewDeliveryFailedError("failed to send email over smtp", err)
		}
	}

	return nil
}
