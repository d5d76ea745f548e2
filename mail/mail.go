// Package mail is the transactional email boundary. Delivery is always
// best-effort from the caller's point of view: a DELIVERY_FAILED error
// is logged, never escalated into failing the operation that sent it.
package mail

import "context"

type Email struct {
	FromAddress string
	ToAddresses []string
	Subject     string
	HTMLBody    string
	TextBody    string
}

type Sender interface {
	SendEmail(ctx context.Context, e Email) error
}
