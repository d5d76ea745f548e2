package payments

import (
	"context"

	"github.com/Rhymond/go-money"
)

// Order is the gateway-side record of an amount to collect. It is never
// persisted locally; it only lives long enough for the client to pay and
// the server to verify.
type Order struct {
	ID     string
	Amount *money.Money
}

type CheckoutParams struct {
	Amount  *money.Money
	Receipt string
	Notes   map[string]string
}

type Gateway interface {
	// KeyID is the public key the hosted widget is opened with.
	KeyID() string

	CreateOrder(ctx context.Context, params CheckoutParams) (Order, error)

	// VerifySignature reports whether signature authenticates the
	// orderID/paymentID pair. A mismatch is a false return, not an error;
	// errors are reserved for malformed or missing input.
	VerifySignature(orderID string, paymentID string, signature string) (bool, error)
}
