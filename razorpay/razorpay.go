// Package razorpay implements payments.Gateway against the Razorpay
// Orders API. Signatures are authenticated by recomputing the HMAC the
// gateway attaches to a completed checkout.
package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/finwise-academy/webinar-checkout/payments"
	razorpay "github.com/razorpay/razorpay-go"
)

var _ payments.Gateway = &Gateway{}

type Gateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewGateway(keyID string, keySecret string) *Gateway {
	client := razorpay.NewClient(keyID, keySecret)

	return &Gateway{
		client:    client,
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (g *Gateway) KeyID() string {
	return g.keyID
}

// CreateOrder registers the amount to collect with Razorpay. The SDK
// does not take a context; cancellation is bounded by its HTTP client
// timeout instead.
func (g *Gateway) CreateOrder(ctx context.Context, params payments.CheckoutParams) (payments.Order, error) {
	if params.Amount == nil {
		return payments.Order{}, payments.NewMalformedInputError("Order amount is required")
	}

	data := map[string]interface{}{
		"amount":   params.Amount.Amount(),
		"currency": params.Amount.Currency().Code,
	}
	if params.Receipt != "" {
		data["receipt"] = params.Receipt
	}
	if len(params.Notes) > 0 {
		notes := map[string]interface{}{}
		for k, v := range params.Notes {
			notes[k] = v
		}
		data["notes"] = notes
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return payments.Order{}, payments.NewGatewayFailureError("Failed to create order with razorpay", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return payments.Order{}, payments.NewGatewayFailureError(fmt.Sprintf("Razorpay order response missing id: %v", body), nil)
	}

	return payments.Order{
		ID:     orderID,
		Amount: params.Amount,
	}, nil
}

// VerifySignature recomputes HMAC-SHA256 over "orderID|paymentID" with
// the key secret and compares it to signature in constant time. A
// mismatch returns false with no error; only missing input errors.
func (g *Gateway) VerifySignature(orderID string, paymentID string, signature string) (bool, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return false, payments.NewMalformedInputError("orderID, paymentID and signature are all required")
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature)), nil
}
