package registrant

import (
	"context"
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/finwise-academy/webinar-checkout/mail"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	sent []mail.Email
}

func (c *captureSender) SendEmail(ctx context.Context, e mail.Email) error {
	c.sent = append(c.sent, e)
	return nil
}

func TestSendPaymentSuccessEmail(t *testing.T) {
	sender := &captureSender{}
	reg := Registrant{
		ID:        uuid.New(),
		Name:      "Asha Rao",
		Email:     "asha@example.com",
		Status:    STATUS_COMPLETED,
		PaymentID: "pay_456",
	}

	err := SendPaymentSuccessEmail(context.Background(), sender, "Finwise <no-reply@finwise.academy>", reg, testCourse)
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	e := sender.sent[0]
	assert.Equal(t, []string{"asha@example.com"}, e.ToAddresses)
	assert.Contains(t, e.Subject, testCourse.Name)
	assert.Contains(t, e.HTMLBody, "Asha Rao")
	assert.Contains(t, e.HTMLBody, "pay_456")
	assert.Contains(t, e.TextBody, "Asha Rao")
	assert.NotEmpty(t, e.TextBody)
}

func TestSendPaymentReceiptEmail(t *testing.T) {
	sender := &captureSender{}
	amount := money.New(59900, money.INR)

	err := SendPaymentReceiptEmail(context.Background(), sender, "Finwise <no-reply@finwise.academy>", "Asha Rao", "asha@example.com", "pay_456", amount, testCourse)
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	e := sender.sent[0]
	assert.Equal(t, []string{"asha@example.com"}, e.ToAddresses)
	assert.Contains(t, e.HTMLBody, amount.Display())
	assert.Contains(t, e.HTMLBody, "pay_456")
	assert.Contains(t, e.TextBody, amount.Display())
}
