package registrant

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/Rhymond/go-money"
	"github.com/finwise-academy/webinar-checkout/mail"
)

//go:embed templates
var templates embed.FS

// SendPaymentSuccessEmail tells the registrant their payment went
// through and their spot is confirmed. Callers treat it as best-effort.
func SendPaymentSuccessEmail(ctx context.Context, sender mail.Sender, fromAddress string, reg Registrant, course Course) error {
	data := map[string]any{
		"Name":       reg.Name,
		"CourseName": course.Name,
		"PaymentID":  reg.PaymentID,
	}

	htmlBody, err := renderTemplate("payment-success.tmpl", data)
	if err != nil {
		return err
	}

	textOnlyBody, err := renderTemplate("payment-success-textonly.tmpl", data)
	if err != nil {
		return err
	}

	return sender.SendEmail(ctx, mail.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{reg.Email},
		Subject:     fmt.Sprintf("Payment successful - %s", course.Name),
		HTMLBody:    htmlBody,
		TextBody:    textOnlyBody,
	})
}

// SendPaymentReceiptEmail sends the itemized receipt with the charged
// amount and payment id.
func SendPaymentReceiptEmail(ctx context.Context, sender mail.Sender, fromAddress string, name string, toAddress string, paymentID string, amount *money.Money, course Course) error {
	data := map[string]any{
		"Name":       name,
		"CourseName": course.Name,
		"PaymentID":  paymentID,
		"Amount":     amount.Display(),
	}

	htmlBody, err := renderTemplate("payment-receipt.tmpl", data)
	if err != nil {
		return err
	}

	textOnlyBody, err := renderTemplate("payment-receipt-textonly.tmpl", data)
	if err != nil {
		return err
	}

	return sender.SendEmail(ctx, mail.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{toAddress},
		Subject:     fmt.Sprintf("Payment confirmation - %s", course.Name),
		HTMLBody:    htmlBody,
		TextBody:    textOnlyBody,
	})
}

func renderTemplate(name string, data map[string]any) (string, error) {
	tmpl, err := template.New(name).ParseFS(templates, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}
