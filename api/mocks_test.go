package api

import (
	"context"
	"log/slog"

	"github.com/Rhymond/go-money"
	"github.com/finwise-academy/webinar-checkout/mail"
	"github.com/finwise-academy/webinar-checkout/payments"
	"github.com/finwise-academy/webinar-checkout/registrant"
	"github.com/google/uuid"
)

var noopLogger = slog.New(slog.DiscardHandler)

var testCourse = registrant.Course{
	ID:    "mf-masterclass",
	Name:  "Mutual Fund Masterclass",
	Price: money.New(49900, money.INR),
}

type mockConnector struct {
	repo        registrant.Repository
	ConnectFunc func(ctx context.Context) (registrant.Repository, error)
}

func (m *mockConnector) Connect(ctx context.Context) (registrant.Repository, error) {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx)
	}
	return m.repo, nil
}

type mockRepository struct {
	GetRegistrantFunc          func(ctx context.Context, id uuid.UUID) (registrant.Registrant, error)
	GetRegistrantByEmailFunc   func(ctx context.Context, email string) (registrant.Registrant, error)
	CreateRegistrantFunc       func(ctx context.Context, reg registrant.Registrant) error
	UpdateRegistrantStatusFunc func(ctx context.Context, id uuid.UUID, status registrant.Status, paymentID string) error
}

func (m *mockRepository) GetRegistrant(ctx context.Context, id uuid.UUID) (registrant.Registrant, error) {
	if m.GetRegistrantFunc != nil {
		return m.GetRegistrantFunc(ctx, id)
	}
	return registrant.Registrant{}, registrant.NewRegistrantDoesNotExistError("not found", nil)
}

func (m *mockRepository) GetRegistrantByEmail(ctx context.Context, email string) (registrant.Registrant, error) {
	if m.GetRegistrantByEmailFunc != nil {
		return m.GetRegistrantByEmailFunc(ctx, email)
	}
	return registrant.Registrant{}, registrant.NewRegistrantDoesNotExistError("not found", nil)
}

func (m *mockRepository) CreateRegistrant(ctx context.Context, reg registrant.Registrant) error {
	if m.CreateRegistrantFunc != nil {
		return m.CreateRegistrantFunc(ctx, reg)
	}
	return nil
}

func (m *mockRepository) UpdateRegistrantStatus(ctx context.Context, id uuid.UUID, status registrant.Status, paymentID string) error {
	if m.UpdateRegistrantStatusFunc != nil {
		return m.UpdateRegistrantStatusFunc(ctx, id, status, paymentID)
	}
	return nil
}

type mockGateway struct {
	KeyIDFunc           func() string
	CreateOrderFunc     func(ctx context.Context, params payments.CheckoutParams) (payments.Order, error)
	VerifySignatureFunc func(orderID string, paymentID string, signature string) (bool, error)
}

func (m *mockGateway) KeyID() string {
	if m.KeyIDFunc != nil {
		return m.KeyIDFunc()
	}
	return "rzp_test_key"
}

func (m *mockGateway) CreateOrder(ctx context.Context, params payments.CheckoutParams) (payments.Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, params)
	}
	return payments.Order{ID: "order_123", Amount: params.Amount}, nil
}

func (m *mockGateway) VerifySignature(orderID string, paymentID string, signature string) (bool, error) {
	if m.VerifySignatureFunc != nil {
		return m.VerifySignatureFunc(orderID, paymentID, signature)
	}
	return true, nil
}

type mockEmailSender struct {
	SendEmailFunc func(ctx context.Context, e mail.Email) error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e mail.Email) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, e)
	}
	return nil
}

func newTestAPI(repo registrant.Repository, gateway payments.Gateway, sender mail.Sender) *API {
	return NewAPI(&mockConnector{repo: repo}, gateway, sender, noopLogger, LOCAL, testCourse, "noreply@finwise.example", "")
}
