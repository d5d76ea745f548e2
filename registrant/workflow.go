package registrant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finwise-academy/webinar-checkout/payments"
	"github.com/google/uuid"
)

type RegistrationRequest struct {
	Name  string
	Email string
	Phone string
}

// Checkout is what the client needs to open the hosted payment widget.
// Returning it is an explicit suspension point: the rest of the flow
// resumes when the client calls back into ConfirmPayment.
type Checkout struct {
	RegistrantID uuid.UUID
	Order        payments.Order
}

type PaymentConfirmation struct {
	RegistrantID uuid.UUID
	OrderID      string
	PaymentID    string
	Signature    string
}

// Register validates the request, persists a pending registrant, and
// creates a payment order with the gateway. If order creation fails the
// registrant is rolled to failed; that secondary write is best-effort
// and only logged when it fails too.
func Register(ctx context.Context, req RegistrationRequest, course Course, repo Repository, gateway payments.Gateway, logger *slog.Logger) (Checkout, error) {
	if !ValidateName(req.Name) {
		return Checkout{}, NewInvalidInputError("Name must be between 2 and 50 characters")
	}
	if !ValidateEmail(req.Email) {
		return Checkout{}, NewInvalidInputError("Invalid email format")
	}
	if !ValidatePhone(req.Phone) {
		return Checkout{}, NewInvalidInputError("Phone number must be exactly 10 digits")
	}

	// Pre-check so a duplicate email is a deterministic user-facing
	// error; the store's unique key remains the correctness backstop.
	_, err := repo.GetRegistrantByEmail(ctx, req.Email)
	if err == nil {
		return Checkout{}, NewRegistrantAlreadyExistsError(fmt.Sprintf("Registrant already exists for email %q", req.Email), nil)
	}
	var regErr *Error
	if !errors.As(err, &regErr) || regErr.Reason != REASON_REGISTRANT_DOES_NOT_EXIST {
		return Checkout{}, err
	}

	reg := Registrant{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CourseID:     course.ID,
		Status:       STATUS_PENDING,
		RegisteredAt: time.Now(),
	}

	err = repo.CreateRegistrant(ctx, reg)
	if err != nil {
		return Checkout{}, err
	}

	order, err := gateway.CreateOrder(ctx, payments.CheckoutParams{
		Amount:  course.Price,
		Receipt: reg.ID.String(),
		Notes: map[string]string{
			"courseId": course.ID,
			"email":    reg.Email,
		},
	})
	if err != nil {
		if updateErr := repo.UpdateRegistrantStatus(ctx, reg.ID, STATUS_FAILED, ""); updateErr != nil {
			logger.Error("failed to mark registrant as failed after order creation error",
				slog.String("error", updateErr.Error()),
				slog.String("registrantId", reg.ID.String()),
			)
		}
		return Checkout{}, NewOrderCreationFailedError(fmt.Sprintf("Failed to create payment order for registrant %q", reg.ID), err)
	}

	return Checkout{RegistrantID: reg.ID, Order: order}, nil
}

// ConfirmPayment authenticates a payment completion and marks the
// registrant completed. The bool result reports whether the caller
// should send the confirmation notification: re-confirming an already
// completed registrant succeeds but must not re-send it.
func ConfirmPayment(ctx context.Context, conf PaymentConfirmation, repo Repository, gateway payments.Gateway) (Registrant, bool, error) {
	ok, err := gateway.VerifySignature(conf.OrderID, conf.PaymentID, conf.Signature)
	if err != nil {
		return Registrant{}, false, NewInvalidInputError("Order ID, payment ID and signature are all required")
	}
	if !ok {
		return Registrant{}, false, NewInvalidSignatureError("Invalid payment signature")
	}

	reg, err := repo.GetRegistrant(ctx, conf.RegistrantID)
	if err != nil {
		return Registrant{}, false, err
	}

	if reg.Status == STATUS_COMPLETED {
		return reg, false, nil
	}

	err = repo.UpdateRegistrantStatus(ctx, reg.ID, STATUS_COMPLETED, conf.PaymentID)
	if err != nil {
		return Registrant{}, false, err
	}

	reg.Status = STATUS_COMPLETED
	reg.PaymentID = conf.PaymentID

	return reg, true, nil
}
