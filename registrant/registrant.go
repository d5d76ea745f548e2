package registrant

import (
	"context"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
)

type Status string

const (
	STATUS_PENDING   Status = "pending"
	STATUS_COMPLETED Status = "completed"
	STATUS_FAILED    Status = "failed"
)

// Registrant is a person who submitted the webinar signup form.
// Status starts at pending, moves to failed if order creation fails,
// and to completed only after the payment signature verifies. There is
// no transition out of completed.
type Registrant struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	CourseID     string
	Status       Status
	PaymentID    string
	RegisteredAt time.Time
}

// Course is the single offering being sold, taken from configuration.
type Course struct {
	ID    string
	Name  string
	Price *money.Money
}

type Repository interface {
	GetRegistrant(ctx context.Context, id uuid.UUID) (Registrant, error)
	GetRegistrantByEmail(ctx context.Context, email string) (Registrant, error)
	CreateRegistrant(ctx context.Context, reg Registrant) error
	// UpdateRegistrantStatus is a partial update. paymentID is only
	// written when non-empty; once written it is never changed.
	UpdateRegistrantStatus(ctx context.Context, id uuid.UUID, status Status, paymentID string) error
}
