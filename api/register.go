package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finwise-academy/webinar-checkout/registrant"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type RegisterResponse struct {
	UserID   uuid.UUID `json:"userId"`
	OrderID  string    `json:"orderId"`
	Key      string    `json:"key"`
	Amount   int64     `json:"amount"`
	Currency string    `json:"currency"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		logger.Warn("Invalid body for registration", "error", err)

		writeError(w, http.StatusBadRequest, EmptyBody, "Must specify a valid JSON body")
		return
	}

	repo, err := a.db.Connect(ctx)
	if err != nil {
		logger.Error("Failed to connect to the store", "error", err)

		writeError(w, http.StatusServiceUnavailable, ServiceUnavailable, "Database connection failed. Please try again.")
		return
	}

	checkout, err := registrant.Register(ctx, registrant.RegistrationRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}, a.course, repo, a.gateway, logger)
	if err != nil {
		var regErr *registrant.Error

		if errors.As(err, &regErr) {
			switch regErr.Reason {
			case registrant.REASON_INVALID_INPUT:
				logger.Warn("Invalid registration input", "error", err)

				writeError(w, http.StatusBadRequest, InputValidationError, regErr.Message)
				return
			case registrant.REASON_REGISTRANT_ALREADY_EXISTS:
				logger.Warn("Duplicate registration attempt", "error", err)

				writeError(w, http.StatusConflict, AlreadyRegistered, "Email already registered")
				return
			case registrant.REASON_STORE_UNAVAILABLE:
				logger.Error("Store unavailable during registration", "error", err)

				writeError(w, http.StatusServiceUnavailable, ServiceUnavailable, "Database connection failed. Please try again.")
				return
			case registrant.REASON_ORDER_CREATION_FAILED:
				logger.Error("Failed to create payment order", "error", err)

				writeError(w, http.StatusServiceUnavailable, PaymentServiceError, "Payment service error. Please try again.")
				return
			}
		}

		logger.Error("Error trying to register", "error", err)

		writeError(w, http.StatusInternalServerError, InternalError, "Registration failed")
		return
	}

	writeJSON(w, http.StatusOK, RegisterResponse{
		UserID:   checkout.RegistrantID,
		OrderID:  checkout.Order.ID,
		Key:      a.gateway.KeyID(),
		Amount:   checkout.Order.Amount.Amount(),
		Currency: checkout.Order.Amount.Currency().Code,
	})
}
