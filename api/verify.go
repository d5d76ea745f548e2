package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/finwise-academy/webinar-checkout/registrant"
	"github.com/google/uuid"
)

type VerifyPaymentRequest struct {
	OrderID   string    `json:"orderId"`
	PaymentID string    `json:"paymentId"`
	Signature string    `json:"signature"`
	UserID    uuid.UUID `json:"userId"`
}

type VerifyPaymentResponse struct {
	Success bool `json:"success"`
}

func (a *API) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	var req VerifyPaymentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		logger.Warn("Invalid body for payment verification", "error", err)

		writeError(w, http.StatusBadRequest, EmptyBody, "Must specify a valid JSON body")
		return
	}

	repo, err := a.db.Connect(ctx)
	if err != nil {
		logger.Error("Failed to connect to the store", "error", err)

		writeError(w, http.StatusServiceUnavailable, ServiceUnavailable, "Database connection failed. Please try again.")
		return
	}

	reg, notify, err := registrant.ConfirmPayment(ctx, registrant.PaymentConfirmation{
		RegistrantID: req.UserID,
		OrderID:      req.OrderID,
		PaymentID:    req.PaymentID,
		Signature:    req.Signature,
	}, repo, a.gateway)
	if err != nil {
		var regErr *registrant.Error

		if errors.As(err, &regErr) {
			switch regErr.Reason {
			case registrant.REASON_INVALID_INPUT:
				logger.Warn("Invalid payment verification input", "error", err)

				writeError(w, http.StatusBadRequest, InputValidationError, regErr.Message)
				return
			case registrant.REASON_INVALID_SIGNATURE:
				logger.Warn("Payment signature did not verify",
					slog.String("orderId", req.OrderID),
					slog.String("paymentId", req.PaymentID),
				)

				writeError(w, http.StatusBadRequest, InvalidSignature, "Invalid payment signature")
				return
			case registrant.REASON_REGISTRANT_DOES_NOT_EXIST:
				logger.Warn("Verification for unknown registrant", "error", err)

				writeError(w, http.StatusNotFound, NotFound, "User not found")
				return
			case registrant.REASON_STORE_UNAVAILABLE:
				logger.Error("Store unavailable during verification", "error", err)

				writeError(w, http.StatusServiceUnavailable, ServiceUnavailable, "Database connection failed. Please try again.")
				return
			}
		}

		logger.Error("Error verifying payment", "error", err)

		writeError(w, http.StatusInternalServerError, InternalError, "Payment verification failed")
		return
	}

	if notify {
		a.sendPaymentSuccessEmail(ctx, reg)
	}

	writeJSON(w, http.StatusOK, VerifyPaymentResponse{Success: true})
}

// sendPaymentSuccessEmail fires the notification without holding up the
// response. A delivery failure is logged only; the payment already
// succeeded and the response must say so regardless.
func (a *API) sendPaymentSuccessEmail(ctx context.Context, reg registrant.Registrant) {
	logger := a.getLoggerOrBaseLogger(ctx)

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)

	go func() {
		defer cancel()

		err := registrant.SendPaymentSuccessEmail(sendCtx, a.emailSender, a.fromAddress, reg, a.course)
		if err != nil {
			logger.Error("Failed to send payment success email",
				slog.String("error", err.Error()),
				slog.String("email", reg.Email),
			)
		}
	}()
}
