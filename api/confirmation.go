package api

import (
	"encoding/json"
	"net/http"

	"github.com/Rhymond/go-money"
	"github.com/finwise-academy/webinar-checkout/registrant"
)

type SendConfirmationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	PaymentID string `json:"paymentId"`
	// Minor currency units, same as the register response.
	Amount int64 `json:"amount"`
}

type SendConfirmationResponse struct {
	Success bool `json:"success"`
}

// handleSendConfirmation sends the itemized receipt. Unlike the
// verification notification this one is the whole point of the request,
// so a delivery failure is a hard error here.
func (a *API) handleSendConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	var req SendConfirmationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		logger.Warn("Invalid body for confirmation email", "error", err)

		writeError(w, http.StatusBadRequest, EmptyBody, "Must specify a valid JSON body")
		return
	}

	if !registrant.ValidateEmail(req.Email) {
		logger.Warn("Invalid email for confirmation", "email", req.Email)

		writeError(w, http.StatusBadRequest, InputValidationError, "Invalid email format")
		return
	}

	amount := money.New(req.Amount, a.course.Price.Currency().Code)

	err := registrant.SendPaymentReceiptEmail(ctx, a.emailSender, a.fromAddress, req.Name, req.Email, req.PaymentID, amount, a.course)
	if err != nil {
		logger.Error("Failed to send confirmation email", "error", err)

		writeError(w, http.StatusInternalServerError, DeliveryFailed, "Failed to send confirmation email")
		return
	}

	writeJSON(w, http.StatusOK, SendConfirmationResponse{Success: true})
}
