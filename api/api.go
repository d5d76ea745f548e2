package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/finwise-academy/webinar-checkout/mail"
	"github.com/finwise-academy/webinar-checkout/payments"
	"github.com/finwise-academy/webinar-checkout/registrant"
	"github.com/finwise-academy/webinar-checkout/web"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

// DBConnector hands out the shared store handle, establishing it on
// first use. Handlers connect per request so an unreachable store is a
// 503 on that request, not a crashed process.
type DBConnector interface {
	Connect(ctx context.Context) (registrant.Repository, error)
}

type API struct {
	db          DBConnector
	gateway     payments.Gateway
	emailSender mail.Sender
	logger      *slog.Logger
	env         Environment

	course        registrant.Course
	fromAddress   string
	allowedOrigin string
}

func NewAPI(db DBConnector, gateway payments.Gateway, emailSender mail.Sender, logger *slog.Logger, env Environment, course registrant.Course, fromAddress string, allowedOrigin string) *API {
	return &API{
		db:          db,
		gateway:     gateway,
		emailSender: emailSender,
		logger:      logger,
		env:         env,

		course:        course,
		fromAddress:   fromAddress,
		allowedOrigin: allowedOrigin,
	}
}

// The register leg covers validation, a write, and a remote order
// creation; the whole request is capped at a minute.
const requestTimeout = 60 * time.Second

func (a *API) Handler() http.Handler {
	r := http.NewServeMux()

	r.HandleFunc("POST /api/v1/register", a.handleRegister)
	r.HandleFunc("POST /api/v1/payments/verify", a.handleVerifyPayment)
	r.HandleFunc("POST /api/v1/send-confirmation", a.handleSendConfirmation)
	r.HandleFunc("GET /healthz", a.handleHealthz)
	r.Handle("GET /", web.Handler())

	return useMiddlewares(r,
		a.timeoutMiddleware(requestTimeout),
		a.corsMiddleware(),
		a.loggingMiddleware(),
		a.requestIdMiddleware(),
	)
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
