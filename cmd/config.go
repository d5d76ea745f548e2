package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/finwise-academy/webinar-checkout/api"
)

type Config struct {
	Host string
	Port string
	Env  api.Environment

	TableName string

	CourseID        string
	CourseName      string
	PriceMinorUnits int64
	Currency        string

	RazorpayKeyID     string
	RazorpayKeySecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	AllowedOrigin string
}

// loadConfigFromEnv reads every setting up front. A missing required
// value is fatal at startup, never a per-request surprise; all missing
// keys are reported at once.
func loadConfigFromEnv() (Config, error) {
	var missing []string

	requireEnv := func(key string) string {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := Config{
		Host: getEnvOrDefault("HOST", "0.0.0.0"),
		Port: getEnvOrDefault("PORT", "8080"),

		TableName: requireEnv("DYNAMO_TABLE_NAME"),

		CourseID:   requireEnv("WEBINAR_COURSE_ID"),
		CourseName: getEnvOrDefault("WEBINAR_COURSE_NAME", "Mutual Fund Masterclass"),
		Currency:   getEnvOrDefault("COURSE_CURRENCY", "INR"),

		RazorpayKeyID: requireEnv("RAZORPAY_KEY_ID"),

		SMTPHost: requireEnv("SMTP_HOST"),
		SMTPUser: requireEnv("SMTP_USER"),
		SMTPFrom: requireEnv("SMTP_FROM"),

		AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", "https://finwise.academy"),
	}

	switch env := getEnvOrDefault("ENV", "local"); env {
	case "local":
		cfg.Env = api.LOCAL
	case "prod":
		cfg.Env = api.PROD
	default:
		return Config{}, fmt.Errorf("unknown ENV value %q, must be local or prod", env)
	}

	price, err := strconv.ParseInt(requireEnv("COURSE_PRICE_MINOR_UNITS"), 10, 64)
	if err == nil {
		cfg.PriceMinorUnits = price
	}

	smtpPort, err := strconv.Atoi(requireEnv("SMTP_PORT"))
	if err == nil {
		cfg.SMTPPort = smtpPort
	}

	// Secrets come straight from env locally; prod fetches them from
	// the parameter store after this returns.
	if cfg.Env == api.LOCAL {
		cfg.RazorpayKeySecret = requireEnv("RAZORPAY_KEY_SECRET")
		cfg.SMTPPassword = requireEnv("SMTP_PASSWORD")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if cfg.PriceMinorUnits <= 0 {
		return Config{}, fmt.Errorf("COURSE_PRICE_MINOR_UNITS must be a positive integer")
	}
	if cfg.SMTPPort <= 0 {
		return Config{}, fmt.Errorf("SMTP_PORT must be a positive integer")
	}

	return cfg, nil
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}
