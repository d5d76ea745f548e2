package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rhymond/go-money"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/finwise-academy/webinar-checkout/api"
	"github.com/finwise-academy/webinar-checkout/dynamo"
	"github.com/finwise-academy/webinar-checkout/razorpay"
	"github.com/finwise-academy/webinar-checkout/registrant"
)

func main() {
	bootstrap := flag.Bool("bootstrap", false, "create the dynamo table if it does not exist, then exit")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := loadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *bootstrap {
		if err := bootstrapTable(ctx, cfg.TableName); err != nil {
			logger.Error("failed to bootstrap table", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("table ready", slog.String("table", cfg.TableName))
		return
	}

	if cfg.Env == api.PROD {
		if err := loadProdSecrets(ctx, &cfg); err != nil {
			logger.Error("failed to load secrets", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	course := registrant.Course{
		ID:    cfg.CourseID,
		Name:  cfg.CourseName,
		Price: money.New(cfg.PriceMinorUnits, cfg.Currency),
	}

	connector := dynamo.NewConnector(dynamo.DefaultConnectTimeout, dynamo.Open(cfg.TableName))
	gateway := razorpay.NewGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	emailSender := createEmailSender(logger, cfg)

	checkoutAPI := api.NewAPI(connector, gateway, emailSender, logger, cfg.Env, course, cfg.SMTPFrom, cfg.AllowedOrigin)

	s := &http.Server{
		Handler:           checkoutAPI.Handler(),
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
		}
	}()

	logger.Info("listening", slog.String("addr", s.Addr))
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func bootstrapTable(ctx context.Context, tableName string) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to get aws config: %w", err)
	}

	return dynamo.EnsureTable(ctx, dynamodb.NewFromConfig(awsCfg), tableName)
}
