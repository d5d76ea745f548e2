package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

const (
	razorpayKeySecretParam = "/webinar-checkout/razorpay-key-secret"
	smtpPasswordParam      = "/webinar-checkout/smtp-password"
)

// loadProdSecrets fills in the secrets that never live in plain env
// vars in prod.
func loadProdSecrets(ctx context.Context, cfg *Config) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to get aws config: %w", err)
	}

	ssmClient := ssm.NewFromConfig(awsCfg)

	cfg.RazorpayKeySecret, err = fetchSecret(ctx, ssmClient, razorpayKeySecretParam)
	if err != nil {
		return err
	}

	cfg.SMTPPassword, err = fetchSecret(ctx, ssmClient, smtpPasswordParam)
	if err != nil {
		return err
	}

	return nil
}

func fetchSecret(ctx context.Context, client *ssm.Client, name string) (string, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch ssm parameter %q: %w", name, err)
	}

	return aws.ToString(out.Parameter.Value), nil
}
