package dynamo

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/finwise-academy/webinar-checkout/registrant"
	"golang.org/x/sync/singleflight"
)

const DefaultConnectTimeout = 10 * time.Second

type OpenFunc func(ctx context.Context) (registrant.Repository, error)

// Connector lazily opens the store handle and then reuses it for the
// life of the process. Concurrent callers racing on the first Connect
// share one in-flight attempt instead of opening duplicate handles.
type Connector struct {
	open    OpenFunc
	timeout time.Duration

	group singleflight.Group
	mu    sync.Mutex
	repo  registrant.Repository
}

func NewConnector(timeout time.Duration, open OpenFunc) *Connector {
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	return &Connector{
		open:    open,
		timeout: timeout,
	}
}

func (c *Connector) Connect(ctx context.Context) (registrant.Repository, error) {
	c.mu.Lock()
	repo := c.repo
	c.mu.Unlock()
	if repo != nil {
		return repo, nil
	}

	v, err, _ := c.group.Do("connect", func() (any, error) {
		// Detached from the triggering request so one caller's
		// cancellation doesn't fail everyone sharing the attempt.
		openCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		repo, err := c.open(openCtx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.repo = repo
		c.mu.Unlock()

		return repo, nil
	})
	if err != nil {
		return nil, registrant.NewStoreUnavailableError("Failed to connect to dynamo", err)
	}

	return v.(registrant.Repository), nil
}

// Open builds the production OpenFunc: load AWS config, create the
// client, and prove the table is reachable before handing the repo out.
func Open(tableName string) OpenFunc {
	return func(ctx context.Context) (registrant.Repository, error) {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}

		client := dynamodb.NewFromConfig(cfg)

		_, err = client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(tableName),
		})
		if err != nil {
			return nil, err
		}

		return NewDB(client, tableName), nil
	}
}
