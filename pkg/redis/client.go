package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/onurcolak/direct-message-service/environments"
	"github.com/onurcolak/direct-message-service/pkg/logger"
	"github.com/valkey-io/valkey-go"
)

// Client is the Valkey-backed key-value store for history and settings.
type Client struct {
	client valkey.Client
	prefix string
}

func NewRedisClient(cfg environments.RedisConfig) (*Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)},
		Password:    cfg.Password,
		SelectDB:    cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Valkey client: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Infof("Connected to Redis (via Valkey client)")

	return &Client{client: client, prefix: cfg.KeyPrefix}, nil
}

// Get returns the stored value and whether the key exists.
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	result := c.client.Do(ctx, c.client.B().Get().Key(c.prefix+key).Build())
	if err := result.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get key %q: %w", key, err)
	}

	data, err := result.ToString()
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return data, true, nil
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	err := c.client.Do(ctx, c.client.B().Set().Key(c.prefix+key).Value(value).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}

	logger.Debugf("Stored %d bytes under %s%s", len(value), c.prefix, key)

	return nil
}

func (c *Client) Close() error {
	c.client.Close()
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}
