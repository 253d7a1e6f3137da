package opener

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/onurcolak/direct-message-service/environments"
	"github.com/onurcolak/direct-message-service/pkg/logger"
)

const APIKeyHeader = "x-api-key"

type openRequest struct {
	URL string `json:"url"`
}

type canOpenResponse struct {
	CanOpen bool `json:"canOpen"`
}

// Client asks the device bridge to launch deep links on the user's device.
// Open goes through a client without retries: a retried launch could open
// the chat twice.
type Client struct {
	httpClient *resty.Client
	openClient *resty.Client
	baseURL    string
}

func NewOpenerClient(cfg environments.OpenerConfig) *Client {
	return &Client{
		httpClient: newRestClient(cfg, 2),
		openClient: newRestClient(cfg, 0),
		baseURL:    cfg.URL,
	}
}

func newRestClient(cfg environments.OpenerConfig, retries int) *resty.Client {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(300*time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.APIKey != "" {
		client.SetHeader(APIKeyHeader, cfg.APIKey)
	}

	return client
}

// CanOpen reports whether an installed app handles the link's scheme.
func (c *Client) CanOpen(ctx context.Context, link string) (bool, error) {
	var result canOpenResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(openRequest{URL: link}).
		SetResult(&result).
		Post("/can-open")
	if err != nil {
		return false, fmt.Errorf("failed to send can-open request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return false, fmt.Errorf("unexpected status code: %d (expected 200), body: %s", resp.StatusCode(), resp.String())
	}

	return result.CanOpen, nil
}

func (c *Client) Open(ctx context.Context, link string) error {
	startTime := time.Now()

	resp, err := c.openClient.R().
		SetContext(ctx).
		SetBody(openRequest{URL: link}).
		Post("/open")

	duration := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("failed to send open request: %w", err)
	}

	logger.Infof("Open request to %s completed in %v (status: %d)", c.baseURL, duration, resp.StatusCode())

	if !resp.IsSuccess() {
		return fmt.Errorf("device refused to open link: status %d, body: %s", resp.StatusCode(), resp.String())
	}

	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.httpClient.R().SetContext(ctx).Get("/health")
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("opener health returned status %d", resp.StatusCode())
	}
	return nil
}

func (c *Client) GetURL() string {
	return c.baseURL
}
