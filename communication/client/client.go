package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"blokus/communication"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

type Option func(c *Client)

// Client asks a remote host for moves. Transport failures and 5xx answers
// are retried with backoff; anything else is returned at once.
type Client struct {
	baseURL  string
	http     *http.Client
	attempts uint
	delay    time.Duration
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithAttempts(attempts uint) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
	}
}

func WithDelay(delay time.Duration) Option {
	return func(c *Client) {
		if delay > 0 {
			c.delay = delay
		}
	}
}

func NewClient(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 30 * time.Second},
		attempts: 3,
		delay:    100 * time.Millisecond,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// FindMove posts req to the master endpoint. A nil response with a nil error
// means the host chose to pass.
func (c *Client) FindMove(ctx context.Context, req communication.Request) (*communication.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	return retry.DoWithData(
		func() (*communication.Response, error) {
			return c.post(ctx, body)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Str("url", c.baseURL).Msg("find move failed, retrying")
		}),
	)
}

func (c *Client) post(ctx context.Context, body []byte) (*communication.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/computer/master", bytes.NewReader(body))
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach host: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("host returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, err
		}
		return nil, retry.Unrecoverable(err)
	}

	var move *communication.Response
	if err := json.NewDecoder(resp.Body).Decode(&move); err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to decode response: %w", err))
	}
	return move, nil
}
