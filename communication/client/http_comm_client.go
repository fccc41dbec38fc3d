package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(c *Client)

var ErrDecode = errors.New("undecodable response")

// StatusError is returned when the peer answers with a non-200 status.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Client exchanges JSON documents with an external process over HTTP. Every
// call is bounded by a timeout and retried a bounded number of times.
type Client struct {
	serverURL string
	http      *http.Client
	timeout   time.Duration
	retries   int
	backoff   time.Duration
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithRetries(retries int) Option {
	return func(c *Client) {
		if retries >= 0 {
			c.retries = retries
		}
	}
}

func WithBackoff(backoff time.Duration) Option {
	return func(c *Client) {
		if backoff >= 0 {
			c.backoff = backoff
		}
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient initializes and returns a new Client for serverURL.
func NewClient(serverURL string, options ...Option) *Client {
	c := &Client{ // Default values
		serverURL: strings.TrimRight(serverURL, "/"),
		http:      http.DefaultClient,
		timeout:   30 * time.Second,
		retries:   2,
		backoff:   200 * time.Millisecond,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
	}

	var err error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			log.Warn().Err(err).Msgf("retrying %s %s (%d of %d)", method, path, attempt, c.retries)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff * time.Duration(attempt)):
			}
		}

		err = c.once(ctx, method, path, body, out)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil || !retryable(err) {
			return err
		}
	}
	return fmt.Errorf("%s %s failed after %d attempts: %w", method, path, c.retries+1, err)
}

func (c *Client) once(ctx context.Context, method, path string, body []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w from %s %s: %v", ErrDecode, method, path, err)
	}
	return nil
}

// Client errors (4xx) and undecodable payloads will not get better on retry.
func retryable(err error) bool {
	var status *StatusError
	if errors.As(err, &status) {
		return status.Code >= 500
	}
	return !errors.Is(err, ErrDecode)
}
