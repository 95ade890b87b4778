// Package iohttp provides an HTTP client for remote web services with
// request rate limits and retries.
package iohttp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/gnbarcode"
	"github.com/gnames/gnbarcode/pkg/retry"
	"golang.org/x/time/rate"
)

// Client sends GET requests to one web service.
type Client struct {
	client  *http.Client
	limiter *rate.Limiter
	policy  retry.Policy
	agent   string
}

// New creates a Client. Every request is limited by timeout, failed
// requests are repeated according to the policy. If rps is positive,
// no more than rps requests per second are sent.
func New(timeout time.Duration, policy retry.Policy, rps int) *Client {
	res := &Client{
		client: &http.Client{Timeout: timeout},
		policy: policy,
		agent:  "gnbarcode/" + gnbarcode.Version,
	}
	if res.policy.Retryable == nil {
		res.policy.Retryable = IsRetryable
	}
	if rps > 0 {
		res.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return res
}

// Get sends a GET request and returns the body of the response.
func (c *Client) Get(
	ctx context.Context,
	endpoint string,
	params url.Values,
) ([]byte, error) {
	u := endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var res []byte
	err := c.policy.Do(ctx, endpoint, func() error {
		var err error
		res, err = c.get(ctx, u)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, HTTPRequestError(u, err)
	}
	req.Header.Set("User-Agent", c.agent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, HTTPRequestError(u, err)
	}
	defer resp.Body.Close()

	slog.Debug("HTTP request",
		"url", u,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, HTTPStatusError(u, resp.StatusCode)
	}

	res, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, HTTPRequestError(u, err)
	}
	return res, nil
}

// IsRetryable tells if a failed request might succeed later. Network
// failures, timeouts, server errors and rate limit responses are
// retryable, other client errors and cancellation are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Err != nil {
		err = gnErr.Err
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500 || se.Code == http.StatusTooManyRequests
	}

	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded)
}
