package iohttp_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gnames/gnbarcode/internal/iohttp"
	"github.com/gnames/gnbarcode/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func policy() retry.Policy {
	return retry.New(3, time.Millisecond)
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "gnbarcode/")
		fmt.Fprintf(w, "tsn=%s", r.URL.Query().Get("tsn"))
	}))
	defer srv.Close()

	c := iohttp.New(time.Second, policy(), 0)
	res, err := c.Get(context.Background(), srv.URL+"/getFullRecordFromTSN",
		url.Values{"tsn": {"173423"}})
	require.NoError(t, err)
	assert.Equal(t, "tsn=173423", string(res))
}

func TestGetRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := iohttp.New(time.Second, policy(), 0)
	res, err := c.Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(res))
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := iohttp.New(time.Second, policy(), 0)
	_, err := c.Get(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, iohttp.IsRetryable(err))
}

func TestGetExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := iohttp.New(time.Second, policy(), 0)
	_, err := c.Get(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := iohttp.New(time.Second, policy(), 20)
	start := time.Now()
	for range 5 {
		_, err := c.Get(context.Background(), srv.URL, nil)
		require.NoError(t, err)
	}
	// first request is free, four more need 50ms each
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func TestGetCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := iohttp.New(time.Second, retry.New(5, time.Hour), 0)
	_, err := c.Get(ctx, srv.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		msg string
		err error
		res bool
	}{
		{"nil", nil, false},
		{"server error", iohttp.HTTPStatusError("u", 502), true},
		{"too many requests", iohttp.HTTPStatusError("u", 429), true},
		{"bad request", iohttp.HTTPStatusError("u", 400), false},
		{"cancelled", context.Canceled, false},
		{"wrapped cancel", iohttp.HTTPRequestError("u", context.Canceled), false},
		{"deadline", context.DeadlineExceeded, true},
		{"other", errors.New("boom"), false},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, iohttp.IsRetryable(v.err), v.msg)
	}
}
