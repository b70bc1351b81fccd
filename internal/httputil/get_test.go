// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var gotQuery url.Values
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("hello"))
	}))
	defer ts.Close()

	body, err := Get(context.Background(), ts.Client(), ts.URL, url.Values{"term": {"cancer AND 2024"}}, "test/0.1")
	require.NoError(t, err)

	assert.Equal(t, "hello", string(body))
	assert.Equal(t, "cancer AND 2024", gotQuery.Get("term"))
	assert.Equal(t, "test/0.1", gotUA)
}

func TestGet_NoRetryOnErrorStatus(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusNotFound} {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(status)
		}))

		_, err := Get(context.Background(), ts.Client(), ts.URL, nil, "")
		ts.Close()

		var se *StatusError
		require.True(t, errors.As(err, &se), "status %d: want *StatusError, got %v", status, err)
		assert.Equal(t, status, se.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	}
}

func TestGet_ClientTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	client := ts.Client()
	client.Timeout = 50 * time.Millisecond

	_, err := Get(context.Background(), client, ts.URL, nil, "")
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestGet_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, nil, "")
	assert.ErrorIs(t, err, context.Canceled)
}
