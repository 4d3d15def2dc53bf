package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"techrank/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	telemetry.SetupForTesting(t)

	userAgent := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent <- r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	client := NewClient(Options{UserAgent: "techrank-test"})
	body, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "<html><body>ok</body></html>", body)
	require.Equal(t, "techrank-test", <-userAgent)
}

func TestGetStatusError(t *testing.T) {
	telemetry.SetupForTesting(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient(Options{}).Get(context.Background(), server.URL)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusServiceUnavailable, statusErr.Status)
}

func TestGetUnfollowedRedirect(t *testing.T) {
	telemetry.SetupForTesting(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMultipleChoices)
		w.Write([]byte("<html><body>pick one</body></html>"))
	}))
	defer server.Close()

	body, err := NewClient(Options{}).Get(context.Background(), server.URL)
	require.Empty(t, body)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusMultipleChoices, statusErr.Status)
}

func TestGetTransportError(t *testing.T) {
	telemetry.SetupForTesting(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(Options{Timeout: time.Second}).Get(context.Background(), url)
	require.Error(t, err)

	var statusErr *StatusError
	require.False(t, errors.As(err, &statusErr))
}
