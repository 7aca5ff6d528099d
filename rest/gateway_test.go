package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmgilman/go/chat/errors"
	"github.com/stretchr/testify/require"
)

func gatewayServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v10/gateway" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGatewayURL(t *testing.T) {
	srv := gatewayServer(t, http.StatusOK, `{"url": "wss://gateway.example.test"}`)

	got, err := GatewayURL(context.Background(), srv.Client(), srv.URL+"/api/v10/")

	require.NoError(t, err)
	require.Equal(t, "wss://gateway.example.test", got)
}

func TestGatewayURL_Failures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		causeKind errors.ErrorKind
		retryable bool
	}{
		{
			name:      "server error",
			status:    http.StatusServiceUnavailable,
			body:      `{"message": "upstream"}`,
			causeKind: errors.KindServerError,
			retryable: true,
		},
		{
			name:      "unauthorized",
			status:    http.StatusUnauthorized,
			body:      `{"message": "401: Unauthorized", "code": 0}`,
			causeKind: errors.KindHTTP,
			retryable: false,
		},
		{
			name:      "missing url",
			status:    http.StatusOK,
			body:      `{}`,
			causeKind: errors.KindInvalidData,
		},
		{
			name:      "malformed body",
			status:    http.StatusOK,
			body:      `not json`,
			causeKind: errors.KindInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := gatewayServer(t, tt.status, tt.body)

			got, err := GatewayURL(context.Background(), srv.Client(), srv.URL+"/api/v10")

			require.Empty(t, got)
			require.Equal(t, errors.KindGatewayNotFound, errors.GetKind(err))
			require.Equal(t, "The gateway to connect to discord was not found.", errors.ToJSON(err).Message)
			require.True(t, errors.Is(err, tt.causeKind))
			require.Equal(t, tt.retryable, errors.IsRetryable(err))

			var e errors.Error
			require.True(t, errors.As(err, &e))
			require.Equal(t, srv.URL+"/api/v10/gateway", e.Context()["endpoint"])
		})
	}
}

func TestGatewayURL_TransportError(t *testing.T) {
	srv := gatewayServer(t, http.StatusOK, `{"url": "wss://x"}`)
	base := srv.URL
	srv.Close()

	_, err := GatewayURL(context.Background(), nil, base)

	require.Equal(t, errors.KindGatewayNotFound, errors.GetKind(err))
	require.True(t, errors.IsRetryable(err))

	var e errors.Error
	require.True(t, errors.As(err, &e))
	require.NotNil(t, e.Unwrap())
}

func TestGatewayURL_CanceledContext(t *testing.T) {
	srv := gatewayServer(t, http.StatusOK, `{"url": "wss://x"}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GatewayURL(ctx, srv.Client(), srv.URL)

	require.Equal(t, errors.KindGatewayNotFound, errors.GetKind(err))
	require.ErrorIs(t, err, context.Canceled)
}
