package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jmgilman/go/chat/errors"
)

type gatewayResponse struct {
	URL string `json:"url"`
}

// GatewayURL discovers the realtime endpoint by requesting {apiBase}/gateway.
// A nil client uses http.DefaultClient.
//
// Every failure is returned as a KindGatewayNotFound error wrapping the
// cause: a transport error, a non-2xx response, or a body without a URL.
func GatewayURL(ctx context.Context, client *http.Client, apiBase string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	endpoint := strings.TrimRight(apiBase, "/") + "/gateway"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", gatewayNotFound(errors.Wrap(err, errors.KindInvalidArgument, "invalid API base"), endpoint)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", gatewayNotFound(err, endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := CheckResponse(resp); err != nil {
		return "", gatewayNotFound(err, endpoint)
	}

	var body gatewayResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&body); err != nil {
		return "", gatewayNotFound(errors.Wrap(err, errors.KindInvalidData, "malformed gateway response"), endpoint)
	}
	if body.URL == "" {
		return "", gatewayNotFound(errors.New(errors.KindInvalidData, "gateway response has no url"), endpoint)
	}

	return body.URL, nil
}

func gatewayNotFound(cause error, endpoint string) error {
	return errors.WithContext(errors.WrapGatewayNotFound(cause), "endpoint", endpoint)
}
