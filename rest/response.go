package rest

import (
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/jmgilman/go/chat/errors"
)

// maxErrorBodySize caps how much of an error body is read.
const maxErrorBodySize = 1 << 20

const loginFailureMessage = "Improper token has been passed."

// CheckResponse returns nil for a 2xx response and an *errors.HTTPError
// otherwise. The body is read but not closed.
//
// The returned error carries the request method and URL (without query
// string) as context when resp.Request is set.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	httpErr := newHTTPError(resp)
	if resp.Request == nil {
		return httpErr
	}

	return errors.WithContextMap(httpErr, map[string]interface{}{
		"method": resp.Request.Method,
		"url":    redactURL(resp.Request.URL),
	})
}

// CheckLogin checks the response of a login request. A 401 becomes a
// KindLoginFailure error wrapping the HTTP error; other failures are returned
// as CheckResponse returns them.
func CheckLogin(resp *http.Response) error {
	err := CheckResponse(resp)
	if err == nil {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.Wrap(err, errors.KindLoginFailure, loginFailureMessage)
	}
	return err
}

func newHTTPError(resp *http.Response) *errors.HTTPError {
	r := errors.ResponseFrom(resp)

	// A short read still yields a useful error; the status is what failed.
	var body []byte
	if resp.Body != nil {
		body, _ = io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	}

	if isJSON(resp.Header.Get("Content-Type")) {
		if payload, err := errors.ParseErrorPayload(body); err == nil {
			return errors.NewHTTPErrorFromPayload(r, payload)
		}
	}
	return errors.NewHTTPError(r, string(body))
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

// redactURL drops the query string and user info, which may hold tokens.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	c := *u
	c.User = nil
	c.RawQuery = ""
	c.ForceQuery = false
	c.Fragment = ""
	c.RawFragment = ""
	return c.String()
}
