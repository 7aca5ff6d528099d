package errors

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Response is the part of an HTTP response an HTTPError records.
type Response struct {
	// Status is the numeric status code, e.g. 403.
	Status int

	// Reason is the reason phrase, e.g. "Forbidden".
	Reason string
}

// ResponseFrom captures the status and reason phrase of r.
// The reason is taken from the status line and falls back to the canonical
// text for the status code.
func ResponseFrom(r *http.Response) Response {
	reason := strings.TrimSpace(strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode)))
	if reason == "" {
		reason = http.StatusText(r.StatusCode)
	}
	return Response{Status: r.StatusCode, Reason: reason}
}

// KindForStatus returns the HTTP kind for a response status:
// KindForbidden for 403, KindNotFound for 404, KindServerError for 5xx,
// and KindHTTP otherwise.
func KindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500 && status < 600:
		return KindServerError
	default:
		return KindHTTP
	}
}

// HTTPError is raised when an HTTP request receives a non-success response.
//
// Its kind narrows by status (see KindForStatus), so callers can discriminate
// without inspecting the status themselves:
//
//	if errors.Is(err, errors.KindNotFound) {
//	    // the resource is gone
//	}
type HTTPError struct {
	base
	response Response
	code     int
	text     string
}

// NewHTTPError creates an HTTPError from a response and a plain-text body.
// The platform error code is 0.
//
// Example:
//
//	err := errors.NewHTTPError(errors.Response{Status: 404, Reason: "Not Found"}, "")
//	// err.Error() == "404 Not Found (error code: 0)"
func NewHTTPError(resp Response, text string) *HTTPError {
	return newHTTPError(resp, 0, text)
}

// NewHTTPErrorFromPayload creates an HTTPError from a response and a decoded
// JSON error body. Nested field errors are flattened and appended to the
// text, one "In path: message" line each.
//
// Example:
//
//	err := errors.NewHTTPErrorFromPayload(
//	    errors.Response{Status: 403, Reason: "Forbidden"},
//	    errors.ErrorPayload{Code: 50001, Message: "Missing Access"},
//	)
//	// err.Error() == "403 Forbidden (error code: 50001): Missing Access"
func NewHTTPErrorFromPayload(resp Response, payload ErrorPayload) *HTTPError {
	return newHTTPError(resp, payload.Code, payload.text())
}

func newHTTPError(resp Response, code int, text string) *HTTPError {
	msg := fmt.Sprintf("%d %s (error code: %d)", resp.Status, resp.Reason, code)
	if text != "" {
		msg += ": " + text
	}

	e := &HTTPError{
		base:     newBase(KindForStatus(resp.Status), msg),
		response: resp,
		code:     code,
		text:     text,
	}
	e.classification = classifyStatus(resp.Status)
	e.details = map[string]interface{}{
		"status": resp.Status,
		"reason": resp.Reason,
		"code":   code,
	}
	return e
}

// Response returns the status and reason of the failed response.
func (e *HTTPError) Response() Response {
	return e.response
}

// Status returns the HTTP status code.
func (e *HTTPError) Status() int {
	return e.response.Status
}

// Reason returns the HTTP reason phrase.
func (e *HTTPError) Reason() string {
	return e.response.Reason
}

// Code returns the platform-specific error code, or 0.
func (e *HTTPError) Code() int {
	return e.code
}

// Text returns the error text. Could be an empty string.
func (e *HTTPError) Text() string {
	return e.text
}

func (e *HTTPError) clone() Error {
	c := *e
	return &c
}
