// Package errors provides the structured error taxonomy of the chat client.
//
// Every failure raised by the library (HTTP requests, the gateway session,
// login, interaction responses and application command checks) is an Error
// with a kind, a classification, a human-readable message and, for variants
// that carry them, structured details. The package maintains full
// compatibility with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap).
//
// # Features
//
//   - A closed set of error kinds arranged in a single-rooted hierarchy
//   - Kind discrimination with errors.Is, including whole families
//   - Error classification for retry and resume decisions
//   - Categories separating caller misuse, transport, session, protocol and
//     authorization failures
//   - Display messages that are already safe to show to end users
//   - Flattening of nested platform error payloads
//   - Context metadata attachment for debugging
//   - JSON serialization for logs and APIs
//   - Zero third-party dependencies
//
// # Quick Start
//
// Discriminating by kind:
//
//	switch {
//	case errors.Is(err, errors.KindNotFound):
//	    // 404: the resource is gone
//	case errors.Is(err, errors.KindHTTP):
//	    // any other failed request
//	case errors.Is(err, errors.KindCheckFailure):
//	    // show err.Error() to the invoker
//	}
//
// Reading variant fields:
//
//	var httpErr *errors.HTTPError
//	if errors.As(err, &httpErr) {
//	    log.Printf("status=%d code=%d", httpErr.Status(), httpErr.Code())
//	}
//
// Creating errors:
//
//	err := errors.New(errors.KindInvalidArgument, "limit must be positive")
//	err := errors.NewHTTPErrorFromPayload(errors.ResponseFrom(resp), payload)
//	err := errors.NewConnectionClosed(sock, shard, errors.WithCloseCode(4000))
//	err := errors.NewMissingPermissions([]string{"manage_guild"})
//
// # Error Kinds
//
// The hierarchy mirrors how callers catch failures:
//
//	BASE
//	├── CLIENT
//	│   ├── INVALID_COMMAND_TYPE, INVALID_DATA, INVALID_ARGUMENT, LOGIN_FAILURE
//	│   └── CONNECTION_CLOSED, PRIVILEGED_INTENTS_REQUIRED, INTERACTION_RESPONDED
//	├── NO_MORE_ITEMS
//	├── GATEWAY_NOT_FOUND
//	├── HTTP
//	│   └── FORBIDDEN, NOT_FOUND, SERVER_ERROR
//	└── APPLICATION
//	    └── CHECK_FAILURE
//	        └── CHECK_ANY_FAILURE, NO_PRIVATE_MESSAGE, PRIVATE_MESSAGE_ONLY,
//	            MISSING_ROLE, MISSING_ANY_ROLE, BOT_MISSING_ROLE,
//	            BOT_MISSING_ANY_ROLE, MISSING_PERMISSIONS,
//	            BOT_MISSING_PERMISSIONS, NOT_OWNER, NSFW_CHANNEL_REQUIRED
//
// Errors outside the taxonomy report KindUnknown.
//
// # Error Classification
//
// Errors are classified as either retryable or permanent:
//
//   - Retryable: 5xx and 429 responses, abnormal gateway closures, gateway
//     discovery failures
//   - Permanent: everything else, including failed command checks
//
// Use errors.IsRetryable(err) to make retry decisions. The classification is
// preserved when wrapping errors and can be overridden with WithClassification.
// This package only classifies; it never retries.
//
// # Mention Escaping
//
// Messages of the application family have "@everyone" and "@here" escaped
// with a zero-width space, so echoing them into a channel cannot ping
// anyone. HTTP and gateway messages are left untouched.
//
// # Error Payloads
//
// Failed requests carry a JSON body with a code, a message and a nested
// "errors" tree. ParseErrorPayload decodes it preserving key order, and
// FlattenErrorDetail turns the tree into dotted paths:
//
//	{"embeds": {"0": {"title": {"_errors": [{"message": "Must be 256 or fewer in length."}]}}}}
//
// flattens to "embeds.0.title": "Must be 256 or fewer in length.".
package errors
