package errors_test

import (
	"encoding/json"
	"fmt"

	"github.com/jmgilman/go/chat/errors"
)

func ExampleNew() {
	err := errors.New(errors.KindInvalidArgument, "limit must be between 1 and 100")
	fmt.Println(err.Error())
	// Output: limit must be between 1 and 100
}

func ExampleNewf() {
	err := errors.Newf(errors.KindInvalidCommandType, "unhandled command type: %d", 9)
	fmt.Println(err.Error())
	// Output: unhandled command type: 9
}

func ExampleWrap() {
	// Simulate a rejected login request
	httpErr := errors.NewHTTPError(errors.Response{Status: 401, Reason: "Unauthorized"}, "401: Unauthorized")

	err := errors.Wrap(httpErr, errors.KindLoginFailure, "Improper token has been passed.")

	fmt.Println(errors.GetKind(err))
	fmt.Println(errors.Is(err, errors.KindHTTP))
	// Output:
	// LOGIN_FAILURE
	// true
}

func ExampleWithContext() {
	err := errors.NewHTTPError(errors.Response{Status: 404, Reason: "Not Found"}, "Unknown Channel")
	err2 := errors.WithContext(err, "method", "GET")
	err2 = errors.WithContext(err2, "route", "/channels/{channel_id}")

	ctx := err2.Context()
	fmt.Printf("%s %s\n", ctx["method"], ctx["route"])
	// Output: GET /channels/{channel_id}
}

func ExampleWithContextMap() {
	err := errors.WithContextMap(errors.NewNotOwner("You do not own this bot."), map[string]interface{}{
		"command":  "shutdown",
		"guild_id": "81384788765712384",
	})

	ctx := err.Context()
	fmt.Printf("Command: %s, Guild: %s\n", ctx["command"], ctx["guild_id"])
	// Output: Command: shutdown, Guild: 81384788765712384
}

func ExampleIsRetryable() {
	unavailable := errors.NewHTTPError(errors.Response{Status: 503, Reason: "Service Unavailable"}, "")
	fmt.Println("503 retryable:", errors.IsRetryable(unavailable))

	forbidden := errors.NewHTTPError(errors.Response{Status: 403, Reason: "Forbidden"}, "")
	fmt.Println("403 retryable:", errors.IsRetryable(forbidden))

	// Output:
	// 503 retryable: true
	// 403 retryable: false
}

func ExampleIs() {
	err := errors.NewMissingPermissions([]string{"manage_guild"})

	switch {
	case errors.Is(err, errors.KindHTTP):
		fmt.Println("request failed")
	case errors.Is(err, errors.KindCheckFailure):
		fmt.Println(err)
	}

	// Output: You are missing Manage Server permission(s) to run this command.
}

func ExampleAs() {
	err := fmt.Errorf("send message: %w", errors.NewHTTPErrorFromPayload(
		errors.Response{Status: 403, Reason: "Forbidden"},
		errors.ErrorPayload{Code: 50013, Message: "Missing Permissions"},
	))

	var httpErr *errors.HTTPError
	if errors.As(err, &httpErr) {
		fmt.Println("Status:", httpErr.Status())
		fmt.Println("Code:", httpErr.Code())
	}

	// Output:
	// Status: 403
	// Code: 50013
}

func ExampleWithClassification() {
	err := errors.NewConnectionClosed(nil, 0, errors.WithCloseCode(4004))
	fmt.Println("Default:", errors.IsRetryable(err))

	// Authentication failed: reconnecting will not help
	overridden := errors.WithClassification(err, errors.ClassificationPermanent)
	fmt.Println("Overridden:", errors.IsRetryable(overridden))

	// Output:
	// Default: true
	// Overridden: false
}

func ExampleNewConnectionClosed() {
	err := errors.NewConnectionClosed(nil, errors.NoShard, errors.WithCloseCode(4000))
	fmt.Println(err)
	// Output: Shard ID None WebSocket closed with 4000
}

func ExampleNewMissingAnyRole() {
	err := errors.NewMissingAnyRole([]errors.RoleRef{
		errors.RoleByName("Moderator"),
		errors.RoleByName("Admin"),
		errors.RoleByID(81384788765712384),
	})
	fmt.Println(err)
	// Output: You are missing at least one of the required roles: 'Moderator', 'Admin', or '81384788765712384'
}

func ExampleParseErrorPayload() {
	body := []byte(`{
		"code": 50035,
		"message": "Invalid Form Body",
		"errors": {
			"embeds": {"0": {"title": {"_errors": [{"code": "BASE_TYPE_MAX_LENGTH", "message": "Must be 256 or fewer in length."}]}}},
			"content": {"_errors": [{"code": "BASE_TYPE_REQUIRED", "message": "This field is required"}]}
		}
	}`)

	payload, err := errors.ParseErrorPayload(body)
	if err != nil {
		fmt.Println(err)
		return
	}

	httpErr := errors.NewHTTPErrorFromPayload(errors.Response{Status: 400, Reason: "Bad Request"}, payload)
	fmt.Println(httpErr)

	// Output:
	// 400 Bad Request (error code: 50035): Invalid Form Body
	// In embeds.0.title: Must be 256 or fewer in length.
	// In content: This field is required
}

func ExampleFlattenErrorDetail() {
	var detail errors.ErrorDetail
	_ = json.Unmarshal([]byte(`{"name": {"_errors": [{"message": "Too short."}, {"message": "Invalid."}]}, "tts": "Must be a boolean."}`), &detail)

	for _, f := range errors.FlattenErrorDetail(detail) {
		fmt.Printf("%s: %s\n", f.Path, f.Message)
	}

	// Output:
	// name: Too short. Invalid.
	// tts: Must be a boolean.
}

func ExampleToJSON() {
	err := errors.NewNSFWChannelRequired(errors.ChannelRef{ID: 41771983423143937, Name: "general"})
	werr := errors.WithContext(err, "command", "meme")

	response := errors.ToJSON(werr)
	jsonBytes, _ := json.MarshalIndent(response, "", "  ")
	fmt.Println(string(jsonBytes))

	// Output:
	// {
	//   "kind": "NSFW_CHANNEL_REQUIRED",
	//   "category": "AUTHORIZATION",
	//   "message": "Channel 'general' needs to be NSFW for this command to work.",
	//   "classification": "PERMANENT",
	//   "details": {
	//     "channel_id": "41771983423143937",
	//     "channel_name": "general"
	//   },
	//   "context": {
	//     "command": "meme"
	//   }
	// }
}

// Example_workflow shows a failure travelling from the transport up to a
// command handler.
func Example_workflow() {
	// Transport layer: the request came back 503
	httpErr := errors.NewHTTPError(errors.Response{Status: 503, Reason: "Service Unavailable"}, "upstream connect error")

	// Session layer: gateway discovery failed because of it
	gwErr := errors.Wrap(httpErr, errors.KindGatewayNotFound, "The gateway to connect to discord was not found.")
	gwErr = errors.WithContext(gwErr, "endpoint", "/gateway")

	fmt.Println("Retryable:", errors.IsRetryable(gwErr))
	fmt.Println("Kind:", errors.GetKind(gwErr))
	fmt.Println("Category:", errors.GetCategory(gwErr))

	response := errors.ToJSON(gwErr)
	fmt.Println("API Kind:", response.Kind)
	fmt.Println("API Message:", response.Message)

	// Output:
	// Retryable: true
	// Kind: GATEWAY_NOT_FOUND
	// Category: SESSION
	// API Kind: GATEWAY_NOT_FOUND
	// API Message: The gateway to connect to discord was not found.
}
