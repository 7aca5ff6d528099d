// Package errors provides the error taxonomy of the chat client library.
// It extends Go's standard error handling with error kinds arranged in a
// single-rooted hierarchy, retry classification, categories, and
// human-readable display messages derived from platform error payloads.
package errors

import "strings"

// ErrorKind identifies a specific failure variant.
// Kinds are string-based for debuggability and natural JSON serialization.
//
// ErrorKind implements error so a kind can be used as the target of
// errors.Is. The match succeeds for the kind itself and for every kind that
// descends from it:
//
//	if errors.Is(err, errors.KindCheckFailure) {
//	    // any application check failure
//	}
type ErrorKind string

const (
	// KindBase is the root of every failure raised by the library.
	KindBase ErrorKind = "BASE"

	// KindUnknown is reported for errors that are not part of the taxonomy.
	// It has no parent.
	KindUnknown ErrorKind = "UNKNOWN"

	// Client errors.

	// KindClient indicates an operation failed because of caller input.
	KindClient ErrorKind = "CLIENT"

	// KindInvalidCommandType indicates an unhandled application command type.
	KindInvalidCommandType ErrorKind = "INVALID_COMMAND_TYPE"

	// KindInvalidData indicates unknown or invalid data was received from the platform.
	KindInvalidData ErrorKind = "INVALID_DATA"

	// KindInvalidArgument indicates an argument had the wrong value or type.
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"

	// KindLoginFailure indicates the platform rejected the supplied credentials.
	KindLoginFailure ErrorKind = "LOGIN_FAILURE"

	// Iteration.

	// KindNoMoreItems indicates a lazily produced sequence is exhausted.
	KindNoMoreItems ErrorKind = "NO_MORE_ITEMS"

	// HTTP errors.

	// KindHTTP indicates an HTTP request received a non-success response.
	KindHTTP ErrorKind = "HTTP"

	// KindForbidden indicates a 403 response.
	KindForbidden ErrorKind = "FORBIDDEN"

	// KindNotFound indicates a 404 response.
	KindNotFound ErrorKind = "NOT_FOUND"

	// KindServerError indicates a 5xx response.
	KindServerError ErrorKind = "SERVER_ERROR"

	// Session errors.

	// KindGatewayNotFound indicates discovery of the realtime endpoint failed.
	KindGatewayNotFound ErrorKind = "GATEWAY_NOT_FOUND"

	// KindConnectionClosed indicates the gateway websocket closed abnormally.
	KindConnectionClosed ErrorKind = "CONNECTION_CLOSED"

	// KindPrivilegedIntentsRequired indicates the gateway rejected the
	// subscription because privileged intents are not enabled.
	KindPrivilegedIntentsRequired ErrorKind = "PRIVILEGED_INTENTS_REQUIRED"

	// KindInteractionResponded indicates a second response to one interaction.
	KindInteractionResponded ErrorKind = "INTERACTION_RESPONDED"

	// Application command errors.

	// KindApplication is the root of all application command errors.
	KindApplication ErrorKind = "APPLICATION"

	// KindCheckFailure indicates a command check predicate failed.
	KindCheckFailure ErrorKind = "CHECK_FAILURE"

	// KindCheckAnyFailure indicates every predicate of an any-of check failed.
	KindCheckAnyFailure ErrorKind = "CHECK_ANY_FAILURE"

	// KindNoPrivateMessage indicates the command cannot run in private messages.
	KindNoPrivateMessage ErrorKind = "NO_PRIVATE_MESSAGE"

	// KindPrivateMessageOnly indicates the command only runs in private messages.
	KindPrivateMessageOnly ErrorKind = "PRIVATE_MESSAGE_ONLY"

	// KindMissingRole indicates the invoker lacks a required role.
	KindMissingRole ErrorKind = "MISSING_ROLE"

	// KindMissingAnyRole indicates the invoker has none of the accepted roles.
	KindMissingAnyRole ErrorKind = "MISSING_ANY_ROLE"

	// KindBotMissingRole indicates the bot member lacks a required role.
	KindBotMissingRole ErrorKind = "BOT_MISSING_ROLE"

	// KindBotMissingAnyRole indicates the bot member has none of the accepted roles.
	KindBotMissingAnyRole ErrorKind = "BOT_MISSING_ANY_ROLE"

	// KindMissingPermissions indicates the invoker lacks permissions.
	KindMissingPermissions ErrorKind = "MISSING_PERMISSIONS"

	// KindBotMissingPermissions indicates the bot member lacks permissions.
	KindBotMissingPermissions ErrorKind = "BOT_MISSING_PERMISSIONS"

	// KindNotOwner indicates the invoker does not own the bot.
	KindNotOwner ErrorKind = "NOT_OWNER"

	// KindNSFWChannelRequired indicates the channel is not marked NSFW.
	KindNSFWChannelRequired ErrorKind = "NSFW_CHANNEL_REQUIRED"
)

// kindParents maps every kind in the hierarchy to its parent.
// KindBase maps to the empty kind.
var kindParents = map[ErrorKind]ErrorKind{
	KindBase: "",

	KindClient:                    KindBase,
	KindInvalidCommandType:        KindClient,
	KindInvalidData:               KindClient,
	KindInvalidArgument:           KindClient,
	KindLoginFailure:              KindClient,
	KindConnectionClosed:          KindClient,
	KindPrivilegedIntentsRequired: KindClient,
	KindInteractionResponded:      KindClient,

	KindNoMoreItems:     KindBase,
	KindGatewayNotFound: KindBase,

	KindHTTP:        KindBase,
	KindForbidden:   KindHTTP,
	KindNotFound:    KindHTTP,
	KindServerError: KindHTTP,

	KindApplication:           KindBase,
	KindCheckFailure:          KindApplication,
	KindCheckAnyFailure:       KindCheckFailure,
	KindNoPrivateMessage:      KindCheckFailure,
	KindPrivateMessageOnly:    KindCheckFailure,
	KindMissingRole:           KindCheckFailure,
	KindMissingAnyRole:        KindCheckFailure,
	KindBotMissingRole:        KindCheckFailure,
	KindBotMissingAnyRole:     KindCheckFailure,
	KindMissingPermissions:    KindCheckFailure,
	KindBotMissingPermissions: KindCheckFailure,
	KindNotOwner:              KindCheckFailure,
	KindNSFWChannelRequired:   KindCheckFailure,
}

// Error implements error so kinds can be used as errors.Is targets.
func (k ErrorKind) Error() string {
	return string(k)
}

// Known reports whether k is part of the hierarchy.
func (k ErrorKind) Known() bool {
	_, ok := kindParents[k]
	return ok
}

// Parent returns the kind k directly descends from.
// Returns the empty kind for KindBase and for kinds outside the hierarchy.
func (k ErrorKind) Parent() ErrorKind {
	return kindParents[k]
}

// IsA reports whether k is ancestor or one of its descendants.
func (k ErrorKind) IsA(ancestor ErrorKind) bool {
	for cur := k; cur != ""; cur = kindParents[cur] {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// describe renders the kind as lower-case words, e.g. "not owner".
func (k ErrorKind) describe() string {
	return strings.ToLower(strings.ReplaceAll(string(k), "_", " "))
}
