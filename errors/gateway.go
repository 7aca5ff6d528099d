package errors

import (
	"fmt"
	"strconv"
)

// unknownCloseCode is reported when neither the caller nor the socket knows
// why the connection closed.
const unknownCloseCode = -1

const (
	privilegedIntentsMessage = "Shard ID %s is requesting privileged intents that have not been explicitly enabled in the " +
		"developer portal. It is recommended to go to https://discord.com/developers/applications/ " +
		"and explicitly enable the privileged intents within your application's page. If this is not " +
		"possible, then consider disabling the privileged intents instead."

	interactionRespondedMessage = "This interaction has already been responded to before"
)

// ShardID identifies a gateway shard.
type ShardID int

// NoShard marks a connection that is not sharded.
const NoShard ShardID = -1

// Known reports whether s identifies a shard.
func (s ShardID) Known() bool {
	return s >= 0
}

// String returns the shard number, or "None" for NoShard.
func (s ShardID) String() string {
	if !s.Known() {
		return "None"
	}
	return strconv.Itoa(int(s))
}

// CloseCoder is the socket handle a connection-closed error is built from.
// CloseCode reports the close code the socket observed, if any.
type CloseCoder interface {
	CloseCode() (int, bool)
}

// ClosedOption configures NewConnectionClosed.
type ClosedOption func(*closedOptions)

type closedOptions struct {
	code   int
	reason string
	cause  error
}

// WithCloseCode sets an explicit close code. It takes precedence over the
// code reported by the socket. Zero means unset.
func WithCloseCode(code int) ClosedOption {
	return func(o *closedOptions) { o.code = code }
}

// WithCloseReason sets the close reason, for transports that report one.
func WithCloseReason(reason string) ClosedOption {
	return func(o *closedOptions) { o.reason = reason }
}

// WithCloseCause records the transport error that ended the connection.
func WithCloseCause(cause error) ClosedOption {
	return func(o *closedOptions) { o.cause = cause }
}

// ConnectionClosedError is raised when the gateway connection closes for a
// reason that could not be handled internally.
type ConnectionClosedError struct {
	base
	code   int
	reason string
	shard  ShardID
}

// NewConnectionClosed creates a ConnectionClosedError.
//
// The close code resolves to the explicit code (WithCloseCode) if non-zero,
// else the code reported by socket, else -1. socket may be nil. The reason
// is empty unless WithCloseReason supplies one.
//
// Example:
//
//	err := errors.NewConnectionClosed(sock, 3)
//	// err.Error() == "Shard ID 3 WebSocket closed with 1006"
func NewConnectionClosed(socket CloseCoder, shard ShardID, opts ...ClosedOption) *ConnectionClosedError {
	var o closedOptions
	for _, opt := range opts {
		opt(&o)
	}

	code := o.code
	if code == 0 && socket != nil {
		if c, ok := socket.CloseCode(); ok {
			code = c
		}
	}
	if code == 0 {
		code = unknownCloseCode
	}

	e := &ConnectionClosedError{
		base:   newBase(KindConnectionClosed, fmt.Sprintf("Shard ID %s WebSocket closed with %d", shard, code)),
		code:   code,
		reason: o.reason,
		shard:  shard,
	}
	e.cause = o.cause
	e.details = map[string]interface{}{
		"close_code": code,
		"reason":     o.reason,
	}
	if shard.Known() {
		e.details["shard_id"] = int(shard)
	}
	return e
}

// CloseCode returns the resolved close code, or -1 if unknown.
func (e *ConnectionClosedError) CloseCode() int {
	return e.code
}

// Reason returns the reason provided for the closure. Could be an empty string.
func (e *ConnectionClosedError) Reason() string {
	return e.reason
}

// ShardID returns the shard that got closed, or NoShard.
func (e *ConnectionClosedError) ShardID() ShardID {
	return e.shard
}

func (e *ConnectionClosedError) clone() Error {
	c := *e
	return &c
}

// PrivilegedIntentsError is raised when the gateway requests privileged
// intents that are not enabled for the application in the developer portal.
type PrivilegedIntentsError struct {
	base
	shard ShardID
}

// NewPrivilegedIntentsRequired creates a PrivilegedIntentsError for shard.
func NewPrivilegedIntentsRequired(shard ShardID) *PrivilegedIntentsError {
	e := &PrivilegedIntentsError{
		base:  newBase(KindPrivilegedIntentsRequired, fmt.Sprintf(privilegedIntentsMessage, shard)),
		shard: shard,
	}
	if shard.Known() {
		e.details = map[string]interface{}{"shard_id": int(shard)}
	}
	return e
}

// ShardID returns the shard that requested the intents, or NoShard.
func (e *PrivilegedIntentsError) ShardID() ShardID {
	return e.shard
}

func (e *PrivilegedIntentsError) clone() Error {
	c := *e
	return &c
}

// InteractionRespondedError is raised when a second response is sent to an
// interaction. An interaction can only respond once.
type InteractionRespondedError struct {
	base
	interactionID Snowflake
}

// NewInteractionResponded creates an InteractionRespondedError for the
// interaction with the given id.
func NewInteractionResponded(interactionID Snowflake) *InteractionRespondedError {
	e := &InteractionRespondedError{
		base:          newBase(KindInteractionResponded, interactionRespondedMessage),
		interactionID: interactionID,
	}
	e.details = map[string]interface{}{"interaction_id": interactionID.String()}
	return e
}

// InteractionID returns the id of the interaction already responded to.
func (e *InteractionRespondedError) InteractionID() Snowflake {
	return e.interactionID
}

func (e *InteractionRespondedError) clone() Error {
	c := *e
	return &c
}
