package gateway

import (
	"github.com/gorilla/websocket"

	"github.com/jmgilman/go/chat/errors"
)

// closeState is the CloseCoder view of a websocket read error.
type closeState struct {
	code int
	ok   bool
}

func (s closeState) CloseCode() (int, bool) {
	return s.code, s.ok
}

// CloseState returns the close code carried by err, if err (or an error it
// wraps) is a *websocket.CloseError.
func CloseState(err error) errors.CloseCoder {
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		return closeState{code: ce.Code, ok: true}
	}
	return closeState{}
}

// Classify converts an error from the websocket connection of shard into an
// error of the taxonomy. Returns nil if err is nil.
//
// A close frame with CloseDisallowedIntents becomes a privileged-intents
// error. Any other close frame becomes a connection-closed error with the
// frame's code and text; fatal codes are classified permanent. Errors without
// a close error (network failures, timeouts) become a retryable
// connection-closed error with code -1 wrapping err.
//
// Errors already in the taxonomy are returned unchanged.
func Classify(err error, shard errors.ShardID) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errors.KindBase) {
		return err
	}

	var ce *websocket.CloseError
	if !errors.As(err, &ce) {
		return errors.NewConnectionClosed(nil, shard, errors.WithCloseCause(err))
	}

	if ce.Code == CloseDisallowedIntents {
		return errors.NewPrivilegedIntentsRequired(shard)
	}

	closed := errors.NewConnectionClosed(CloseState(err), shard,
		errors.WithCloseReason(ce.Text),
		errors.WithCloseCause(err),
	)
	if IsFatalCloseCode(ce.Code) {
		return errors.WithClassification(closed, errors.ClassificationPermanent)
	}
	return closed
}
