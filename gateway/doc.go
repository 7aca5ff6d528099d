// Package gateway maps failures of the realtime websocket session onto the
// error taxonomy.
//
// The read loop of a session hands every error it gets from the connection
// to Classify together with the shard it belongs to:
//
//	_, data, err := conn.ReadMessage()
//	if err != nil {
//	    err = gateway.Classify(err, shard)
//	    if errors.IsRetryable(err) {
//	        // reconnect and resume
//	    }
//	    return err
//	}
//
// Close frames carrying the platform's fatal close codes (authentication
// failed, invalid shard, sharding required, invalid API version, invalid or
// disallowed intents) are classified permanent, so a reconnect loop stops
// instead of hammering the gateway.
package gateway
