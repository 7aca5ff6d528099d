package gateway

// Close codes sent by the gateway when it ends a session.
const (
	CloseUnknownError         = 4000
	CloseUnknownOpcode        = 4001
	CloseDecodeError          = 4002
	CloseNotAuthenticated     = 4003
	CloseAuthenticationFailed = 4004
	CloseAlreadyAuthenticated = 4005
	CloseInvalidSequence      = 4007
	CloseRateLimited          = 4008
	CloseSessionTimedOut      = 4009
	CloseInvalidShard         = 4010
	CloseShardingRequired     = 4011
	CloseInvalidAPIVersion    = 4012
	CloseInvalidIntents       = 4013
	CloseDisallowedIntents    = 4014
)

var fatalCloseCodes = map[int]bool{
	CloseAuthenticationFailed: true,
	CloseInvalidShard:         true,
	CloseShardingRequired:     true,
	CloseInvalidAPIVersion:    true,
	CloseInvalidIntents:       true,
	CloseDisallowedIntents:    true,
}

// IsFatalCloseCode reports whether reconnecting after code cannot succeed.
func IsFatalCloseCode(code int) bool {
	return fatalCloseCodes[code]
}
