package errors

// ErrorCategory groups kinds by who is expected to act on them.
type ErrorCategory string

const (
	// CategoryGeneral covers library failures with no narrower category.
	CategoryGeneral ErrorCategory = "GENERAL"

	// CategoryUsage covers caller misuse: fix the calling code or credentials.
	CategoryUsage ErrorCategory = "USAGE"

	// CategoryTransport covers failed HTTP requests.
	CategoryTransport ErrorCategory = "TRANSPORT"

	// CategorySession covers gateway session failures that feed reconnection logic.
	CategorySession ErrorCategory = "SESSION"

	// CategoryProtocol covers programmer errors against the platform protocol.
	CategoryProtocol ErrorCategory = "PROTOCOL_MISUSE"

	// CategoryAuthorization covers routine command check failures that are
	// shown to the end user.
	CategoryAuthorization ErrorCategory = "AUTHORIZATION"
)

// kindCategories assigns categories to the kinds that introduce one.
// Other kinds inherit the category of their nearest ancestor.
var kindCategories = map[ErrorKind]ErrorCategory{
	KindBase:                      CategoryGeneral,
	KindUnknown:                   CategoryGeneral,
	KindClient:                    CategoryUsage,
	KindHTTP:                      CategoryTransport,
	KindGatewayNotFound:           CategorySession,
	KindConnectionClosed:          CategorySession,
	KindPrivilegedIntentsRequired: CategorySession,
	KindInteractionResponded:      CategoryProtocol,
	KindApplication:               CategoryAuthorization,
}

// Category returns the category of k.
// Kinds outside the hierarchy are CategoryGeneral.
func (k ErrorKind) Category() ErrorCategory {
	for cur := k; cur != ""; cur = kindParents[cur] {
		if c, ok := kindCategories[cur]; ok {
			return c
		}
	}
	return CategoryGeneral
}
