package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKind_IsA(t *testing.T) {
	tests := []struct {
		name     string
		kind     ErrorKind
		ancestor ErrorKind
		want     bool
	}{
		{"kind is itself", KindForbidden, KindForbidden, true},
		{"forbidden is http", KindForbidden, KindHTTP, true},
		{"forbidden is base", KindForbidden, KindBase, true},
		{"forbidden is not client", KindForbidden, KindClient, false},
		{"missing role is check failure", KindMissingRole, KindCheckFailure, true},
		{"missing role is application", KindMissingRole, KindApplication, true},
		{"check failure is not missing role", KindCheckFailure, KindMissingRole, false},
		{"connection closed is client", KindConnectionClosed, KindClient, true},
		{"login failure is client", KindLoginFailure, KindClient, true},
		{"no more items is not client", KindNoMoreItems, KindClient, false},
		{"gateway not found is base", KindGatewayNotFound, KindBase, true},
		{"unknown is not base", KindUnknown, KindBase, false},
		{"unknown is itself", KindUnknown, KindUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.IsA(tt.ancestor))
		})
	}
}

func TestErrorKind_AllRootedAtBase(t *testing.T) {
	for kind := range kindParents {
		t.Run(string(kind), func(t *testing.T) {
			require.True(t, kind.IsA(KindBase))
			require.True(t, kind.Known())
		})
	}
}

func TestErrorKind_Parent(t *testing.T) {
	require.Equal(t, ErrorKind(""), KindBase.Parent())
	require.Equal(t, KindBase, KindClient.Parent())
	require.Equal(t, KindHTTP, KindServerError.Parent())
	require.Equal(t, KindCheckFailure, KindNSFWChannelRequired.Parent())
	require.Equal(t, ErrorKind(""), KindUnknown.Parent())
	require.False(t, KindUnknown.Known())
}

func TestErrorKind_Error(t *testing.T) {
	require.Equal(t, "NOT_FOUND", KindNotFound.Error())
}

func TestErrorKind_Category(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want ErrorCategory
	}{
		{KindBase, CategoryGeneral},
		{KindUnknown, CategoryGeneral},
		{KindNoMoreItems, CategoryGeneral},
		{KindClient, CategoryUsage},
		{KindInvalidArgument, CategoryUsage},
		{KindInvalidData, CategoryUsage},
		{KindInvalidCommandType, CategoryUsage},
		{KindLoginFailure, CategoryUsage},
		{KindHTTP, CategoryTransport},
		{KindForbidden, CategoryTransport},
		{KindServerError, CategoryTransport},
		{KindGatewayNotFound, CategorySession},
		{KindConnectionClosed, CategorySession},
		{KindPrivilegedIntentsRequired, CategorySession},
		{KindInteractionResponded, CategoryProtocol},
		{KindApplication, CategoryAuthorization},
		{KindCheckAnyFailure, CategoryAuthorization},
		{KindNotOwner, CategoryAuthorization},
		{ErrorKind("SOMETHING_ELSE"), CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.Category())
		})
	}
}

func TestErrorKind_Describe(t *testing.T) {
	require.Equal(t, "not owner", KindNotOwner.describe())
	require.Equal(t, "no more items", KindNoMoreItems.describe())
}
