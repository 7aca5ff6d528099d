package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationErrors_Family(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		kind ErrorKind
	}{
		{"check failure", NewCheckFailure("nope"), KindCheckFailure},
		{"check any failure", NewCheckAnyFailure(nil, nil), KindCheckAnyFailure},
		{"no private message", NewNoPrivateMessage(""), KindNoPrivateMessage},
		{"private message only", NewPrivateMessageOnly(""), KindPrivateMessageOnly},
		{"missing role", NewMissingRole(RoleByName("Mod")), KindMissingRole},
		{"bot missing role", NewBotMissingRole(RoleByID(1)), KindBotMissingRole},
		{"missing any role", NewMissingAnyRole([]RoleRef{RoleByName("a")}), KindMissingAnyRole},
		{"bot missing any role", NewBotMissingAnyRole([]RoleRef{RoleByName("a")}), KindBotMissingAnyRole},
		{"missing permissions", NewMissingPermissions([]string{"ban_members"}), KindMissingPermissions},
		{"bot missing permissions", NewBotMissingPermissions([]string{"ban_members"}), KindBotMissingPermissions},
		{"not owner", NewNotOwner("You do not own this bot."), KindNotOwner},
		{"nsfw channel required", NewNSFWChannelRequired(ChannelRef{ID: 1, Name: "general"}), KindNSFWChannelRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.err.Kind())
			require.True(t, Is(tt.err, tt.kind))
			require.True(t, Is(tt.err, KindCheckFailure))
			require.True(t, Is(tt.err, KindApplication))
			require.True(t, Is(tt.err, KindBase))
			require.False(t, Is(tt.err, KindClient))
			require.False(t, Is(tt.err, KindHTTP))
			require.False(t, IsRetryable(tt.err))
			require.Equal(t, CategoryAuthorization, GetCategory(tt.err))
		})
	}
}

func TestNewApplicationError(t *testing.T) {
	err := NewApplicationError("Hey @everyone and @here")

	require.Equal(t, "Hey @\u200beveryone and @\u200bhere", err.Error())
	require.Equal(t, KindApplication, err.Kind())
	require.False(t, Is(err, KindCheckFailure))
}

func TestNewApplicationError_EmptyMessage(t *testing.T) {
	err := NewApplicationError("")

	require.Empty(t, err.Message())
	require.NotEmpty(t, err.Error())
}

func TestNewCheckFailure_Escapes(t *testing.T) {
	err := NewCheckFailure("ping @here now")

	require.Equal(t, "ping @\u200bhere now", err.Message())
}

func TestNewNoPrivateMessage(t *testing.T) {
	require.Equal(t, "This command cannot be used in private messages.", NewNoPrivateMessage("").Error())
	require.Equal(t, "custom", NewNoPrivateMessage("custom").Error())
}

func TestNewPrivateMessageOnly(t *testing.T) {
	require.Equal(t, "This command can only be used in private messages.", NewPrivateMessageOnly("").Error())
	require.Equal(t, "custom @\u200beveryone", NewPrivateMessageOnly("custom @everyone").Error())
}

func TestNewCheckAnyFailure(t *testing.T) {
	first := NewMissingRole(RoleByName("Mod"))
	second := NewNotOwner("You do not own this bot.")
	checks := []interface{}{"has_role", "is_owner"}

	err := NewCheckAnyFailure([]error{first, second}, checks)

	require.Equal(t, "You do not have permission to run this command.", err.Error())
	require.Equal(t, []error{first, second}, err.Failures())
	require.Equal(t, checks, err.Checks())
	require.Equal(t, map[string]interface{}{
		"failures": []string{"MISSING_ROLE", "NOT_OWNER"},
	}, err.Details())
}

func TestNewCheckAnyFailure_CopiesInputs(t *testing.T) {
	failures := []error{NewCheckFailure("a")}
	err := NewCheckAnyFailure(failures, nil)

	failures[0] = nil
	require.NotNil(t, err.Failures()[0])

	got := err.Failures()
	got[0] = nil
	require.NotNil(t, err.Failures()[0])
}

func TestNewMissingRole(t *testing.T) {
	tests := []struct {
		name string
		role RoleRef
		want string
	}{
		{"by name", RoleByName("Moderator"), "Role 'Moderator' is required to run this command."},
		{"by id", RoleByID(123456789), "Role 123456789 is required to run this command."},
		{"name with quote", RoleByName("Bob's"), `Role "Bob's" is required to run this command.`},
		{"mass mention name", RoleByName("@everyone"), "Role '@\u200beveryone' is required to run this command."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMissingRole(tt.role)
			require.Equal(t, tt.want, err.Error())
			require.Equal(t, tt.role, err.MissingRole())
		})
	}
}

func TestNewBotMissingRole(t *testing.T) {
	err := NewBotMissingRole(RoleByName("Music"))

	require.Equal(t, "Bot requires the role 'Music' to run this command", err.Error())
	require.Equal(t, map[string]interface{}{"missing_role": "Music"}, err.Details())
}

func TestNewMissingAnyRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []RoleRef
		want  string
	}{
		{
			name:  "one",
			roles: []RoleRef{RoleByName("a")},
			want:  "You are missing at least one of the required roles: 'a'",
		},
		{
			name:  "two",
			roles: []RoleRef{RoleByName("a"), RoleByName("b")},
			want:  "You are missing at least one of the required roles: 'a' or 'b'",
		},
		{
			name:  "three",
			roles: []RoleRef{RoleByName("a"), RoleByName("b"), RoleByName("c")},
			want:  "You are missing at least one of the required roles: 'a', 'b', or 'c'",
		},
		{
			name:  "ids and names",
			roles: []RoleRef{RoleByID(42), RoleByName("Admin")},
			want:  "You are missing at least one of the required roles: '42' or 'Admin'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMissingAnyRole(tt.roles)
			require.Equal(t, tt.want, err.Error())
			require.Equal(t, tt.roles, err.MissingRoles())
		})
	}
}

func TestNewBotMissingAnyRole(t *testing.T) {
	err := NewBotMissingAnyRole([]RoleRef{RoleByName("a"), RoleByID(7)})

	require.Equal(t, "Bot is missing at least one of the required roles: 'a' or '7'", err.Error())
	require.Equal(t, map[string]interface{}{"missing_roles": []string{"a", "7"}}, err.Details())
}

func TestNewMissingPermissions(t *testing.T) {
	tests := []struct {
		name  string
		perms []string
		want  string
	}{
		{
			name:  "one",
			perms: []string{"manage_guild"},
			want:  "You are missing Manage Server permission(s) to run this command.",
		},
		{
			name:  "two",
			perms: []string{"kick_members", "ban_members"},
			want:  "You are missing Kick Members and Ban Members permission(s) to run this command.",
		},
		{
			name:  "three",
			perms: []string{"manage_messages", "manage_guild", "administrator"},
			want:  "You are missing Manage Messages, Manage Server, and Administrator permission(s) to run this command.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMissingPermissions(tt.perms)
			require.Equal(t, tt.want, err.Error())
			require.Equal(t, tt.perms, err.MissingPermissions())
		})
	}
}

func TestNewBotMissingPermissions(t *testing.T) {
	err := NewBotMissingPermissions([]string{"send_messages", "embed_links"})

	require.Equal(t, "Bot requires Send Messages and Embed Links permission(s) to run this command.", err.Error())
	require.Equal(t, map[string]interface{}{
		"missing_permissions": []string{"send_messages", "embed_links"},
	}, err.Details())
}

func TestNewNSFWChannelRequired(t *testing.T) {
	channel := ChannelRef{ID: 555, Name: "general"}
	err := NewNSFWChannelRequired(channel)

	require.Equal(t, "Channel 'general' needs to be NSFW for this command to work.", err.Error())
	require.Equal(t, channel, err.Channel())
	require.Equal(t, map[string]interface{}{
		"channel_id":   "555",
		"channel_name": "general",
	}, err.Details())
}

func TestNewNSFWChannelRequired_UnnamedChannel(t *testing.T) {
	err := NewNSFWChannelRequired(ChannelRef{ID: 555})

	require.Equal(t, "Channel '555' needs to be NSFW for this command to work.", err.Error())
}

func TestApplicationErrors_VariantSurvivesContext(t *testing.T) {
	err := WithContext(NewMissingPermissions([]string{"ban_members"}), "command", "ban")

	var permErr *MissingPermissionsError
	require.True(t, As(err, &permErr))
	require.Equal(t, []string{"ban_members"}, permErr.MissingPermissions())
	require.Equal(t, "ban", permErr.Context()["command"])
}
