package checks

import "github.com/jmgilman/go/chat/errors"

// Role is a guild role held by a member.
type Role struct {
	ID   errors.Snowflake
	Name string
}

// Invocation is what checks know about a command invocation.
type Invocation struct {
	// InGuild is false for commands invoked in private messages.
	InGuild bool

	// Owner reports whether the invoker owns the bot.
	Owner bool

	// Roles are the invoker's roles. Empty in private messages.
	Roles []Role

	// Permissions are the flag names the invoker holds in the channel,
	// e.g. "manage_guild".
	Permissions []string

	// BotRoles are the bot member's roles. Empty in private messages.
	BotRoles []Role

	// BotPermissions are the flag names the bot holds in the channel.
	BotPermissions []string

	// Channel is the channel the command was invoked in.
	Channel errors.ChannelRef

	// ChannelNSFW reports whether the channel is marked NSFW.
	ChannelNSFW bool
}
