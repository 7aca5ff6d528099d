package checks

import (
	"context"

	"github.com/jmgilman/go/chat/errors"
)

// HasRole requires the invoker to hold role. Fails with a no-private-message
// error in private messages.
func HasRole(role errors.RoleRef) Check {
	return func(_ context.Context, inv *Invocation) error {
		if !inv.InGuild {
			return errors.NewNoPrivateMessage("")
		}
		if !holds(inv.Roles, role) {
			return errors.NewMissingRole(role)
		}
		return nil
	}
}

// HasAnyRole requires the invoker to hold at least one of roles.
func HasAnyRole(roles ...errors.RoleRef) Check {
	return func(_ context.Context, inv *Invocation) error {
		if !inv.InGuild {
			return errors.NewNoPrivateMessage("")
		}
		if !holdsAny(inv.Roles, roles) {
			return errors.NewMissingAnyRole(roles)
		}
		return nil
	}
}

// BotHasRole requires the bot member to hold role.
func BotHasRole(role errors.RoleRef) Check {
	return func(_ context.Context, inv *Invocation) error {
		if !inv.InGuild {
			return errors.NewNoPrivateMessage("")
		}
		if !holds(inv.BotRoles, role) {
			return errors.NewBotMissingRole(role)
		}
		return nil
	}
}

// BotHasAnyRole requires the bot member to hold at least one of roles.
func BotHasAnyRole(roles ...errors.RoleRef) Check {
	return func(_ context.Context, inv *Invocation) error {
		if !inv.InGuild {
			return errors.NewNoPrivateMessage("")
		}
		if !holdsAny(inv.BotRoles, roles) {
			return errors.NewBotMissingAnyRole(roles)
		}
		return nil
	}
}

func holds(held []Role, ref errors.RoleRef) bool {
	for _, r := range held {
		if matches(r, ref) {
			return true
		}
	}
	return false
}

func holdsAny(held []Role, refs []errors.RoleRef) bool {
	for _, ref := range refs {
		if holds(held, ref) {
			return true
		}
	}
	return false
}

func matches(r Role, ref errors.RoleRef) bool {
	if id, ok := ref.ID(); ok {
		return r.ID == id
	}
	name, _ := ref.Name()
	return r.Name == name
}
