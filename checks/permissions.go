package checks

import (
	"context"

	"github.com/jmgilman/go/chat/errors"
)

// administrator implicitly grants every permission.
const administrator = "administrator"

// HasPermissions requires the invoker to hold every permission in perms.
// Permissions are flag names such as "manage_guild".
func HasPermissions(perms ...string) Check {
	return func(_ context.Context, inv *Invocation) error {
		if missing := missingPermissions(inv.Permissions, perms); len(missing) > 0 {
			return errors.NewMissingPermissions(missing)
		}
		return nil
	}
}

// BotHasPermissions requires the bot member to hold every permission in perms.
func BotHasPermissions(perms ...string) Check {
	return func(_ context.Context, inv *Invocation) error {
		if missing := missingPermissions(inv.BotPermissions, perms); len(missing) > 0 {
			return errors.NewBotMissingPermissions(missing)
		}
		return nil
	}
}

// missingPermissions returns the entries of required not in granted, in
// the order they were required.
func missingPermissions(granted, required []string) []string {
	have := make(map[string]bool, len(granted))
	for _, p := range granted {
		have[p] = true
	}
	if have[administrator] {
		return nil
	}

	var missing []string
	for _, p := range required {
		if !have[p] {
			missing = append(missing, p)
		}
	}
	return missing
}
