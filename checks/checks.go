package checks

import (
	"context"

	"github.com/jmgilman/go/chat/errors"
)

const notOwnerMessage = "You do not own this bot."

// Check decides whether a command may run for an invocation. It returns nil
// to allow the command and an error of the application family to deny it.
// Any other error aborts evaluation.
type Check func(ctx context.Context, inv *Invocation) error

// Run evaluates checks in order and returns the first error.
// It stops early with the context error if ctx is done.
func Run(ctx context.Context, inv *Invocation, checks ...Check) error {
	for _, check := range checks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := check(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}

// Any passes when at least one of checks passes.
//
// When every check fails with a check failure, Any returns an
// *errors.CheckAnyFailure holding the failures and the checks that produced
// them. An error outside the check-failure family, or the context error once
// ctx is done, is returned immediately.
func Any(checks ...Check) Check {
	return func(ctx context.Context, inv *Invocation) error {
		var (
			failures []error
			failed   []interface{}
		)
		for _, check := range checks {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := check(ctx, inv)
			if err == nil {
				return nil
			}
			if !errors.Is(err, errors.KindCheckFailure) {
				return err
			}
			failures = append(failures, err)
			failed = append(failed, check)
		}
		return errors.NewCheckAnyFailure(failures, failed)
	}
}

// GuildOnly denies commands invoked in private messages.
func GuildOnly() Check {
	return func(_ context.Context, inv *Invocation) error {
		if !inv.InGuild {
			return errors.NewNoPrivateMessage("")
		}
		return nil
	}
}

// DMOnly denies commands invoked outside private messages.
func DMOnly() Check {
	return func(_ context.Context, inv *Invocation) error {
		if inv.InGuild {
			return errors.NewPrivateMessageOnly("")
		}
		return nil
	}
}

// IsOwner denies invokers that do not own the bot.
func IsOwner() Check {
	return func(_ context.Context, inv *Invocation) error {
		if !inv.Owner {
			return errors.NewNotOwner(notOwnerMessage)
		}
		return nil
	}
}

// IsNSFW denies commands invoked in guild channels that are not marked NSFW.
// Private messages pass.
func IsNSFW() Check {
	return func(_ context.Context, inv *Invocation) error {
		if !inv.InGuild || inv.ChannelNSFW {
			return nil
		}
		return errors.NewNSFWChannelRequired(inv.Channel)
	}
}
