// Package checks evaluates application command checks against a snapshot of
// the invocation.
//
// A check is a function returning nil when the command may run and an error
// of the application family when it may not:
//
//	err := checks.Run(ctx, inv,
//	    checks.GuildOnly(),
//	    checks.Any(checks.IsOwner(), checks.HasPermissions("manage_guild")),
//	)
//	if errors.Is(err, errors.KindCheckFailure) {
//	    // err.Error() is safe to send back to the invoker
//	}
//
// Checks only read the Invocation; they never modify it and hold no state,
// so a single Check value can be shared across goroutines.
package checks
