package errors

import "fmt"

const (
	checkAnyFailureMessage    = "You do not have permission to run this command."
	noPrivateMessageMessage   = "This command cannot be used in private messages."
	privateMessageOnlyMessage = "This command can only be used in private messages."
)

// newApplicationBase returns a base for an application-family kind with the
// message mention-escaped.
func newApplicationBase(kind ErrorKind, message string) base {
	return newBase(kind, escapeMentions(message))
}

// ApplicationError is the concrete type of application command errors
// without fields of their own: KindApplication, KindCheckFailure,
// KindNoPrivateMessage, KindPrivateMessageOnly and KindNotOwner.
//
// All application errors have "@everyone" and "@here" escaped in their
// message, so the message is safe to echo back into a channel.
type ApplicationError struct {
	base
}

// NewApplicationError creates an application command error. An empty
// message creates a marker without a display message.
func NewApplicationError(message string) *ApplicationError {
	return &ApplicationError{base: newApplicationBase(KindApplication, message)}
}

// NewCheckFailure creates the error for a command check predicate that failed.
func NewCheckFailure(message string) *ApplicationError {
	return &ApplicationError{base: newApplicationBase(KindCheckFailure, message)}
}

// NewNoPrivateMessage creates the error for a command used in private
// messages that only works in a guild. An empty message selects the default.
func NewNoPrivateMessage(message string) *ApplicationError {
	if message == "" {
		message = noPrivateMessageMessage
	}
	return &ApplicationError{base: newApplicationBase(KindNoPrivateMessage, message)}
}

// NewPrivateMessageOnly creates the error for a command used outside private
// messages that only works in them. An empty message selects the default.
func NewPrivateMessageOnly(message string) *ApplicationError {
	if message == "" {
		message = privateMessageOnlyMessage
	}
	return &ApplicationError{base: newApplicationBase(KindPrivateMessageOnly, message)}
}

// NewNotOwner creates the error for an invoker that does not own the bot.
func NewNotOwner(message string) *ApplicationError {
	return &ApplicationError{base: newApplicationBase(KindNotOwner, message)}
}

func (e *ApplicationError) clone() Error {
	c := *e
	return &c
}

// CheckAnyFailure is raised when every predicate of an any-of check fails.
type CheckAnyFailure struct {
	base
	failures []error
	checks   []interface{}
}

// NewCheckAnyFailure creates a CheckAnyFailure from the failures that were
// caught and the predicates that produced them.
func NewCheckAnyFailure(failures []error, checks []interface{}) *CheckAnyFailure {
	e := &CheckAnyFailure{
		base:     newApplicationBase(KindCheckAnyFailure, checkAnyFailureMessage),
		failures: append([]error(nil), failures...),
		checks:   append([]interface{}(nil), checks...),
	}
	kinds := make([]string, len(failures))
	for i, f := range failures {
		kinds[i] = string(GetKind(f))
	}
	e.details = map[string]interface{}{"failures": kinds}
	return e
}

// Failures returns the check failures caught during execution.
func (e *CheckAnyFailure) Failures() []error {
	return append([]error(nil), e.failures...)
}

// Checks returns the predicates that failed.
func (e *CheckAnyFailure) Checks() []interface{} {
	return append([]interface{}(nil), e.checks...)
}

func (e *CheckAnyFailure) clone() Error {
	c := *e
	return &c
}

// MissingRoleError is raised when the invoker (KindMissingRole) or the bot
// member (KindBotMissingRole) lacks a required role.
type MissingRoleError struct {
	base
	role RoleRef
}

// NewMissingRole creates the error for an invoker lacking role.
func NewMissingRole(role RoleRef) *MissingRoleError {
	return newMissingRole(KindMissingRole, role,
		fmt.Sprintf("Role %s is required to run this command.", role.repr()))
}

// NewBotMissingRole creates the error for a bot member lacking role.
func NewBotMissingRole(role RoleRef) *MissingRoleError {
	return newMissingRole(KindBotMissingRole, role,
		fmt.Sprintf("Bot requires the role %s to run this command", role.repr()))
}

func newMissingRole(kind ErrorKind, role RoleRef, message string) *MissingRoleError {
	e := &MissingRoleError{
		base: newApplicationBase(kind, message),
		role: role,
	}
	e.details = map[string]interface{}{"missing_role": role.String()}
	return e
}

// MissingRole returns the required role that is missing.
func (e *MissingRoleError) MissingRole() RoleRef {
	return e.role
}

func (e *MissingRoleError) clone() Error {
	c := *e
	return &c
}

// MissingAnyRoleError is raised when the invoker (KindMissingAnyRole) or the
// bot member (KindBotMissingAnyRole) has none of the accepted roles.
type MissingAnyRoleError struct {
	base
	roles []RoleRef
}

// NewMissingAnyRole creates the error for an invoker with none of roles.
func NewMissingAnyRole(roles []RoleRef) *MissingAnyRoleError {
	return newMissingAnyRole(KindMissingAnyRole, roles,
		"You are missing at least one of the required roles: ")
}

// NewBotMissingAnyRole creates the error for a bot member with none of roles.
func NewBotMissingAnyRole(roles []RoleRef) *MissingAnyRoleError {
	return newMissingAnyRole(KindBotMissingAnyRole, roles,
		"Bot is missing at least one of the required roles: ")
}

func newMissingAnyRole(kind ErrorKind, roles []RoleRef, prefix string) *MissingAnyRoleError {
	missing := make([]string, len(roles))
	for i, r := range roles {
		missing[i] = "'" + r.String() + "'"
	}

	e := &MissingAnyRoleError{
		base:  newApplicationBase(kind, prefix+joinList(missing, "or")),
		roles: append([]RoleRef(nil), roles...),
	}
	e.details = map[string]interface{}{"missing_roles": roleStrings(roles)}
	return e
}

// MissingRoles returns the roles of which at least one was required.
func (e *MissingAnyRoleError) MissingRoles() []RoleRef {
	return append([]RoleRef(nil), e.roles...)
}

func (e *MissingAnyRoleError) clone() Error {
	c := *e
	return &c
}

// MissingPermissionsError is raised when the invoker (KindMissingPermissions)
// or the bot member (KindBotMissingPermissions) lacks permissions.
type MissingPermissionsError struct {
	base
	permissions []string
}

// NewMissingPermissions creates the error for an invoker lacking permissions.
// Permissions are flag names such as "manage_guild"; the message renders
// them for display ("Manage Server").
func NewMissingPermissions(permissions []string) *MissingPermissionsError {
	return newMissingPermissions(KindMissingPermissions, permissions,
		"You are missing %s permission(s) to run this command.")
}

// NewBotMissingPermissions creates the error for a bot member lacking permissions.
func NewBotMissingPermissions(permissions []string) *MissingPermissionsError {
	return newMissingPermissions(KindBotMissingPermissions, permissions,
		"Bot requires %s permission(s) to run this command.")
}

func newMissingPermissions(kind ErrorKind, permissions []string, format string) *MissingPermissionsError {
	missing := make([]string, len(permissions))
	for i, p := range permissions {
		missing[i] = humanizePermission(p)
	}

	perms := append([]string(nil), permissions...)
	e := &MissingPermissionsError{
		base:        newApplicationBase(kind, fmt.Sprintf(format, joinList(missing, "and"))),
		permissions: perms,
	}
	e.details = map[string]interface{}{"missing_permissions": append([]string(nil), perms...)}
	return e
}

// MissingPermissions returns the required permissions that are missing.
func (e *MissingPermissionsError) MissingPermissions() []string {
	return append([]string(nil), e.permissions...)
}

func (e *MissingPermissionsError) clone() Error {
	c := *e
	return &c
}

// NSFWChannelRequiredError is raised when a command requires an NSFW channel.
type NSFWChannelRequiredError struct {
	base
	channel ChannelRef
}

// NewNSFWChannelRequired creates the error for a channel that does not have
// NSFW enabled.
func NewNSFWChannelRequired(channel ChannelRef) *NSFWChannelRequiredError {
	e := &NSFWChannelRequiredError{
		base: newApplicationBase(KindNSFWChannelRequired,
			fmt.Sprintf("Channel '%s' needs to be NSFW for this command to work.", channel)),
		channel: channel,
	}
	e.details = map[string]interface{}{
		"channel_id":   channel.ID.String(),
		"channel_name": channel.Name,
	}
	return e
}

// Channel returns the channel that failed the check.
func (e *NSFWChannelRequiredError) Channel() ChannelRef {
	return e.channel
}

func (e *NSFWChannelRequiredError) clone() Error {
	c := *e
	return &c
}
