package errors

import "strconv"

// Snowflake is a platform-assigned unique identifier.
type Snowflake uint64

// String returns the decimal form used by the platform API.
func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// RoleRef refers to a role either by id or by name, the two forms a role
// check accepts.
type RoleRef struct {
	id     Snowflake
	name   string
	byName bool
}

// RoleByID refers to a role by its id.
func RoleByID(id Snowflake) RoleRef {
	return RoleRef{id: id}
}

// RoleByName refers to a role by its name.
func RoleByName(name string) RoleRef {
	return RoleRef{name: name, byName: true}
}

// ID returns the role id and whether r refers to the role by id.
func (r RoleRef) ID() (Snowflake, bool) {
	return r.id, !r.byName
}

// Name returns the role name and whether r refers to the role by name.
func (r RoleRef) Name() (string, bool) {
	return r.name, r.byName
}

// String returns the id digits or the bare name.
func (r RoleRef) String() string {
	if r.byName {
		return r.name
	}
	return r.id.String()
}

// repr returns the id digits or the quoted name.
func (r RoleRef) repr() string {
	if r.byName {
		return quote(r.name)
	}
	return r.id.String()
}

// ChannelRef is a snapshot of a guild channel or thread.
type ChannelRef struct {
	ID   Snowflake
	Name string
}

// String returns the channel name, or its id when the name is unknown.
func (c ChannelRef) String() string {
	if c.Name == "" {
		return c.ID.String()
	}
	return c.Name
}

func roleStrings(roles []RoleRef) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.String()
	}
	return out
}
