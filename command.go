package cliparse

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Command describes one acceptable top-level command together with its
// local flag namespace. Like Flag it is a pure recipe; parsing only reads
// it and produces ParsedCommand values.
//
//	cmd := NewCommand("serve").
//		WithPositional().
//		WithFlag(NewFlag("port").WithPositional().WithRequired())
type Command struct {
	// Name of the command as it appears on the command line
	Name string
	// TakesPositional marks the command as consuming the token following
	// it as its positional value
	TakesPositional bool

	flags *orderedmap.OrderedMap[string, *Flag]
}

// NewCommand creates a Command recipe with an empty local flag namespace
func NewCommand(name string) *Command {
	return &Command{
		Name:  name,
		flags: orderedmap.New[string, *Flag](),
	}
}

// WithPositional marks the command as taking a positional value and
// returns the command for chaining
func (c *Command) WithPositional() *Command {
	c.TakesPositional = true
	return c
}

// WithFlag inserts a Flag recipe into the command's local namespace, keyed
// by its normalized name. Inserting a second recipe with the same name
// silently replaces the first (last write wins).
func (c *Command) WithFlag(flag *Flag) *Command {
	c.flags.Set(flag.Name, flag)
	return c
}

// HasFlag reports whether the local namespace contains name. The name may
// be given with or without the marker prefix.
func (c *Command) HasFlag(name string) bool {
	_, found := c.flags.Get(normalizeFlagName(name))
	return found
}

// FlagNames returns the local namespace keys in registration order
func (c *Command) FlagNames() []string {
	names := make([]string, 0, c.flags.Len())
	for pair := c.flags.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// renamed returns the command itself when name matches, otherwise a
// shallow copy carrying the new name (the local namespace is shared since
// recipes are read-only during parsing).
func (c *Command) renamed(name string) *Command {
	if c.Name == name {
		return c
	}
	clone := *c
	clone.Name = name
	return &clone
}
