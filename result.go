package cliparse

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ParsedFlag is one flag matched during a parse. It exists only as part of
// a ParsedCommand returned by Parse.
type ParsedFlag struct {
	// Name of the matched flag, normalized with the marker prefix
	Name string
	// Value holds the flag's positional value when HasValue is true
	Value string
	// HasValue reports whether a positional value was consumed for the flag
	HasValue bool
}

// ParsedCommand is the result of a successful parse: the matched command,
// its optional positional value and every flag matched while it was
// active, merged with global flags matched before it was selected.
type ParsedCommand struct {
	// Name of the matched command, copied from the command recipe
	Name string
	// Value holds the command's positional value when HasValue is true
	Value string
	// HasValue reports whether a positional value was consumed for the command
	HasValue bool

	flags *orderedmap.OrderedMap[string, *ParsedFlag]
}

func newParsedCommand(name string) *ParsedCommand {
	return &ParsedCommand{
		Name:  name,
		flags: orderedmap.New[string, *ParsedFlag](),
	}
}

// Flag returns the matched flag registered under name. The name may be
// given with or without the marker prefix.
func (c *ParsedCommand) Flag(name string) (*ParsedFlag, bool) {
	return c.flags.Get(normalizeFlagName(name))
}

// HasFlag reports whether name was matched during the parse
func (c *ParsedCommand) HasFlag(name string) bool {
	_, found := c.Flag(name)
	return found
}

// FlagValue returns the positional value of the matched flag name. The
// second return is false when the flag was not matched or carries no value.
func (c *ParsedCommand) FlagValue(name string) (string, bool) {
	flag, found := c.Flag(name)
	if !found || !flag.HasValue {
		return "", false
	}
	return flag.Value, true
}

// Flags returns every matched flag in match order
func (c *ParsedCommand) Flags() []*ParsedFlag {
	flags := make([]*ParsedFlag, 0, c.flags.Len())
	for pair := c.flags.Oldest(); pair != nil; pair = pair.Next() {
		flags = append(flags, pair.Value)
	}
	return flags
}

// PositionalValue returns the command's positional value when one was consumed
func (c *ParsedCommand) PositionalValue() (string, bool) {
	return c.Value, c.HasValue
}

// String renders a compact single-line form, mainly useful in tests and logs
func (c *ParsedCommand) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	if c.HasValue {
		sb.WriteString(" ")
		sb.WriteString(c.Value)
	}
	for pair := c.flags.Oldest(); pair != nil; pair = pair.Next() {
		sb.WriteString(" ")
		sb.WriteString(pair.Value.Name)
		if pair.Value.HasValue {
			sb.WriteString(" ")
			sb.WriteString(pair.Value.Value)
		}
	}
	return sb.String()
}
