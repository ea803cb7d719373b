package cliparse

import "strings"

// Flag describes one acceptable command-line flag. A Flag is a pure recipe:
// it carries no parsed state and is never mutated by parsing.
//
// Construction is fluent and never fails; the name is normalized to carry
// the marker prefix:
//
//	flag := NewFlag("ip").WithPositional()
//	// equivalent to
//	flag := NewFlag("--ip").WithPositional()
type Flag struct {
	// Name of the flag, always prefixed with FlagPrefix
	Name string
	// TakesPositional marks the flag as consuming the token following it
	// as its positional value
	TakesPositional bool
	// Required marks the flag as mandatory for the command owning it
	Required bool
}

// NewFlag creates a Flag recipe, prepending the marker prefix to name when absent
func NewFlag(name string) *Flag {
	return &Flag{Name: normalizeFlagName(name)}
}

// WithPositional marks the flag as taking a positional value and returns
// the flag for chaining
func (f *Flag) WithPositional() *Flag {
	f.TakesPositional = true
	return f
}

// WithRequired marks the flag as required and returns the flag for chaining
func (f *Flag) WithRequired() *Flag {
	f.Required = true
	return f
}

// renamed returns the flag itself when name matches, otherwise a copy
// carrying the new name. Recipes already registered are never mutated.
func (f *Flag) renamed(name string) *Flag {
	if f.Name == name {
		return f
	}
	clone := *f
	clone.Name = name
	return &clone
}

func normalizeFlagName(name string) string {
	if strings.HasPrefix(name, FlagPrefix) {
		return name
	}
	return FlagPrefix + name
}

func trimFlagPrefix(name string) string {
	return strings.TrimPrefix(name, FlagPrefix)
}
