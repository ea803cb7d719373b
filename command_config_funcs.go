package cliparse

// NewCommandWith builds a Command recipe using option functions, as an
// alternative to the fluent NewCommand chain:
//
//	cmd := NewCommandWith("serve",
//		SetCommandPositional(true),
//		WithCommandFlag(NewFlag("port").WithPositional()))
func NewCommandWith(name string, configs ...ConfigureCommandFunc) *Command {
	command := NewCommand(name)
	for _, config := range configs {
		config(command)
	}

	return command
}

// SetCommandPositional sets whether the command consumes the token
// following its name as its positional value
func SetCommandPositional(takesPositional bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.TakesPositional = takesPositional
	}
}

// WithCommandFlag inserts a Flag recipe into the command's local
// namespace. Like Command.WithFlag, a duplicate name silently replaces the
// earlier recipe.
func WithCommandFlag(flag *Flag) ConfigureCommandFunc {
	return func(command *Command) {
		command.WithFlag(flag)
	}
}
