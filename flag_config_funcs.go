package cliparse

// NewFlagWith builds a Flag recipe using option functions, as an
// alternative to the fluent NewFlag chain:
//
//	flag := NewFlagWith("port",
//		SetFlagPositional(true),
//		SetFlagRequired(true))
func NewFlagWith(name string, configs ...ConfigureFlagFunc) *Flag {
	flag := NewFlag(name)
	for _, config := range configs {
		config(flag)
	}

	return flag
}

// SetFlagPositional sets whether the flag consumes the following token as
// its positional value
func SetFlagPositional(takesPositional bool) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.TakesPositional = takesPositional
	}
}

// SetFlagRequired sets whether the flag must be supplied whenever the
// command owning it is active
func SetFlagRequired(required bool) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Required = required
	}
}
