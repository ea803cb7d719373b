package cliparse

import "github.com/telsho/cliparse/parse"

// NewParserWith allows initialization of Parser using option functions.
// The caller should always test for error on return because Parser will be
// nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithArgs(os.Args[1:]),
//		WithCommand(NewCommandWith("serve",
//			SetCommandPositional(true),
//			WithCommandFlag(NewFlagWith("port",
//				SetFlagPositional(true),
//				SetFlagRequired(true))))),
//		WithGlobalFlag(NewFlag("verbose")))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, err
}

// WithArgs replaces the parser's token sequence, discarding the process
// arguments NewParser captured
func WithArgs(args []string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.args = parse.NewState(args)
	}
}

// WithCommand is a wrapper for Parser.Command which registers a command recipe
func WithCommand(command *Command) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.Command(command)
	}
}

// WithGlobalFlag is a wrapper for Parser.GlobalFlag which registers a
// global flag recipe
func WithGlobalFlag(flag *Flag) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.GlobalFlag(flag)
	}
}

// WithCommandNameConverter sets the conversion applied to command names on
// registration. Order matters: the converter only affects commands
// registered by later options.
func WithCommandNameConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if converter == nil {
			*err = errNilNameConverter
			return
		}
		parser.SetCommandNameConverter(converter)
	}
}

// WithFlagNameConverter sets the conversion applied to global flag names
// on registration. Order matters: the converter only affects flags
// registered by later options.
func WithFlagNameConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if converter == nil {
			*err = errNilNameConverter
			return
		}
		parser.SetFlagNameConverter(converter)
	}
}
