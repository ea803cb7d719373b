package cliparse

import (
	"errors"
	"strings"

	"github.com/iancoleman/strcase"
)

// FlagPrefix is the marker prefix every registered flag name is normalized
// to carry. Registering "verbose" and "--verbose" yields the same recipe.
const FlagPrefix = "--"

// FlagMarker is the single character which opens a flag token on the
// command line. Flag-draining stops at the first token which does not
// start with it.
const FlagMarker = '-'

// ConfigureFlagFunc is used when defining Flag recipes with NewFlagWith
type ConfigureFlagFunc func(flag *Flag)

// ConfigureCommandFunc is used when defining Command recipes with NewCommandWith
type ConfigureCommandFunc func(command *Command)

// ConfigureParserFunc is used when defining Parser options with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// NameConversionFunc converts a registered command or flag name before it
// is normalized and keyed into a namespace
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-command-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_command_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myCommandName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "mycommandname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	// Identity leaves names untouched. Registered names must then match
	// command-line tokens exactly (modulo the flag marker prefix).
	Identity = func(s string) string {
		return s
	}

	DefaultCommandNameConverter = Identity
	DefaultFlagNameConverter    = Identity
)

// Parsing failures form a closed set. Variants which relate to a specific
// token wrap the sentinel with the offending token using FmtErrorWithString,
// so callers match the variant with errors.Is and still see the payload.
var (
	// ErrMissingPositional - a flag recipe takes a positional value but the token stream ended
	ErrMissingPositional = errors.New("missing positional value for flag")
	// ErrNoCommands - the token stream was exhausted before any command was selected
	ErrNoCommands = errors.New("no command given")
	// ErrInvalidCommand - a token was consumed as a command name but matched no recipe
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInvalidFlag - a flag token matched neither the global nor the active local namespace
	ErrInvalidFlag = errors.New("invalid flag")
	// ErrExpectedCommand - a command token was expected but none could be consumed
	ErrExpectedCommand = errors.New("expected a command")
	// ErrExpectedPositional - a command recipe takes a positional value but the token stream ended
	ErrExpectedPositional = errors.New("expected a positional value for command")
	// ErrExpectedFlag - a flag token was expected but none could be consumed
	ErrExpectedFlag = errors.New("expected a flag")
	// ErrMissingRequiredFlag - a required local flag of the active command was never matched
	ErrMissingRequiredFlag = errors.New("missing required flag")
)

const (
	FmtErrorWithString = "%w: %s"
)

var errNilNameConverter = errors.New("name conversion function must not be nil")
