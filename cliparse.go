// Copyright 2024-2026, the cliparse authors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package cliparse turns a flat sequence of command-line tokens into a
// validated tree of one matched command, its optional positional value and
// its matched flags.
//
// Callers describe the acceptable input ahead of time as recipes: a set of
// commands, each with an optional positional slot and a local flag
// namespace, plus a set of global flags recognized regardless of the
// active command. Parse then performs a single recursive descent over the
// tokens: it drains consecutive flag tokens (resolving each against the
// global namespace strictly before the active command's local namespace),
// validates the active command's required flags, selects a command from
// the next bare token and recurses. Grammars are single-level: once a
// command is active, later bare tokens continue the same command context
// rather than switching to a new command.
//
//	result, err := cliparse.NewParserFromArgs(os.Args[1:]).
//		Command(cliparse.NewCommand("serve").
//			WithFlag(cliparse.NewFlag("port").WithPositional().WithRequired())).
//		GlobalFlag(cliparse.NewFlag("verbose")).
//		Parse()
//
// Every failure is one of the package's sentinel errors, wrapped with the
// offending token where one exists; the first violated contract aborts the
// parse. A Parser serves exactly one Parse call and is not safe for
// concurrent use.
package cliparse

import (
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/telsho/cliparse/parse"
)

// Parser holds the command and global flag namespaces together with the
// cursor over the tokens of one invocation
type Parser struct {
	commands    *orderedmap.OrderedMap[string, *Command]
	globalFlags *orderedmap.OrderedMap[string, *Flag]

	// flags matched before any command was selected; merged into the
	// result when the parse succeeds
	parsedFlags *orderedmap.OrderedMap[string, *ParsedFlag]

	args parse.State

	commandNameConverter NameConversionFunc
	flagNameConverter    NameConversionFunc
}

// NewParser creates a Parser over the live process arguments with the
// program-name token discarded. Use NewParserFromArgs to supply tokens
// directly (testing, embedding).
func NewParser() *Parser {
	return NewParserFromArgs(os.Args[1:])
}

// NewParserFromArgs creates a Parser over an explicit ordered token sequence
func NewParserFromArgs(args []string) *Parser {
	return &Parser{
		commands:             orderedmap.New[string, *Command](),
		globalFlags:          orderedmap.New[string, *Flag](),
		parsedFlags:          orderedmap.New[string, *ParsedFlag](),
		args:                 parse.NewState(args),
		commandNameConverter: DefaultCommandNameConverter,
		flagNameConverter:    DefaultFlagNameConverter,
	}
}

// NewParserFromString splits a single command-line string into tokens and
// creates a Parser over them. Splitting follows shell quoting rules.
func NewParserFromString(cmdLine string) (*Parser, error) {
	args, err := parse.Split(cmdLine)
	if err != nil {
		return nil, err
	}

	return NewParserFromArgs(args), nil
}

// Command registers a Command recipe in the top-level command namespace,
// keyed by its (converted) name, and returns the parser for chaining.
// Registering a second command with the same name silently replaces the
// first.
func (p *Parser) Command(command *Command) *Parser {
	cmd := command.renamed(p.commandNameConverter(command.Name))
	p.commands.Set(cmd.Name, cmd)

	return p
}

// GlobalFlag registers a Flag recipe in the global flag namespace, keyed
// by its converted, normalized name, and returns the parser for chaining.
// Global flags resolve before the active command's local flags; on a name
// collision the global recipe wins and the local one is unreachable.
func (p *Parser) GlobalFlag(flag *Flag) *Parser {
	f := flag.renamed(normalizeFlagName(p.flagNameConverter(trimFlagPrefix(flag.Name))))
	p.globalFlags.Set(f.Name, f)

	return p
}

// SetCommandNameConverter sets the conversion applied to command names on
// registration and returns the previous converter. Only affects commands
// registered afterwards.
func (p *Parser) SetCommandNameConverter(converter NameConversionFunc) NameConversionFunc {
	oldConverter := p.commandNameConverter
	p.commandNameConverter = converter

	return oldConverter
}

// SetFlagNameConverter sets the conversion applied to global flag names on
// registration and returns the previous converter. The converter sees the
// name without the marker prefix; the result is re-normalized.
func (p *Parser) SetFlagNameConverter(converter NameConversionFunc) NameConversionFunc {
	oldConverter := p.flagNameConverter
	p.flagNameConverter = converter

	return oldConverter
}

// HasCommand reports whether name is registered in the command namespace
func (p *Parser) HasCommand(name string) bool {
	_, found := p.commands.Get(name)
	return found
}

// HasGlobalFlag reports whether name is registered in the global flag
// namespace. The name may be given with or without the marker prefix.
func (p *Parser) HasGlobalFlag(name string) bool {
	_, found := p.globalFlags.Get(normalizeFlagName(name))
	return found
}

// Parse consumes the parser's tokens against the registered recipes and
// returns the matched command. The first violated contract aborts the
// parse with one of the package's sentinel errors; an exhausted token
// sequence with no command selected returns ErrNoCommands.
func (p *Parser) Parse() (*ParsedCommand, error) {
	return p.parseNext(nil)
}
