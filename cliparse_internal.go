package cliparse

import (
	"fmt"
)

// activeCommand is one level of the recursive descent: the matched recipe
// and the result being accumulated for it. A nil *activeCommand is the top
// level, before any command has been selected.
type activeCommand struct {
	recipe *Command
	result *ParsedCommand
}

// parseNext runs one level of the descent: drain flags, validate the
// level's required flags, then either terminate or select a command and
// recurse.
func (p *Parser) parseNext(active *activeCommand) (*ParsedCommand, error) {
	if err := p.parseFlags(active); err != nil {
		return nil, err
	}

	if active != nil {
		if err := p.validateRequiredFlags(active); err != nil {
			return nil, err
		}
	}

	if _, ok := p.args.Peek(); !ok {
		if active == nil {
			return nil, ErrNoCommands
		}
		return p.mergeTopLevelFlags(active.result), nil
	}

	return p.parseNextCommand(active)
}

// parseFlags drains consecutive flag tokens: every next token which is
// non-empty and opens with the flag marker is consumed and resolved.
func (p *Parser) parseFlags(active *activeCommand) error {
	for {
		next, ok := p.args.Peek()
		if !ok || len(next) == 0 || next[0] != FlagMarker {
			return nil
		}
		if err := p.parseNextFlag(active); err != nil {
			return err
		}
	}
}

// parseNextFlag consumes one flag token and resolves it. The global
// namespace is checked strictly before the active command's local
// namespace: on a name collision the global recipe always wins. Matches
// are recorded in the active command's flag map, or at parser level while
// no command is active.
func (p *Parser) parseNextFlag(active *activeCommand) error {
	token, ok := p.args.Next()
	if !ok {
		return ErrExpectedFlag
	}

	if recipe, found := p.globalFlags.Get(token); found {
		parsed, err := p.parseFlagValue(token, recipe)
		if err != nil {
			return err
		}
		if active != nil {
			active.result.flags.Set(parsed.Name, parsed)
		} else {
			p.parsedFlags.Set(parsed.Name, parsed)
		}
		return nil
	}

	if active != nil {
		if recipe, found := active.recipe.flags.Get(token); found {
			parsed, err := p.parseFlagValue(token, recipe)
			if err != nil {
				return err
			}
			active.result.flags.Set(parsed.Name, parsed)
			return nil
		}
	}

	return fmt.Errorf(FmtErrorWithString, ErrInvalidFlag, token)
}

// parseFlagValue builds the ParsedFlag for a matched token, consuming
// exactly one more token as its positional value when the recipe takes one
func (p *Parser) parseFlagValue(token string, recipe *Flag) (*ParsedFlag, error) {
	parsed := &ParsedFlag{Name: normalizeFlagName(token)}

	if recipe.TakesPositional {
		value, ok := p.args.Next()
		if !ok {
			return nil, fmt.Errorf(FmtErrorWithString, ErrMissingPositional, parsed.Name)
		}
		parsed.Value = value
		parsed.HasValue = true
	}

	return parsed, nil
}

// validateRequiredFlags checks, after a level's flag-draining, that every
// required recipe in the active command's local namespace was matched.
// Required global flags are deliberately not enforced here; required-flag
// validation is scoped to the active command.
func (p *Parser) validateRequiredFlags(active *activeCommand) error {
	for pair := active.recipe.flags.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.Required {
			continue
		}
		if _, found := active.result.flags.Get(pair.Key); !found {
			return fmt.Errorf(FmtErrorWithString, ErrMissingRequiredFlag, pair.Key)
		}
	}

	return nil
}

// parseNextCommand consumes the next token as a command name. From the top
// level the token is looked up in the command namespace; once a command is
// active the token is discarded and the same command context continues,
// which keeps grammars single-level. Either way, a recipe taking a
// positional value consumes exactly one more token for it before recursing.
func (p *Parser) parseNextCommand(active *activeCommand) (*ParsedCommand, error) {
	token, ok := p.args.Next()
	if !ok {
		return nil, ErrExpectedCommand
	}

	next := active
	if next == nil {
		recipe, found := p.commands.Get(token)
		if !found {
			return nil, fmt.Errorf(FmtErrorWithString, ErrInvalidCommand, token)
		}
		next = &activeCommand{recipe: recipe, result: newParsedCommand(recipe.Name)}
	}

	if next.recipe.TakesPositional {
		value, ok := p.args.Next()
		if !ok {
			return nil, fmt.Errorf(FmtErrorWithString, ErrExpectedPositional, next.recipe.Name)
		}
		next.result.Value = value
		next.result.HasValue = true
	}

	return p.parseNext(next)
}

// mergeTopLevelFlags folds flags matched before the command was selected
// into the final result, without displacing same-named command-level
// matches
func (p *Parser) mergeTopLevelFlags(result *ParsedCommand) *ParsedCommand {
	for pair := p.parsedFlags.Oldest(); pair != nil; pair = pair.Next() {
		if _, found := result.flags.Get(pair.Key); !found {
			result.flags.Set(pair.Key, pair.Value)
		}
	}

	return result
}
