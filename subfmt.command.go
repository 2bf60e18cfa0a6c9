package subfmt

import (
	"regexp"
	"strconv"
)

// The command token has the following format:
//
//	%COMMAND(SUBCOMMAND):LENGTH%
//
// COMMAND must always be present and uses only A-Z, 0-9 and _. SUBCOMMAND
// is optional and may contain any character except ')'. LENGTH is an
// optional non-negative decimal integer. The pattern is anchored: it is
// only ever applied at a '%' the scanner has already ruled out as part of
// a '%%' escape.
var commandPattern = regexp.MustCompile(`^%([A-Z0-9_]+)(?:\(([^)]*)\))?(?::([0-9]+))?%`)

// Command is one parsed substitution token.
type Command struct {
	// Name is the command name, non-empty, charset A-Z 0-9 _.
	Name string

	// Subcommand is the raw subcommand text, empty when absent.
	Subcommand string

	// HasSubcommand distinguishes %CMD()% from %CMD%.
	HasSubcommand bool

	// MaxLength caps the byte length of the produced text.
	MaxLength int

	// HasMaxLength reports whether a length cap was given.
	HasMaxLength bool
}

// matchCommand recognizes a command token at format[pos], which the caller
// guarantees is an unescaped '%'. It returns the parsed command and the
// scan position immediately after the closing '%'. Failure to match is a
// compile-time error naming the position.
func matchCommand(format string, pos int) (Command, int, error) {
	m := commandPattern.FindStringSubmatchIndex(format[pos:])
	if m == nil {
		return Command{}, 0, NewTokenError(format, pos)
	}

	cmd := Command{
		Name: format[pos+m[2] : pos+m[3]],
	}

	if m[4] >= 0 {
		cmd.Subcommand = format[pos+m[4] : pos+m[5]]
		cmd.HasSubcommand = true
	}

	if m[6] >= 0 {
		raw := format[pos+m[6] : pos+m[7]]
		length, err := strconv.Atoi(raw)
		if err != nil {
			return Command{}, 0, NewLengthError(raw, err)
		}
		cmd.MaxLength = length
		cmd.HasMaxLength = true
	}

	return cmd, pos + m[1], nil
}
