package subfmt

import (
	"strings"

	"go.uber.org/zap"
)

// Plan is an ordered sequence of providers compiled from one format
// string. A plan is immutable after compilation and is shared read-only
// across any number of concurrent evaluations. It is never empty: the
// empty format string compiles to a single empty-literal provider.
type Plan []Provider

// Parse compiles a format string into a Plan. Literal text becomes plain
// providers; each %COMMAND% token is resolved through the chain - builtin
// resolvers first, then WithResolvers entries in declaration order, then
// the fallback. Compilation is deterministic and has no side effects of
// its own.
func Parse(format string, opts ...Option) (Plan, error) {
	return parseWithConfig(format, newConfig(opts))
}

// MustParse compiles a format string and panics on error.
func MustParse(format string, opts ...Option) Plan {
	plan, err := Parse(format, opts...)
	if err != nil {
		panic(err)
	}
	return plan
}

// parseWithConfig is the scanner behind Parse, shared with the structured
// compiler so leaves reuse one resolver chain.
func parseWithConfig(format string, cfg *config) (Plan, error) {
	var plan Plan
	var literal strings.Builder

	for pos := 0; pos < len(format); pos++ {
		if format[pos] != CommandDelimiter {
			literal.WriteByte(format[pos])
			continue
		}

		// '%%' escapes a literal '%' and is never a token boundary.
		if pos+1 < len(format) && format[pos+1] == CommandDelimiter {
			literal.WriteByte(CommandDelimiter)
			pos++
			continue
		}

		if literal.Len() > 0 {
			plan = append(plan, NewPlainTextProvider(literal.String()))
			literal.Reset()
		}

		cmd, end, err := matchCommand(format, pos)
		if err != nil {
			return nil, err
		}

		provider, err := resolveChain(cmd, cfg)
		if err != nil {
			return nil, err
		}
		plan = append(plan, provider)

		// Resume scanning right after the closing '%'.
		pos = end - 1
	}

	// Flush the trailing literal. An empty format still yields one empty
	// plain provider; downstream code may assume a plan is never empty.
	if literal.Len() > 0 || len(format) == 0 {
		plan = append(plan, NewPlainTextProvider(literal.String()))
	}

	cfg.logger.Debug(LogMsgPlanCompiled,
		zap.String(LogFieldFormat, format),
		zap.Int(LogFieldProviders, len(plan)))
	return plan, nil
}

// resolveChain resolves one command through builtin, per-plan and fallback
// resolvers, in that fixed order. Builtins win so that core command
// semantics cannot be overridden by embedding code.
func resolveChain(cmd Command, cfg *config) (Provider, error) {
	for _, r := range Builtins() {
		if p := r.ResolveCommand(cmd); p != nil {
			cfg.logger.Debug(LogMsgCommandResolved, zap.String(LogFieldCommand, cmd.Name))
			return p, nil
		}
	}

	for _, r := range cfg.resolvers {
		if p := r.ResolveCommand(cmd); p != nil {
			cfg.logger.Debug(LogMsgCommandResolved, zap.String(LogFieldCommand, cmd.Name))
			return p, nil
		}
	}

	if cfg.fallback != nil {
		if p := cfg.fallback.ResolveCommand(cmd); p != nil {
			cfg.logger.Debug(LogMsgFallbackResolved, zap.String(LogFieldCommand, cmd.Name))
			return p, nil
		}
	}

	return nil, NewUnknownCommandError(cmd.Name)
}
