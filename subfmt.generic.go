package subfmt

import (
	"sync"

	"go.uber.org/zap"
)

// TextExtractor pulls a text field off an event context. The second return
// reports whether the field had a value for this event.
type TextExtractor func(ctx Context) (string, bool)

// ValueExtractor pulls a typed field off an event context. Return the null
// marker when the field has no value for this event.
type ValueExtractor func(ctx Context) Value

// SubcommandExtractor pulls a keyed field off an event context, using the
// command's subcommand to select the datum (e.g. %HEADER(user-agent)%).
type SubcommandExtractor func(ctx Context, subcommand string) (string, bool)

// GenericResolver is the default fallback of the resolution chain: a
// context-independent lookup keyed by command name over a table of field
// extractors registered by the embedding system.
//
// Unlike ordinary resolvers it accepts every command name. A name with no
// registered extractor compiles into a provider that yields no value, so
// misses surface at evaluation time as absence rather than failing the
// compile. Register fields during startup, before compilation begins.
type GenericResolver struct {
	mu     sync.RWMutex
	text   map[string]TextExtractor
	value  map[string]ValueExtractor
	keyed  map[string]SubcommandExtractor
	logger *zap.Logger
}

// NewGenericResolver creates an empty generic resolver.
func NewGenericResolver() *GenericResolver {
	return &GenericResolver{
		text:   make(map[string]TextExtractor),
		value:  make(map[string]ValueExtractor),
		keyed:  make(map[string]SubcommandExtractor),
		logger: zap.NewNop(),
	}
}

// defaultGeneric backs compilation that did not override the fallback.
var defaultGeneric = NewGenericResolver()

// DefaultGeneric returns the process-wide generic resolver used as the
// default fallback. Seed it with the embedding system's field extractors
// during startup.
func DefaultGeneric() *GenericResolver {
	return defaultGeneric
}

// SetLogger sets the resolver's logger. Call during startup.
func (g *GenericResolver) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g.mu.Lock()
	g.logger = logger
	g.mu.Unlock()
}

// RegisterField registers a text extractor under a command name.
func (g *GenericResolver) RegisterField(name string, fn TextExtractor) error {
	if name == "" {
		return NewFieldError(ErrMsgEmptyFieldName, name)
	}
	if fn == nil {
		return NewFieldError(ErrMsgNilExtractor, name)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.claimed(name) {
		return NewFieldError(ErrMsgFieldExists, name)
	}
	g.text[name] = fn
	g.logger.Debug(LogMsgFieldRegistered, zap.String(LogFieldField, name))
	return nil
}

// RegisterValueField registers a typed extractor under a command name. The
// produced provider supports type-preserving structured evaluation; its
// text form is derived from the value.
func (g *GenericResolver) RegisterValueField(name string, fn ValueExtractor) error {
	if name == "" {
		return NewFieldError(ErrMsgEmptyFieldName, name)
	}
	if fn == nil {
		return NewFieldError(ErrMsgNilExtractor, name)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.claimed(name) {
		return NewFieldError(ErrMsgFieldExists, name)
	}
	g.value[name] = fn
	g.logger.Debug(LogMsgFieldRegistered, zap.String(LogFieldField, name))
	return nil
}

// RegisterSubcommandField registers a keyed extractor under a command
// name. The command's subcommand is passed through at evaluation time.
func (g *GenericResolver) RegisterSubcommandField(name string, fn SubcommandExtractor) error {
	if name == "" {
		return NewFieldError(ErrMsgEmptyFieldName, name)
	}
	if fn == nil {
		return NewFieldError(ErrMsgNilExtractor, name)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.claimed(name) {
		return NewFieldError(ErrMsgFieldExists, name)
	}
	g.keyed[name] = fn
	g.logger.Debug(LogMsgFieldRegistered, zap.String(LogFieldField, name))
	return nil
}

// claimed reports whether a name is taken in any table. Callers hold g.mu.
func (g *GenericResolver) claimed(name string) bool {
	if _, ok := g.text[name]; ok {
		return true
	}
	if _, ok := g.value[name]; ok {
		return true
	}
	_, ok := g.keyed[name]
	return ok
}

// ResolveCommand resolves every command: a registered extractor produces a
// field provider, an unregistered name produces a provider that is always
// absent at evaluation time.
func (g *GenericResolver) ResolveCommand(cmd Command) Provider {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if fn, ok := g.keyed[cmd.Name]; ok {
		return &keyedFieldProvider{fn: fn, cmd: cmd}
	}
	if fn, ok := g.value[cmd.Name]; ok {
		return &valueFieldProvider{fn: fn, cmd: cmd}
	}
	if fn, ok := g.text[cmd.Name]; ok {
		return &textFieldProvider{fn: fn, cmd: cmd}
	}
	return absentProvider{}
}

// textFieldProvider evaluates a registered text extractor.
type textFieldProvider struct {
	fn  TextExtractor
	cmd Command
}

func (p *textFieldProvider) FormatText(ctx Context) (string, bool) {
	s, ok := p.fn(ctx)
	if !ok {
		return "", false
	}
	return CapLength(s, p.cmd), true
}

func (p *textFieldProvider) FormatValue(ctx Context) Value {
	s, ok := p.FormatText(ctx)
	if !ok {
		return NullValue()
	}
	return StringValue(s)
}

// valueFieldProvider evaluates a registered typed extractor.
type valueFieldProvider struct {
	fn  ValueExtractor
	cmd Command
}

func (p *valueFieldProvider) FormatText(ctx Context) (string, bool) {
	s, ok := p.fn(ctx).primitiveString()
	if !ok {
		return "", false
	}
	return CapLength(s, p.cmd), true
}

func (p *valueFieldProvider) FormatValue(ctx Context) Value {
	return p.fn(ctx)
}

// keyedFieldProvider evaluates a registered subcommand-keyed extractor.
type keyedFieldProvider struct {
	fn  SubcommandExtractor
	cmd Command
}

func (p *keyedFieldProvider) FormatText(ctx Context) (string, bool) {
	s, ok := p.fn(ctx, p.cmd.Subcommand)
	if !ok {
		return "", false
	}
	return CapLength(s, p.cmd), true
}

func (p *keyedFieldProvider) FormatValue(ctx Context) Value {
	s, ok := p.FormatText(ctx)
	if !ok {
		return NullValue()
	}
	return StringValue(s)
}
