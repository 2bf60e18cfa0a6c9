package subfmt

// Context is the opaque per-event data a plan is evaluated against. The
// core never inspects, mutates or retains it; providers type-assert it to
// the embedding system's event type.
type Context any

// Provider is the unit of compiled work: given an event context it
// optionally produces text. The second return reports whether the provider
// had anything to contribute - absence is an expected outcome, never an
// error.
//
// Providers are immutable after construction and stateless across calls:
// one instance is invoked repeatedly, concurrently, with different
// contexts.
type Provider interface {
	FormatText(ctx Context) (string, bool)
}

// ValueProvider is the optional second capability of a provider: producing
// a typed value instead of text. Structured evaluation with type
// preservation uses this when available and falls back to the text
// capability otherwise.
type ValueProvider interface {
	Provider

	FormatValue(ctx Context) Value
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx Context) (string, bool)

// FormatText invokes the function.
func (f ProviderFunc) FormatText(ctx Context) (string, bool) {
	return f(ctx)
}

// PlainTextProvider holds a literal string. It contributes the literal for
// every context, including the empty literal produced by compiling an
// empty format string.
type PlainTextProvider struct {
	text string
}

// NewPlainTextProvider creates a provider for a literal string.
func NewPlainTextProvider(text string) *PlainTextProvider {
	return &PlainTextProvider{text: text}
}

// FormatText returns the literal.
func (p *PlainTextProvider) FormatText(_ Context) (string, bool) {
	return p.text, true
}

// FormatValue returns the literal as a string Value.
func (p *PlainTextProvider) FormatValue(_ Context) Value {
	return StringValue(p.text)
}

// Text returns the literal this provider carries.
func (p *PlainTextProvider) Text() string {
	return p.text
}

// PlainNumberProvider holds a literal number taken from a structured
// template document.
type PlainNumberProvider struct {
	value float64
}

// NewPlainNumberProvider creates a provider for a literal number.
func NewPlainNumberProvider(value float64) *PlainNumberProvider {
	return &PlainNumberProvider{value: value}
}

// FormatText returns the number rendered as text.
func (p *PlainNumberProvider) FormatText(_ Context) (string, bool) {
	return formatNumber(p.value), true
}

// FormatValue returns the number as a numeric Value, preserving its type
// through structured evaluation.
func (p *PlainNumberProvider) FormatValue(_ Context) Value {
	return NumberValue(p.value)
}

// Number returns the literal this provider carries.
func (p *PlainNumberProvider) Number() float64 {
	return p.value
}

// CapLength truncates s to the command's length cap, if one was given.
// Exported so custom resolvers can honor %NAME:LENGTH% the same way the
// shipped generic resolver does.
func CapLength(s string, cmd Command) string {
	if !cmd.HasMaxLength || len(s) <= cmd.MaxLength {
		return s
	}
	return s[:cmd.MaxLength]
}

// absentProvider never contributes a value. The generic fallback resolver
// compiles unknown command names into this so that resolution failures
// surface at evaluation time as absence, not at compile time.
type absentProvider struct{}

func (absentProvider) FormatText(_ Context) (string, bool) {
	return "", false
}

func (absentProvider) FormatValue(_ Context) Value {
	return NullValue()
}
