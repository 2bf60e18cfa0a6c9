package subfmt

import (
	"go.uber.org/zap"
)

// Option is a functional option for compiling formatters.
type Option func(*config)

// config holds the shared compile/evaluate configuration.
type config struct {
	resolvers     []CommandResolver
	fallback      CommandResolver
	hasFallback   bool
	emptyValue    string
	emptyValueSet bool
	omitEmpty     bool
	preserveTypes bool
	sortKeys      bool
	logger        *zap.Logger
}

// newConfig applies options over the defaults.
func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if !c.hasFallback {
		c.fallback = DefaultGeneric()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// placeholder returns the effective empty-value substitute: an explicit
// WithEmptyValue wins, omit-empty maps to the empty string, otherwise the
// default "-".
func (c *config) placeholder() string {
	if c.emptyValueSet {
		return c.emptyValue
	}
	if c.omitEmpty {
		return ""
	}
	return DefaultEmptyValue
}

// WithResolvers attaches per-plan resolvers, tried after the builtin set
// in declaration order.
func WithResolvers(resolvers ...CommandResolver) Option {
	return func(c *config) {
		c.resolvers = append(c.resolvers, resolvers...)
	}
}

// WithFallback replaces the default generic fallback resolver. The
// fallback is consulted last; pass nil (or use WithoutFallback) to make
// unresolved commands a compile-time error.
func WithFallback(r CommandResolver) Option {
	return func(c *config) {
		c.fallback = r
		c.hasFallback = true
	}
}

// WithoutFallback removes the fallback resolver entirely: a command no
// builtin or per-plan resolver claims fails compilation.
func WithoutFallback() Option {
	return func(c *config) {
		c.fallback = nil
		c.hasFallback = true
	}
}

// WithEmptyValue sets the text substituted when a provider yields no
// value.
// Default: "-"
func WithEmptyValue(s string) Option {
	return func(c *config) {
		c.emptyValue = s
		c.emptyValueSet = true
	}
}

// WithOmitEmpty makes absent values vanish: flat formatting substitutes
// the empty string, structured formatting drops null fields and collapses
// emptied maps.
func WithOmitEmpty() Option {
	return func(c *config) {
		c.omitEmpty = true
	}
}

// WithPreserveTypes keeps typed values through structured evaluation:
// single-provider leaves yield the provider's typed value instead of its
// text form. Concatenated (multi-provider) leaves are inherently textual
// and stay strings.
func WithPreserveTypes() Option {
	return func(c *config) {
		c.preserveTypes = true
	}
}

// WithSortKeys renders object keys in sorted order instead of template
// declaration order. Affects only the JSON render surface, never the
// compiled plan or the evaluated value.
func WithSortKeys() Option {
	return func(c *config) {
		c.sortKeys = true
	}
}

// WithLogger sets the logger used during compilation and rendering.
// Default: no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
