package subfmt

// CommandResolver turns a parsed command token into a Provider. A nil
// return signals "not mine" and lets the resolution chain continue; it is
// not an error.
//
// Resolvers run at compile time only. They are expected, but not required,
// to be free of side effects; identical input must resolve to a
// structurally identical provider for plans to be deterministic.
type CommandResolver interface {
	ResolveCommand(cmd Command) Provider
}

// ResolverFunc adapts a plain function to the CommandResolver interface.
type ResolverFunc func(cmd Command) Provider

// ResolveCommand invokes the function.
func (f ResolverFunc) ResolveCommand(cmd Command) Provider {
	return f(cmd)
}

// ResolverFactory instantiates a CommandResolver from a typed
// configuration value. Factories carry the out-of-band identity metadata
// the embedding system's registry needs to pick a factory for a
// configuration blob.
//
// CreateResolver must return a usable resolver or an error; a nil resolver
// with a nil error is translated into a configuration error by
// NewResolverFromConfig, failing the configuration load rather than
// silently omitting the command.
type ResolverFactory interface {
	// Name returns the factory's unique registry name.
	Name() string

	// ConfigKinds returns the configuration kinds this factory accepts.
	ConfigKinds() []string

	// DefaultConfig returns an empty configuration value of the kind the
	// factory expects.
	DefaultConfig() any

	// CreateResolver instantiates a resolver from a configuration value.
	CreateResolver(config any) (CommandResolver, error)
}
