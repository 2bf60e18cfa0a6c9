package subfmt

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// The builtin resolver registry is process-wide state: written during
// startup, read concurrently by every compilation thereafter. Builtin
// resolvers take precedence over everything else so that core command
// semantics stay consistent across deployments; they must not claim
// overlapping names since the set is unordered and first match wins.
type builtinRegistry struct {
	mu        sync.RWMutex
	resolvers []CommandResolver
	logger    *zap.Logger
}

var builtins = &builtinRegistry{logger: zap.NewNop()}

// SetRegistryLogger sets the logger used by the process-wide registries.
// Call during startup, before registration and compilation begin.
func SetRegistryLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	builtins.mu.Lock()
	builtins.logger = logger
	builtins.mu.Unlock()

	factories.mu.Lock()
	factories.logger = logger
	factories.mu.Unlock()
}

// RegisterBuiltin adds a resolver to the process-wide builtin set. The set
// is append-only: register during startup, before any plan is compiled.
func RegisterBuiltin(r CommandResolver) error {
	if r == nil {
		return NewRegistryError(ErrMsgNilResolver)
	}

	builtins.mu.Lock()
	defer builtins.mu.Unlock()

	builtins.resolvers = append(builtins.resolvers, r)
	builtins.logger.Debug(LogMsgBuiltinRegistered,
		zap.Int(LogFieldCount, len(builtins.resolvers)))
	return nil
}

// MustRegisterBuiltin adds a builtin resolver and panics on failure. Use
// from init functions that must always succeed.
func MustRegisterBuiltin(r CommandResolver) {
	if err := RegisterBuiltin(r); err != nil {
		panic(err)
	}
}

// Builtins returns a snapshot of the builtin resolver set.
func Builtins() []CommandResolver {
	builtins.mu.RLock()
	defer builtins.mu.RUnlock()

	out := make([]CommandResolver, len(builtins.resolvers))
	copy(out, builtins.resolvers)
	return out
}

// factoryRegistry maps factory names to resolver factories with
// first-come-wins semantics.
type factoryRegistry struct {
	mu        sync.RWMutex
	factories map[string]ResolverFactory
	logger    *zap.Logger
}

var factories = &factoryRegistry{
	factories: make(map[string]ResolverFactory),
	logger:    zap.NewNop(),
}

// RegisterFactory adds a resolver factory to the process-wide factory
// registry. Returns an error if a factory with the same name exists.
func RegisterFactory(f ResolverFactory) error {
	if f == nil {
		return NewRegistryError(ErrMsgNilFactory)
	}

	name := f.Name()
	if name == "" {
		return NewRegistryError(ErrMsgEmptyFactory)
	}

	factories.mu.Lock()
	defer factories.mu.Unlock()

	if _, exists := factories.factories[name]; exists {
		return NewFactoryError(ErrMsgFactoryExists, name, nil)
	}

	factories.factories[name] = f
	factories.logger.Debug(LogMsgFactoryRegistered, zap.String(LogFieldFactory, name))
	return nil
}

// MustRegisterFactory adds a factory and panics on failure.
func MustRegisterFactory(f ResolverFactory) {
	if err := RegisterFactory(f); err != nil {
		panic(err)
	}
}

// Factory retrieves a registered factory by name.
func Factory(name string) (ResolverFactory, bool) {
	factories.mu.RLock()
	defer factories.mu.RUnlock()

	f, ok := factories.factories[name]
	return f, ok
}

// FactoryNames returns all registered factory names in sorted order.
func FactoryNames() []string {
	factories.mu.RLock()
	defer factories.mu.RUnlock()

	names := make([]string, 0, len(factories.factories))
	for name := range factories.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewResolverFromConfig instantiates a resolver through a registered
// factory. Any failure here - unknown factory, factory error, or a factory
// that signals "no resolver" - is a configuration error and must fail the
// embedding configuration load.
func NewResolverFromConfig(name string, config any) (CommandResolver, error) {
	f, ok := Factory(name)
	if !ok {
		return nil, NewFactoryError(ErrMsgFactoryUnknown, name, nil)
	}

	r, err := f.CreateResolver(config)
	if err != nil {
		return nil, NewFactoryError(ErrMsgFactoryFailed, name, err)
	}
	if r == nil {
		return nil, NewFactoryError(ErrMsgFactoryNoResolver, name, nil)
	}
	return r, nil
}
