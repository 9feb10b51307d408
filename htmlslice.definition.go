package htmlslice

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ServiceResolver resolves injected services for slices constructed through
// a DI-aware factory. Supplied by the host application.
type ServiceResolver interface {
	Resolve(service string) (any, error)
}

// SliceDefinition maps a slice identifier to a construction strategy. The
// registration code that populates these records is generated by the
// template compiler; the engine only reads them.
type SliceDefinition struct {
	// Identifier is the name layouts are looked up by, e.g. "layouts/main".
	Identifier string
	// Factory constructs the slice without injected dependencies.
	Factory func() Renderer
	// InjectedFactory constructs the slice with services from a resolver.
	// Used instead of Factory when RequiresInjection is true.
	InjectedFactory func(ServiceResolver) Renderer
	// RequiresInjection marks definitions that must be built through
	// InjectedFactory with a non-nil resolver.
	RequiresInjection bool
}

// instantiate builds a fresh renderer from the definition, enforcing the
// resolver requirement for DI-aware factories.
func (d SliceDefinition) instantiate(resolver ServiceResolver) (Renderer, error) {
	if d.RequiresInjection {
		if resolver == nil {
			return nil, NewNilResolverError(d.Identifier)
		}
		return d.InjectedFactory(resolver), nil
	}
	return d.Factory(), nil
}

// Registry is a concurrency-safe identifier -> SliceDefinition lookup. It is
// populated once at startup by generated registration code and read-only
// from the engine's perspective during renders.
type Registry struct {
	mu     sync.RWMutex
	defs   map[string]SliceDefinition
	logger *zap.Logger
}

// NewRegistry creates an empty registry. A nil logger disables logging.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		defs:   make(map[string]SliceDefinition),
		logger: logger,
	}
}

// Register adds a definition. The identifier must be non-empty, unique, and
// the factory matching RequiresInjection must be non-nil.
func (r *Registry) Register(def SliceDefinition) error {
	if def.Identifier == "" {
		return NewEmptyIdentifierError()
	}
	if def.RequiresInjection {
		if def.InjectedFactory == nil {
			return NewNilFactoryError(def.Identifier)
		}
	} else if def.Factory == nil {
		return NewNilFactoryError(def.Identifier)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Identifier]; exists {
		return NewDuplicateDefinitionError(def.Identifier)
	}
	r.defs[def.Identifier] = def
	r.logger.Debug(LogMsgSliceRegistered,
		zap.String(LogFieldIdentifier, def.Identifier),
		zap.Bool(LogFieldInjected, def.RequiresInjection))
	return nil
}

// MustRegister adds a definition and panics if registration fails. Intended
// for generated init code where a failure means a broken build.
func (r *Registry) MustRegister(def SliceDefinition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition for identifier, if registered.
func (r *Registry) Lookup(identifier string) (SliceDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[identifier]
	return def, ok
}

// Identifiers returns all registered identifiers in sorted order.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultRegistry is the process-wide registry that generated registration
// code targets. Renders use it unless WithRegistry overrides.
var DefaultRegistry = NewRegistry(nil)

// Register adds a definition to the DefaultRegistry.
func Register(def SliceDefinition) error {
	return DefaultRegistry.Register(def)
}

// MustRegister adds a definition to the DefaultRegistry, panicking on error.
func MustRegister(def SliceDefinition) {
	DefaultRegistry.MustRegister(def)
}
