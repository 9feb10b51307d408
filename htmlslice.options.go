package htmlslice

import (
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// RenderOption configures a single render pass.
type RenderOption func(*Slice)

// WithEncoder overrides the HTML encoding policy for this render.
// Default: DefaultEncoder.
func WithEncoder(enc HTMLEncoder) RenderOption {
	return func(s *Slice) {
		if enc != nil {
			s.encoder = enc
		}
	}
}

// WithFlushFunc sets the callback invoked by in-template flush requests.
// Default: none for buffer renders; the sink's own Flush for writer renders.
func WithFlushFunc(fn FlushFunc) RenderOption {
	return func(s *Slice) {
		s.flush = fn
	}
}

// WithResolver supplies the service resolver used to construct layouts that
// declare injected dependencies.
func WithResolver(resolver ServiceResolver) RenderOption {
	return func(s *Slice) {
		s.resolver = resolver
	}
}

// WithRegistry overrides the slice-definition registry used to resolve
// layouts. Default: DefaultRegistry.
func WithRegistry(registry *Registry) RenderOption {
	return func(s *Slice) {
		s.registry = registry
	}
}

// WithLogger sets the logger for this render.
// Default: no logging.
func WithLogger(logger *zap.Logger) RenderOption {
	return func(s *Slice) {
		s.logger = logger
	}
}

// WithSanitizer sets the policy used by WriteSanitized.
// Default: bluemonday.UGCPolicy.
func WithSanitizer(policy *bluemonday.Policy) RenderOption {
	return func(s *Slice) {
		s.sanitizer = policy
	}
}

// WithDefaultLayout wraps slices that declare no layout of their own in the
// given layout. Slices with explicit layout metadata are unaffected.
func WithDefaultLayout(identifier string) RenderOption {
	return func(s *Slice) {
		s.defaultLayout = identifier
	}
}

// apply runs the options against the slice.
func (s *Slice) apply(opts []RenderOption) {
	for _, opt := range opts {
		opt(s)
	}
}
