package htmlslice

import (
	"context"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// targetKind discriminates the render target union. At most one sink is
// active during a render pass.
type targetKind uint8

const (
	targetNone targetKind = iota
	targetBuffer
	targetStream
)

func (k targetKind) String() string {
	switch k {
	case targetBuffer:
		return "buffer"
	case targetStream:
		return "stream"
	default:
		return "none"
	}
}

// renderTarget is the active output sink. Modeled as a tagged struct rather
// than two nullable fields so mutual exclusivity has a single switch point.
type renderTarget struct {
	kind   targetKind
	buffer *Buffer
	stream io.Writer
}

// FlushFunc pushes buffered output towards the client. Cancellation reaches
// only this callback; body execution is never cancelled mid-render.
type FlushFunc func(ctx context.Context) error

// HTML is a pre-encoded fragment: text already known to be HTML-safe,
// written without further escaping.
type HTML string

// Content is structured HTML content that serializes itself against the
// active sink through the slice's write primitives.
type Content interface {
	RenderHTML(s *Slice) error
}

// Renderer is the compiled-body contract. Every generated template type
// embeds Slice and implements Execute; the unexported accessor keeps the
// interface satisfiable only through that embedding.
type Renderer interface {
	Execute(ctx context.Context) error
	base() *Slice
}

// Slice is the base runtime embedded by every compiled template type. A
// slice instance lives for exactly one render pass: sinks, encoder and
// section state are assigned at render entry, section entries are appended
// during body execution, and the instance is discarded afterwards.
type Slice struct {
	layout        string
	defaultLayout string
	target        renderTarget
	flush         FlushFunc
	encoder       HTMLEncoder
	sanitizer     *bluemonday.Policy
	resolver      ServiceResolver
	registry      *Registry
	logger        *zap.Logger

	// previous is the content slice this (layout) instance wraps; the links
	// form a chain at most as deep as the nesting of layouts.
	previous     Renderer
	previousBody HTML
	sections     map[string]SectionFunc

	// self is the outer compiled type, needed to invoke Execute from the
	// composition path.
	self Renderer

	// capture is the pooled in-memory buffer the body renders into while a
	// layout wraps it.
	capture *strings.Builder
}

func (s *Slice) base() *Slice { return s }

// SetLayout declares the layout that wraps this slice's output. Generated
// factories call this from the template's layout metadata.
func (s *Slice) SetLayout(identifier string) {
	s.layout = identifier
}

// Layout returns the declared layout identifier, if any.
func (s *Slice) Layout() string {
	return s.layout
}

// CanFlush reports whether a flush callback is configured for this render.
func (s *Slice) CanFlush() bool {
	return s.flush != nil
}

// Flush invokes the configured flush callback once. Without a callback it
// is a no-op that returns immediately.
func (s *Slice) Flush(ctx context.Context) error {
	if s.flush == nil {
		return nil
	}
	s.log().Debug(LogMsgFlushInvoked)
	return s.flush(ctx)
}

// RenderBody writes the wrapped content slice's captured body at the call
// site. Layout bodies call it where un-sectioned content should appear. The
// fragment is already encoded and is not encoded again. Returns an empty
// fragment when this slice wraps nothing.
func (s *Slice) RenderBody() HTML {
	if s.previous == nil {
		return ""
	}
	// Write errors surface on the next write; RenderBody stays expression-
	// shaped so compiled bodies can emit it inline.
	_ = s.writeRawString(string(s.previousBody))
	return s.previousBody
}

func (s *Slice) log() *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

func (s *Slice) activeEncoder() HTMLEncoder {
	if s.encoder == nil {
		return defaultEncoder
	}
	return s.encoder
}

func (s *Slice) activeRegistry() *Registry {
	if s.registry == nil {
		return DefaultRegistry
	}
	return s.registry
}

// rawWriter exposes the active sink as an io.Writer for collaborators that
// produce already-safe output (sanitizer, captured fragments).
func (s *Slice) rawWriter() io.Writer {
	switch s.target.kind {
	case targetBuffer:
		return s.target.buffer
	case targetStream:
		return s.target.stream
	default:
		return io.Discard
	}
}

// propagateTarget redirects every slice down the previous-chain to this
// slice's live sink. Section producers captured against a stale capture
// buffer then transparently write to the real output.
func (s *Slice) propagateTarget() {
	for prev := s.previous; prev != nil; prev = prev.base().previous {
		prev.base().target = s.target
	}
}

// renderWithLayout runs the layout-composition protocol: capture this
// slice's body into a pooled text buffer, resolve and instantiate the
// declared layout, hand it the captured body and the shared section
// registry, then render the layout against the original sink. The layout
// may itself declare a layout; composition nests to arbitrary depth.
//
// The body is executed to completion before the layout is resolved: the
// layout is not known until the compiled code path has run, and sections
// may be re-placed by the layout in a different order than declared.
func (s *Slice) renderWithLayout(ctx context.Context, final renderTarget) error {
	if s.layout == "" {
		return NewLayoutUnsetError()
	}

	s.log().Debug(LogMsgLayoutCapture, zap.String(LogFieldLayout, s.layout))

	// Reuse the capture buffer when this instance is already part of a
	// composition chain.
	if s.capture == nil {
		s.capture = acquireStringBuilder()
	}
	defer func() {
		// A deeper composition pass may have already released and cleared
		// this capture while redirecting the chain.
		if s.capture != nil {
			releaseStringBuilder(s.capture)
			s.capture = nil
		}
	}()
	s.target = renderTarget{kind: targetStream, stream: s.capture}

	// Close out stale capture buffers down the chain and point every
	// wrapped slice at the newest one, so section producers captured
	// earlier write into the buffer the current layer is assembling.
	for prev := s.previous; prev != nil; prev = prev.base().previous {
		pb := prev.base()
		if pb.capture != nil && pb.capture != s.capture {
			releaseStringBuilder(pb.capture)
			pb.capture = nil
		}
		pb.target = s.target
	}

	// Produces the un-sectioned body text and, as a side effect, populates
	// the section registry.
	if err := s.self.Execute(ctx); err != nil {
		return err
	}

	def, ok := s.activeRegistry().Lookup(s.layout)
	if !ok {
		return NewLayoutNotFoundError(s.layout)
	}
	layout, err := def.instantiate(s.resolver)
	if err != nil {
		return err
	}
	s.log().Debug(LogMsgLayoutResolved,
		zap.String(LogFieldLayout, s.layout),
		zap.Bool(LogFieldInjected, def.RequiresInjection))

	lb := layout.base()
	lb.self = layout
	lb.previous = s.self
	lb.previousBody = HTML(s.capture.String())
	// Shared ownership: the layout consumes the same registry the content
	// slice populated, not a copy.
	lb.sections = s.sections
	lb.encoder = s.encoder
	lb.flush = s.flush
	lb.sanitizer = s.sanitizer
	lb.resolver = s.resolver
	lb.registry = s.registry
	lb.logger = s.logger

	switch final.kind {
	case targetBuffer:
		return Render(ctx, layout, final.buffer)
	default:
		return RenderWriter(ctx, layout, final.stream)
	}
}
