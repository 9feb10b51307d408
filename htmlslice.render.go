package htmlslice

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// flusher is the flush surface a streaming sink may expose.
type flusher interface {
	Flush() error
}

// bareFlusher covers sinks with a flush that cannot fail, e.g.
// http.Flusher.
type bareFlusher interface {
	Flush()
}

// Render renders r into the byte-buffer sink buf. When r declares a layout,
// the body is captured and composed through the layout chain before hitting
// buf; otherwise the body writes into buf directly. A call that performs no
// streaming I/O completes synchronously with no deferred machinery.
func Render(ctx context.Context, r Renderer, buf *Buffer, opts ...RenderOption) error {
	if r == nil {
		return NewNilRendererError()
	}
	if buf == nil {
		return NewNilBufferError()
	}
	s := r.base()
	s.self = r
	s.apply(opts)
	return renderTo(ctx, s, renderTarget{kind: targetBuffer, buffer: buf})
}

// RenderWriter renders r into the streaming sink w. If w exposes a Flush
// method, in-template flush requests are wired to it.
func RenderWriter(ctx context.Context, r Renderer, w io.Writer, opts ...RenderOption) error {
	if r == nil {
		return NewNilRendererError()
	}
	if w == nil {
		return NewNilWriterError()
	}
	s := r.base()
	s.self = r
	s.apply(opts)
	if s.flush == nil {
		s.flush = flushFuncFor(w)
	}
	return renderTo(ctx, s, renderTarget{kind: targetStream, stream: w})
}

func renderTo(ctx context.Context, s *Slice, target renderTarget) error {
	if s.layout == "" && s.defaultLayout != "" {
		s.layout = s.defaultLayout
	}
	if s.layout != "" {
		return s.renderWithLayout(ctx, target)
	}

	s.target = target
	s.propagateTarget()
	s.log().Debug(LogMsgRenderStart,
		zap.String(LogFieldSink, target.kind.String()),
		zap.String(LogFieldLayout, s.layout))
	if err := s.self.Execute(ctx); err != nil {
		return err
	}
	s.log().Debug(LogMsgRenderEnd)
	return nil
}

// flushFuncFor adapts a sink's own flush operation to the uniform flush
// signature. Sinks without one get no flush callback at all.
func flushFuncFor(w io.Writer) FlushFunc {
	switch f := w.(type) {
	case flusher:
		return func(context.Context) error { return f.Flush() }
	case bareFlusher:
		return func(context.Context) error {
			f.Flush()
			return nil
		}
	default:
		return nil
	}
}
