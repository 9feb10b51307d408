package htmlslice

import (
	"context"
	"strings"
	"sync"
)

// builderPool reuses string builders for capture buffers and RenderString.
// Builders are reset before reuse, so no render's output can leak into
// another's result.
var builderPool = sync.Pool{
	New: func() any {
		b := new(strings.Builder)
		b.Grow(StringBuilderInitialCapacity)
		return b
	},
}

func acquireStringBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func releaseStringBuilder(b *strings.Builder) {
	if b == nil || b.Cap() > MaxPooledStringBuilderCapacity {
		return
	}
	b.Reset()
	builderPool.Put(b)
}

// RenderString renders r into a pooled in-memory text buffer and returns
// the accumulated string. Layout composition and sections work exactly as
// with the other entry points.
func RenderString(ctx context.Context, r Renderer, opts ...RenderOption) (string, error) {
	if r == nil {
		return "", NewNilRendererError()
	}
	sb := acquireStringBuilder()
	defer releaseStringBuilder(sb)
	if err := RenderWriter(ctx, r, sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}
