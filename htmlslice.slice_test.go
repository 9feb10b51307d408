package htmlslice

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlice stands in for a compiled template type: it embeds Slice and
// runs a closure as its body.
type fakeSlice struct {
	Slice
	body func(s *fakeSlice) error
}

func (f *fakeSlice) Execute(context.Context) error {
	if f.body == nil {
		return nil
	}
	return f.body(f)
}

// flushRecorder is a streaming sink that counts flushes.
type flushRecorder struct {
	strings.Builder
	flushes int
}

func (f *flushRecorder) Flush() error {
	f.flushes++
	return nil
}

// TestRenderArgumentContract tests the nil-argument failures of the render
// entry points
func TestRenderArgumentContract(t *testing.T) {
	ctx := context.Background()

	t.Run("nil renderer to Render", func(t *testing.T) {
		err := Render(ctx, nil, GetBuffer())
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilRenderer)
	})

	t.Run("nil buffer to Render", func(t *testing.T) {
		err := Render(ctx, &fakeSlice{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilBuffer)
	})

	t.Run("nil writer to RenderWriter", func(t *testing.T) {
		err := RenderWriter(ctx, &fakeSlice{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilWriter)
	})

	t.Run("nil renderer to RenderString", func(t *testing.T) {
		_, err := RenderString(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilRenderer)
	})
}

// TestRenderSinkEquivalence tests that a layout-free render produces
// byte-identical output on the buffer sink and the stream sink
func TestRenderSinkEquivalence(t *testing.T) {
	ctx := context.Background()
	newPage := func() *fakeSlice {
		return &fakeSlice{body: func(s *fakeSlice) error {
			if err := s.WriteLiteral("<p id=\"greeting\">"); err != nil {
				return err
			}
			if err := s.Write("Tom & Jerry <3"); err != nil {
				return err
			}
			if err := s.Write(1984); err != nil {
				return err
			}
			return s.WriteLiteral("</p>")
		}}
	}

	buf := GetBuffer()
	defer ReleaseBuffer(buf)
	require.NoError(t, Render(ctx, newPage(), buf))

	var sb strings.Builder
	require.NoError(t, RenderWriter(ctx, newPage(), &sb))

	if diff := cmp.Diff(buf.String(), sb.String()); diff != "" {
		t.Errorf("buffer and stream output differ (-buffer +stream):\n%s", diff)
	}
	assert.Equal(t, "<p id=\"greeting\">Tom &amp; Jerry &lt;31984</p>", sb.String())
}

// TestFlush tests the flush callback wiring
func TestFlush(t *testing.T) {
	ctx := context.Background()

	t.Run("no callback is a no-op", func(t *testing.T) {
		page := &fakeSlice{body: func(s *fakeSlice) error {
			assert.False(t, s.CanFlush())
			return s.Flush(context.Background())
		}}
		buf := GetBuffer()
		defer ReleaseBuffer(buf)
		require.NoError(t, Render(ctx, page, buf))
	})

	t.Run("explicit callback invoked once per call", func(t *testing.T) {
		calls := 0
		page := &fakeSlice{body: func(s *fakeSlice) error {
			assert.True(t, s.CanFlush())
			if err := s.Flush(context.Background()); err != nil {
				return err
			}
			return s.Flush(context.Background())
		}}
		buf := GetBuffer()
		defer ReleaseBuffer(buf)
		err := Render(ctx, page, buf, WithFlushFunc(func(context.Context) error {
			calls++
			return nil
		}))
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("writer flush wired automatically", func(t *testing.T) {
		sink := new(flushRecorder)
		page := &fakeSlice{body: func(s *fakeSlice) error {
			if err := s.WriteLiteral("chunk"); err != nil {
				return err
			}
			return s.Flush(context.Background())
		}}
		require.NoError(t, RenderWriter(ctx, page, sink))
		assert.Equal(t, 1, sink.flushes)
		assert.Equal(t, "chunk", sink.String())
	})

	t.Run("plain writer has no flush", func(t *testing.T) {
		var sb strings.Builder
		page := &fakeSlice{body: func(s *fakeSlice) error {
			assert.False(t, s.CanFlush())
			return nil
		}}
		require.NoError(t, RenderWriter(ctx, page, &sb))
	})
}

// TestRenderBodyWithoutLayout tests that RenderBody is inert on a slice
// that wraps nothing
func TestRenderBodyWithoutLayout(t *testing.T) {
	page := &fakeSlice{body: func(s *fakeSlice) error {
		assert.Equal(t, HTML(""), s.RenderBody())
		return s.WriteLiteral("solo")
	}}
	out, err := RenderString(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, "solo", out)
}

// TestInactiveSinkWritesAreNoOps tests the write family against a slice
// with no active render target
func TestInactiveSinkWritesAreNoOps(t *testing.T) {
	s := new(Slice)
	assert.NoError(t, s.Write("text"))
	assert.NoError(t, s.WriteLiteral("literal"))
	assert.NoError(t, s.WriteLiteralBytes([]byte("bytes")))
	assert.NoError(t, s.WriteHTML(HTML("<b>safe</b>")))
}
