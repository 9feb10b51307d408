package htmlslice

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuffer tests the byte-buffer sink primitives
func TestBuffer(t *testing.T) {
	t.Run("append family", func(t *testing.T) {
		buf := NewBuffer(4)
		buf.Append([]byte("ab"))
		buf.AppendString("cd")
		buf.AppendByte('e')
		assert.Equal(t, 5, buf.Len())
		assert.Equal(t, "abcde", buf.String())
		assert.Equal(t, []byte("abcde"), buf.Bytes())
	})

	t.Run("reset keeps capacity", func(t *testing.T) {
		buf := NewBuffer(8)
		buf.AppendString("content")
		buf.Reset()
		assert.Equal(t, 0, buf.Len())
		assert.Equal(t, "", buf.String())
	})

	t.Run("io interfaces", func(t *testing.T) {
		buf := NewBuffer(8)
		n, err := buf.Write([]byte("xy"))
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		n, err = io.WriteString(buf, "z")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, "xyz", buf.String())
	})
}

// TestBufferPool tests acquisition and release behavior
func TestBufferPool(t *testing.T) {
	t.Run("pooled buffers start empty", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			buf := GetBuffer()
			assert.Equal(t, 0, buf.Len())
			buf.AppendString("residue")
			ReleaseBuffer(buf)
		}
	})

	t.Run("oversized buffers are discarded", func(t *testing.T) {
		big := NewBuffer(MaxPooledBufferCapacity + 1)
		big.AppendString("x")
		// Must not panic; the buffer is simply dropped.
		ReleaseBuffer(big)
	})

	t.Run("nil release is safe", func(t *testing.T) {
		ReleaseBuffer(nil)
	})
}
