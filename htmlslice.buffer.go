package htmlslice

import "sync"

// Buffer is the byte-buffer render sink: an append-only growable byte buffer.
// The zero value is ready to use. Buffers obtained from GetBuffer are pooled
// and must be returned with ReleaseBuffer.
type Buffer struct {
	b []byte
}

// NewBuffer returns a buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{b: make([]byte, 0, capacity)}
}

// Append appends p to the buffer.
func (b *Buffer) Append(p []byte) {
	b.b = append(b.b, p...)
}

// AppendString appends s to the buffer.
func (b *Buffer) AppendString(s string) {
	b.b = append(b.b, s...)
}

// AppendByte appends a single byte to the buffer.
func (b *Buffer) AppendByte(c byte) {
	b.b = append(b.b, c)
}

// Len returns the number of bytes accumulated so far.
func (b *Buffer) Len() int {
	return len(b.b)
}

// Bytes returns the accumulated bytes. The slice is only valid until the
// next append or Reset.
func (b *Buffer) Bytes() []byte {
	return b.b
}

// String returns a copy of the accumulated bytes as a string.
func (b *Buffer) String() string {
	return string(b.b)
}

// Reset truncates the buffer to zero length, keeping its capacity.
func (b *Buffer) Reset() {
	b.b = b.b[:0]
}

// Write implements io.Writer. Appends never fail.
func (b *Buffer) Write(p []byte) (int, error) {
	b.b = append(b.b, p...)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	b.b = append(b.b, s...)
	return len(s), nil
}

// bufferPool reuses buffers across renders. Oversized buffers are dropped on
// release so a single huge render cannot pin memory for the process lifetime.
var bufferPool = sync.Pool{
	New: func() any { return NewBuffer(DefaultBufferCapacity) },
}

// GetBuffer returns an empty pooled buffer.
func GetBuffer() *Buffer {
	b := bufferPool.Get().(*Buffer)
	b.Reset()
	return b
}

// ReleaseBuffer returns a buffer to the pool. Buffers above
// MaxPooledBufferCapacity are discarded.
func ReleaseBuffer(b *Buffer) {
	if b == nil || cap(b.b) > MaxPooledBufferCapacity {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}
