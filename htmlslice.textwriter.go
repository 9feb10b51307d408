package htmlslice

import (
	"sync"
	"unicode/utf8"
)

// encodedWriter adapts the active sink to io.Writer with HTML encoding
// applied on the way through, so writer-oriented producers (the locale
// printer, Content serializers) can stream into either sink kind without
// building an intermediate string. Instances are pooled; acquire and
// release bracket every use, including error paths.
type encodedWriter struct {
	slice *Slice
}

func (w *encodedWriter) Write(p []byte) (int, error) {
	if err := w.slice.writeEscapedBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *encodedWriter) WriteString(s string) (int, error) {
	if err := w.slice.writeEscapedString(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// WriteRune encodes r as UTF-8 and writes it encoded. The byte-count check
// is an internal invariant: a mismatch means a bug in the writer, not bad
// input.
func (w *encodedWriter) WriteRune(r rune) (int, error) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if want := utf8.RuneLen(r); want != -1 && want != n {
		return 0, NewRuneEncodingError(want, n)
	}
	if err := w.slice.writeEscapedBytes(buf[:n]); err != nil {
		return 0, err
	}
	return n, nil
}

var encodedWriterPool = sync.Pool{
	New: func() any { return new(encodedWriter) },
}

func acquireEncodedWriter(s *Slice) *encodedWriter {
	w := encodedWriterPool.Get().(*encodedWriter)
	w.slice = s
	return w
}

func releaseEncodedWriter(w *encodedWriter) {
	w.slice = nil
	encodedWriterPool.Put(w)
}
