package htmlslice

import (
	"encoding"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteLiteral writes static template markup without encoding. Compiled
// bodies use it for the literal spans between expressions.
func (s *Slice) WriteLiteral(text string) error {
	return s.writeRawString(text)
}

// WriteLiteralBytes writes static markup bytes without encoding.
func (s *Slice) WriteLiteralBytes(p []byte) error {
	return s.writeRawBytes(p)
}

// WriteHTML writes a pre-encoded fragment without re-encoding it.
func (s *Slice) WriteHTML(fragment HTML) error {
	return s.writeRawString(string(fragment))
}

// Write renders a dynamic value into the active sink. Dispatch priority:
// numeric/bool and text-appending fast paths (no intermediate string),
// string, bytes, pre-encoded HTML fragment, structured Content, stringer
// values, then a stringify-and-encode fallback. Everything except fragments
// and Content is HTML-encoded on the way out.
func (s *Slice) Write(value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case int:
		return s.writeInt(int64(v))
	case int8:
		return s.writeInt(int64(v))
	case int16:
		return s.writeInt(int64(v))
	case int32:
		return s.writeInt(int64(v))
	case int64:
		return s.writeInt(v)
	case uint:
		return s.writeUint(uint64(v))
	case uint8:
		return s.writeUint(uint64(v))
	case uint16:
		return s.writeUint(uint64(v))
	case uint32:
		return s.writeUint(uint64(v))
	case uint64:
		return s.writeUint(v)
	case float32:
		return s.writeFloat(float64(v), 32)
	case float64:
		return s.writeFloat(v, 64)
	case bool:
		var scratch [8]byte
		return s.writeRawBytes(strconv.AppendBool(scratch[:0], v))
	case string:
		return s.writeEscapedString(v)
	case []byte:
		return s.writeEscapedBytes(v)
	case HTML:
		return s.writeRawString(string(v))
	case encoding.TextAppender:
		var scratch [64]byte
		b, err := v.AppendText(scratch[:0])
		if err != nil {
			return NewFormatWriteError(err)
		}
		return s.writeEscapedBytes(b)
	case Content:
		return v.RenderHTML(s)
	case fmt.Stringer:
		return s.writeEscapedString(v.String())
	case error:
		return s.writeEscapedString(v.Error())
	default:
		return s.writeEscapedString(fmt.Sprint(value))
	}
}

// WriteFormatted renders values through a locale-aware printer (digit
// grouping, localized numerals) and HTML-encodes the result. The formatted
// output streams through a pooled adapter; no intermediate string is built.
func (s *Slice) WriteFormatted(tag language.Tag, format string, args ...any) error {
	w := acquireEncodedWriter(s)
	defer releaseEncodedWriter(w)
	if _, err := message.NewPrinter(tag).Fprintf(w, format, args...); err != nil {
		return NewFormatWriteError(err)
	}
	return nil
}

// defaultSanitizer is shared across renders that configure no policy of
// their own. bluemonday policies are safe for concurrent use.
var defaultSanitizer = sync.OnceValue(func() *bluemonday.Policy {
	return bluemonday.UGCPolicy()
})

// WriteSanitized writes user-supplied rich HTML after passing it through
// the configured sanitizer policy: markup survives, scripts and event
// handlers do not. Use Write for plain text; this path is for content that
// is supposed to contain HTML.
func (s *Slice) WriteSanitized(markup string) error {
	policy := s.sanitizer
	if policy == nil {
		policy = defaultSanitizer()
	}
	if err := policy.SanitizeReaderToWriter(strings.NewReader(markup), s.rawWriter()); err != nil {
		return NewSanitizeError(err)
	}
	return nil
}

func (s *Slice) writeInt(v int64) error {
	var scratch [24]byte
	return s.writeRawBytes(strconv.AppendInt(scratch[:0], v, 10))
}

func (s *Slice) writeUint(v uint64) error {
	var scratch [24]byte
	return s.writeRawBytes(strconv.AppendUint(scratch[:0], v, 10))
}

func (s *Slice) writeFloat(v float64, bits int) error {
	var scratch [32]byte
	return s.writeRawBytes(strconv.AppendFloat(scratch[:0], v, 'g', -1, bits))
}

// writeRawString writes text without encoding. An inactive target makes the
// write a no-op; only one sink kind is ever live.
func (s *Slice) writeRawString(text string) error {
	switch s.target.kind {
	case targetBuffer:
		s.target.buffer.AppendString(text)
		return nil
	case targetStream:
		if _, err := io.WriteString(s.target.stream, text); err != nil {
			return NewSinkWriteError(err)
		}
		return nil
	default:
		return nil
	}
}

func (s *Slice) writeRawBytes(p []byte) error {
	switch s.target.kind {
	case targetBuffer:
		s.target.buffer.Append(p)
		return nil
	case targetStream:
		if _, err := s.target.stream.Write(p); err != nil {
			return NewSinkWriteError(err)
		}
		return nil
	default:
		return nil
	}
}

func (s *Slice) writeEscapedString(text string) error {
	switch s.target.kind {
	case targetBuffer:
		s.activeEncoder().EscapeString(s.target.buffer, text)
		return nil
	case targetStream:
		if err := s.activeEncoder().EscapeStringTo(s.target.stream, text); err != nil {
			return NewSinkWriteError(err)
		}
		return nil
	default:
		return nil
	}
}

func (s *Slice) writeEscapedBytes(p []byte) error {
	switch s.target.kind {
	case targetBuffer:
		s.activeEncoder().EscapeBytes(s.target.buffer, p)
		return nil
	case targetStream:
		if err := s.activeEncoder().EscapeBytesTo(s.target.stream, p); err != nil {
			return NewSinkWriteError(err)
		}
		return nil
	default:
		return nil
	}
}
