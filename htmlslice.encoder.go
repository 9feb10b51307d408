package htmlslice

import (
	"io"

	"github.com/itsatony/go-htmlslice/internal"
)

// HTMLEncoder is the pluggable encoding policy applied to non-literal
// writes. Implementations provide one escape path per sink kind so the byte
// buffer never pays for an io.Writer indirection.
type HTMLEncoder interface {
	// EscapeString appends the escaped form of s to dst.
	EscapeString(dst *Buffer, s string)
	// EscapeBytes appends the escaped form of p to dst.
	EscapeBytes(dst *Buffer, p []byte)
	// EscapeStringTo writes the escaped form of s to w.
	EscapeStringTo(w io.Writer, s string) error
	// EscapeBytesTo writes the escaped form of p to w.
	EscapeBytesTo(w io.Writer, p []byte) error
}

// DefaultEncoder escapes the five HTML-special characters, matching the
// entities used by the standard library's html package. Clean input is
// copied in bulk with no per-byte writes.
type DefaultEncoder struct{}

func (DefaultEncoder) EscapeString(dst *Buffer, s string) {
	dst.b = internal.AppendEscapedString(dst.b, s)
}

func (DefaultEncoder) EscapeBytes(dst *Buffer, p []byte) {
	dst.b = internal.AppendEscapedBytes(dst.b, p)
}

func (DefaultEncoder) EscapeStringTo(w io.Writer, s string) error {
	return internal.WriteEscapedString(w, s)
}

func (DefaultEncoder) EscapeBytesTo(w io.Writer, p []byte) error {
	return internal.WriteEscapedBytes(w, p)
}

// PassthroughEncoder performs no escaping at all. Opt-in, for renders whose
// entire input is already trusted markup.
type PassthroughEncoder struct{}

func (PassthroughEncoder) EscapeString(dst *Buffer, s string) {
	dst.AppendString(s)
}

func (PassthroughEncoder) EscapeBytes(dst *Buffer, p []byte) {
	dst.Append(p)
}

func (PassthroughEncoder) EscapeStringTo(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (PassthroughEncoder) EscapeBytesTo(w io.Writer, p []byte) error {
	_, err := w.Write(p)
	return err
}

// defaultEncoder is the encoding policy used when a render supplies none.
var defaultEncoder HTMLEncoder = DefaultEncoder{}
