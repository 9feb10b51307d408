package internal

import "io"

// htmlEscapes maps the five HTML-special bytes to their entity form.
// Entities match the ones emitted by the standard library's html package.
var htmlEscapes = [256]string{
	'&':  "&amp;",
	'\'': "&#39;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&#34;",
}

// IndexNeedsEscape returns the index of the first byte of s that requires
// HTML escaping, or -1 if s can be written as-is.
func IndexNeedsEscape(s string) int {
	for i := 0; i < len(s); i++ {
		if htmlEscapes[s[i]] != "" {
			return i
		}
	}
	return -1
}

// AppendEscapedString appends the HTML-escaped form of s to dst and returns
// the extended slice. Unescaped runs are copied in bulk.
func AppendEscapedString(dst []byte, s string) []byte {
	last := 0
	for i := 0; i < len(s); i++ {
		esc := htmlEscapes[s[i]]
		if esc == "" {
			continue
		}
		dst = append(dst, s[last:i]...)
		dst = append(dst, esc...)
		last = i + 1
	}
	return append(dst, s[last:]...)
}

// AppendEscapedBytes appends the HTML-escaped form of p to dst and returns
// the extended slice.
func AppendEscapedBytes(dst, p []byte) []byte {
	last := 0
	for i := 0; i < len(p); i++ {
		esc := htmlEscapes[p[i]]
		if esc == "" {
			continue
		}
		dst = append(dst, p[last:i]...)
		dst = append(dst, esc...)
		last = i + 1
	}
	return append(dst, p[last:]...)
}

// WriteEscapedString writes the HTML-escaped form of s to w. Unescaped runs
// are written in bulk so clean input costs a single write.
func WriteEscapedString(w io.Writer, s string) error {
	last := 0
	for i := 0; i < len(s); i++ {
		esc := htmlEscapes[s[i]]
		if esc == "" {
			continue
		}
		if last < i {
			if _, err := io.WriteString(w, s[last:i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, esc); err != nil {
			return err
		}
		last = i + 1
	}
	if last < len(s) {
		if _, err := io.WriteString(w, s[last:]); err != nil {
			return err
		}
	}
	return nil
}

// WriteEscapedBytes writes the HTML-escaped form of p to w.
func WriteEscapedBytes(w io.Writer, p []byte) error {
	last := 0
	for i := 0; i < len(p); i++ {
		esc := htmlEscapes[p[i]]
		if esc == "" {
			continue
		}
		if last < i {
			if _, err := w.Write(p[last:i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, esc); err != nil {
			return err
		}
		last = i + 1
	}
	if last < len(p) {
		if _, err := w.Write(p[last:]); err != nil {
			return err
		}
	}
	return nil
}

// EscapeString returns the HTML-escaped form of s. The input is returned
// untouched when nothing needs escaping, avoiding the allocation entirely.
func EscapeString(s string) string {
	idx := IndexNeedsEscape(s)
	if idx == -1 {
		return s
	}
	dst := make([]byte, 0, len(s)+8)
	dst = append(dst, s[:idx]...)
	return string(AppendEscapedString(dst, s[idx:]))
}
