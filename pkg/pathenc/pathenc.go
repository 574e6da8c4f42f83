// Package pathenc implements percent-encoding of path-like strings.
//
// The encoding matches what notebook frontends expect for file paths: every
// byte outside a small safe set is written as %XX with uppercase hex digits,
// while path separators are preserved so an encoded path is still a path.
//
// Decoding is total: well-formed %XX escapes are replaced by the byte they
// name and anything else (a bare %, or % followed by fewer than two hex
// digits) passes through literally. Escape and Unescape round-trip exactly
// for every input string.
package pathenc

import "strings"

const upperhex = "0123456789ABCDEF"

// isSafe reports whether c may appear literally in an encoded path.
//
// The safe set is ASCII alphanumerics, the unreserved punctuation
// '_' '.' '-' '~', and '/' so that directory structure survives encoding.
func isSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '-', '~', '/':
		return true
	}
	return false
}

// Escape percent-encodes every byte of path outside the safe set.
//
// The transform is pure string work: no filesystem access, no errors.
// Already-safe input is returned unchanged.
func Escape(path string) string {
	hexCount := 0
	for i := 0; i < len(path); i++ {
		if !isSafe(path[i]) {
			hexCount++
		}
	}
	if hexCount == 0 {
		return path
	}

	var b strings.Builder
	b.Grow(len(path) + 2*hexCount)
	for i := 0; i < len(path); i++ {
		c := path[i]
		if isSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// Unescape reverses Escape, replacing every %XX escape with the byte it
// names. Hex digits are accepted in either case.
//
// Malformed escapes (a '%' not followed by two hex digits) are passed
// through unchanged rather than reported as errors, so Unescape never
// fails on mixed or already-decoded input.
func Unescape(path string) string {
	if !strings.ContainsRune(path, '%') {
		return path
	}

	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '%' && i+2 < len(path) {
			hi, okHi := unhex(path[i+1])
			lo, okLo := unhex(path[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// unhex converts a single hex digit to its value.
func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
