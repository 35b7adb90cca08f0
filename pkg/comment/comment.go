// Package comment strips comments from lines of line-oriented
// configuration formats.
//
// A comment starts at a single marker character and runs to the end
// of the line. There are no escaping or quoting rules: a marker in the
// middle of a token still starts a comment.
package comment

import (
	"strings"
	"unicode"
)

// Options controls how a line is split into data and comment.
type Options struct {
	// Char is the character that starts a comment
	Char rune
	// StandaloneOnly only treats Char as a comment start when it is the
	// first non-whitespace character of the line. Inline comments after
	// data are then kept as data.
	StandaloneOnly bool
}

// Hash strips `#` comments anywhere on the line.
var Hash = Options{Char: '#'}

// Strip splits line at the first comment marker. data is everything
// before the marker and comment is the marker and everything after it.
// If no comment is found, data is the full line and comment is empty.
func Strip(line string, opts Options) (data, comment string) {
	idx := strings.IndexRune(line, opts.Char)
	if idx < 0 {
		return line, ""
	}

	if opts.StandaloneOnly && strings.TrimLeftFunc(line[:idx], unicode.IsSpace) != "" {
		return line, ""
	}
	return line[:idx], line[idx:]
}

// IsBlank reports whether data holds nothing but whitespace.
func IsBlank(data string) bool {
	return strings.TrimSpace(data) == ""
}
