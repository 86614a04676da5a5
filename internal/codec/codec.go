// Package codec converts a task to and from one line of the .todos file.
//
// A line is `<id>|<0 or 1>|<escaped text>`. Only backslash, newline,
// carriage return and the separator are escaped in the text field.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/todos/internal/model"
)

const sep = "|"

// ErrMalformed is wrapped by every Decode failure.
var ErrMalformed = errors.New("malformed record")

// Encode renders t as a single line, without the trailing newline.
func Encode(t model.Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}
	return strconv.FormatUint(t.ID, 10) + sep + done + sep + Escape(t.Text)
}

// Decode parses a line produced by Encode.
func Decode(line string) (model.Task, error) {
	parts := strings.SplitN(line, sep, 3)
	if len(parts) < 3 {
		return model.Task{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformed, len(parts))
	}
	id, err := ParseID(parts[0])
	if err != nil {
		return model.Task{}, fmt.Errorf("%w: bad id %q", ErrMalformed, parts[0])
	}
	var done bool
	switch parts[1] {
	case "1":
		done = true
	case "0":
	default:
		return model.Task{}, fmt.Errorf("%w: bad done flag %q", ErrMalformed, parts[1])
	}
	return model.Task{ID: id, Done: done, Text: Unescape(parts[2])}, nil
}

// ParseID parses a decimal id. One leading '+' is accepted.
func ParseID(s string) (uint64, error) {
	if len(s) > 1 && s[0] == '+' {
		s = s[1:]
	}
	return strconv.ParseUint(s, 10, 64)
}

// Escape replaces `\`, newline, carriage return and `|` with two-character
// escapes. It works on bytes, so text that is not valid UTF-8 survives.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '|':
			b.WriteString(`\p`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape reverses Escape. Unknown escapes, and a trailing lone backslash,
// are kept literally.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(s) {
			b.WriteByte('\\')
			break
		}
		i++
		switch n := s[i]; n {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'p':
			b.WriteByte('|')
		default:
			b.WriteByte('\\')
			b.WriteByte(n)
		}
	}
	return b.String()
}
