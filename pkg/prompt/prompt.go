package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Reader prompts on out and reads whitespace- or line-delimited values from in.
// A value that fails to parse is consumed and replaced by its zero value, so a
// bad token never corrupts the input stream for the next read.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// EOF reports whether the input source has been exhausted.
func (r *Reader) EOF() bool {
	return r.eof
}

// Token prints the label and reads the next whitespace-delimited token.
// Trailing whitespace is consumed up to and including the end of the current
// line, so a following Line call starts on a fresh line.
func (r *Reader) Token(label string) string {
	if label != "" {
		fmt.Fprint(r.out, label)
	}

	var b strings.Builder
	for {
		ch, _, err := r.in.ReadRune()
		if err != nil {
			r.eof = true
			return ""
		}
		if unicode.IsSpace(ch) {
			continue
		}
		b.WriteRune(ch)
		break
	}
	for {
		ch, _, err := r.in.ReadRune()
		if err != nil {
			r.eof = true
			return b.String()
		}
		if unicode.IsSpace(ch) {
			r.consumeRestOfLineFrom(ch)
			break
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// consumeRestOfLineFrom discards whitespace following a token, stopping after
// the first newline or before the first non-space rune on the same line.
func (r *Reader) consumeRestOfLineFrom(first rune) {
	ch := first
	for {
		if ch == '\n' {
			return
		}
		next, _, err := r.in.ReadRune()
		if err != nil {
			r.eof = true
			return
		}
		if !unicode.IsSpace(next) {
			_ = r.in.UnreadRune()
			return
		}
		ch = next
	}
}

// Line prints the label and reads the remainder of the current line as
// free text, with surrounding whitespace trimmed.
func (r *Reader) Line(label string) string {
	if label != "" {
		fmt.Fprint(r.out, label)
	}

	s, err := r.in.ReadString('\n')
	if err != nil {
		r.eof = true
	}
	return strings.TrimSpace(s)
}

// Int reads a token and parses it as an integer; a malformed token yields 0.
func (r *Reader) Int(label string) int {
	tok := r.Token(label)
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0
	}
	return n
}

// Decimal reads a token and parses it as a decimal number; a malformed token
// yields zero.
func (r *Reader) Decimal(label string) decimal.Decimal {
	tok := r.Token(label)
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Zero
	}
	return d
}
