package scan

import (
	"bufio"
	"bytes"
	"io"
)

// Kind represents token kinds from a point text stream.
type Kind int

const (
	KindOpen   Kind = iota // "("
	KindClose              // ")"
	KindNumber             // a run that can open a numeric literal
	KindWord               // any other delimiter-free run
)

// Token represents one lexed token with the byte offset of its first byte.
type Token struct {
	Kind   Kind
	Text   string
	Offset int64
}

// Reader lexes a point text stream into tokens. Whitespace separates tokens
// and is otherwise insignificant; parentheses are single-byte tokens; all other
// runs extend to the next whitespace or parenthesis. The reader consumes only
// what it hands out (a trailing delimiter is pushed back), so the caller always
// knows the stream position after each token.
type Reader struct {
	br  *bufio.Reader
	off int64
}

// NewReader wraps an io.Reader into a token Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// NewBytes wraps a byte slice into a token Reader.
func NewBytes(b []byte) *Reader { return NewReader(bytes.NewReader(b)) }

// Location returns the byte offset of the next unread byte.
func (r *Reader) Location() int64 { return r.off }

// NextToken returns the next token, or io.EOF when the stream is exhausted
// before any token byte was obtained.
func (r *Reader) NextToken() (Token, error) {
	c, err := r.skipSpace()
	if err != nil {
		return Token{}, err
	}
	start := r.off - 1
	switch c {
	case '(':
		return Token{Kind: KindOpen, Text: "(", Offset: start}, nil
	case ')':
		return Token{Kind: KindClose, Text: ")", Offset: start}, nil
	}
	buf := []byte{c}
	for {
		c, err = r.readByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if isSpace(c) || c == '(' || c == ')' {
			if !isSpace(c) {
				r.unreadByte()
			}
			break
		}
		buf = append(buf, c)
	}
	return Token{Kind: classify(buf[0]), Text: string(buf), Offset: start}, nil
}

// DiscardLine consumes input through the next newline. Hitting end of input
// first is not an error; the next NextToken simply reports io.EOF.
func (r *Reader) DiscardLine() error {
	for {
		c, err := r.readByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

func (r *Reader) skipSpace() (byte, error) {
	for {
		c, err := r.readByte()
		if err != nil {
			return 0, err
		}
		if !isSpace(c) {
			return c, nil
		}
	}
}

func (r *Reader) readByte() (byte, error) {
	c, err := r.br.ReadByte()
	if err == nil {
		r.off++
	}
	return c, err
}

func (r *Reader) unreadByte() {
	_ = r.br.UnreadByte()
	r.off--
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func classify(first byte) Kind {
	if first >= '0' && first <= '9' || first == '+' || first == '-' || first == '.' {
		return KindNumber
	}
	return KindWord
}
