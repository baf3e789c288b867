package pointscan

import (
	"io"

	"github.com/reoring/pointscan/internal/scan"
)

// TokenKind enumerates token kinds produced by a Source.
type TokenKind int

const (
	TokenOpen   TokenKind = iota // "("
	TokenClose                   // ")"
	TokenNumber                  // a run that can open a numeric literal
	TokenWord                    // any other delimiter-free run
)

// Token describes one token in the input stream. Offset records the byte
// position of the token's first byte when known (-1 otherwise).
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int64
}

// Source abstracts over polymorphic point text inputs. NextToken returns
// io.EOF once the stream is exhausted before any token byte was obtained;
// DiscardLine is the resynchronization primitive the scan loop uses after a
// malformed record.
type Source interface {
	NextToken() (Token, error)
	DiscardLine() error
	Location() int64 // byte offset; -1 if unknown
}

// TextReader wraps an io.Reader as a point text Source.
func TextReader(r io.Reader) Source {
	return &scanSourceAdapter{inner: scan.NewReader(r)}
}

// TextBytes wraps a byte slice as a point text Source.
func TextBytes(b []byte) Source {
	return &scanSourceAdapter{inner: scan.NewBytes(b)}
}

type scanSourceAdapter struct {
	inner *scan.Reader
}

func (s *scanSourceAdapter) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: fromScanKind(t.Kind), Text: t.Text, Offset: t.Offset}, nil
}

func (s *scanSourceAdapter) DiscardLine() error { return s.inner.DiscardLine() }
func (s *scanSourceAdapter) Location() int64    { return s.inner.Location() }

func fromScanKind(k scan.Kind) TokenKind {
	switch k {
	case scan.KindOpen:
		return TokenOpen
	case scan.KindClose:
		return TokenClose
	case scan.KindNumber:
		return TokenNumber
	default:
		return TokenWord
	}
}
