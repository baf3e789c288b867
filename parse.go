package pointscan

import (
	"io"
	"strconv"
)

// ParseFrom consumes exactly one point of the given dimension from the Source
// and leaves the stream positioned immediately after the closing parenthesis.
//
// Failures are classified: end of input before the opening parenthesis, or
// before the closing one, is KindEmptyStream; anything the grammar rejects is
// KindInvalidSymbol, with the message separating a wrong delimiter from an
// unreadable value. Errors the source raises that are not io.EOF surface as
// KindUnclassified. The parser never recovers and never rewinds consumed
// input; recovery is the caller's responsibility.
func ParseFrom[T Number](src Source, dim int) (Point[T], error) {
	p := New[T](dim)

	tok, err := src.NextToken()
	if err == io.EOF {
		return New[T](dim), failEmpty(src.Location())
	}
	if err != nil {
		return New[T](dim), failUnclassified(err, src.Location())
	}
	if tok.Kind != TokenOpen {
		return New[T](dim), failInvalid("expected '('", tok.Offset)
	}

	for i := 0; i < dim; i++ {
		tok, err = src.NextToken()
		if err == io.EOF {
			// The opening parenthesis was already consumed, so a truncated
			// record is a grammar violation, not a clean end of input.
			return New[T](dim), failInvalid("unable to read value", src.Location())
		}
		if err != nil {
			return New[T](dim), failUnclassified(err, src.Location())
		}
		if tok.Kind != TokenNumber {
			return New[T](dim), failInvalid("unable to read value", tok.Offset)
		}
		v, lerr := lexComponent[T](tok.Text)
		if lerr != nil {
			return New[T](dim), failInvalid("unable to read value", tok.Offset)
		}
		p.comps[i] = v
	}

	tok, err = src.NextToken()
	if err == io.EOF {
		return New[T](dim), failEmpty(src.Location())
	}
	if err != nil {
		return New[T](dim), failUnclassified(err, src.Location())
	}
	if tok.Kind != TokenClose {
		return New[T](dim), failInvalid("expected ')'", tok.Offset)
	}

	return p, nil
}

// lexComponent parses one textual component as T using the literal syntax of
// the concrete type: integer literals for integral T, float literals for
// floating T.
func lexComponent[T Number](text string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return zero, err
		}
		return T(f), nil
	case float64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return zero, err
		}
		return T(f), nil
	case int:
		n, err := strconv.ParseInt(text, 10, 0)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case int8:
		n, err := strconv.ParseInt(text, 10, 8)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case int16:
		n, err := strconv.ParseInt(text, 10, 16)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case int32:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case int64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case uint:
		n, err := strconv.ParseUint(text, 10, 0)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case uint8:
		n, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case uint16:
		n, err := strconv.ParseUint(text, 10, 16)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case uint32:
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	default: // uint64
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	}
}
