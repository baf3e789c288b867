package pointscan

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure. The set is closed: every error surfaced by
// the parser is one of these three, and anything the parser cannot classify
// maps to KindUnclassified.
type Kind int

const (
	KindUnclassified Kind = iota
	KindEmptyStream
	KindInvalidSymbol
)

func (k Kind) String() string {
	switch k {
	case KindEmptyStream:
		return "empty_stream"
	case KindInvalidSymbol:
		return "invalid_symbol"
	default:
		return "unclassified"
	}
}

// Failure is a single classified parse failure. Offset records the byte
// position in the input source (-1 when unknown).
type Failure struct {
	Kind    Kind
	Message string
	Offset  int64
	Cause   error // Optional: underlying error.
}

func (f *Failure) Error() string {
	if f.Offset >= 0 {
		return fmt.Sprintf("%s: %s (offset %d)", f.Kind, f.Message, f.Offset)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error { return f.Cause }

// AsFailure extracts a *Failure from an error using errors.As internally.
func AsFailure(err error) (*Failure, bool) {
	if err == nil {
		return nil, false
	}
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// KindOf reports the failure kind of err. Errors that do not carry a Failure
// are KindUnclassified.
func KindOf(err error) Kind {
	if f, ok := AsFailure(err); ok {
		return f.Kind
	}
	return KindUnclassified
}

func failEmpty(off int64) error {
	return &Failure{Kind: KindEmptyStream, Message: "empty stream", Offset: off}
}

func failInvalid(msg string, off int64) error {
	return &Failure{Kind: KindInvalidSymbol, Message: msg, Offset: off}
}

func failUnclassified(cause error, off int64) error {
	return &Failure{Kind: KindUnclassified, Message: cause.Error(), Offset: off, Cause: cause}
}
