package locale

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported indicates that the backend does not know the requested locale.
	ErrUnsupported = errors.New("locale: unsupported locale")

	// ErrOSFailure indicates that the native locale subsystem failed for a reason
	// unrelated to the validity of the requested locale.
	ErrOSFailure = errors.New("locale: native locale subsystem failure")

	// ErrMalformed indicates locale data that violates the Numeric or Time invariants.
	ErrMalformed = errors.New("locale: malformed locale data")

	// ErrNoFactories is returned when a composite is built from an empty chain.
	ErrNoFactories = errors.New("locale: composite requires at least one factory")
)

// Kind classifies locale lookup failures.
type Kind uint8

const (
	KindUnsupported Kind = iota + 1
	KindOSFailure
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindOSFailure:
		return "os failure"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindUnsupported:
		return ErrUnsupported
	case KindOSFailure:
		return ErrOSFailure
	case KindMalformed:
		return ErrMalformed
	default:
		return nil
	}
}

// Error is the error type returned by every Factory implementation in this package.
type Error struct {
	// Op is the query that failed, "numeric" or "time".
	Op string
	// Locale is the identifier as requested, empty for the ambient locale.
	Locale string
	Kind   Kind
	// Err is the underlying cause, if any.
	Err error
}

func newError(op, locale string, kind Kind, cause error) *Error {
	return &Error{Op: op, Locale: locale, Kind: kind, Err: cause}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	target := e.Locale
	if target == "" {
		target = "<current>"
	}

	msg := fmt.Sprintf("locale: %s %q: %s", e.Op, target, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel matching the error kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == e.Kind.sentinel()
}

// KindOf extracts the failure kind from err. Errors not produced by this
// package are classified by the sentinel they wrap, or KindOSFailure.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}

	var lerr *Error
	if errors.As(err, &lerr) && lerr.Kind != 0 {
		return lerr.Kind
	}

	switch {
	case errors.Is(err, ErrUnsupported):
		return KindUnsupported
	case errors.Is(err, ErrMalformed):
		return KindMalformed
	default:
		return KindOSFailure
	}
}

// withQuery stamps op and locale onto err, keeping its kind.
func withQuery(op, locale string, err error) error {
	if err == nil {
		return nil
	}

	var lerr *Error
	if errors.As(err, &lerr) {
		if lerr.Op == op && lerr.Locale == locale {
			return err
		}
		return &Error{Op: op, Locale: locale, Kind: lerr.Kind, Err: lerr.Err}
	}

	return newError(op, locale, KindOf(err), err)
}
