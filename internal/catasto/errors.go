package catasto

import (
	"errors"
	"fmt"
)

// Kind classifies every error returned by a ledger operation.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindUniqueConstraint
	KindDataError
	KindStoreError
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUniqueConstraint:
		return "unique_constraint"
	case KindDataError:
		return "data_error"
	case KindStoreError:
		return "store_error"
	}

	return "unknown"
}

// Sentinels for errors.Is checks against the kind of an *Error.
var (
	ErrNotFound         = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrUniqueConstraint = &Error{Kind: KindUniqueConstraint, Msg: "unique constraint violated"}
	ErrDataError        = &Error{Kind: KindDataError, Msg: "invalid data"}
	ErrStoreError       = &Error{Kind: KindStoreError, Msg: "store failure"}
)

// Error carries a kind, a human-readable message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	// Constraint names the violated constraint for KindUniqueConstraint.
	Constraint string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}

	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// holds for every not-found error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == t.Kind
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func DataError(format string, args ...any) error {
	return &Error{Kind: KindDataError, Msg: fmt.Sprintf(format, args...)}
}

func Unique(constraint string, format string, args ...any) error {
	return &Error{Kind: KindUniqueConstraint, Msg: fmt.Sprintf(format, args...), Constraint: constraint}
}

func StoreError(err error, format string, args ...any) error {
	return &Error{Kind: KindStoreError, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Wrap attaches a kind and message to a cause.
func Wrap(kind Kind, err error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// AsLedgerError returns err unchanged when it already carries a kind and
// wraps it as a store error otherwise.
func AsLedgerError(err error, op string) error {
	if err == nil {
		return nil
	}

	if KindOf(err) != KindUnknown {
		return err
	}

	return StoreError(err, "%s failed", op)
}
