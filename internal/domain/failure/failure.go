// Package failure defines the error taxonomy shared by the payment lifecycle.
//
// Every error that leaves a use case is (or wraps) a *Error tagged with a Kind.
// Callers branch on KindOf(err) instead of matching concrete error types:
//   - Validation: bad input or business-rule violation. Never retried.
//   - NotFound: no eligible record. Never retried.
//   - Processing: gateway/infrastructure failure. Retried up to the budget.
//   - Conversion: malformed stored record. Surfaced, not retried.
package failure

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindInternal   Kind = "internal"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindProcessing Kind = "processing"
	KindConversion Kind = "conversion"
)

type Error struct {
	Kind      Kind
	Op        string
	PaymentID string
	Attempts  int
	Message   string
	Err       error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.PaymentID != "" {
		fmt.Fprintf(&b, " (payment_id=%s", e.PaymentID)
		if e.Attempts > 0 {
			fmt.Fprintf(&b, " attempts=%d", e.Attempts)
		}
		b.WriteString(")")
	} else if e.Attempts > 0 {
		fmt.Fprintf(&b, " (attempts=%d)", e.Attempts)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by Kind when the target carries no message, so
// errors.Is(err, failure.ErrNotFound) works for any not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Op == "" && t.Kind == e.Kind
}

// Kind-only sentinels for errors.Is.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrProcessing = &Error{Kind: KindProcessing}
	ErrConversion = &Error{Kind: KindConversion}
)

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Processing(msg string, cause error) *Error {
	return &Error{Kind: KindProcessing, Message: msg, Err: cause}
}

func Conversion(msg string, cause error) *Error {
	return &Error{Kind: KindConversion, Message: msg, Err: cause}
}

// Exhausted builds the error returned when a retry budget runs out. The last
// underlying failure is kept as the cause.
func Exhausted(op, paymentID string, attempts int, last error) *Error {
	return &Error{
		Kind:      KindProcessing,
		Op:        op,
		PaymentID: paymentID,
		Attempts:  attempts,
		Message:   fmt.Sprintf("failed after %d attempts", attempts),
		Err:       last,
	}
}

// KindOf returns the kind of the outermost *Error in the chain, or
// KindInternal for untagged errors. A nil error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindInternal
}

// IsRetryable reports whether err may be retried by a lifecycle retry loop.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindValidation, KindNotFound, KindConversion, "":
		return false
	default:
		return true
	}
}
