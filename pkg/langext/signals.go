package langext

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNilValue is the construction error raised by Some for an absent value.
var ErrNilValue = errors.New("langext: Some called with an absent value")

const nullResultHash uint64 = 11

// NullResultError marks a callable that returned nil where a value was
// expected. All instances are equal to each other and to nothing else.
type NullResultError struct{}

// ErrNullResult is the NullResultError instance the adapters produce.
var ErrNullResult error = NullResultError{}

func (NullResultError) Error() string {
	return "NullResultError"
}

func (NullResultError) String() string {
	return "NullResultError"
}

func (NullResultError) Hash() uint64 {
	return nullResultHash
}

func (NullResultError) Is(target error) bool {
	return isNullResult(target)
}

// Equal reports whether other is a NullResultError.
func (NullResultError) Equal(other any) bool {
	return isNullResult(other)
}

func isNullResult(v any) bool {
	switch v := v.(type) {
	case NullResultError:
		return true
	case *NullResultError:
		return v != nil
	}
	return false
}

// PanicError is a panic recovered by the failure boundary. ID and At let a
// captured panic be correlated with whatever logged it.
type PanicError struct {
	ID    uuid.UUID
	At    time.Time
	Value any

	trace error
}

func newPanicError(r any) *PanicError {
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("%v", r)
	}

	return &PanicError{
		ID:    uuid.New(),
		At:    time.Now().UTC(),
		Value: r,
		trace: errors.WithStack(cause),
	}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// Unwrap returns the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// StackTrace is the stack of the panicking goroutine at recovery time.
func (e *PanicError) StackTrace() errors.StackTrace {
	if st, ok := e.trace.(interface{ StackTrace() errors.StackTrace }); ok {
		return st.StackTrace()
	}
	return nil
}

func (e *PanicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%s (id=%s at=%s)%+v", e.Error(), e.ID, e.At.Format(time.RFC3339Nano), e.StackTrace())
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}
