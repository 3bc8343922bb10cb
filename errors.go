// errors.go defines the codec error taxonomy.
//
// All codec errors are synchronous programmer/data errors: malformed input to
// the unpacker, illegal parameters to a builder, or a disabled serializer
// hook invoked anyway. Nothing in this layer is retryable. Result codes
// mirror the values used by the official Aerospike clients so callers can
// treat client-side and server-side failures uniformly.
package aswire

import (
	"errors"
	"fmt"
)

// ResultCode classifies a codec error. Positive values are server result
// codes; negative values are generated client-side.
type ResultCode int

const (
	// ResultOK means no error.
	ResultOK ResultCode = 0

	// ResultParameterError indicates an illegal parameter: an invalid key
	// type, an unmapped return-type value, an invalid particle type.
	// Matches the server PARAMETER_ERROR code.
	ResultParameterError ResultCode = 4

	// ResultParseError indicates malformed serialized input: a truncated
	// buffer, an odd context pair count, an unknown header byte.
	ResultParseError ResultCode = -2

	// ResultSerializeError indicates the object serializer or deserializer
	// hook failed or was invoked while disabled.
	ResultSerializeError ResultCode = -10
)

// String returns the human-readable name of the result code.
func (rc ResultCode) String() string {
	switch rc {
	case ResultOK:
		return "OK"
	case ResultParameterError:
		return "PARAMETER_ERROR"
	case ResultParseError:
		return "PARSE_ERROR"
	case ResultSerializeError:
		return "SERIALIZE_ERROR"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(rc))
	}
}

var (
	// ErrSerializerDisabled is wrapped by errors raised when an opaque blob
	// value is packed without a configured serializer. Detect it with
	// errors.Is to distinguish a configuration problem from a data problem.
	ErrSerializerDisabled = errors.New("object serializer disabled")

	// ErrDeserializerDisabled is wrapped by errors raised when a serialized
	// blob particle is decoded without a configured serializer.
	ErrDeserializerDisabled = errors.New("object deserializer disabled")
)

// Error is the concrete error type returned by all codec entry points.
// It carries a ResultCode and optionally wraps a cause.
type Error struct {
	ResultCode ResultCode
	msg        string
	wrapped    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("aswire: %s (%s): %v", e.msg, e.ResultCode, e.wrapped)
	}
	return fmt.Sprintf("aswire: %s (%s)", e.msg, e.ResultCode)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Is reports whether target is an *Error with the same result code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.ResultCode == e.ResultCode
}

func newError(rc ResultCode, msg string) *Error {
	return &Error{ResultCode: rc, msg: msg}
}

func newErrorf(rc ResultCode, format string, args ...any) *Error {
	return &Error{ResultCode: rc, msg: fmt.Sprintf(format, args...)}
}

func wrapError(rc ResultCode, cause error, msg string) *Error {
	return &Error{ResultCode: rc, msg: msg, wrapped: cause}
}
