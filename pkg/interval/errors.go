package interval

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalid is returned when an interval cannot be constructed from its
	// raw bounds: an invalid point for the domain or a left bound greater than
	// the right bound.
	ErrInvalid = errors.New("invalid interval")
	// ErrNonContiguousUnion is returned when the union of two intervals is not
	// a single interval.
	ErrNonContiguousUnion = errors.New("union is not contiguous")
	// ErrNonContiguousDifference is returned when the difference of two
	// intervals is not a single interval.
	ErrNonContiguousDifference = errors.New("difference is not contiguous")
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed interval text")
	// ErrNotImplemented is matched by every *NotImplementedError.
	ErrNotImplemented = errors.New("not implemented")
	// ErrContinuous is returned by Step of continuous domains.
	ErrContinuous = errors.New("continuous domain has no successor")
	// ErrUnbounded is returned by measures that need finite endpoints.
	ErrUnbounded = errors.New("interval is unbounded")
	// ErrInvariant is wrapped by the assertion failures raised when an
	// operation receives a value that is not in normalized form.
	ErrInvariant = errors.New("interval invariant violated")
)

type ParseErrorKind uint8

const (
	MissingComma ParseErrorKind = iota + 1
	MissingBound
	InvalidPoint
)

func (k ParseErrorKind) String() string {
	switch k {
	case MissingComma:
		return "missing comma"
	case MissingBound:
		return "missing bound"
	case InvalidPoint:
		return "invalid point"
	}
	return "unknown"
}

// ParseError describes why interval text could not be parsed. Side is not
// set for MissingComma.
type ParseError struct {
	Side  Side
	Kind  ParseErrorKind
	Text  string
	Cause error
}

func (e *ParseError) Error() string {
	switch {
	case e.Kind == MissingComma:
		return fmt.Sprintf("%s: %s in %q", ErrParse, e.Kind, e.Text)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s %s %q: %v", ErrParse, e.Side, e.Kind, e.Text, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s in %q", ErrParse, e.Side, e.Kind, e.Text)
}

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Unwrap returns the error of the point parser, if any.
func (e *ParseError) Unwrap() error { return e.Cause }

// NotImplementedError is returned by the text codec when the point domain
// does not provide the hook it needs.
type NotImplementedError struct {
	Domain string
	Hook   string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: %s does not implement %s", ErrNotImplemented, e.Domain, e.Hook)
}

func (e *NotImplementedError) Unwrap() error { return ErrNotImplemented }

func invariantf(format string, args ...interface{}) error {
	return errors.WithAssertionFailure(errors.Wrapf(ErrInvariant, format, args...))
}
