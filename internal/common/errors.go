package common

import "github.com/go-errors/errors"

// Error taxonomy shared by all packages of this module. Concrete failures wrap one of these
// with errors.WrapPrefix, so callers can classify them with errors.Is.
var (
	// ErrDomain reports an operation invoked with a value outside its required range.
	ErrDomain = errors.New("value outside the domain of the operation")
	// ErrArithmetic reports an undefined arithmetic result, such as the inverse of a
	// non-invertible element.
	ErrArithmetic = errors.New("arithmetic result undefined")
	// ErrResourceExhausted reports a search that did not succeed within its iteration cap.
	ErrResourceExhausted = errors.New("iteration limit reached")
	// ErrStopped reports a search that was cancelled by its caller.
	ErrStopped = errors.New("search stopped")
)

// DomainError wraps ErrDomain with a description of the violated precondition.
func DomainError(msg string) error {
	return errors.WrapPrefix(ErrDomain, msg, 1)
}

// ArithmeticError wraps ErrArithmetic with a description of the failed computation.
func ArithmeticError(msg string) error {
	return errors.WrapPrefix(ErrArithmetic, msg, 1)
}
