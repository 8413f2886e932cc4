package ledger

import "fmt"

// ErrorCode is a domain error code used by the replay engine.
type ErrorCode string

const (
	// ErrorInvalidKind indicates an unrecognized transaction kind.
	ErrorInvalidKind ErrorCode = "0010"
	// ErrorBalanceOverflow indicates fixed-point accumulation exceeded the
	// representable range during replay.
	ErrorBalanceOverflow ErrorCode = "0011"
)

// DomainError represents a structured ledger domain error.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
	Err     error
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// Unwrap returns the underlying cause, if any.
func (e DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}
