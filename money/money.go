package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits an Amount carries.
const Places int32 = 4

// Scale is the number of minor units per whole unit (10^Places).
const Scale int64 = 10_000

// ErrorCode is a money domain error code.
type ErrorCode string

const (
	// ErrorInvalidAmount indicates the input string is not a valid decimal amount.
	ErrorInvalidAmount ErrorCode = "0001"
	// ErrorAmountOverflow indicates a value or operation exceeds the int64 range.
	ErrorAmountOverflow ErrorCode = "0002"
)

// Error represents a structured money domain error.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error returns the formatted error string.
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, format string, args ...any) error {
	return Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Amount is a monetary value in minor units (1/10000 of a whole unit).
type Amount int64

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// Parse converts a decimal string into an Amount.
//
// Values with more than four fractional digits are rounded half away from
// zero at the fourth digit. Values outside the representable int64 range are
// rejected with ErrorAmountOverflow.
func Parse(s string) (Amount, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, newError(ErrorInvalidAmount, "amount is empty")
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, newError(ErrorInvalidAmount, "invalid amount %q", trimmed)
	}

	scaled := d.Shift(Places).Round(0)
	if scaled.GreaterThan(maxAmount) || scaled.LessThan(minAmount) {
		return 0, newError(ErrorAmountOverflow, "amount %q does not fit the fixed-point range", trimmed)
	}

	return Amount(scaled.IntPart()), nil
}

// MustParse converts a decimal string into an Amount and panics on failure.
// Intended for constants and tests.
func MustParse(s string) Amount {
	amount, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return amount
}

// Add returns a+b, reporting int64 overflow as an error.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, newError(ErrorAmountOverflow, "addition overflow: %d + %d", a, b)
	}

	return sum, nil
}

// Sub returns a-b, reporting int64 overflow as an error.
func (a Amount) Sub(b Amount) (Amount, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, newError(ErrorAmountOverflow, "subtraction overflow: %d - %d", a, b)
	}

	return diff, nil
}

// Decimal returns the exact decimal view of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Places)
}

// String renders the amount with exactly four fractional digits.
func (a Amount) String() string {
	return a.Decimal().StringFixed(Places)
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a < 0
}
