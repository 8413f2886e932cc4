package money

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Amount
		errorCode ErrorCode
	}{
		{name: "integer", input: "10", expected: 100_000},
		{name: "one fractional digit", input: "10.5", expected: 105_000},
		{name: "four fractional digits", input: "0.0001", expected: 1},
		{name: "zero", input: "0", expected: 0},
		{name: "negative", input: "-3.25", expected: -32_500},
		{name: "leading whitespace", input: "  20.5", expected: 205_000},
		{name: "rounds half away from zero", input: "1.12345", expected: 11_235},
		{name: "rounds down below half", input: "1.12344", expected: 11_234},
		{name: "rounds negative half away from zero", input: "-1.12345", expected: -11_235},

		{name: "empty", input: "", errorCode: ErrorInvalidAmount},
		{name: "whitespace only", input: "   ", errorCode: ErrorInvalidAmount},
		{name: "not a number", input: "ten", errorCode: ErrorInvalidAmount},
		{name: "double decimal point", input: "1.2.3", errorCode: ErrorInvalidAmount},
		{name: "too large", input: "99999999999999999999", errorCode: ErrorAmountOverflow},
		{name: "too small", input: "-99999999999999999999", errorCode: ErrorAmountOverflow},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)

			if tt.errorCode != "" {
				require.Error(t, err)

				var moneyErr Error
				require.True(t, errors.As(err, &moneyErr))
				assert.Equal(t, tt.errorCode, moneyErr.Code)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Amount
		expected Amount
		overflow bool
	}{
		{name: "simple", a: 105_000, b: 205_000, expected: 310_000},
		{name: "negative operand", a: 105_000, b: -5_000, expected: 100_000},
		{name: "positive overflow", a: math.MaxInt64, b: 1, overflow: true},
		{name: "negative overflow", a: math.MinInt64, b: -1, overflow: true},
		{name: "at the positive edge", a: math.MaxInt64 - 1, b: 1, expected: math.MaxInt64},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.a.Add(tt.b)

			if tt.overflow {
				require.Error(t, err)

				var moneyErr Error
				require.True(t, errors.As(err, &moneyErr))
				assert.Equal(t, ErrorAmountOverflow, moneyErr.Code)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Amount
		expected Amount
		overflow bool
	}{
		{name: "simple", a: 310_000, b: 105_000, expected: 205_000},
		{name: "below zero is fine", a: 0, b: 105_000, expected: -105_000},
		{name: "negative overflow", a: math.MinInt64, b: 1, overflow: true},
		{name: "positive overflow", a: math.MaxInt64, b: -1, overflow: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.a.Sub(tt.b)

			if tt.overflow {
				require.Error(t, err)

				var moneyErr Error
				require.True(t, errors.As(err, &moneyErr))
				assert.Equal(t, ErrorAmountOverflow, moneyErr.Code)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		amount   Amount
		expected string
	}{
		{name: "whole units", amount: 100_000, expected: "10.0000"},
		{name: "fractional", amount: 105_000, expected: "10.5000"},
		{name: "smallest unit", amount: 1, expected: "0.0001"},
		{name: "zero", amount: 0, expected: "0.0000"},
		{name: "negative", amount: -32_500, expected: "-3.2500"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.amount.String())
		})
	}
}

func TestMustParsePanicsOnInvalidInput(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParse("not money") })
	assert.Equal(t, Amount(105_000), MustParse("10.5"))
}
