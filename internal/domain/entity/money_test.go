package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

func TestValidateAndConvertAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
			{"  25.50  ", 2550},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ValidateAndConvertAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ValidateAndConvertAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestAmountInCentsToString(t *testing.T) {
	testCases := []struct {
		input    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{150, "1.50"},
		{0, "0.00"},
		{123456789, "1234567.89"},
		{-2550, "-25.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, AmountInCentsToString(tc.input))
		})
	}
}

func TestParseShareCount(t *testing.T) {
	t.Run("Valid counts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"1", 1},
			{"42", 42},
			{" 7 ", 7},
			{"1000000", 1000000},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				count, err := ParseShareCount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, count)
			})
		}
	})

	t.Run("Invalid counts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"0", "Zero"},
			{"-3", "Negative"},
			{"12.5", "Fractional"},
			{"abc", "Non-numeric"},
			{"1e3", "Scientific notation"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseShareCount(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidShares)
			})
		}
	})
}

func TestParseCashAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"1", 100},
			{"100", 10000},
			{" 50 ", 5000},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseCashAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"0", "Zero"},
			{"-5", "Negative"},
			{"10.50", "Fractional dollars"},
			{"abc", "Non-numeric"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseCashAmount(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestMultiplyCents(t *testing.T) {
	t.Run("Normal multiplication", func(t *testing.T) {
		result, err := MultiplyCents(150, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(450), result)
	})

	t.Run("Zero operands", func(t *testing.T) {
		result, err := MultiplyCents(0, 100)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), result)

		result, err = MultiplyCents(100, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), result)
	})

	t.Run("Overflow is rejected", func(t *testing.T) {
		_, err := MultiplyCents(math.MaxInt64/2, 3)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}
