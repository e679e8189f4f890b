package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ValidateAndConvertAmount validates a decimal string amount and converts it to cents.
// Uses a string-based approach so no floating point arithmetic is ever involved:
// - If no decimal point: appends "00"
// - If one digit after the decimal: appends "0" and drops the point
// - If two digits after the decimal: just drops the point
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// AmountInCentsToString converts an integer cents amount to a decimal string.
// For example 1015 becomes "10.15" and 1000 becomes "10.00".
func AmountInCentsToString(amountInCents int64) string {
	isNegative := amountInCents < 0
	if isNegative {
		amountInCents = -amountInCents
	}

	amountStr := strconv.FormatInt(amountInCents, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// ParseShareCount parses a requested share count from form input.
// Only positive integers are accepted; "12.5", "-3", "0" and "abc" are all rejected.
func ParseShareCount(shares string) (int64, error) {
	shares = strings.TrimSpace(shares)
	if shares == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidShares)
	}
	for _, r := range shares {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a whole number", errs.ErrInvalidShares, shares)
		}
	}
	count, err := strconv.ParseInt(shares, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidShares, err.Error())
	}
	if count <= 0 {
		return 0, fmt.Errorf("%w: share count must be positive", errs.ErrInvalidShares)
	}
	return count, nil
}

// ParseCashAmount parses a deposit amount given in whole dollars and returns cents.
// Only positive integers are accepted.
func ParseCashAmount(cash string) (int64, error) {
	cash = strings.TrimSpace(cash)
	if cash == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	for _, r := range cash {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a whole dollar amount", errs.ErrInvalidAmount, cash)
		}
	}
	dollars, err := strconv.ParseInt(cash, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if dollars <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	cents, err := MultiplyCents(dollars, 100)
	if err != nil {
		return 0, err
	}
	return cents, nil
}

// MultiplyCents multiplies a cents amount by a share count with overflow checking.
func MultiplyCents(amountInCents, count int64) (int64, error) {
	if amountInCents == 0 || count == 0 {
		return 0, nil
	}
	result := amountInCents * count
	if result/count != amountInCents {
		return 0, errs.ErrAmountOverflow
	}
	return result, nil
}
