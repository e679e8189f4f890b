package entity

// Quote is a live price resolved by the quote provider at call time
type Quote struct {
	Symbol       string // Canonical upper-case symbol
	CompanyName  string
	PriceInCents int64
}

// FormatPrice returns the share price as a decimal string
func (q *Quote) FormatPrice() string {
	return AmountInCentsToString(q.PriceInCents)
}
