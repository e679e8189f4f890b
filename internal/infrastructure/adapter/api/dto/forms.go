package dto

// RegisterForm represents the registration form submission
type RegisterForm struct {
	Username     string `form:"username"`
	Password     string `form:"password"`
	Confirmation string `form:"confirmation"`
}

// LoginForm represents the login form submission
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// QuoteForm represents the quote lookup form submission
type QuoteForm struct {
	Symbol string `form:"symbol"`
}

// TradeForm represents a buy or sell form submission.
// Shares stays a string so the ledger can reject fractions and
// non-numeric input with its own message.
type TradeForm struct {
	Symbol string `form:"symbol"`
	Shares string `form:"shares"`
}

// DepositForm represents the add-cash form submission
type DepositForm struct {
	Cash string `form:"cash"`
}

// PasswordChangeForm represents the password change form submission
type PasswordChangeForm struct {
	OldPassword string `form:"old-password"`
	NewPassword string `form:"new-password"`
}
