package domain

import (
	"github.com/shopspring/decimal"
)

// Balance represents the available funds of the ledger.
type Balance struct {
	Amount decimal.Decimal
}

// ValidateDebit checks if the balance can be reduced by amount.
func (b *Balance) ValidateDebit(amount decimal.Decimal) error {
	newBalance := b.Amount.Sub(amount)
	if newBalance.IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns new balance after debit.
func (b *Balance) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return b.Amount.Sub(amount)
}

// ApplyCredit returns new balance after credit.
func (b *Balance) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return b.Amount.Add(amount)
}

// ValidateAdjust checks if the balance can absorb a signed adjustment.
func (b *Balance) ValidateAdjust(delta decimal.Decimal) error {
	if b.Amount.Add(delta).IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyAdjust returns new balance after a signed adjustment.
func (b *Balance) ApplyAdjust(delta decimal.Decimal) decimal.Decimal {
	return b.Amount.Add(delta)
}
