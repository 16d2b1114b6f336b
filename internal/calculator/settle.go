package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/debtbook/internal/models"
)

// Settlement is the repayment that brings a person's balance back to zero.
type Settlement struct {
	PersonID string
	// Kind is RepaidToMe when the person owes the user, RepaidByMe otherwise.
	Kind models.Kind
	// Amount is the magnitude of the outstanding balance.
	Amount decimal.Decimal
}

// SettlementFor computes the settling repayment for personID. ok is false when
// the balance is already zero.
func SettlementFor(personID string, txs []models.Transaction) (Settlement, bool) {
	balance := BalanceOf(personID, txs)
	switch {
	case balance.IsPositive():
		return Settlement{PersonID: personID, Kind: models.RepaidToMe, Amount: balance}, true
	case balance.IsNegative():
		return Settlement{PersonID: personID, Kind: models.RepaidByMe, Amount: balance.Abs()}, true
	default:
		return Settlement{}, false
	}
}
