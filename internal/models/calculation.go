package models

// CalculationResult is the benefit one card yields for one payment amount.
// Results are derived on every evaluation and never stored.
type CalculationResult struct {
	CardID        string      `json:"cardId" csv:"card_id"`
	CardName      string      `json:"cardName" csv:"card_name"`
	BenefitAmount int64       `json:"benefitAmount" csv:"benefit_amount"`
	AppliedRule   BenefitRule `json:"appliedRule" csv:"-"`
}
