package evaluator

import (
	"math"

	"fjacquet/smart-benefit/internal/models"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
)

// RuleCalculator computes the benefit of a single rule type.
// Implementations must be pure and return a non-negative whole amount.
type RuleCalculator interface {
	// Type returns the benefit type this calculator handles.
	Type() models.BenefitType

	// Calculate returns the benefit in whole currency units for amount under rule.
	Calculate(amount decimal.Decimal, rule models.BenefitRule) int64
}

// CoinSaveCalculator credits the remainder below the next thousand-unit boundary
// once the payment reaches the rule's floor. Exact multiples of 1000 yield 0.
type CoinSaveCalculator struct{}

// Type implements RuleCalculator.
func (CoinSaveCalculator) Type() models.BenefitType {
	return models.BenefitCoinSave
}

// Calculate implements RuleCalculator.
func (CoinSaveCalculator) Calculate(amount decimal.Decimal, rule models.BenefitRule) int64 {
	minRequired := decimal.NewFromFloat(rule.EffectiveMinAmount())
	if amount.LessThan(minRequired) {
		return 0
	}
	return nonNegative(amount.Mod(thousand).Floor())
}

// PercentageCalculator credits floor(amount * rate / 100).
type PercentageCalculator struct{}

// Type implements RuleCalculator.
func (PercentageCalculator) Type() models.BenefitType {
	return models.BenefitPercentage
}

// Calculate implements RuleCalculator.
func (PercentageCalculator) Calculate(amount decimal.Decimal, rule models.BenefitRule) int64 {
	if rule.MinAmount != nil && amount.LessThan(decimal.NewFromFloat(*rule.MinAmount)) {
		return 0
	}
	rate := decimal.NewFromFloat(rule.EffectiveRate())
	return nonNegative(amount.Mul(rate).Div(hundred).Floor())
}

// nonNegative converts a floored benefit to int64, clamping below at 0 and
// above at math.MaxInt64 so a huge rate cannot wrap into a negative benefit.
func nonNegative(d decimal.Decimal) int64 {
	if d.IsNegative() {
		return 0
	}
	if !d.BigInt().IsInt64() {
		return math.MaxInt64
	}
	return d.IntPart()
}
