// Package evaluator ranks credit cards by the benefit they yield for a payment.
// Evaluation is pure: it performs no I/O and holds no mutable state after construction.
package evaluator

import (
	"fmt"
	"slices"
	"strings"

	"fjacquet/smart-benefit/internal/benefiterror"
	"fjacquet/smart-benefit/internal/models"

	"github.com/shopspring/decimal"
)

// Evaluator computes and ranks per-card benefits.
type Evaluator struct {
	calculators map[models.BenefitType]RuleCalculator
}

// NewEvaluator creates an Evaluator with the COIN_SAVE and PERCENTAGE calculators registered.
func NewEvaluator() *Evaluator {
	e := &Evaluator{calculators: make(map[models.BenefitType]RuleCalculator)}
	e.Register(CoinSaveCalculator{})
	e.Register(PercentageCalculator{})
	return e
}

// Register adds or replaces the calculator for its benefit type.
// It must not be called concurrently with evaluation.
func (e *Evaluator) Register(calc RuleCalculator) {
	e.calculators[calc.Type()] = calc
}

// MaxAmount is the largest payment amount accepted, 1e15 won.
var MaxAmount = decimal.New(1, 15)

// MaxFractionDigits bounds the precision of an accepted amount.
const MaxFractionDigits = 18

// ParseAmount parses user input into a payment amount.
// It reports false for empty, non-numeric or negative input and for amounts
// outside [0, MaxAmount] or with more than MaxFractionDigits fractional digits.
func ParseAmount(input string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil || !InRange(amount) {
		return decimal.Zero, false
	}
	return amount, true
}

// InRange reports whether amount can be evaluated. It inspects the exponent
// before comparing, since comparing rescales and 1e100000000 would not finish.
func InRange(amount decimal.Decimal) bool {
	exp := amount.Exponent()
	if exp < -MaxFractionDigits {
		return false
	}
	// Integer digits of coefficient*10^exp; MaxAmount has 16.
	if int64(amount.NumDigits())+int64(exp) > 16 {
		return false
	}
	return !amount.IsNegative() && !amount.GreaterThan(MaxAmount)
}

// Evaluate parses input and evaluates every card without a merchant category.
// Input that is not a non-negative number yields an empty result and no error.
func (e *Evaluator) Evaluate(input string, cards []models.CreditCard) ([]models.CalculationResult, error) {
	amount, ok := ParseAmount(input)
	if !ok {
		return []models.CalculationResult{}, nil
	}
	return e.EvaluateAmount(amount, "", cards)
}

// EvaluateAmount computes the benefit of each card for amount spent in category
// and returns the results ordered by benefit, highest first. Cards with equal
// benefit keep their input order. Cards with no applicable rule are omitted.
func (e *Evaluator) EvaluateAmount(amount decimal.Decimal, category models.MerchantCategory, cards []models.CreditCard) ([]models.CalculationResult, error) {
	results := make([]models.CalculationResult, 0, len(cards))
	if amount.IsNegative() {
		return results, nil
	}
	if !InRange(amount) {
		return nil, fmt.Errorf("%w: %s exceeds %s", benefiterror.ErrAmountOutOfRange, amount.String(), MaxAmount.String())
	}

	for _, card := range cards {
		rule, ok := SelectApplicableRule(category, card.Rules)
		if !ok {
			continue
		}

		calc, ok := e.calculators[rule.Type]
		if !ok {
			return nil, &benefiterror.UnsupportedRuleTypeError{CardID: card.ID, Type: string(rule.Type)}
		}

		results = append(results, models.CalculationResult{
			CardID:        card.ID,
			CardName:      card.Name,
			BenefitAmount: calc.Calculate(amount, rule),
			AppliedRule:   rule,
		})
	}

	slices.SortStableFunc(results, func(a, b models.CalculationResult) int {
		switch {
		case a.BenefitAmount > b.BenefitAmount:
			return -1
		case a.BenefitAmount < b.BenefitAmount:
			return 1
		default:
			return 0
		}
	})

	return results, nil
}

// Best returns the highest-ranked result of an evaluation.
func Best(results []models.CalculationResult) (models.CalculationResult, bool) {
	if len(results) == 0 {
		return models.CalculationResult{}, false
	}
	return results[0], true
}
