package models

// BenefitType selects how a rule turns a payment into a benefit.
type BenefitType string

const (
	// BenefitPercentage credits a flat percentage of the payment, rounded down.
	BenefitPercentage BenefitType = "PERCENTAGE"
	// BenefitCoinSave credits the sub-1000 remainder of the payment above a floor.
	BenefitCoinSave BenefitType = "COIN_SAVE"
)

// DefaultCoinSaveMinAmount is the payment floor applied to COIN_SAVE rules without MinAmount.
const DefaultCoinSaveMinAmount = 5000

// BenefitTypeNames lists the known benefit types as strings.
func BenefitTypeNames() []string {
	return []string{string(BenefitPercentage), string(BenefitCoinSave)}
}

// IsValid reports whether t is a known benefit type.
func (t BenefitType) IsValid() bool {
	return t == BenefitPercentage || t == BenefitCoinSave
}

// BenefitRule is one reward mechanism attached to a card.
type BenefitRule struct {
	Category    MerchantCategory `json:"category" yaml:"category" validate:"required,oneof=ALL DINING GROCERY TRAVEL TRANSPORT SHOPPING ONLINE CAFE CONVENIENCE GAS"`
	Type        BenefitType      `json:"type" yaml:"type" validate:"required,oneof=PERCENTAGE COIN_SAVE"`
	Rate        *float64         `json:"rate,omitempty" yaml:"rate,omitempty" validate:"omitempty,gte=0"`
	MinAmount   *float64         `json:"minAmount,omitempty" yaml:"minAmount,omitempty" validate:"omitempty,gte=0"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
}

// EffectiveRate returns Rate, or 0 when unset.
func (r BenefitRule) EffectiveRate() float64 {
	if r.Rate == nil {
		return 0
	}
	return *r.Rate
}

// EffectiveMinAmount returns the eligibility floor of the rule.
// COIN_SAVE rules default to DefaultCoinSaveMinAmount; other rules default to 0.
func (r BenefitRule) EffectiveMinAmount() float64 {
	if r.MinAmount != nil {
		return *r.MinAmount
	}
	if r.Type == BenefitCoinSave {
		return DefaultCoinSaveMinAmount
	}
	return 0
}

// Float returns a pointer to v, for populating optional rule fields.
func Float(v float64) *float64 {
	return &v
}
