package models

// CreditCard is a statically configured card and its ordered benefit rules.
type CreditCard struct {
	ID     string        `json:"id" yaml:"id" validate:"required"`
	Name   string        `json:"name" yaml:"name" validate:"required"`
	Issuer string        `json:"issuer" yaml:"issuer"`
	Color  string        `json:"color,omitempty" yaml:"color,omitempty"`
	Rules  []BenefitRule `json:"rules" yaml:"rules" validate:"required,min=1,dive"`
}

// CardsConfig is the top-level shape of a card configuration file.
type CardsConfig struct {
	Cards []CreditCard `yaml:"cards" validate:"dive"`
}

// DefaultCards returns the built-in card set used when no card file is configured.
func DefaultCards() []CreditCard {
	return []CreditCard{
		{
			ID:     "the-more",
			Name:   "신한카드 The More",
			Issuer: "신한카드",
			Color:  "bg-purple-600",
			Rules: []BenefitRule{
				{
					Category:    CategoryAll,
					Type:        BenefitCoinSave,
					MinAmount:   Float(5000),
					Description: "5천원 이상 결제 시 천원 미만 단위 적립",
				},
			},
		},
		{
			ID:     "digi-london",
			Name:   "디지로카 London",
			Issuer: "롯데카드",
			Color:  "bg-slate-800",
			Rules: []BenefitRule{
				{
					Category:    CategoryAll,
					Type:        BenefitPercentage,
					Rate:        Float(1.7),
					Description: "국내외 가맹점 1.7% 할인",
				},
			},
		},
	}
}
