package evaluator

import "fjacquet/smart-benefit/internal/models"

// SelectApplicableRule picks the rule of a card that applies to a payment in category.
//
// With no category (empty or ALL) the first ALL rule is used, falling back to
// the first rule of the card. With a specific category the first rule of that
// category wins, then the first ALL rule. It reports false when no rule applies.
func SelectApplicableRule(category models.MerchantCategory, rules []models.BenefitRule) (models.BenefitRule, bool) {
	if len(rules) == 0 {
		return models.BenefitRule{}, false
	}

	if category != "" && category != models.CategoryAll {
		for _, rule := range rules {
			if rule.Category == category {
				return rule, true
			}
		}
		if rule, ok := firstAllRule(rules); ok {
			return rule, true
		}
		return models.BenefitRule{}, false
	}

	if rule, ok := firstAllRule(rules); ok {
		return rule, true
	}
	return rules[0], true
}

func firstAllRule(rules []models.BenefitRule) (models.BenefitRule, bool) {
	for _, rule := range rules {
		if rule.Category == models.CategoryAll {
			return rule, true
		}
	}
	return models.BenefitRule{}, false
}
