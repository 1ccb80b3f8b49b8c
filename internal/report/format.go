package report

import (
	"fmt"

	"fjacquet/smart-benefit/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// FormatWon formats a whole won amount with thousands separators, e.g. "1,700원".
func FormatWon(amount int64) string {
	return printer.Sprintf("%d원", amount)
}

// FormatAmount formats a payment amount, keeping any fractional part.
func FormatAmount(amount decimal.Decimal) string {
	whole := amount.Truncate(0)
	if !whole.BigInt().IsInt64() {
		return amount.String() + "원"
	}
	out := printer.Sprintf("%d", whole.IntPart())
	if frac := amount.Sub(whole); !frac.IsZero() {
		// frac.String() starts with "0", keep only the fractional digits.
		out += frac.String()[1:]
	}
	return out + "원"
}

// DescribeRule returns a short Korean summary of how a rule applies.
func DescribeRule(rule models.BenefitRule) string {
	switch rule.Type {
	case models.BenefitCoinSave:
		return fmt.Sprintf("잔돈 적립 적용 (%s 이상)", FormatWon(int64(rule.EffectiveMinAmount())))
	case models.BenefitPercentage:
		rate := decimal.NewFromFloat(rule.EffectiveRate()).String()
		if rule.MinAmount != nil {
			return fmt.Sprintf("%s%% 할인 적용 (%s 이상)", rate, FormatWon(int64(*rule.MinAmount)))
		}
		return fmt.Sprintf("%s%% 할인 적용", rate)
	default:
		return string(rule.Type)
	}
}

func optionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return decimal.NewFromFloat(*v).String()
}
