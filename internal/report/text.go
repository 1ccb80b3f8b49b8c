package report

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/smart-benefit/internal/models"

	"github.com/shopspring/decimal"
)

func writeResultsText(w io.Writer, amount decimal.Decimal, results []models.CalculationResult) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "결제 금액: %s\n\n", FormatAmount(amount))
	if len(results) == 0 {
		sb.WriteString("적용 가능한 카드 혜택이 없습니다\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	best := results[0]
	fmt.Fprintf(&sb, "최고의 선택: %s\n", best.CardName)
	fmt.Fprintf(&sb, "예상 혜택: +%s\n", FormatWon(best.BenefitAmount))
	fmt.Fprintf(&sb, "%s\n\n", DescribeRule(best.AppliedRule))

	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s  %s\n", i+1, r.CardName, FormatWon(r.BenefitAmount))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeCardsText(w io.Writer, cards []models.CreditCard) error {
	var sb strings.Builder
	for i, card := range cards {
		if i > 0 {
			sb.WriteString("\n")
		}
		if card.Issuer != "" {
			fmt.Fprintf(&sb, "%s (%s)\n", card.Name, card.Issuer)
		} else {
			fmt.Fprintf(&sb, "%s\n", card.Name)
		}
		for _, rule := range card.Rules {
			writeRuleLine(&sb, rule)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeRulesText(w io.Writer, rules []models.BenefitRule) error {
	var sb strings.Builder
	if len(rules) == 0 {
		sb.WriteString("추출된 혜택이 없습니다\n")
	}
	for _, rule := range rules {
		writeRuleLine(&sb, rule)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeRuleLine(sb *strings.Builder, rule models.BenefitRule) {
	fmt.Fprintf(sb, "  - [%s] %s", rule.Category.Label(), DescribeRule(rule))
	if rule.Description != "" {
		fmt.Fprintf(sb, ": %s", rule.Description)
	}
	sb.WriteString("\n")
}
