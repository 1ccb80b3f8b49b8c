// Package report renders evaluation results, card lists and extracted rules
// as text, CSV or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/smart-benefit/internal/logging"
	"fjacquet/smart-benefit/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

type resultRow struct {
	Rank          int    `csv:"rank"`
	CardID        string `csv:"card_id"`
	CardName      string `csv:"card_name"`
	BenefitAmount int64  `csv:"benefit_amount"`
	RuleCategory  string `csv:"rule_category"`
	RuleType      string `csv:"rule_type"`
	Rate          string `csv:"rate"`
	MinAmount     string `csv:"min_amount"`
}

type ruleRow struct {
	CardID      string `csv:"card_id"`
	CardName    string `csv:"card_name"`
	Category    string `csv:"category"`
	Type        string `csv:"type"`
	Rate        string `csv:"rate"`
	MinAmount   string `csv:"min_amount"`
	Description string `csv:"description"`
}

type resultsDocument struct {
	Amount  decimal.Decimal            `json:"amount"`
	Results []models.CalculationResult `json:"results"`
}

// Generator renders reports.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// RenderResults writes the ranked results of an evaluation of amount.
func (g *Generator) RenderResults(w io.Writer, amount decimal.Decimal, results []models.CalculationResult, format string) error {
	switch format {
	case FormatText:
		return writeResultsText(w, amount, results)
	case FormatCSV:
		rows := make([]resultRow, 0, len(results))
		for i, r := range results {
			rows = append(rows, resultRow{
				Rank:          i + 1,
				CardID:        r.CardID,
				CardName:      r.CardName,
				BenefitAmount: r.BenefitAmount,
				RuleCategory:  string(r.AppliedRule.Category),
				RuleType:      string(r.AppliedRule.Type),
				Rate:          optionalNumber(r.AppliedRule.Rate),
				MinAmount:     optionalNumber(r.AppliedRule.MinAmount),
			})
		}
		return g.writeCSV(w, &rows)
	case FormatJSON:
		if results == nil {
			results = []models.CalculationResult{}
		}
		return g.writeJSON(w, resultsDocument{Amount: amount, Results: results})
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// RenderMissingAmount writes the prompt shown when no valid payment amount was given.
// CSV and JSON output an empty ranking.
func (g *Generator) RenderMissingAmount(w io.Writer, format string) error {
	if format == FormatText {
		_, err := io.WriteString(w, "결제 금액을 입력해주세요\n")
		return err
	}
	return g.RenderResults(w, decimal.Zero, nil, format)
}

// RenderCards writes the cards and their benefit rules.
func (g *Generator) RenderCards(w io.Writer, cards []models.CreditCard, format string) error {
	switch format {
	case FormatText:
		return writeCardsText(w, cards)
	case FormatCSV:
		var rows []ruleRow
		for _, card := range cards {
			for _, rule := range card.Rules {
				rows = append(rows, newRuleRow(card, rule))
			}
		}
		return g.writeCSV(w, &rows)
	case FormatJSON:
		if cards == nil {
			cards = []models.CreditCard{}
		}
		return g.writeJSON(w, cards)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// RenderRules writes a list of benefit rules not yet attached to a card.
func (g *Generator) RenderRules(w io.Writer, rules []models.BenefitRule, format string) error {
	switch format {
	case FormatText:
		return writeRulesText(w, rules)
	case FormatCSV:
		rows := make([]ruleRow, 0, len(rules))
		for _, rule := range rules {
			rows = append(rows, newRuleRow(models.CreditCard{}, rule))
		}
		return g.writeCSV(w, &rows)
	case FormatJSON:
		if rules == nil {
			rules = []models.BenefitRule{}
		}
		return g.writeJSON(w, rules)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func newRuleRow(card models.CreditCard, rule models.BenefitRule) ruleRow {
	return ruleRow{
		CardID:      card.ID,
		CardName:    card.Name,
		Category:    string(rule.Category),
		Type:        string(rule.Type),
		Rate:        optionalNumber(rule.Rate),
		MinAmount:   optionalNumber(rule.MinAmount),
		Description: rule.Description,
	}
}

func (g *Generator) writeCSV(w io.Writer, rows interface{}) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report",
			logging.Field{Key: logging.FieldFormat, Value: FormatCSV})
		return fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return nil
}

func (g *Generator) writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report",
			logging.Field{Key: logging.FieldFormat, Value: FormatJSON})
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return nil
}

// Suggestion is a merchant category suggestion ready to be rendered.
type Suggestion struct {
	Merchant string                  `json:"merchant" csv:"merchant"`
	Category models.MerchantCategory `json:"category" csv:"category"`
	Label    string                  `json:"label" csv:"label"`
	Outcome  string                  `json:"outcome" csv:"outcome"`
}

// RenderSuggestion writes a merchant category suggestion.
func (g *Generator) RenderSuggestion(w io.Writer, s Suggestion, format string) error {
	if s.Label == "" {
		s.Label = s.Category.Label()
	}
	switch format {
	case FormatText:
		_, err := fmt.Fprintf(w, "%s: %s (%s)\n", s.Merchant, s.Label, s.Category)
		return err
	case FormatCSV:
		rows := []Suggestion{s}
		return g.writeCSV(w, &rows)
	case FormatJSON:
		return g.writeJSON(w, s)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}
