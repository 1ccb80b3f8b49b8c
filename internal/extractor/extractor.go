// Package extractor turns free-text card benefit descriptions into benefit
// rules, and merchant names into merchant categories, using a generative model.
//
// Both operations come in two forms. TryExtractRules and TrySuggestCategory
// report a tagged Outcome so callers can tell "not configured" apart from
// "configured but failed". ExtractRules and SuggestCategory keep the simpler
// policy: extraction propagates failures, category suggestion never does.
package extractor

import (
	"context"
	"encoding/json"
	"strings"

	"fjacquet/smart-benefit/internal/benefiterror"
	"fjacquet/smart-benefit/internal/logging"
	"fjacquet/smart-benefit/internal/models"
)

const (
	operationExtractRules    = "extract_rules"
	operationSuggestCategory = "suggest_category"
)

// Outcome tags the result of a generative-model operation.
type Outcome int

const (
	// OutcomeOK means the service answered and the answer was parsed.
	OutcomeOK Outcome = iota
	// OutcomeNotConfigured means no API credential is configured; no call was made.
	OutcomeNotConfigured
	// OutcomeFailed means the call or the parsing of its response failed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotConfigured:
		return "not_configured"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RulesResult is the tagged result of TryExtractRules.
type RulesResult struct {
	Rules   []models.BenefitRule
	Outcome Outcome
	Err     error
}

// CategoryResult is the tagged result of TrySuggestCategory.
// Category is ALL whenever Outcome is not OutcomeOK.
type CategoryResult struct {
	Category models.MerchantCategory
	// Raw is the unprocessed service answer, empty unless the service answered.
	Raw     string
	Outcome Outcome
	Err     error
}

// Extractor is the rule extraction client.
type Extractor struct {
	generator Generator
	logger    logging.Logger
}

// NewExtractor creates an Extractor. A nil generator means the capability is not configured.
func NewExtractor(generator Generator, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Extractor{
		generator: generator,
		logger:    logger,
	}
}

// Configured reports whether a generator is available.
func (e *Extractor) Configured() bool {
	return e.generator != nil
}

// TryExtractRules asks the model to extract benefit rules from text.
// The parsed rules are returned as-is; their category and type are not
// re-checked against the known enumerations.
func (e *Extractor) TryExtractRules(ctx context.Context, text string) RulesResult {
	log := e.logger.WithField(logging.FieldOperation, operationExtractRules)

	if !e.Configured() {
		log.Warn("API key is missing, skipping benefit rule extraction")
		return RulesResult{
			Rules:   []models.BenefitRule{},
			Outcome: OutcomeNotConfigured,
			Err:     benefiterror.ErrNotConfigured,
		}
	}

	raw, err := e.generator.Generate(ctx, GenerateRequest{
		Prompt:   rulesPrompt(text),
		MIMEType: MIMETypeJSON,
		Schema:   rulesSchema(),
	})
	if err != nil {
		return e.rulesFailure(log, err)
	}

	rules := []models.BenefitRule{}
	if strings.TrimSpace(raw) == "" {
		log.Debug("Model returned an empty response")
		return RulesResult{Rules: rules, Outcome: OutcomeOK}
	}
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return e.rulesFailure(log, err)
	}

	log.Info("Extracted benefit rules", logging.Field{Key: logging.FieldCount, Value: len(rules)})
	return RulesResult{Rules: rules, Outcome: OutcomeOK}
}

func (e *Extractor) rulesFailure(log logging.Logger, err error) RulesResult {
	wrapped := &benefiterror.ExtractionError{Operation: "extract rules", Err: err}
	log.WithError(err).Error("Failed to parse card benefits with the generative model")
	return RulesResult{
		Rules:   []models.BenefitRule{},
		Outcome: OutcomeFailed,
		Err:     wrapped,
	}
}

// ExtractRules returns the rules found in text.
// Without an API key it returns an empty slice and no error. A failed request
// or an unparsable response is returned as a *benefiterror.ExtractionError.
func (e *Extractor) ExtractRules(ctx context.Context, text string) ([]models.BenefitRule, error) {
	result := e.TryExtractRules(ctx, text)
	if result.Outcome == OutcomeFailed {
		return nil, result.Err
	}
	return result.Rules, nil
}

// TrySuggestCategory asks the model which merchant category merchantName belongs to.
// An answer that is not exactly one known category maps to ALL with OutcomeOK.
func (e *Extractor) TrySuggestCategory(ctx context.Context, merchantName string) CategoryResult {
	log := e.logger.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: operationSuggestCategory},
		logging.Field{Key: logging.FieldMerchant, Value: merchantName},
	)

	if !e.Configured() {
		log.Warn("API key is missing, defaulting merchant category to ALL")
		return CategoryResult{
			Category: models.CategoryAll,
			Outcome:  OutcomeNotConfigured,
			Err:      benefiterror.ErrNotConfigured,
		}
	}

	raw, err := e.generator.Generate(ctx, GenerateRequest{
		Prompt:   categoryPrompt(merchantName),
		MIMEType: MIMETypePlainText,
	})
	if err != nil {
		log.WithError(err).Error("Category suggestion failed")
		return CategoryResult{
			Category: models.CategoryAll,
			Outcome:  OutcomeFailed,
			Err:      &benefiterror.ExtractionError{Operation: "suggest category", Err: err},
		}
	}

	category, ok := models.ParseCategory(raw)
	if !ok {
		log.Debug("Model answer is not a known category, using ALL",
			logging.Field{Key: "answer", Value: raw})
		category = models.CategoryAll
	}

	log.Debug("Merchant category suggested", logging.Field{Key: logging.FieldCategory, Value: category})
	return CategoryResult{Category: category, Raw: raw, Outcome: OutcomeOK}
}

// SuggestCategory returns the merchant category of merchantName.
// It never fails: a missing API key or any error yields ALL.
func (e *Extractor) SuggestCategory(ctx context.Context, merchantName string) models.MerchantCategory {
	return e.TrySuggestCategory(ctx, merchantName).Category
}
