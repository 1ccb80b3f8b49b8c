// Package benefiterror defines the typed errors shared by the evaluator,
// the rule extraction client and the card store.
package benefiterror

import (
	"errors"
	"fmt"
)

// ErrNotConfigured signals that the generative-model capability has no API credential.
var ErrNotConfigured = errors.New("generative model not configured")

// ErrAmountOutOfRange signals a payment amount outside the range the evaluator can compute.
var ErrAmountOutOfRange = errors.New("payment amount out of range")

// UnsupportedRuleTypeError is returned when a card carries a rule type the evaluator cannot compute.
type UnsupportedRuleTypeError struct {
	CardID string
	Type   string
}

func (e *UnsupportedRuleTypeError) Error() string {
	return fmt.Sprintf("card '%s': unsupported benefit rule type '%s'", e.CardID, e.Type)
}

// ExtractionError represents a failed call to the external generative-model service.
type ExtractionError struct {
	Operation string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// CardConfigError represents an invalid card configuration.
type CardConfigError struct {
	FilePath string
	CardID   string
	Reason   string
	Err      error
}

func (e *CardConfigError) Error() string {
	msg := fmt.Sprintf("invalid card configuration in '%s'", e.FilePath)
	if e.CardID != "" {
		msg += fmt.Sprintf(" for card '%s'", e.CardID)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *CardConfigError) Unwrap() error {
	return e.Err
}
