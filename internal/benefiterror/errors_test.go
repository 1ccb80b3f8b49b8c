package benefiterror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedRuleTypeError(t *testing.T) {
	err := &UnsupportedRuleTypeError{CardID: "the-more", Type: "CASHBACK"}
	assert.Equal(t, "card 'the-more': unsupported benefit rule type 'CASHBACK'", err.Error())

	var target *UnsupportedRuleTypeError
	wrapped := errors.Join(errors.New("evaluate"), err)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "CASHBACK", target.Type)
}

func TestExtractionError(t *testing.T) {
	originalErr := errors.New("connection refused")
	err := &ExtractionError{Operation: "extract rules", Err: originalErr}

	assert.Equal(t, "extract rules failed: connection refused", err.Error())
	assert.Equal(t, originalErr, err.Unwrap())
	assert.True(t, errors.Is(err, originalErr))
}

func TestCardConfigError(t *testing.T) {
	tests := []struct {
		name     string
		err      *CardConfigError
		expected string
	}{
		{
			name:     "file level error",
			err:      &CardConfigError{FilePath: "cards.yaml", Reason: "no cards defined"},
			expected: "invalid card configuration in 'cards.yaml': no cards defined",
		},
		{
			name: "card level error with cause",
			err: &CardConfigError{
				FilePath: "cards.yaml",
				CardID:   "digi-london",
				Reason:   "validation failed",
				Err:      errors.New("rules is required"),
			},
			expected: "invalid card configuration in 'cards.yaml' for card 'digi-london': validation failed: rules is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestCardConfigError_Unwrap(t *testing.T) {
	cause := errors.New("duplicate id")
	err := &CardConfigError{FilePath: "cards.yaml", Reason: "bad", Err: cause}
	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, (&CardConfigError{}).Unwrap())
}
