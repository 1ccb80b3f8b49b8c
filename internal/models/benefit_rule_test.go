package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefitType_IsValid(t *testing.T) {
	assert.True(t, BenefitPercentage.IsValid())
	assert.True(t, BenefitCoinSave.IsValid())
	assert.False(t, BenefitType("CASHBACK").IsValid())
	assert.Equal(t, []string{"PERCENTAGE", "COIN_SAVE"}, BenefitTypeNames())
}

func TestBenefitRule_EffectiveMinAmount(t *testing.T) {
	tests := []struct {
		name     string
		rule     BenefitRule
		expected float64
	}{
		{"coin save default", BenefitRule{Type: BenefitCoinSave}, DefaultCoinSaveMinAmount},
		{"coin save explicit", BenefitRule{Type: BenefitCoinSave, MinAmount: Float(10000)}, 10000},
		{"coin save explicit zero", BenefitRule{Type: BenefitCoinSave, MinAmount: Float(0)}, 0},
		{"percentage default", BenefitRule{Type: BenefitPercentage}, 0},
		{"percentage explicit", BenefitRule{Type: BenefitPercentage, MinAmount: Float(3000)}, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rule.EffectiveMinAmount())
		})
	}
}

func TestBenefitRule_EffectiveRate(t *testing.T) {
	assert.Equal(t, 0.0, BenefitRule{Type: BenefitPercentage}.EffectiveRate())
	assert.Equal(t, 1.7, BenefitRule{Type: BenefitPercentage, Rate: Float(1.7)}.EffectiveRate())
}

func TestDefaultCards(t *testing.T) {
	cards := DefaultCards()
	require.Len(t, cards, 2)

	assert.Equal(t, "the-more", cards[0].ID)
	require.Len(t, cards[0].Rules, 1)
	assert.Equal(t, BenefitCoinSave, cards[0].Rules[0].Type)
	assert.Equal(t, 5000.0, cards[0].Rules[0].EffectiveMinAmount())

	assert.Equal(t, "digi-london", cards[1].ID)
	require.Len(t, cards[1].Rules, 1)
	assert.Equal(t, BenefitPercentage, cards[1].Rules[0].Type)
	assert.Equal(t, 1.7, cards[1].Rules[0].EffectiveRate())

	// Each call returns an independent copy.
	*cards[1].Rules[0].Rate = 99
	assert.Equal(t, 1.7, DefaultCards()[1].Rules[0].EffectiveRate())
}
