package extractor

import (
	"testing"

	"fjacquet/smart-benefit/internal/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesPrompt(t *testing.T) {
	prompt := rulesPrompt("국내외 가맹점 1.7% 할인")

	assert.Contains(t, prompt, `Text to analyze: "국내외 가맹점 1.7% 할인"`)
	assert.Contains(t, prompt, "1.5% -> 1.5")
	assert.Contains(t, prompt, "COIN_SAVE")
	for _, c := range models.AllCategories() {
		assert.Contains(t, prompt, "- "+string(c)+" (")
	}
	assert.NotContains(t, prompt, "%!")
}

func TestCategoryPrompt(t *testing.T) {
	prompt := categoryPrompt("이디야")

	assert.Contains(t, prompt, `Classify the merchant "이디야"`)
	assert.Contains(t, prompt, "ALL, DINING, GROCERY, TRAVEL, TRANSPORT, SHOPPING, ONLINE, CAFE, CONVENIENCE, GAS")
	assert.Contains(t, prompt, "If unsure, return ALL.")
}

func TestRulesSchema(t *testing.T) {
	schema := rulesSchema()

	assert.Equal(t, genai.TypeArray, schema.Type)
	require.NotNil(t, schema.Items)
	assert.Equal(t, genai.TypeObject, schema.Items.Type)
	assert.ElementsMatch(t, []string{"category", "type"}, schema.Items.Required)

	props := schema.Items.Properties
	require.Contains(t, props, "category")
	assert.Equal(t, models.CategoryNames(), props["category"].Enum)
	require.Contains(t, props, "type")
	assert.Equal(t, []string{"PERCENTAGE", "COIN_SAVE"}, props["type"].Enum)
	assert.Equal(t, genai.TypeNumber, props["rate"].Type)
	assert.Equal(t, genai.TypeNumber, props["minAmount"].Type)
	assert.Equal(t, genai.TypeString, props["description"].Type)
}
