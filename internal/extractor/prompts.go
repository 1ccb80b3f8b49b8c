package extractor

import (
	"fmt"
	"strings"

	"fjacquet/smart-benefit/internal/models"

	"github.com/google/generative-ai-go/genai"
)

const rulesPromptTemplate = `
Analyze the credit card benefit text provided below (in Korean) and extract the benefit rules into a structured JSON format.

Map the benefits to the following standardized categories:
- ALL (Base rate for everything else / 전월 실적 조건 없는 기본 적립 등)
- DINING (Restaurants, food / 음식점)
- GROCERY (Supermarkets, marts / 이마트, 홈플러스 등 대형마트)
- TRAVEL (Hotels, flights / 여행, 항공)
- TRANSPORT (Bus, subway, taxi / 대중교통, 택시)
- SHOPPING (Department stores, retail / 백화점, 아울렛)
- ONLINE (Online shopping, e-commerce / 쿠팡, 네이버쇼핑, 11번가 등)
- CAFE (Coffee shops, bakeries / 스타벅스, 커피빈 등)
- CONVENIENCE (Convenience stores / 편의점)
- GAS (Gas stations / 주유소)

Benefit Types:
- 'PERCENTAGE': Standard discount or point accumulation rate (e.g., 1%%, 0.7%%).
- 'COIN_SAVE': "Change savings" logic. Specifically for benefits like "Save amount less than 1000 KRW" (천원 미만 잔돈 적립).

Rules:
1. If a benefit implies "All merchants" or "Base accumulation" (전 가맹점, 기본 적립), map to ALL.
2. Determine 'type':
   - If text says "천원 미만 적립", "잔돈 적립" or "Save change < 1000", set 'type' to 'COIN_SAVE'.
   - Otherwise, set 'type' to 'PERCENTAGE'.
3. Determine 'rate' (only for PERCENTAGE):
   - 1.5%% -> 1.5
   - 1000원당 1점 -> 0.1
4. Determine 'minAmount' (Optional condition):
   - If text says "5000원 이상 결제 시" (Payments over 5000), set 'minAmount' to 5000.
5. The 'description' should be a short summary in Korean.

Text to analyze: "%s"
`

const categoryPromptTemplate = `Classify the merchant "%s" (which is likely a Korean business) into one of these categories: %s.

Examples:
- 스타벅스, 이디야 -> CAFE
- 쿠팡, 11번가, 네이버페이 -> ONLINE
- GS25, CU -> CONVENIENCE
- 이마트, 홈플러스 -> GROCERY
- 식당이름 -> DINING
- KTX, 카카오택시 -> TRANSPORT

Return ONLY the category enum string. If unsure, return ALL.`

func rulesPrompt(text string) string {
	return fmt.Sprintf(rulesPromptTemplate, text)
}

func categoryPrompt(merchantName string) string {
	return fmt.Sprintf(categoryPromptTemplate, merchantName, strings.Join(models.CategoryNames(), ", "))
}

// rulesSchema constrains the extraction response to an array of benefit rules.
func rulesSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category": {
					Type:        genai.TypeString,
					Enum:        models.CategoryNames(),
					Description: "The standardized merchant category.",
				},
				"type": {
					Type:        genai.TypeString,
					Enum:        models.BenefitTypeNames(),
					Description: "The type of benefit.",
				},
				"rate": {
					Type:        genai.TypeNumber,
					Description: "The benefit rate in percentage (for PERCENTAGE type).",
				},
				"minAmount": {
					Type:        genai.TypeNumber,
					Description: "Minimum transaction amount required (e.g., 5000).",
				},
				"description": {
					Type:        genai.TypeString,
					Description: "Short original description of the benefit in Korean.",
				},
			},
			Required: []string{"category", "type"},
		},
	}
}
