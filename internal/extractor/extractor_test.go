package extractor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fjacquet/smart-benefit/internal/benefiterror"
	"fjacquet/smart-benefit/internal/logging"
	"fjacquet/smart-benefit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator records requests and answers with a fixed response.
type fakeGenerator struct {
	mu       sync.Mutex
	response string
	err      error
	requests []GenerateRequest
}

func (f *fakeGenerator) Generate(_ context.Context, req GenerateRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.response, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func TestExtractRules_NotConfigured(t *testing.T) {
	logger := &logging.MockLogger{}
	e := NewExtractor(nil, logger)

	rules, err := e.ExtractRules(context.Background(), "전 가맹점 1% 적립")
	require.NoError(t, err)
	assert.NotNil(t, rules)
	assert.Empty(t, rules)
	assert.Len(t, logger.GetEntriesByLevel("WARN"), 1)
}

func TestTryExtractRules_NotConfigured(t *testing.T) {
	result := NewExtractor(nil, &logging.MockLogger{}).TryExtractRules(context.Background(), "text")

	assert.Equal(t, OutcomeNotConfigured, result.Outcome)
	assert.ErrorIs(t, result.Err, benefiterror.ErrNotConfigured)
	assert.Empty(t, result.Rules)
}

func TestExtractRules_Success(t *testing.T) {
	gen := &fakeGenerator{response: `[
		{"category": "ALL", "type": "COIN_SAVE", "minAmount": 5000, "description": "5천원 이상 결제 시 천원 미만 적립"},
		{"category": "CAFE", "type": "PERCENTAGE", "rate": 10, "description": "스타벅스 10% 할인"}
	]`}
	e := NewExtractor(gen, &logging.MockLogger{})

	rules, err := e.ExtractRules(context.Background(), "5천원 이상 결제 시 천원 미만 적립, 스타벅스 10% 할인")
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, models.CategoryAll, rules[0].Category)
	assert.Equal(t, models.BenefitCoinSave, rules[0].Type)
	require.NotNil(t, rules[0].MinAmount)
	assert.Equal(t, 5000.0, *rules[0].MinAmount)
	assert.Nil(t, rules[0].Rate)

	assert.Equal(t, models.CategoryCafe, rules[1].Category)
	require.NotNil(t, rules[1].Rate)
	assert.Equal(t, 10.0, *rules[1].Rate)

	require.Equal(t, 1, gen.calls())
	req := gen.requests[0]
	assert.Equal(t, MIMETypeJSON, req.MIMEType)
	assert.NotNil(t, req.Schema)
	assert.Contains(t, req.Prompt, "스타벅스 10% 할인")
}

func TestExtractRules_ReturnsUnknownEnumsVerbatim(t *testing.T) {
	gen := &fakeGenerator{response: `[{"category": "PETS", "type": "MILES"}]`}

	rules, err := NewExtractor(gen, &logging.MockLogger{}).ExtractRules(context.Background(), "text")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, models.MerchantCategory("PETS"), rules[0].Category)
	assert.Equal(t, models.BenefitType("MILES"), rules[0].Type)
}

func TestExtractRules_EmptyResponse(t *testing.T) {
	gen := &fakeGenerator{response: "  "}

	result := NewExtractor(gen, &logging.MockLogger{}).TryExtractRules(context.Background(), "text")
	assert.Equal(t, OutcomeOK, result.Outcome)
	assert.NoError(t, result.Err)
	assert.Empty(t, result.Rules)
}

func TestExtractRules_TransportFailurePropagates(t *testing.T) {
	cause := errors.New("connection reset")
	logger := &logging.MockLogger{}
	e := NewExtractor(&fakeGenerator{err: cause}, logger)

	rules, err := e.ExtractRules(context.Background(), "text")
	assert.Nil(t, rules)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	var extractionErr *benefiterror.ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "extract rules", extractionErr.Operation)

	errorsLogged := logger.GetEntriesByLevel("ERROR")
	require.Len(t, errorsLogged, 1)
	assert.Equal(t, cause, errorsLogged[0].Error)
}

func TestExtractRules_ParseFailurePropagates(t *testing.T) {
	e := NewExtractor(&fakeGenerator{response: `{"not": "an array"`}, &logging.MockLogger{})

	result := e.TryExtractRules(context.Background(), "text")
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Error(t, result.Err)

	_, err := e.ExtractRules(context.Background(), "text")
	assert.Error(t, err)
}

func TestSuggestCategory(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected models.MerchantCategory
	}{
		{name: "exact token", response: "CAFE", expected: models.CategoryCafe},
		{name: "whitespace and case", response: "  convenience\n", expected: models.CategoryConvenience},
		{name: "unknown token", response: "BAKERY", expected: models.CategoryAll},
		{name: "sentence instead of token", response: "The category is CAFE", expected: models.CategoryAll},
		{name: "empty", response: "", expected: models.CategoryAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{response: tt.response}
			e := NewExtractor(gen, &logging.MockLogger{})

			result := e.TrySuggestCategory(context.Background(), "스타벅스")
			assert.Equal(t, tt.expected, result.Category)
			assert.Equal(t, OutcomeOK, result.Outcome)
			assert.Equal(t, tt.response, result.Raw)

			require.Equal(t, 1, gen.calls())
			assert.Equal(t, MIMETypePlainText, gen.requests[0].MIMEType)
			assert.Nil(t, gen.requests[0].Schema)
			assert.Contains(t, gen.requests[0].Prompt, `"스타벅스"`)
		})
	}
}

func TestSuggestCategory_NotConfigured(t *testing.T) {
	logger := &logging.MockLogger{}
	e := NewExtractor(nil, logger)

	assert.Equal(t, models.CategoryAll, e.SuggestCategory(context.Background(), "GS25"))
	assert.Len(t, logger.GetEntriesByLevel("WARN"), 1)

	result := e.TrySuggestCategory(context.Background(), "GS25")
	assert.Equal(t, OutcomeNotConfigured, result.Outcome)
	assert.ErrorIs(t, result.Err, benefiterror.ErrNotConfigured)
}

func TestSuggestCategory_FailureIsSwallowed(t *testing.T) {
	cause := errors.New("quota exceeded")
	logger := &logging.MockLogger{}
	e := NewExtractor(&fakeGenerator{err: cause}, logger)

	assert.Equal(t, models.CategoryAll, e.SuggestCategory(context.Background(), "쿠팡"))
	assert.Len(t, logger.GetEntriesByLevel("ERROR"), 1)

	result := e.TrySuggestCategory(context.Background(), "쿠팡")
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.ErrorIs(t, result.Err, cause)
	assert.Equal(t, models.CategoryAll, result.Category)
}

func TestExtractor_ContextIsForwarded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := GeneratorFunc(func(ctx context.Context, _ GenerateRequest) (string, error) {
		return "", ctx.Err()
	})
	_, err := NewExtractor(gen, &logging.MockLogger{}).ExtractRules(ctx, "text")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractor_ConcurrentCalls(t *testing.T) {
	gen := &fakeGenerator{response: "GAS"}
	e := NewExtractor(gen, &logging.MockLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, models.CategoryGas, e.SuggestCategory(context.Background(), "SK에너지"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, gen.calls())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "ok", OutcomeOK.String())
	assert.Equal(t, "not_configured", OutcomeNotConfigured.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
