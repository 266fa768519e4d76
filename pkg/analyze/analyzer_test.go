package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaryscope/canaryscope/pkg/llm"
)

func TestTruncateToTokensShortTextUnchanged(t *testing.T) {
	text := "good morning commissioners"
	assert.Equal(t, text, TruncateToTokens(text, 100))
}

func TestTruncateToTokensKeepsHeadAndTail(t *testing.T) {
	head := strings.Repeat("a", 5000)
	tail := strings.Repeat("z", 5000)
	text := head + strings.Repeat("m", 100_000) + tail

	// 1000 tokens → 4000 chars, 1400 kept per end.
	got := TruncateToTokens(text, 1000)

	assert.True(t, strings.HasPrefix(got, strings.Repeat("a", 1400)))
	assert.True(t, strings.HasSuffix(got, strings.Repeat("z", 1400)))
	assert.Contains(t, got, "[... TRANSCRIPT TRUNCATED FOR LENGTH ...]")
	assert.Less(t, len(got), len(text))
}

func TestTruncateToTokensIdempotent(t *testing.T) {
	text := strings.Repeat("word ", 10_000)
	once := TruncateToTokens(text, 1000)
	assert.Equal(t, once, TruncateToTokens(once, 1000))
}

func TestCost(t *testing.T) {
	usage := llm.Usage{PromptTokens: 1_000_000, CompletionTokens: 100_000}

	assert.InDelta(t, 2.50+1.00, Cost("gpt-4o-2024-08-06", usage), 0.0001)
	assert.InDelta(t, 0.15+0.06, Cost("gpt-4o-mini", usage), 0.0001)
	// Unknown models fall back to the gpt-4o rates.
	assert.InDelta(t, 2.50+1.00, Cost("mystery-model", usage), 0.0001)
}

func TestParseOutputMissingFieldsStayNull(t *testing.T) {
	result, err := parseOutput(`{"summary": "short meeting", "issues": ["rate increase"]}`)
	require.NoError(t, err)

	assert.Equal(t, "short meeting", result.Output.Summary)
	assert.Equal(t, []string{"rate increase"}, result.Output.Issues)
	assert.Nil(t, result.Output.OutcomeConfidence)
	assert.Nil(t, result.Output.Utilities)
	assert.Empty(t, result.Output.CommissionerMood)
	assert.Contains(t, result.Raw, "summary")
}

func TestParseOutputRejectsNonJSON(t *testing.T) {
	_, err := parseOutput("I could not analyze this transcript.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}
