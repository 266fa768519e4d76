package transcribe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaryscope/canaryscope/pkg/config"
)

func TestCleanText(t *testing.T) {
	in := "The killer one hour charge was discussed, and Air Cot reported on rate pairs."
	got := CleanText(in)
	assert.Contains(t, got, "kilowatt")
	assert.Contains(t, got, "ERCOT")
	assert.Contains(t, got, "ratepayers")
	assert.NotContains(t, got, "killer one")
}

func TestCleanTextLeavesNormalTextAlone(t *testing.T) {
	in := "The commission approved the settlement without modification."
	assert.Equal(t, in, CleanText(in))
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("FL", "Docket 20240025-EI fuel adjustment hearing")
	assert.Contains(t, got, "Florida Public Service Commission")
	assert.Contains(t, got, "Topic: Docket 20240025-EI fuel adjustment hearing")
}

func TestBuildPromptTruncatesTitle(t *testing.T) {
	long := strings.Repeat("x", 500)
	got := BuildPrompt("TX", long)
	assert.Contains(t, got, "ERCOT")
	assert.Contains(t, got, strings.Repeat("x", 200))
	assert.NotContains(t, got, strings.Repeat("x", 201))
}

func TestBuildPromptUnknownState(t *testing.T) {
	got := BuildPrompt("ZZ", "")
	assert.Equal(t, "Public utility commission hearing.", got)
}

func TestProviderProbeOrder(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ProviderConfig
		want Provider
	}{
		{
			name: "groq wins when present",
			cfg: config.ProviderConfig{
				GroqAPIKey: "g", GroqWhisperModel: "whisper-large-v3",
				AzureEndpoint: "https://x", AzureAPIKey: "a", AzureWhisperDeployment: "w",
				OpenAIAPIKey: "o", UseOpenAIWhisper: true,
			},
			want: ProviderGroq,
		},
		{
			name: "azure before openai",
			cfg: config.ProviderConfig{
				AzureEndpoint: "https://x", AzureAPIKey: "a", AzureWhisperDeployment: "w",
				OpenAIAPIKey: "o", UseOpenAIWhisper: true,
			},
			want: ProviderAzure,
		},
		{
			name: "openai needs the whisper flag",
			cfg:  config.ProviderConfig{OpenAIAPIKey: "o", WhisperModel: "whisper-1", UseOpenAIWhisper: true},
			want: ProviderOpenAI,
		},
		{
			name: "nothing configured falls back to local",
			cfg:  config.ProviderConfig{OpenAIAPIKey: "o", LocalWhisperModel: "base"},
			want: ProviderLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.cfg, "ffmpeg").Provider())
		})
	}
}

func TestMergeOffsetsAndRenumbering(t *testing.T) {
	chunks := []*apiResponse{
		{
			Text:     "first chunk.",
			Duration: 600,
			Segments: []apiSegment{
				{ID: 0, Start: 0, End: 10, Text: "first"},
				{ID: 1, Start: 10, End: 600, Text: "chunk."},
			},
		},
		nil, // failed chunk keeps later offsets aligned
		{
			Text:     "third chunk.",
			Duration: 300,
			Segments: []apiSegment{
				{ID: 0, Start: 0, End: 300, Text: "third chunk."},
			},
		},
	}

	result := merge(chunks, 600)

	require.Len(t, result.Segments, 3)
	// Dense renumbering from zero.
	for i, seg := range result.Segments {
		assert.Equal(t, i, seg.Index)
	}
	// Third chunk sits two chunk-lengths into the recording.
	assert.Equal(t, float64(1200), result.Segments[2].Start)
	assert.Equal(t, float64(1500), result.Segments[2].End)

	assert.Equal(t, "first chunk. third chunk.", result.FullText)
	assert.InDelta(t, 15.0, result.DurationMinutes, 0.001)

	// Segment validity: start ≤ end throughout.
	for _, seg := range result.Segments {
		assert.LessOrEqual(t, seg.Start, seg.End)
	}
}

func TestCostRates(t *testing.T) {
	assert.InDelta(t, 0.006, providerRates[ProviderOpenAI], 1e-9)
	assert.InDelta(t, 0.006, providerRates[ProviderAzure], 1e-9)
	// Groq bills $0.04 per hour.
	assert.InDelta(t, 0.04/60, providerRates[ProviderGroq], 1e-9)
	assert.Zero(t, providerRates[ProviderLocal])
}
