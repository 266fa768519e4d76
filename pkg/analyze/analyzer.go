// Package analyze turns a hearing transcript into a structured
// intelligence record with a single JSON-mode LLM call.
package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/canaryscope/canaryscope/pkg/llm"
)

const (
	// Rate-limit retries: 5 attempts with exponential backoff from 60s.
	maxAttempts  = 5
	backoffBase  = 60 * time.Second
	backoffLimit = 16 * time.Minute
)

// modelRates is USD per million tokens (input, output). Prefix-matched
// so dated snapshots like gpt-4o-2024-08-06 resolve.
var modelRates = []struct {
	prefix string
	in     float64
	out    float64
}{
	{"gpt-4o-mini", 0.15, 0.60},
	{"gpt-4o", 2.50, 10.00},
	{"gpt-4.1-mini", 0.40, 1.60},
	{"gpt-4.1", 2.00, 8.00},
}

// defaultRates applies to unrecognized models.
var defaultRates = struct{ in, out float64 }{2.50, 10.00}

// Metadata is the hearing context embedded in the prompt.
type Metadata struct {
	Title       string
	StateCode   string
	HearingType string
	HearingDate string
}

// Output is the fixed analysis schema. Pointer and slice fields stay
// nil when the model omits them.
type Output struct {
	Summary              string           `json:"summary"`
	OneSentenceSummary   string           `json:"one_sentence_summary"`
	Participants         []map[string]any `json:"participants"`
	Issues               []string         `json:"issues"`
	Commitments          []string         `json:"commitments"`
	Vulnerabilities      []string         `json:"vulnerabilities"`
	CommissionerConcerns []string         `json:"commissioner_concerns"`
	CommissionerMood     string           `json:"commissioner_mood"`
	PublicSentiment      string           `json:"public_sentiment"`
	LikelyOutcome        string           `json:"likely_outcome"`
	OutcomeConfidence    *float64         `json:"outcome_confidence"`
	RiskFactors          []string         `json:"risk_factors"`
	ActionItems          []string         `json:"action_items"`
	Quotes               []map[string]any `json:"quotes"`
	Topics               []map[string]any `json:"topics"`
	Utilities            []map[string]any `json:"utilities"`
	Dockets              []string         `json:"dockets"`
}

// Result is one completed analysis plus its accounting.
type Result struct {
	Output  Output
	Raw     map[string]any
	Model   string
	CostUSD float64
}

// Analyzer issues the analysis call with bounded input and retries.
type Analyzer struct {
	client          *llm.Client
	maxInputTokens  int
	maxOutputTokens int
	temperature     float64
	logger          *slog.Logger
}

// NewAnalyzer creates an Analyzer over a configured chat client.
func NewAnalyzer(client *llm.Client, maxInputTokens, maxOutputTokens int, temperature float64) *Analyzer {
	return &Analyzer{
		client:          client,
		maxInputTokens:  maxInputTokens,
		maxOutputTokens: maxOutputTokens,
		temperature:     temperature,
		logger:          slog.Default().With("component", "analyzer"),
	}
}

// Analyze runs the single analysis call for one transcript. Rate-limit
// errors are retried with exponential backoff; any other provider
// error is returned to the caller for a later pipeline retry.
func (a *Analyzer) Analyze(ctx context.Context, meta Metadata, transcriptText string) (*Result, error) {
	if strings.TrimSpace(transcriptText) == "" {
		return nil, errors.New("analyze: transcript is empty")
	}

	bounded := TruncateToTokens(transcriptText, a.maxInputTokens)
	if len(bounded) < len(transcriptText) {
		a.logger.Info("transcript truncated for analysis",
			"original_tokens", EstimateTokens(transcriptText),
			"max_tokens", a.maxInputTokens)
	}

	req := llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(meta, bounded)},
		},
		Temperature: a.temperature,
		MaxTokens:   a.maxOutputTokens,
		JSONObject:  true,
	}

	policy := retrypolicy.NewBuilder[*llm.Result]().
		HandleIf(func(_ *llm.Result, err error) bool {
			return errors.Is(err, llm.ErrRateLimited)
		}).
		WithBackoff(backoffBase, backoffLimit).
		WithMaxAttempts(maxAttempts).
		OnRetry(func(e failsafe.ExecutionEvent[*llm.Result]) {
			a.logger.Warn("rate limited, backing off", "attempt", e.Attempts())
		}).
		Build()

	completion, err := failsafe.With[*llm.Result](policy).
		WithContext(ctx).
		Get(func() (*llm.Result, error) {
			return a.client.Complete(ctx, req)
		})
	if err != nil {
		return nil, fmt.Errorf("analysis call failed: %w", err)
	}

	result, err := parseOutput(completion.Content)
	if err != nil {
		return nil, err
	}
	result.Model = completion.Model
	result.CostUSD = Cost(completion.Model, completion.Usage)

	a.logger.Info("analysis complete",
		"model", result.Model,
		"prompt_tokens", completion.Usage.PromptTokens,
		"completion_tokens", completion.Usage.CompletionTokens,
		"cost_usd", result.CostUSD)
	return result, nil
}

// Cost prices one call at the model's published per-million rates.
func Cost(model string, usage llm.Usage) float64 {
	in, out := defaultRates.in, defaultRates.out
	for _, r := range modelRates {
		if strings.HasPrefix(model, r.prefix) {
			in, out = r.in, r.out
			break
		}
	}
	return float64(usage.PromptTokens)*in/1e6 + float64(usage.CompletionTokens)*out/1e6
}

func parseOutput(content string) (*Result, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("analysis output is not valid JSON: %w", err)
	}

	var out Output
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("analysis output does not fit schema: %w", err)
	}

	return &Result{Output: out, Raw: raw}, nil
}

const systemPrompt = `You are a regulatory intelligence analyst covering U.S. state public utility commissions. Given a hearing transcript, produce a single JSON object with exactly these keys:
summary (string, 2-4 paragraphs), one_sentence_summary (string),
participants (array of {name, role, organization}),
issues (array of strings), commitments (array of strings),
vulnerabilities (array of strings), commissioner_concerns (array of strings),
commissioner_mood (one of: supportive, skeptical, hostile, neutral, mixed),
public_sentiment (one of: supportive, opposed, mixed, none),
likely_outcome (string), outcome_confidence (number 0-1),
risk_factors (array of strings), action_items (array of strings),
quotes (array of {speaker, text, significance}),
topics (array of {name, relevance}) where relevance is high, medium, or low,
utilities (array of {name, role}) where role is applicant, intervenor, or mentioned,
dockets (array of docket-number strings exactly as spoken).
Omit a key only if the transcript gives no basis for it. Output JSON only.`

func userPrompt(meta Metadata, transcript string) string {
	var b strings.Builder
	b.WriteString("Hearing metadata:\n")
	fmt.Fprintf(&b, "- State: %s\n", meta.StateCode)
	fmt.Fprintf(&b, "- Title: %s\n", meta.Title)
	if meta.HearingType != "" {
		fmt.Fprintf(&b, "- Type: %s\n", meta.HearingType)
	}
	if meta.HearingDate != "" {
		fmt.Fprintf(&b, "- Date: %s\n", meta.HearingDate)
	}
	b.WriteString("\nTranscript:\n")
	b.WriteString(transcript)
	return b.String()
}
