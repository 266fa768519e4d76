// Package transcribe produces timed transcripts from cached hearing
// audio via Whisper providers, with large-file chunking and a
// deterministic mishearing cleanup pass.
package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/canaryscope/canaryscope/pkg/config"
)

// Provider identifies which speech-to-text backend was selected.
type Provider string

const (
	ProviderGroq   Provider = "groq"
	ProviderAzure  Provider = "azure"
	ProviderOpenAI Provider = "openai"
	ProviderLocal  Provider = "local"
)

const (
	// chunkThresholdBytes is the upload size above which audio is split.
	chunkThresholdBytes = 24 << 20
	// chunkSeconds is the fixed chunk length for split audio.
	chunkSeconds = 600
)

// Per-minute USD rates by provider. Local inference is free.
var providerRates = map[Provider]float64{
	ProviderGroq:   0.04 / 60,
	ProviderAzure:  0.006,
	ProviderOpenAI: 0.006,
	ProviderLocal:  0,
}

// Segment is one timed span of the finished transcript.
type Segment struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Result is one completed transcription.
type Result struct {
	FullText        string
	Segments        []Segment
	Model           string
	Provider        Provider
	DurationMinutes float64
	CostUSD         float64
}

// Transcriber transcribes cached audio with the provider chosen at
// construction time.
type Transcriber struct {
	provider   Provider
	client     *whisperClient
	localModel string
	ffmpegPath string
	logger     *slog.Logger
}

// New probes provider configuration once, in priority order Groq,
// Azure, OpenAI, local. The choice is fixed for the process lifetime.
func New(p config.ProviderConfig, ffmpegPath string) *Transcriber {
	t := &Transcriber{
		ffmpegPath: ffmpegPath,
		logger:     slog.Default().With("component", "transcriber"),
	}

	switch {
	case p.GroqAPIKey != "":
		t.provider = ProviderGroq
		t.client = newGroqWhisper(p.GroqAPIKey, p.GroqWhisperModel)
	case p.AzureEndpoint != "" && p.AzureAPIKey != "" && p.AzureWhisperDeployment != "":
		t.provider = ProviderAzure
		t.client = newAzureWhisper(p.AzureEndpoint, p.AzureAPIKey, p.AzureAPIVersion, p.AzureWhisperDeployment)
	case p.OpenAIAPIKey != "" && p.UseOpenAIWhisper:
		t.provider = ProviderOpenAI
		t.client = newOpenAIWhisper("", p.OpenAIAPIKey, p.WhisperModel)
	default:
		t.provider = ProviderLocal
		t.localModel = p.LocalWhisperModel
	}

	t.logger.Info("transcription provider selected", "provider", t.provider)
	return t
}

// Provider reports the backend chosen at construction.
func (t *Transcriber) Provider() Provider {
	return t.provider
}

// Transcribe turns one audio file into a cleaned, timed transcript.
// Files above the upload threshold are split into fixed-length chunks
// and transcribed sequentially; a failed chunk is skipped unless every
// chunk fails.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath, stateCode, title string) (*Result, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return nil, fmt.Errorf("audio file unavailable: %w", err)
	}

	prompt := BuildPrompt(stateCode, title)

	var chunks []*apiResponse
	if info.Size() > chunkThresholdBytes {
		chunks, err = t.transcribeChunked(ctx, audioPath, prompt)
	} else {
		var single *apiResponse
		single, err = t.transcribeOne(ctx, audioPath, prompt)
		if err == nil {
			chunks = []*apiResponse{single}
		}
	}
	if err != nil {
		return nil, err
	}

	result := merge(chunks, float64(chunkSeconds))
	result.Provider = t.provider
	result.Model = t.modelName()
	result.CostUSD = result.DurationMinutes * providerRates[t.provider]
	return result, nil
}

func (t *Transcriber) modelName() string {
	if t.provider == ProviderLocal {
		return "whisper-local-" + t.localModel
	}
	return t.client.model
}

func (t *Transcriber) transcribeOne(ctx context.Context, audioPath, prompt string) (*apiResponse, error) {
	if t.provider == ProviderLocal {
		return t.transcribeLocal(ctx, audioPath, prompt)
	}
	return t.client.transcribe(ctx, audioPath, prompt)
}

func (t *Transcriber) transcribeChunked(ctx context.Context, audioPath, prompt string) ([]*apiResponse, error) {
	dir, err := os.MkdirTemp("", "canaryscope-chunks-")
	if err != nil {
		return nil, fmt.Errorf("creating chunk dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	pattern := filepath.Join(dir, "chunk_%03d"+filepath.Ext(audioPath))
	cmd := exec.CommandContext(ctx, t.ffmpegPath,
		"-i", audioPath,
		"-f", "segment",
		"-segment_time", fmt.Sprintf("%d", chunkSeconds),
		"-c", "copy",
		pattern,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("splitting audio: %w: %s", err, tail(string(out), 200))
	}

	paths, err := filepath.Glob(filepath.Join(dir, "chunk_*"))
	if err != nil || len(paths) == 0 {
		return nil, fmt.Errorf("audio split produced no chunks")
	}
	sort.Strings(paths)

	// Positional results; a nil entry marks a skipped chunk so later
	// offsets stay aligned to wall-clock time.
	results := make([]*apiResponse, len(paths))
	succeeded := 0
	for i, p := range paths {
		resp, err := t.transcribeOne(ctx, p, prompt)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			t.logger.Warn("chunk transcription failed, skipping",
				"chunk", i, "total", len(paths), "error", err)
			continue
		}
		results[i] = resp
		succeeded++
	}
	if succeeded == 0 {
		return nil, fmt.Errorf("all %d audio chunks failed to transcribe", len(paths))
	}
	return results, nil
}

// transcribeLocal shells out to a local whisper CLI and reads its JSON
// output.
func (t *Transcriber) transcribeLocal(ctx context.Context, audioPath, prompt string) (*apiResponse, error) {
	outDir, err := os.MkdirTemp("", "canaryscope-whisper-")
	if err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	cmd := exec.CommandContext(ctx, "whisper", audioPath,
		"--model", t.localModel,
		"--output_format", "json",
		"--output_dir", outDir,
		"--initial_prompt", prompt,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("local whisper failed: %w: %s", err, tail(string(out), 200))
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	raw, err := os.ReadFile(filepath.Join(outDir, base+".json"))
	if err != nil {
		return nil, fmt.Errorf("reading local whisper output: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decoding local whisper output: %w", err)
	}
	if parsed.Duration == 0 && len(parsed.Segments) > 0 {
		parsed.Duration = parsed.Segments[len(parsed.Segments)-1].End
	}
	return &parsed, nil
}

// merge concatenates chunk responses into one transcript. Segment
// indexes are renumbered densely from 0 and each chunk's segments are
// shifted by the chunk's position times chunkLen. Nil entries are
// skipped chunks.
func merge(chunks []*apiResponse, chunkLen float64) *Result {
	result := &Result{}
	var texts []string
	index := 0
	var duration float64

	for i, chunk := range chunks {
		if chunk == nil {
			continue
		}
		offset := float64(i) * chunkLen
		texts = append(texts, strings.TrimSpace(CleanText(chunk.Text)))
		for _, seg := range chunk.Segments {
			result.Segments = append(result.Segments, Segment{
				Index: index,
				Start: seg.Start + offset,
				End:   seg.End + offset,
				Text:  CleanText(strings.TrimSpace(seg.Text)),
			})
			index++
		}
		duration += chunk.Duration
	}

	result.FullText = strings.Join(texts, " ")
	result.DurationMinutes = duration / 60
	return result
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
