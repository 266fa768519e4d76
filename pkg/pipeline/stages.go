package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/pkg/analyze"
	"github.com/canaryscope/canaryscope/pkg/dockets"
	"github.com/canaryscope/canaryscope/pkg/entities"
	"github.com/canaryscope/canaryscope/pkg/media"
	"github.com/canaryscope/canaryscope/pkg/services"
	"github.com/canaryscope/canaryscope/pkg/transcribe"
)

// minTranscriptWords below which a hearing carries no analyzable
// content (silence, test clips, empty streams).
const minTranscriptWords = 25

// DownloadStage caches the hearing's audio locally.
type DownloadStage struct {
	fetcher  *media.Fetcher
	hearings *services.HearingService
}

// NewDownloadStage creates the download stage.
func NewDownloadStage(fetcher *media.Fetcher, hearings *services.HearingService) *DownloadStage {
	return &DownloadStage{fetcher: fetcher, hearings: hearings}
}

// Name implements Stage.
func (s *DownloadStage) Name() string { return StageDownload }

// Run implements Stage.
func (s *DownloadStage) Run(ctx context.Context, h *ent.Hearing) StageResult {
	if err := s.hearings.SetStatus(ctx, h.ID, hearing.StatusDownloading); err != nil {
		return failure(err, true)
	}

	path, err := s.fetcher.Fetch(ctx, media.Request{
		HearingID:  h.ID,
		ExternalID: h.ExternalID,
		StateCode:  h.StateCode,
		MediaURL:   h.MediaURL,
	})
	if err != nil {
		// A hearing without a media URL will never download.
		return failure(err, !errors.Is(err, media.ErrNoMediaURL))
	}

	if err := s.hearings.SetStatus(ctx, h.ID, hearing.StatusTranscribing); err != nil {
		return failure(err, true)
	}
	return StageResult{Success: true, Outputs: map[string]any{"audio_path": path}}
}

// TranscribeStage turns cached audio into a transcript.
type TranscribeStage struct {
	transcriber *transcribe.Transcriber
	hearings    *services.HearingService
	audioDir    string
}

// NewTranscribeStage creates the transcribe stage.
func NewTranscribeStage(transcriber *transcribe.Transcriber, hearings *services.HearingService, audioDir string) *TranscribeStage {
	return &TranscribeStage{transcriber: transcriber, hearings: hearings, audioDir: audioDir}
}

// Name implements Stage.
func (s *TranscribeStage) Name() string { return StageTranscribe }

// Run implements Stage.
func (s *TranscribeStage) Run(ctx context.Context, h *ent.Hearing) StageResult {
	key := media.CacheKey(h.ExternalID, h.MediaURL, h.ID)
	audioPath := media.FindCached(s.audioDir, h.StateCode, key)
	if audioPath == "" {
		return failure(fmt.Errorf("no cached audio for hearing %s", h.ID), true)
	}

	result, err := s.transcriber.Transcribe(ctx, audioPath, h.StateCode, h.Title)
	if err != nil {
		// Partial artifacts from a mid-chunk failure must not survive
		// into the retry.
		_ = s.hearings.DeleteTranscript(ctx, h.ID)
		return failure(err, true)
	}

	if len(strings.Fields(result.FullText)) < minTranscriptWords {
		return StageResult{
			Err:           fmt.Errorf("transcript too short (%d words)", len(strings.Fields(result.FullText))),
			SkipRemaining: true,
		}
	}

	if _, err := s.hearings.TransitionWithTranscript(ctx, h.ID, result); err != nil {
		_ = s.hearings.DeleteTranscript(ctx, h.ID)
		return failure(err, true)
	}
	return StageResult{
		Success: true,
		CostUSD: result.CostUSD,
		Outputs: map[string]any{
			"provider":         string(result.Provider),
			"model":            result.Model,
			"duration_minutes": result.DurationMinutes,
			"segments":         len(result.Segments),
		},
	}
}

// AnalyzeStage runs the single LLM analysis call.
type AnalyzeStage struct {
	analyzer *analyze.Analyzer
	hearings *services.HearingService
}

// NewAnalyzeStage creates the analyze stage.
func NewAnalyzeStage(analyzer *analyze.Analyzer, hearings *services.HearingService) *AnalyzeStage {
	return &AnalyzeStage{analyzer: analyzer, hearings: hearings}
}

// Name implements Stage.
func (s *AnalyzeStage) Name() string { return StageAnalyze }

// Run implements Stage.
func (s *AnalyzeStage) Run(ctx context.Context, h *ent.Hearing) StageResult {
	// Existing analysis short-circuits at zero cost.
	if existing, err := s.hearings.GetAnalysis(ctx, h.ID); err == nil {
		if err := s.hearings.SetStatus(ctx, h.ID, hearing.StatusAnalyzed); err != nil {
			return failure(err, true)
		}
		return StageResult{Success: true, Outputs: map[string]any{"analysis_id": existing.ID, "cached": true}}
	}

	if err := s.hearings.SetStatus(ctx, h.ID, hearing.StatusAnalyzing); err != nil {
		return failure(err, true)
	}

	transcript, err := s.hearings.GetTranscript(ctx, h.ID)
	if err != nil {
		return failure(fmt.Errorf("loading transcript: %w", err), false)
	}

	meta := analyze.Metadata{
		Title:       h.Title,
		StateCode:   h.StateCode,
		HearingType: h.HearingType,
	}
	if h.HearingDate != nil {
		meta.HearingDate = h.HearingDate.Format("2006-01-02")
	}

	result, err := s.analyzer.Analyze(ctx, meta, transcript.FullText)
	if err != nil {
		// Unparseable model output will not improve on retry; provider
		// or transport failures might.
		retry := !strings.Contains(err.Error(), "not valid JSON")
		return failure(err, retry)
	}

	saved, err := s.hearings.TransitionWithAnalysis(ctx, h.ID, result)
	if err != nil {
		return failure(err, true)
	}
	return StageResult{
		Success: true,
		CostUSD: result.CostUSD,
		Outputs: map[string]any{"analysis_id": saved.ID, "model": result.Model},
	}
}

// ExtractStage extracts docket references and links utilities/topics.
type ExtractStage struct {
	docketLinker       *dockets.Linker
	entityLinker       *entities.Linker
	hearings           *services.HearingService
	generateEmbeddings bool
}

// NewExtractStage creates the extract stage.
func NewExtractStage(docketLinker *dockets.Linker, entityLinker *entities.Linker, hearings *services.HearingService, generateEmbeddings bool) *ExtractStage {
	return &ExtractStage{
		docketLinker:       docketLinker,
		entityLinker:       entityLinker,
		hearings:           hearings,
		generateEmbeddings: generateEmbeddings,
	}
}

// Name implements Stage.
func (s *ExtractStage) Name() string { return StageExtract }

// Run implements Stage.
func (s *ExtractStage) Run(ctx context.Context, h *ent.Hearing) StageResult {
	if err := s.hearings.SetStatus(ctx, h.ID, hearing.StatusExtracting); err != nil {
		return failure(err, true)
	}

	transcript, err := s.hearings.GetTranscript(ctx, h.ID)
	if err != nil {
		return failure(fmt.Errorf("loading transcript: %w", err), false)
	}

	text := h.Title + "\n" + transcript.FullText
	linkResult, err := s.docketLinker.Process(ctx, h, text)
	if err != nil {
		return failure(fmt.Errorf("docket extraction: %w", err), true)
	}

	outputs := map[string]any{
		"candidates": linkResult.Candidates,
		"accepted":   linkResult.Accepted,
		"review":     linkResult.NeedsReview,
		"rejected":   linkResult.Rejected,
	}
	if s.generateEmbeddings {
		// Honored as metadata only; no vector store is attached yet.
		outputs["embeddings_requested"] = true
	}

	if analysisRow, err := s.hearings.GetAnalysis(ctx, h.ID); err == nil {
		utilSummary, err := s.entityLinker.LinkUtilities(ctx, h.ID, h.StateCode, utilityMentions(analysisRow))
		if err != nil {
			return failure(fmt.Errorf("utility linking: %w", err), true)
		}
		topicSummary, err := s.entityLinker.LinkTopics(ctx, h.ID, topicMentions(analysisRow))
		if err != nil {
			return failure(fmt.Errorf("topic linking: %w", err), true)
		}
		outputs["utilities_linked"] = utilSummary.Linked
		outputs["topics_linked"] = topicSummary.Linked
	}

	if err := s.hearings.SetStatus(ctx, h.ID, hearing.StatusExtracted); err != nil {
		return failure(err, true)
	}
	return StageResult{Success: true, Outputs: outputs}
}

func utilityMentions(a *ent.Analysis) []entities.UtilityMention {
	mentions := make([]entities.UtilityMention, 0, len(a.Utilities))
	for _, u := range a.Utilities {
		name, _ := u["name"].(string)
		role, _ := u["role"].(string)
		if name != "" {
			mentions = append(mentions, entities.UtilityMention{Name: name, Role: role})
		}
	}
	return mentions
}

func topicMentions(a *ent.Analysis) []entities.TopicMention {
	mentions := make([]entities.TopicMention, 0, len(a.Topics))
	for _, t := range a.Topics {
		name, _ := t["name"].(string)
		relevance, _ := t["relevance"].(string)
		if name != "" {
			mentions = append(mentions, entities.TopicMention{Name: name, Relevance: relevance})
		}
	}
	return mentions
}
