package sources

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/canaryscope/canaryscope/pkg/models"
)

// listTimeout bounds one flat-playlist enumeration.
const listTimeout = 5 * time.Minute

// VideoAdapter enumerates a channel with yt-dlp's flat-playlist mode.
// No media is downloaded; each line of output is one video's metadata.
type VideoAdapter struct {
	ytdlpPath string
	logger    *slog.Logger
}

// NewVideoAdapter creates a VideoAdapter shelling out to ytdlpPath.
func NewVideoAdapter(ytdlpPath string) *VideoAdapter {
	return &VideoAdapter{
		ytdlpPath: ytdlpPath,
		logger:    slog.Default().With("adapter", KindVideoChannel),
	}
}

// Kind implements Adapter.
func (a *VideoAdapter) Kind() string {
	return KindVideoChannel
}

// flatEntry is the subset of yt-dlp's per-video JSON the adapter reads.
type flatEntry struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	UploadDate  string  `json:"upload_date"`
	Timestamp   int64   `json:"timestamp"`
	URL         string  `json:"url"`
	WebpageURL  string  `json:"webpage_url"`
}

// List implements Adapter.
func (a *VideoAdapter) List(ctx context.Context, cfg SourceConfig, since *time.Time) ([]models.HearingCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.ytdlpPath,
		"--flat-playlist",
		"--dump-json",
		"--no-warnings",
		cfg.URL,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &AdapterError{SourceID: cfg.SourceID, Kind: a.Kind(),
			Err: fmt.Errorf("channel listing failed: %w: %s", err, tail(stderr.String(), 200))}
	}

	var candidates []models.HearingCandidate
	scanner := bufio.NewScanner(&stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry flatEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			a.logger.Warn("skipping unparseable playlist entry", "source_id", cfg.SourceID, "error", err)
			continue
		}
		if entry.ID == "" {
			continue
		}

		date := entryDate(entry)
		if since != nil && !date.IsZero() && date.Before(*since) {
			continue
		}

		mediaURL := entry.WebpageURL
		if mediaURL == "" {
			mediaURL = entry.URL
		}
		candidates = append(candidates, models.HearingCandidate{
			ExternalID:      entry.ID,
			Title:           entry.Title,
			Description:     entry.Description,
			Date:            date,
			MediaURL:        mediaURL,
			DurationSeconds: int(entry.Duration),
			TypeHint:        "video",
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &AdapterError{SourceID: cfg.SourceID, Kind: a.Kind(),
			Err: fmt.Errorf("reading channel listing: %w", err)}
	}
	return candidates, nil
}

func entryDate(e flatEntry) time.Time {
	if e.Timestamp > 0 {
		return time.Unix(e.Timestamp, 0).UTC()
	}
	if e.UploadDate != "" {
		if t, err := time.Parse("20060102", e.UploadDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
