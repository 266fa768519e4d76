// Package media downloads hearing audio into a content-addressed local
// cache via an external extractor tool.
package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const (
	// wallClockLimit bounds one extractor invocation end to end.
	wallClockLimit = 10 * time.Minute
	socketTimeout  = "30"
	retryCount     = "3"
)

// ErrNoMediaURL marks hearings that cannot be downloaded at all.
var ErrNoMediaURL = errors.New("hearing has no media URL")

// Request identifies what to fetch and where to cache it.
type Request struct {
	HearingID  string
	ExternalID string
	StateCode  string
	MediaURL   string
}

// Fetcher shells out to yt-dlp to produce MP3 artifacts.
type Fetcher struct {
	audioDir  string
	ytdlpPath string
	logger    *slog.Logger
}

// NewFetcher creates a Fetcher writing under audioDir.
func NewFetcher(audioDir, ytdlpPath string) *Fetcher {
	return &Fetcher{
		audioDir:  audioDir,
		ytdlpPath: ytdlpPath,
		logger:    slog.Default().With("component", "media"),
	}
}

// Fetch returns the local audio path for a hearing, downloading it if
// no cached artifact exists. A cache hit involves no network activity.
func (f *Fetcher) Fetch(ctx context.Context, req Request) (string, error) {
	if req.MediaURL == "" {
		return "", ErrNoMediaURL
	}

	key := CacheKey(req.ExternalID, req.MediaURL, req.HearingID)
	if cached := FindCached(f.audioDir, req.StateCode, key); cached != "" {
		f.logger.Debug("audio cache hit", "hearing_id", req.HearingID, "path", cached)
		return cached, nil
	}

	target := CachePath(f.audioDir, req.StateCode, key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, wallClockLimit)
	defer cancel()

	// yt-dlp derives the final name from the template; request mp3 so
	// the cached path is predictable.
	template := target[:len(target)-len(".mp3")] + ".%(ext)s"
	cmd := exec.CommandContext(ctx, f.ytdlpPath,
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "0",
		"--no-playlist",
		"--socket-timeout", socketTimeout,
		"--retries", retryCount,
		"--output", template,
		req.MediaURL,
	)

	f.logger.Info("downloading audio", "hearing_id", req.HearingID, "url", req.MediaURL)
	out, err := cmd.CombinedOutput()
	if err != nil {
		f.cleanupPartials(req.StateCode, key)
		snippet := string(out)
		if len(snippet) > 300 {
			snippet = snippet[len(snippet)-300:]
		}
		return "", fmt.Errorf("audio extraction failed: %w: %s", err, snippet)
	}

	if cached := FindCached(f.audioDir, req.StateCode, key); cached != "" {
		return cached, nil
	}
	return "", fmt.Errorf("extractor reported success but no artifact at %s", target)
}

// cleanupPartials removes anything the failed extraction left behind,
// including yt-dlp's .part files.
func (f *Fetcher) cleanupPartials(stateCode, key string) {
	dir := filepath.Dir(CachePath(f.audioDir, stateCode, key))
	matches, err := filepath.Glob(filepath.Join(dir, key+".*"))
	if err != nil {
		return
	}
	for _, m := range matches {
		if err := os.Remove(m); err == nil {
			f.logger.Debug("removed partial artifact", "path", m)
		}
	}
}
