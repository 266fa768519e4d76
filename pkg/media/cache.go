package media

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// probeExtensions are tried in order when checking whether a hearing's
// audio is already cached.
var probeExtensions = []string{".mp3", ".m4a", ".wav", ".mp4"}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// CacheKey derives the deterministic, content-addressed filename stem
// for a hearing's audio. Preference order: sanitized external id, an
// MD5 prefix of the media URL for feed items without stable ids, then
// the hearing id itself.
func CacheKey(externalID, mediaURL, hearingID string) string {
	if cleaned := unsafeChars.ReplaceAllString(externalID, ""); cleaned != "" {
		return cleaned
	}
	if mediaURL != "" {
		sum := md5.Sum([]byte(mediaURL))
		return "rss_" + hex.EncodeToString(sum[:])[:16]
	}
	return "hearing_" + unsafeChars.ReplaceAllString(hearingID, "")
}

// CachePath is the target MP3 path for a hearing, namespaced by state.
func CachePath(audioDir, stateCode, key string) string {
	dir := audioDir
	if stateCode != "" {
		dir = filepath.Join(audioDir, strings.ToUpper(stateCode))
	}
	return filepath.Join(dir, key+".mp3")
}

// FindCached probes the cache for any playable artifact with the given
// key, trying each known extension. Returns "" when nothing exists.
func FindCached(audioDir, stateCode, key string) string {
	dir := audioDir
	if stateCode != "" {
		dir = filepath.Join(audioDir, strings.ToUpper(stateCode))
	}
	for _, ext := range probeExtensions {
		candidate := filepath.Join(dir, key+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Size() > 0 {
			return candidate
		}
	}
	return ""
}
