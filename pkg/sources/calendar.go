package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/canaryscope/canaryscope/pkg/models"
)

// browserUserAgent is required by the meeting-archive vendor; requests
// without it get a 403.
const browserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// CalendarAdapter scrapes a meeting-archive site. One POST returns the
// meeting list; one GET per meeting extracts the HLS playlist URL from
// the player page's embedded <source> tag.
type CalendarAdapter struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCalendarAdapter creates a CalendarAdapter.
func NewCalendarAdapter() *CalendarAdapter {
	return &CalendarAdapter{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     slog.Default().With("adapter", KindAdminMonitor),
	}
}

// Kind implements Adapter.
func (a *CalendarAdapter) Kind() string {
	return KindAdminMonitor
}

// meetingRef is one row of the archive listing.
type meetingRef struct {
	ID        string
	Title     string
	Date      time.Time
	DetailURL string
}

// List implements Adapter.
func (a *CalendarAdapter) List(ctx context.Context, cfg SourceConfig, since *time.Time) ([]models.HearingCandidate, error) {
	refs, err := a.listMeetings(ctx, cfg)
	if err != nil {
		return nil, &AdapterError{SourceID: cfg.SourceID, Kind: a.Kind(), Err: err}
	}

	var candidates []models.HearingCandidate
	for _, ref := range refs {
		if since != nil && !ref.Date.IsZero() && ref.Date.Before(*since) {
			continue
		}
		mediaURL, err := a.fetchPlaylistURL(ctx, ref.DetailURL)
		if err != nil {
			// One broken player page should not sink the whole source.
			a.logger.Warn("skipping meeting without playable media",
				"source_id", cfg.SourceID, "meeting", ref.ID, "error", err)
			continue
		}
		candidates = append(candidates, models.HearingCandidate{
			ExternalID: ref.ID,
			Title:      ref.Title,
			Date:       ref.Date,
			MediaURL:   mediaURL,
			TypeHint:   "meeting",
		})
	}
	return candidates, nil
}

func (a *CalendarAdapter) listMeetings(ctx context.Context, cfg SourceConfig) ([]meetingRef, error) {
	direction := "previous"
	if d, ok := cfg.Settings["direction"].(string); ok && d != "" {
		direction = d
	}

	form := url.Values{"direction": {direction}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building listing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("meeting listing failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("meeting listing returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing meeting listing: %w", err)
	}
	return parseMeetingList(doc, cfg.URL), nil
}

func (a *CalendarAdapter) fetchPlaylistURL(ctx context.Context, detailURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, detailURL, nil)
	if err != nil {
		return "", fmt.Errorf("building detail request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("meeting detail failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("meeting detail returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing meeting detail: %w", err)
	}

	playlist := findPlaylistSource(doc)
	if playlist == "" {
		return "", fmt.Errorf("no HLS source tag on player page")
	}
	return playlist, nil
}

var meetingDatePattern = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})|([A-Z][a-z]+ \d{1,2}, \d{4})`)

// parseMeetingList walks the listing document collecting anchors that
// point at player pages. The anchor text carries title and date.
func parseMeetingList(doc *html.Node, baseURL string) []meetingRef {
	base, _ := url.Parse(baseURL)
	var refs []meetingRef

	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.Data != "a" {
			continue
		}
		href := attr(n, "href")
		if href == "" || !strings.Contains(strings.ToLower(href), "meeting") {
			continue
		}
		detail := href
		if base != nil {
			if u, err := base.Parse(href); err == nil {
				detail = u.String()
			}
		}

		text := strings.TrimSpace(nodeText(n))
		ref := meetingRef{
			ID:        meetingID(detail),
			Title:     text,
			DetailURL: detail,
		}
		if m := meetingDatePattern.FindString(text); m != "" {
			ref.Date = parseMeetingDate(m)
		}
		if ref.ID != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// findPlaylistSource returns the first <source> src ending in .m3u8.
func findPlaylistSource(doc *html.Node) string {
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.Data != "source" {
			continue
		}
		src := attr(n, "src")
		if strings.Contains(src, ".m3u8") {
			return src
		}
	}
	return ""
}

// meetingID derives a stable id from the detail URL: the id query
// parameter if present, else the last path segment.
func meetingID(detailURL string) string {
	u, err := url.Parse(detailURL)
	if err != nil {
		return ""
	}
	if id := u.Query().Get("id"); id != "" {
		return id
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

func parseMeetingDate(s string) time.Time {
	for _, layout := range []string{"1/2/2006", "January 2, 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			b.WriteString(d.Data)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
