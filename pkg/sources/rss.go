package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/canaryscope/canaryscope/pkg/models"
)

// FeedAdapter fetches an RSS 2.0 or Atom feed and yields one candidate
// per item. The format is detected from the root element; host-specific
// quirks (Granicus item ids, dates embedded in titles) are handled by
// sub-parsers selected by feed host.
type FeedAdapter struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFeedAdapter creates a FeedAdapter.
func NewFeedAdapter() *FeedAdapter {
	return &FeedAdapter{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     slog.Default().With("adapter", KindRSSFeed),
	}
}

// Kind implements Adapter.
func (a *FeedAdapter) Kind() string {
	return KindRSSFeed
}

// feedItem is the uniform item shape both formats reduce to.
type feedItem struct {
	GUID        string
	Title       string
	Description string
	Link        string
	Enclosure   string
	Published   time.Time
}

type rssDocument struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []struct {
			GUID        string `xml:"guid"`
			Title       string `xml:"title"`
			Description string `xml:"description"`
			Link        string `xml:"link"`
			PubDate     string `xml:"pubDate"`
			Enclosure   struct {
				URL string `xml:"url,attr"`
			} `xml:"enclosure"`
		} `xml:"item"`
	} `xml:"channel"`
}

type atomDocument struct {
	XMLName xml.Name `xml:"feed"`
	Entries []struct {
		ID      string `xml:"id"`
		Title   string `xml:"title"`
		Summary string `xml:"summary"`
		Updated string `xml:"updated"`
		Links   []struct {
			Rel  string `xml:"rel,attr"`
			Href string `xml:"href,attr"`
		} `xml:"link"`
	} `xml:"entry"`
}

// List implements Adapter.
func (a *FeedAdapter) List(ctx context.Context, cfg SourceConfig, since *time.Time) ([]models.HearingCandidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return nil, &AdapterError{SourceID: cfg.SourceID, Kind: a.Kind(), Err: err}
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &AdapterError{SourceID: cfg.SourceID, Kind: a.Kind(),
			Err: fmt.Errorf("fetching feed: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, &AdapterError{SourceID: cfg.SourceID, Kind: a.Kind(),
			Err: fmt.Errorf("feed returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, &AdapterError{SourceID: cfg.SourceID, Kind: a.Kind(),
			Err: fmt.Errorf("reading feed: %w", err)}
	}

	items, err := parseFeed(body)
	if err != nil {
		return nil, &AdapterError{SourceID: cfg.SourceID, Kind: a.Kind(), Err: err}
	}

	sub := subParserFor(cfg.URL)
	var candidates []models.HearingCandidate
	for _, item := range items {
		c := sub(item)
		if c.ExternalID == "" {
			continue
		}
		if since != nil && !c.Date.IsZero() && c.Date.Before(*since) {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// parseFeed sniffs the root element to choose the RSS or Atom parser.
func parseFeed(body []byte) ([]feedItem, error) {
	root, err := rootElement(body)
	if err != nil {
		return nil, fmt.Errorf("sniffing feed format: %w", err)
	}

	switch root {
	case "rss":
		var doc rssDocument
		if err := xml.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("parsing RSS feed: %w", err)
		}
		items := make([]feedItem, 0, len(doc.Channel.Items))
		for _, it := range doc.Channel.Items {
			items = append(items, feedItem{
				GUID:        strings.TrimSpace(it.GUID),
				Title:       strings.TrimSpace(it.Title),
				Description: strings.TrimSpace(it.Description),
				Link:        strings.TrimSpace(it.Link),
				Enclosure:   it.Enclosure.URL,
				Published:   parseFeedTime(it.PubDate),
			})
		}
		return items, nil
	case "feed":
		var doc atomDocument
		if err := xml.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("parsing Atom feed: %w", err)
		}
		items := make([]feedItem, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			item := feedItem{
				GUID:        strings.TrimSpace(e.ID),
				Title:       strings.TrimSpace(e.Title),
				Description: strings.TrimSpace(e.Summary),
				Published:   parseFeedTime(e.Updated),
			}
			for _, l := range e.Links {
				switch l.Rel {
				case "enclosure":
					item.Enclosure = l.Href
				case "", "alternate":
					if item.Link == "" {
						item.Link = l.Href
					}
				}
			}
			items = append(items, item)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unrecognized feed root element %q", root)
	}
}

func rootElement(body []byte) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(string(body)))
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local, nil
		}
	}
}

var feedTimeLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2006-01-02",
}

func parseFeedTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range feedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// subParser converts one feed item into a candidate, applying any
// host-specific conventions.
type subParser func(feedItem) models.HearingCandidate

// subParserFor picks the sub-parser by feed host.
func subParserFor(feedURL string) subParser {
	u, err := url.Parse(feedURL)
	if err != nil {
		return genericItem
	}
	host := strings.ToLower(u.Hostname())
	switch {
	case strings.Contains(host, "granicus"):
		return granicusItem
	case strings.Contains(host, "youtube"):
		return dateInTitleItem
	default:
		return genericItem
	}
}

func genericItem(it feedItem) models.HearingCandidate {
	id := it.GUID
	if id == "" {
		id = it.Link
	}
	media := it.Enclosure
	if media == "" {
		media = it.Link
	}
	return models.HearingCandidate{
		ExternalID:  id,
		Title:       it.Title,
		Description: it.Description,
		Date:        it.Published,
		MediaURL:    media,
		TypeHint:    "feed",
	}
}

// granicusClipID pulls the numeric clip id out of Granicus player URLs.
var granicusClipID = regexp.MustCompile(`clip_id=(\d+)`)

// granicusItem prefers the clip id over the (unstable) guid and keeps
// the player link as media URL.
func granicusItem(it feedItem) models.HearingCandidate {
	c := genericItem(it)
	for _, s := range []string{it.GUID, it.Link} {
		if m := granicusClipID.FindStringSubmatch(s); m != nil {
			c.ExternalID = "clip_" + m[1]
			break
		}
	}
	c.MediaURL = it.Link
	return c
}

// titleDatePattern matches dates channels embed in titles, e.g.
// "Agenda Conference - January 7, 2026" or "Hearing 01/07/2026".
var titleDatePattern = regexp.MustCompile(`([A-Z][a-z]+ \d{1,2}, \d{4})|(\d{1,2}/\d{1,2}/\d{4})`)

// dateInTitleItem recovers the hearing date from the title when the
// feed's published date is the upload time, not the meeting time.
func dateInTitleItem(it feedItem) models.HearingCandidate {
	c := genericItem(it)
	if m := titleDatePattern.FindString(it.Title); m != "" {
		for _, layout := range []string{"January 2, 2006", "1/2/2006"} {
			if t, err := time.Parse(layout, m); err == nil {
				c.Date = t
				break
			}
		}
	}
	return c
}
