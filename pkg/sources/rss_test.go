package sources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Commission Audio</title>
    <item>
      <guid>ep-101</guid>
      <title>Agenda Conference</title>
      <description>Monthly agenda conference.</description>
      <link>https://example.com/ep-101</link>
      <pubDate>Tue, 07 Jan 2025 10:00:00 -0500</pubDate>
      <enclosure url="https://example.com/ep-101.mp3" type="audio/mpeg"/>
    </item>
    <item>
      <guid>ep-100</guid>
      <title>Workshop</title>
      <link>https://example.com/ep-100</link>
      <pubDate>Thu, 12 Dec 2024 10:00:00 -0500</pubDate>
    </item>
  </channel>
</rss>`

const sampleAtom = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Hearing Feed</title>
  <entry>
    <id>urn:hearing:555</id>
    <title>Rate Case Hearing</title>
    <summary>Evidentiary hearing.</summary>
    <updated>2025-01-08T14:00:00Z</updated>
    <link rel="alternate" href="https://example.com/watch/555"/>
    <link rel="enclosure" href="https://example.com/555.mp3"/>
  </entry>
</feed>`

func TestParseFeedRSS(t *testing.T) {
	items, err := parseFeed([]byte(sampleRSS))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "ep-101", items[0].GUID)
	assert.Equal(t, "Agenda Conference", items[0].Title)
	assert.Equal(t, "https://example.com/ep-101.mp3", items[0].Enclosure)
	assert.Equal(t, 2025, items[0].Published.Year())

	// Second item has no enclosure; the link carries the media.
	assert.Empty(t, items[1].Enclosure)
	assert.Equal(t, "https://example.com/ep-100", items[1].Link)
}

func TestParseFeedAtom(t *testing.T) {
	items, err := parseFeed([]byte(sampleAtom))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "urn:hearing:555", items[0].GUID)
	assert.Equal(t, "https://example.com/555.mp3", items[0].Enclosure)
	assert.Equal(t, "https://example.com/watch/555", items[0].Link)
	assert.Equal(t, time.January, items[0].Published.Month())
}

func TestParseFeedRejectsUnknownRoot(t *testing.T) {
	_, err := parseFeed([]byte(`<html><body>not a feed</body></html>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized feed root")
}

func TestGranicusSubParser(t *testing.T) {
	sub := subParserFor("https://cityofexample.granicus.com/feeds/audio.rss")
	c := sub(feedItem{
		GUID:  "https://cityofexample.granicus.com/MediaPlayer.php?clip_id=4821",
		Title: "Open Meeting",
		Link:  "https://cityofexample.granicus.com/MediaPlayer.php?clip_id=4821",
	})
	assert.Equal(t, "clip_4821", c.ExternalID)
	assert.Equal(t, "https://cityofexample.granicus.com/MediaPlayer.php?clip_id=4821", c.MediaURL)
}

func TestDateInTitleSubParser(t *testing.T) {
	sub := subParserFor("https://www.youtube.com/feeds/videos.xml?channel_id=abc")
	c := sub(feedItem{
		GUID:      "vid-1",
		Title:     "Commission Meeting - January 7, 2026",
		Published: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC), c.Date)
}

func TestGenericSubParserFallsBackToLink(t *testing.T) {
	sub := subParserFor("https://feeds.example.com/audio.rss")
	c := sub(feedItem{Title: "No GUID", Link: "https://example.com/x"})
	assert.Equal(t, "https://example.com/x", c.ExternalID)
	assert.Equal(t, "https://example.com/x", c.MediaURL)
}
