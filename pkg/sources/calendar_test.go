package sources

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const meetingListHTML = `<html><body>
<table class="archive">
  <tr><td><a href="/MeetingDetail?id=2201">Commission Conference - 1/7/2026</a></td></tr>
  <tr><td><a href="/MeetingDetail?id=2195">Prehearing Conference - December 12, 2025</a></td></tr>
  <tr><td><a href="/help">Help</a></td></tr>
</table>
</body></html>`

const playerPageHTML = `<html><body>
<video controls>
  <source src="https://stream.example.com/archive/2201/playlist.m3u8" type="application/x-mpegURL">
</video>
</body></html>`

func TestParseMeetingList(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(meetingListHTML))
	require.NoError(t, err)

	refs := parseMeetingList(doc, "https://admin.example.com/Archive")
	require.Len(t, refs, 2)

	assert.Equal(t, "2201", refs[0].ID)
	assert.Equal(t, "Commission Conference - 1/7/2026", refs[0].Title)
	assert.Equal(t, "https://admin.example.com/MeetingDetail?id=2201", refs[0].DetailURL)
	assert.Equal(t, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC), refs[0].Date)

	assert.Equal(t, "2195", refs[1].ID)
	assert.Equal(t, time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC), refs[1].Date)
}

func TestFindPlaylistSource(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(playerPageHTML))
	require.NoError(t, err)
	assert.Equal(t, "https://stream.example.com/archive/2201/playlist.m3u8", findPlaylistSource(doc))
}

func TestFindPlaylistSourceMissing(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><p>no player</p></body></html>`))
	require.NoError(t, err)
	assert.Empty(t, findPlaylistSource(doc))
}

func TestMeetingID(t *testing.T) {
	assert.Equal(t, "2201", meetingID("https://x.example.com/MeetingDetail?id=2201"))
	assert.Equal(t, "town-hall-42", meetingID("https://x.example.com/meetings/town-hall-42"))
}
