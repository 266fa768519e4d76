package dockets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractGeneralPattern(t *testing.T) {
	text := "Rate case hearing, docket 20240035-GU before the commission"
	candidates := Extract("FL", text)

	var raws []string
	for _, c := range candidates {
		raws = append(raws, c.RawText)
	}
	assert.Contains(t, raws, "20240035-GU")
}

func TestExtractTriggerPhraseCatchesUnsuffixed(t *testing.T) {
	text := "Staff opened docket number 44250 regarding the fuel factor."
	candidates := Extract("TX", text)

	var found *Candidate
	for i := range candidates {
		if candidates[i].RawText == "44250" && candidates[i].TriggerPhrase != "" {
			found = &candidates[i]
			break
		}
	}
	require.NotNil(t, found, "trigger pass should catch the bare number")
	assert.Equal(t, "docket", found.TriggerPhrase)
}

func TestExtractContextWindows(t *testing.T) {
	prefix := strings.Repeat("a", 80)
	suffix := strings.Repeat("b", 80)
	text := prefix + " docket 20240035-GU " + suffix

	candidates := Extract("FL", text)
	require.NotEmpty(t, candidates)

	c := candidates[0]
	assert.LessOrEqual(t, len(c.ContextBefore), contextRadius)
	assert.LessOrEqual(t, len(c.ContextAfter), contextRadius)
	assert.True(t, strings.HasSuffix(text[:c.Position], c.ContextBefore))
}

func TestExtractShortTextBounds(t *testing.T) {
	candidates := Extract("FL", "20240035-GU")
	require.Len(t, candidates, 1)
	assert.Empty(t, candidates[0].ContextBefore)
	assert.Empty(t, candidates[0].ContextAfter)
	assert.Equal(t, 0, candidates[0].Position)
}

func TestExtractNoFormatStateStillTriggers(t *testing.T) {
	candidates := Extract("NY", "In case no. 22-E-0064 the commission ruled.")
	require.NotEmpty(t, candidates)
	assert.Equal(t, "case", candidates[0].TriggerPhrase)
}

func TestExtractStripsTrailingPeriod(t *testing.T) {
	candidates := Extract("TX", "see docket 44250.")
	require.NotEmpty(t, candidates)
	assert.Equal(t, "44250", candidates[0].RawText)
}
