package dockets

import (
	"regexp"
	"strings"
)

// contextRadius is how many characters of surrounding text are stored
// with each candidate.
const contextRadius = 50

// Candidate is a regex-extracted potential docket reference before
// validation and matching.
type Candidate struct {
	RawText       string
	Position      int
	ContextBefore string
	ContextAfter  string
	// TriggerPhrase is the nearest sector/type context recorded for
	// trigger-phrase matches ("docket", "case", ...); empty for
	// general-pattern matches.
	TriggerPhrase string
}

// triggerPattern catches docket references announced by a trigger
// phrase, including un-suffixed numbers the state pattern would miss.
var triggerPattern = regexp.MustCompile(
	`(?i)(docket|case|proceeding)\s*(?:number|no\.?)?\s*:?\s*([A-Z]?\.?\d[\dA-Za-z.\-]*)`)

// Extract runs both extraction passes over text and returns candidates
// in textual order, duplicates included (deduplication happens after
// scoring, keeping the highest-confidence instance).
func Extract(stateCode, text string) []Candidate {
	var out []Candidate

	if format, ok := stateFormats[strings.ToUpper(stateCode)]; ok {
		for _, loc := range format.Pattern.FindAllStringIndex(text, -1) {
			out = append(out, newCandidate(text, loc[0], loc[1], ""))
		}
	}

	for _, loc := range triggerPattern.FindAllStringSubmatchIndex(text, -1) {
		// Group 1 is the trigger word, group 2 the number.
		trigger := text[loc[2]:loc[3]]
		start, end := loc[4], loc[5]
		c := newCandidate(text, start, end, strings.ToLower(trigger))
		out = append(out, c)
	}

	return out
}

func newCandidate(text string, start, end int, trigger string) Candidate {
	before := start - contextRadius
	if before < 0 {
		before = 0
	}
	after := end + contextRadius
	if after > len(text) {
		after = len(text)
	}
	return Candidate{
		RawText:       strings.TrimRight(text[start:end], "."),
		Position:      start,
		ContextBefore: text[before:start],
		ContextAfter:  text[end:after],
		TriggerPhrase: trigger,
	}
}
