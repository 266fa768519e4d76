// Package dockets turns hearing transcripts into verified references
// to known dockets: regex candidate extraction, state-specific format
// validation, fuzzy catalogue matching, context scoring, and review
// routing.
package dockets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FallbackSuffix marks a docket number whose sector suffix could not
// be recognized. It never earns the valid-suffix context boost.
const FallbackSuffix = "XX"

// Components is the parsed breakdown of a raw docket number.
type Components struct {
	Year       *int
	CaseNumber string
	Suffix     string
	Sector     string
	Valid      bool
}

// StateFormat describes one state's docket-number syntax.
type StateFormat struct {
	// Pattern matches a fully-formed docket number in running text.
	Pattern *regexp.Regexp
	// Parse breaks a raw match into components. ok=false means the
	// text cannot be a docket number for this state at all.
	Parse func(raw string) (Components, bool)
}

// floridaSectors maps Florida PSC suffixes to utility sectors.
var floridaSectors = map[string]string{
	"EI": "electric",
	"EU": "electric",
	"GU": "gas",
	"WS": "water",
	"SU": "sewer",
	"WU": "water",
	"TP": "telecom",
	"TL": "telecom",
	"PU": "multi",
	"OT": "other",
}

// ohioSectors maps Ohio PUCO industry codes to sectors.
var ohioSectors = map[string]string{
	"EL": "electric",
	"GA": "gas",
	"WW": "water",
	"TP": "telecom",
	"HT": "heating",
	"PL": "pipeline",
}

// californiaTypes maps CPUC proceeding prefixes to case types.
var californiaTypes = map[string]string{
	"A": "application",
	"R": "rulemaking",
	"C": "complaint",
	"I": "investigation",
	"P": "petition",
}

// stateFormats is the per-state docket syntax table. States not listed
// here only ever produce trigger-phrase candidates.
var stateFormats = map[string]StateFormat{
	"FL": {
		Pattern: regexp.MustCompile(`\b(\d{8})-([A-Z]{2})\b`),
		Parse:   parseFlorida,
	},
	"TX": {
		Pattern: regexp.MustCompile(`\b(\d{5})\b`),
		Parse:   parseTexas,
	},
	"CA": {
		Pattern: regexp.MustCompile(`\b([ARCIP])\.(\d{2})-(\d{2})-(\d{3})\b`),
		Parse:   parseCalifornia,
	},
	"OH": {
		Pattern: regexp.MustCompile(`\b(\d{2})-(\d{4})-([A-Z]{2})-([A-Z]{3})\b`),
		Parse:   parseOhio,
	},
}

func parseFlorida(raw string) (Components, bool) {
	m := regexp.MustCompile(`^(\d{4})(\d{4})(?:-([A-Z]{2}))?$`).FindStringSubmatch(strings.ToUpper(raw))
	if m == nil {
		return Components{}, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil || year < 1990 || year > 2099 {
		return Components{}, false
	}
	c := Components{
		Year:       &year,
		CaseNumber: m[2],
		Suffix:     m[3],
		Valid:      true,
	}
	if c.Suffix == "" {
		c.Suffix = FallbackSuffix
	}
	if sector, ok := floridaSectors[c.Suffix]; ok {
		c.Sector = sector
	}
	return c, true
}

func parseTexas(raw string) (Components, bool) {
	if !regexp.MustCompile(`^\d{5}$`).MatchString(raw) {
		return Components{}, false
	}
	// PUCT control numbers carry no year or sector information.
	return Components{
		CaseNumber: raw,
		Suffix:     FallbackSuffix,
		Valid:      true,
	}, true
}

func parseCalifornia(raw string) (Components, bool) {
	m := regexp.MustCompile(`^([ARCIP])\.(\d{2})-(\d{2})-(\d{3})$`).FindStringSubmatch(strings.ToUpper(raw))
	if m == nil {
		return Components{}, false
	}
	year := 2000 + mustAtoi(m[2])
	return Components{
		Year:       &year,
		CaseNumber: m[3] + "-" + m[4],
		Suffix:     m[1],
		Sector:     californiaTypes[m[1]],
		Valid:      true,
	}, true
}

func parseOhio(raw string) (Components, bool) {
	m := regexp.MustCompile(`^(\d{2})-(\d{4})-([A-Z]{2})-([A-Z]{3})$`).FindStringSubmatch(strings.ToUpper(raw))
	if m == nil {
		return Components{}, false
	}
	year := 2000 + mustAtoi(m[1])
	return Components{
		Year:       &year,
		CaseNumber: m[2],
		Suffix:     m[4],
		Sector:     ohioSectors[m[3]],
		Valid:      true,
	}, true
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ParseComponents validates raw against the state's format. Falls back
// to an invalid Components for states without a format table or text
// that cannot be a docket number.
func ParseComponents(stateCode, raw string) Components {
	format, ok := stateFormats[strings.ToUpper(stateCode)]
	if !ok {
		return Components{Suffix: FallbackSuffix}
	}
	c, ok := format.Parse(strings.TrimSpace(raw))
	if !ok {
		return Components{Suffix: FallbackSuffix}
	}
	return c
}

// NormalizeID builds the globally-unique docket identifier
// <STATE>-<docket_number>.
func NormalizeID(stateCode, docketNumber string) string {
	return fmt.Sprintf("%s-%s",
		strings.ToUpper(strings.TrimSpace(stateCode)),
		strings.ToUpper(strings.TrimSpace(docketNumber)))
}
