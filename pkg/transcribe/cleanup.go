package transcribe

import "regexp"

// corrections are known Whisper mishearings of utility-sector terms.
// The table is system-wide, applied to full text and every segment.
var corrections = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`(?i)\bkiller one\b`), "kilowatt"},
	{regexp.MustCompile(`(?i)\bkiller what\b`), "kilowatt"},
	{regexp.MustCompile(`(?i)\bkilowatt hours?\b`), "kilowatt-hour"},
	{regexp.MustCompile(`(?i)\bmega what\b`), "megawatt"},
	{regexp.MustCompile(`(?i)\bair cot\b`), "ERCOT"},
	{regexp.MustCompile(`(?i)\burquhart\b`), "ERCOT"},
	{regexp.MustCompile(`(?i)\bfurk\b`), "FERC"},
	{regexp.MustCompile(`(?i)\bp\.?\s?s\.?\s?c\.?\b`), "PSC"},
	{regexp.MustCompile(`(?i)\bp\.?\s?u\.?\s?c\.?\b`), "PUC"},
	{regexp.MustCompile(`(?i)\bdocket number\s+dash\b`), "docket number"},
	{regexp.MustCompile(`(?i)\brate pair\b`), "ratepayer"},
	{regexp.MustCompile(`(?i)\brate pairs\b`), "ratepayers"},
	{regexp.MustCompile(`(?i)\binter veners?\b`), "intervenor"},
	{regexp.MustCompile(`(?i)\btest a money\b`), "testimony"},
	{regexp.MustCompile(`(?i)\brecovery claws\b`), "recovery clause"},
	{regexp.MustCompile(`(?i)\bgrid resiliency\b`), "grid resilience"},
}

// CleanText applies the mishearing correction table to transcript text.
func CleanText(text string) string {
	for _, c := range corrections {
		text = c.pattern.ReplaceAllString(text, c.replace)
	}
	return text
}
