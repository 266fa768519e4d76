package analyze

// charsPerToken is the rough GPT-4-family ratio used for budgeting.
const charsPerToken = 4

// truncationMarker replaces the dropped middle of an oversized transcript.
const truncationMarker = "\n\n[... TRANSCRIPT TRUNCATED FOR LENGTH ...]\n\n"

// keepFraction of the text is preserved at each end when truncating.
const keepFraction = 0.35

// EstimateTokens approximates the token count of text.
func EstimateTokens(text string) int {
	return len(text) / charsPerToken
}

// TruncateToTokens bounds text to maxTokens, keeping the head and tail
// and dropping the middle. Openings carry agenda and docket readings,
// closings carry votes and rulings, so both ends matter more than the
// middle of a long hearing.
func TruncateToTokens(text string, maxTokens int) string {
	if maxTokens <= 0 || EstimateTokens(text) <= maxTokens {
		return text
	}

	maxChars := maxTokens * charsPerToken
	keep := int(float64(maxChars) * keepFraction)
	if keep*2+len(truncationMarker) > len(text) {
		return text
	}

	return text[:keep] + truncationMarker + text[len(text)-keep:]
}
