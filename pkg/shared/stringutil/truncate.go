package stringutil

// Truncate caps text at maxChars and appends marker when content was cut.
// A non-positive maxChars disables truncation.
func Truncate(text string, maxChars int, marker string) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	return text[:maxChars] + marker
}
