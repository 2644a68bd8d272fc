package controllers

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
)

const maxInputLength = 5000

func validateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// sanitizeInput strips HTML/script tags and caps the length of free-text
// fields before they are persisted. It is idempotent. The cap counts
// characters, not bytes, so multi-byte text is never cut mid-rune.
func sanitizeInput(text string) string {
	if text == "" {
		return ""
	}
	text = tagPattern.ReplaceAllString(text, "")
	if runes := []rune(text); len(runes) > maxInputLength {
		text = string(runes[:maxInputLength])
	}
	return text
}
