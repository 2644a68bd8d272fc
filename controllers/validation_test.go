package controllers

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"minimal valid address", "a@b.co", true},
		{"typical address", "jo.smith+test@example.org", true},
		{"not an email", "not-an-email", false},
		{"missing TLD", "a@b", false},
		{"empty string", "", false},
		{"single letter TLD", "a@b.c", false},
		{"missing local part", "@b.co", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validateEmail(tt.email))
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"script tags stripped", "<script>x</script>hello", "xhello"},
		{"nested markup stripped", "<div><b>bold</b></div> text", "bold text"},
		{"empty input", "", ""},
		{"self-closing tag", "before<br/>after", "beforeafter"},
		{"tag with attributes", `<a href="http://evil">link</a>`, "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeInput(tt.input)
			assert.Equal(t, tt.expected, result)
			assert.NotContains(t, result, "<script>")
		})
	}
}

func TestSanitizeInputTruncates(t *testing.T) {
	long := strings.Repeat("a", maxInputLength+500)
	result := sanitizeInput(long)
	assert.Len(t, result, maxInputLength)
}

func TestSanitizeInputTruncatesMultiByte(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"arabic letters", strings.Repeat("س", maxInputLength+100)},
		{"three-byte runes", strings.Repeat("€", maxInputLength+1)},
		{"mixed width", strings.Repeat("aس", maxInputLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeInput(tt.input)
			// the cap counts characters and never splits a rune
			assert.Equal(t, maxInputLength, utf8.RuneCountInString(result))
			assert.True(t, utf8.ValidString(result))
		})
	}
}

func TestSanitizeInputIdempotent(t *testing.T) {
	inputs := []string{
		"hello world",
		"<script>x</script>hello",
		"unbalanced < bracket",
		strings.Repeat("b", maxInputLength+1),
		strings.Repeat("س", maxInputLength+1),
		"",
	}

	for _, input := range inputs {
		once := sanitizeInput(input)
		assert.Equal(t, once, sanitizeInput(once))
	}
}
