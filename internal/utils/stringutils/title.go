package stringutils

import (
	"regexp"
	"strings"
)

var multiSpacePattern = regexp.MustCompile(`\s+`)

// CollapseSpaces replaces runs of whitespace with a single space and trims
// the result.
func CollapseSpaces(content string) string {
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(content, " "))
}

// TruncateTitle truncates a title to at most maxLen characters and appends
// an ellipsis when content was cut off.
func TruncateTitle(title string, maxLen int) string {
	runes := []rune(title)
	if len(runes) <= maxLen {
		return title
	}
	return string(runes[:maxLen]) + "..."
}

// GenerateTitle creates a conversation title from the first user message.
// Empty input yields an empty string so callers can fall back to a
// timestamp-based default.
func GenerateTitle(content string, maxLen int) string {
	cleaned := CollapseSpaces(content)
	if cleaned == "" {
		return ""
	}
	return TruncateTitle(cleaned, maxLen)
}
