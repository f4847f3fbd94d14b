package utils

import (
	"regexp"
	"strings"
)

var unsafeNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// CleanFileName makes a title safe to use as a file name or in a
// Content-Disposition header.
func CleanFileName(input string) string {
	cleaned := unsafeNameChars.ReplaceAllString(input, "_")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "untitled"
	}
	return cleaned
}
