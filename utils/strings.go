package utils

import (
	"regexp"
	"strings"
)

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	repeatedSpaces   = regexp.MustCompile(`\s+`)
)

// CleanFileName removes invalid characters from a filename
func CleanFileName(filename string) string {
	cleaned := invalidFileChars.ReplaceAllString(filename, "_")
	cleaned = strings.TrimSpace(cleaned)
	return repeatedSpaces.ReplaceAllString(cleaned, "_")
}
