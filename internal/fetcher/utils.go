package fetcher

import (
	"regexp"
	"strings"
)

var unsafePathChars = regexp.MustCompile(`[<>:"/\\|?*]+`)

// SanitizeTitle strips characters that are unsafe in file names.
func SanitizeTitle(title string) string {
	return strings.TrimSpace(unsafePathChars.ReplaceAllString(title, ""))
}
