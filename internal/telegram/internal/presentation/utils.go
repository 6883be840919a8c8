package presentation

import (
	"fmt"
	"strings"
)

const progressBarLength = 10

func progressBar(percent float64) string {
	filled := int(progressBarLength * percent / 100)
	if filled > progressBarLength {
		filled = progressBarLength
	}
	return strings.Repeat("⬤", filled) + strings.Repeat("⊙", progressBarLength-filled)
}

// FormatSize converts a byte count to a human-readable string.
func FormatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(size)/1024)
	case size < 1024*1024*1024:
		return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB", float64(size)/(1024*1024*1024))
	}
}
