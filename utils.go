package main

import (
	"fmt"

	"github.com/atotto/clipboard"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// countdownText is the one-line summary used by --print, the clipboard and
// the text export.
func countdownText(r TimeRemaining, year int, label string) string {
	if r.IsComplete {
		return fmt.Sprintf("Happy New Year %d! (%s)", year, label)
	}
	return fmt.Sprintf("%s until %d (%s)", r, year, label)
}

var writeClipboard = clipboard.WriteAll

func copyToClipboard(text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
