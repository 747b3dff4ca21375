// Package testutil provides helpers for asserting on rendered views.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes SGR escape codes so rendered views can be compared as text.
func StripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

// MeasureWidth returns the visual width of a string, ignoring styling.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
