package layout

import (
	"regexp"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText truncates text to maxWidth with ellipsis.
// Handles edge cases where text is shorter than maxWidth or maxWidth is very small.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	textLen := utf8.RuneCountInString(text)

	if textLen <= maxWidth {
		return text, false
	}

	// Need space for ellipsis
	if maxWidth <= ellipsisLen {
		// Not enough room for any text + ellipsis, just return truncated ellipsis
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	truncLen := maxWidth - ellipsisLen
	return string(runes[:truncLen]) + cfg.Ellipsis, true
}

// TruncateMiddle shortens text to maxWidth by cutting from the middle, so
// both the start and the end stay visible. Suited to URLs, where the host
// and the last path segment carry the meaning.
func TruncateMiddle(text string, maxWidth int, cfg TextConfig) (string, bool) {
	runes := []rune(text)
	if len(runes) <= maxWidth {
		return text, false
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	if maxWidth <= ellipsisLen+1 {
		return TruncateText(text, maxWidth, cfg)
	}

	keep := maxWidth - ellipsisLen
	head := (keep + 1) / 2
	tail := keep - head
	return string(runes[:head]) + cfg.Ellipsis + string(runes[len(runes)-tail:]), true
}
