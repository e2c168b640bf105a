// Package names cleans contributor display names into a canonical form.
package names

import (
	"regexp"
	"strings"
)

// ListSeparators are the characters that separate names within one bullet.
const ListSeparators = "、,，"

var (
	separatorPattern = regexp.MustCompile("[" + ListSeparators + "]")

	// Full-width or half-width parentheses, either side, no nesting.
	annotationPattern = regexp.MustCompile(`[（(][^）)]*[）)]`)

	// Trailing run in the pictograph blocks (U+1F300..U+1FAFF) only.
	trailingEmojiPattern = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}]+$`)
)

// Split breaks a compound name list on any of the ListSeparators and trims
// each piece. Empty pieces are kept.
func Split(s string) []string {
	parts := separatorPattern.Split(s, -1)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Normalize strips parenthetical annotations anywhere in the name and a
// trailing run of emoji, trimming whitespace after each step.
func Normalize(raw string) string {
	name := strings.TrimSpace(annotationPattern.ReplaceAllString(raw, ""))
	return strings.TrimSpace(trailingEmojiPattern.ReplaceAllString(name, ""))
}

// NormalizeAll re-splits every raw entry, normalizes each piece and keeps the
// first occurrence of every non-empty result.
func NormalizeAll(raw []string) []string {
	result := []string{}
	seen := make(map[string]struct{})
	for _, item := range raw {
		for _, part := range Split(item) {
			cleaned := Normalize(part)
			if cleaned == "" {
				continue
			}
			if _, ok := seen[cleaned]; ok {
				continue
			}
			seen[cleaned] = struct{}{}
			result = append(result, cleaned)
		}
	}
	return result
}
