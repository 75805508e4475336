package format

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

var (
	edgePattern       = regexp.MustCompile(`^[\s/-]+|[\s/-]+$`)
	separatorPattern  = regexp.MustCompile(`[\s/]+`)
	lowerUpperPattern = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	upperRunPattern   = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	hyphenRunPattern  = regexp.MustCompile(`-{2,}`)
)

// KebabCase normalizes s into a CSS-identifier-safe kebab-case string.
//
//	"HelloFOOWorld"    -> "hello-foo-world"
//	"hello@world"      -> "hello-1s-world"
//	"  Hello  World  " -> "hello-world"
//
// Characters outside [a-zA-Z0-9-] become "-<base36 code unit>-".
// The function is idempotent.
func KebabCase(s string) string {
	s = edgePattern.ReplaceAllString(s, "")
	s = separatorPattern.ReplaceAllString(s, "-")
	s = lowerUpperPattern.ReplaceAllString(s, "$1-$2")
	s = upperRunPattern.ReplaceAllString(s, "$1-$2")
	s = escapeInvalid(s)
	s = hyphenRunPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}

func escapeInvalid(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if isIdentChar(r) {
			b.WriteRune(r)
			continue
		}
		for _, unit := range utf16.Encode([]rune{r}) {
			b.WriteByte('-')
			b.WriteString(strconv.FormatInt(int64(unit), 36))
			b.WriteByte('-')
		}
	}

	return b.String()
}

func isIdentChar(r rune) bool {
	return r == '-' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// TrimKeywords replaces every keyword occurrence in s with a hyphen, then
// collapses and trims hyphens. An empty result maps to "DEFAULT".
func TrimKeywords(s string, keywords []string) string {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		s = strings.ReplaceAll(s, kw, "-")
	}
	s = hyphenRunPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "DEFAULT"
	}
	return s
}
