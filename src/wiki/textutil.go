package wiki

import (
	"regexp"
	"strings"
)

// Patterns recovered from rendered wiki text. The wiki encodes coordinates,
// levels and gathering times as plain text after an anchor, so all spatial
// data is regex-recovered.
var (
	coordinateRegex    = regexp.MustCompile(`\d+\.?\d*`)
	levelRegex         = regexp.MustCompile(`\d+`)
	gatherTimeRegex    = regexp.MustCompile(`(?i)\d{1,2}:\d{1,2}\s(?:am|pm)`)
	locationNameRegex  = regexp.MustCompile(`(?i)(?:patch)|(?:tree)|(?:logging)|(?:quarry)|(?:harves)|(?:mining)`)
	trailingLabelRegex = regexp.MustCompile(`-\s+(.+)\s+\(`)

	// Numeric character references left literal by the wiki's templates,
	// plus the separator characters they decode to once parsed.
	entityRefRegex  = regexp.MustCompile(`&#[0-9a-fA-Fx]+;`)
	entityArtifacts = strings.NewReplacer("–", "", "—", "", " ", "")
	newlineReplacer = strings.NewReplacer("\n", "")
)

// ExtractCoordinatePair scans text for unsigned decimal numbers in
// left-to-right order and returns the first two as (x, y). Fewer than two
// numeric tokens is a normal outcome, reported via ok=false.
func ExtractCoordinatePair(text string) (x, y string, ok bool) {
	matches := coordinateRegex.FindAllString(text, 2)
	if len(matches) < 2 {
		return "", "", false
	}
	return matches[0], matches[1], true
}

// FormatCoordinates renders a coordinate pair found in text as "(x,y)", or
// an empty string when text carries fewer than two numbers. The label is
// never partially filled.
func FormatCoordinates(text string) string {
	x, y, ok := ExtractCoordinatePair(text)
	if !ok {
		return ""
	}
	return "(" + x + "," + y + ")"
}

// ExtractFirstInteger returns the first run of digits in text.
func ExtractFirstInteger(text string) (string, bool) {
	match := levelRegex.FindString(text)
	return match, match != ""
}

// ExtractTimeOfDay returns the first "H:MM am|pm" substring in text.
func ExtractTimeOfDay(text string) (string, bool) {
	match := gatherTimeRegex.FindString(text)
	return match, match != ""
}

// LooksLikeLocationToken reports whether text names a gathering resource
// rather than a place: node-kind words like "patch", "tree", "logging",
// "quarry", "harvesting", "mining". Heuristic, not exact.
func LooksLikeLocationToken(text string) bool {
	return locationNameRegex.MatchString(text)
}

// ExtractTrailingParenthesizedLabel matches "- <label> (" and returns the
// trimmed label. Fallback for gathering items where no anchor survives the
// LooksLikeLocationToken filter.
func ExtractTrailingParenthesizedLabel(text string) (string, bool) {
	groups := trailingLabelRegex.FindStringSubmatch(text)
	if len(groups) < 2 {
		return "", false
	}
	return strings.TrimSpace(groups[1]), true
}

// stripEntityArtifacts removes numeric character references and the dash and
// nbsp characters they decode to. The wiki's duty lists separate name from
// description with an entity-encoded en dash that carries no information.
func stripEntityArtifacts(text string) string {
	return entityArtifacts.Replace(entityRefRegex.ReplaceAllString(text, ""))
}

// flattenText removes embedded newlines from a table cell's rendered text.
func flattenText(text string) string {
	return newlineReplacer.Replace(text)
}
