package services

import (
	"regexp"
	"strings"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
)

// MatchKind reports how a detected label was matched against the reference
// table.
type MatchKind string

const (
	MatchExact     MatchKind = "exact"
	MatchPartial   MatchKind = "partial"
	MatchUnmatched MatchKind = "unmatched"
)

var (
	prepModifierRe = regexp.MustCompile(`\s*\b(cooked|fried|grilled|baked|boiled|steamed|raw|fresh|dried)\b\s*`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// normalizeFoodName lowercases and trims a raw label, then additionally
// strips preparation-method modifiers ("grilled chicken" → "chicken") and
// collapses whitespace for the cleaned form.
func normalizeFoodName(raw string) (normalized, cleaned string) {
	normalized = strings.ToLower(strings.TrimSpace(raw))
	cleaned = prepModifierRe.ReplaceAllString(normalized, " ")
	cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))
	return normalized, cleaned
}

// ResolveFood matches a free-text detected label to a reference profile.
// Exact lookups of the cleaned and normalized forms come first; failing
// those, the table is scanned in insertion order accepting the first entry
// whose key contains, or is contained in, either form. Very short labels may
// spuriously partial-match; known limitation. Returns nil when nothing
// matches; never fails.
func ResolveFood(raw string) (*models.NutrientProfile, MatchKind) {
	normalized, cleaned := normalizeFoodName(raw)
	if normalized == "" {
		return nil, MatchUnmatched
	}

	if p, ok := LookupFood(cleaned); ok {
		return &p, MatchExact
	}
	if p, ok := LookupFood(normalized); ok {
		return &p, MatchExact
	}

	for _, rec := range foodRecords {
		if bidirectionalMatch(rec.name, cleaned) || bidirectionalMatch(rec.name, normalized) {
			p := rec.profile
			return &p, MatchPartial
		}
	}
	return nil, MatchUnmatched
}

func bidirectionalMatch(key, name string) bool {
	if name == "" {
		return false
	}
	return strings.Contains(name, key) || strings.Contains(key, name)
}
