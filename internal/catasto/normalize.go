package catasto

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName canonicalises a person or place name for comparison:
// NFC composition, trimmed, internal whitespace collapsed to single spaces.
// Letter case is preserved.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// OptionalString trims s and returns nil when nothing is left.
func OptionalString(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// PartitaLabel renders a partita number with its optional suffix.
func PartitaLabel(numero int, suffisso *string) string {
	label := strconv.Itoa(numero)
	if suffisso != nil && *suffisso != "" {
		label += "/" + *suffisso
	}

	return label
}

// SameSuffix compares two optional suffixes, treating nil and "" as equal.
func SameSuffix(a, b *string) bool {
	var sa, sb string
	if a != nil {
		sa = *a
	}

	if b != nil {
		sb = *b
	}

	return sa == sb
}
