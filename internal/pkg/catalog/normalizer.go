package catalog

import "strings"

// IDNormalizer maps an identifier to its canonical comparison form. The
// external document's identifier convention differs between feeds (some
// prefix identifiers with a literal tag, some carry a numeric suffix), so
// the rule is pluggable and chosen from configuration.
type IDNormalizer interface {
	Normalize(id string) string
}

// PrefixNormalizer strips a fixed literal prefix (e.g. "course-") before
// comparing identifiers.
type PrefixNormalizer struct {
	Prefix string
}

// Normalize trims whitespace and removes the configured prefix when present
func (n PrefixNormalizer) Normalize(id string) string {
	id = strings.TrimSpace(id)
	if n.Prefix != "" {
		id = strings.TrimPrefix(id, n.Prefix)
	}
	return id
}

// NumericSuffixNormalizer compares identifiers by their trailing numeric
// portion ("course_12" and "12" both normalize to "12"). Identifiers without
// a numeric suffix normalize to their trimmed form.
type NumericSuffixNormalizer struct{}

// Normalize extracts the trailing digit run, if any
func (NumericSuffixNormalizer) Normalize(id string) string {
	id = strings.TrimSpace(id)

	end := len(id)
	start := end
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}

	if start == end {
		return id
	}
	return id[start:]
}

// NewNormalizer returns the normalizer for a configured convention name.
// Unknown names fall back to a bare prefix normalizer, which compares
// trimmed identifiers as-is.
func NewNormalizer(convention, prefix string) IDNormalizer {
	switch convention {
	case "numeric":
		return NumericSuffixNormalizer{}
	case "prefix":
		return PrefixNormalizer{Prefix: prefix}
	default:
		return PrefixNormalizer{}
	}
}
