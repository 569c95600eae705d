package classify

import (
	"regexp"
	"strings"

	"armory/internal/vocab"
)

var levelRE = regexp.MustCompile(`(\d)级`)

// ParsedName holds the attributes extractable from a raw name before the
// category is known. All extraction is pure string work against the
// vocabulary tables; a token outside the enumerations means "absent",
// never an error.
type ParsedName struct {
	Quality     string
	Model       string
	Level       int
	Special     bool
	SpecialName string
}

// Parse extracts quality, model residual, armor level, and the special
// variant marker from a raw item name.
func Parse(v vocab.Vocabulary, name string) ParsedName {
	p := ParsedName{
		Quality: extractQuality(v, name),
		Model:   extractModel(v, name),
	}
	if lvl, ok := extractLevel(name); ok {
		p.Level = lvl
	}
	if i := strings.Index(name, "·"); i >= 0 {
		p.Special = true
		p.SpecialName = name[i+len("·"):]
	}
	return p
}

// extractQuality returns the trailing parenthetical quality tier, or ""
// when no member of the enumeration is present. Other parenthetical text
// is ignored.
func extractQuality(v vocab.Vocabulary, name string) string {
	for _, tier := range v.QualityOrder {
		if strings.Contains(name, "("+tier+")") {
			return tier
		}
	}
	return ""
}

// extractArmorQuality is like extractQuality but restricted to the armor
// tier subset.
func extractArmorQuality(v vocab.Vocabulary, name string) string {
	for _, tier := range v.ArmorQualities {
		if strings.Contains(name, "("+tier+")") {
			return tier
		}
	}
	return ""
}

// extractModel strips the quality suffix, the single-token gun type
// keywords, and any special-variant suffix; the trimmed residual is the
// model shared by all quality variants of one weapon.
func extractModel(v vocab.Vocabulary, name string) string {
	s := name
	for _, tier := range v.QualityOrder {
		s = strings.ReplaceAll(s, "("+tier+")", "")
	}
	for _, gun := range v.GunTypeNames() {
		s = strings.ReplaceAll(s, gun, "")
	}
	if i := strings.Index(s, "·"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// extractLevel matches the single-digit N级 marker. Absence means the name
// is not an armor item.
func extractLevel(name string) (int, bool) {
	m := levelRE.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	return int(m[1][0] - '0'), true
}

// BaseName returns the name with the trailing parenthetical stripped: the
// shared base of all quality variants of one item.
func BaseName(name string) string {
	if i := strings.LastIndex(name, "("); i >= 0 {
		return name[:i]
	}
	return name
}
