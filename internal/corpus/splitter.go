package corpus

import "strings"

// item list delimiters accepted by the splitter: the CJK enumeration
// comma, the CJK full comma, and the ASCII comma.
var listDelimiters = map[rune]bool{'、': true, '，': true, ',': true}

// SplitItems splits an item listing on 、/，/, while respecting double
// quotes, so a quoted name containing a delimiter stays one item. This is
// a two-state machine (in quotes / out of quotes); quotes and surrounding
// whitespace are stripped from the emitted items.
func SplitItems(s string) []string {
	var items []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		item := strings.TrimSpace(current.String())
		item = strings.Trim(item, `"`)
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
		current.Reset()
	}

	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case listDelimiters[r] && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return items
}

// JoinItems renders an item list back into the template shape, always
// with the CJK enumeration comma.
func JoinItems(items []string) string {
	return strings.Join(items, "、")
}
