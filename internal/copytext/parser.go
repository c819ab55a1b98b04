package copytext

import (
	"regexp"
	"strings"
)

var numberedLine = regexp.MustCompile(`^\s*\d{1,2}[\.\)\-:]\s+(.+)$`)

// ParseVariants extracts candidate copy lines from raw model output.
// Only lines matching a leading-number pattern count; results are trimmed
// of markdown emphasis and surrounding quotes and capped at max. An empty
// result means the caller must fall back to local variants.
func ParseVariants(raw string, max int) []string {
	out := make([]string, 0, max)
	for _, line := range strings.Split(raw, "\n") {
		m := numberedLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := cleanVariant(m[1])
		if text == "" {
			continue
		}
		out = append(out, text)
		if len(out) == max {
			break
		}
	}
	return out
}

func cleanVariant(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"“”`)
	s = strings.TrimPrefix(s, "**")
	s = strings.TrimSuffix(s, "**")
	return strings.TrimSpace(s)
}
