package genre

import "strings"

// Normalize trims every comma-separated entry, drops empties and duplicates,
// and joins the rest with ", ".
func Normalize(raw string) string {
	return strings.Join(Split(raw), ", ")
}

func Split(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		key := strings.ToLower(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
