package inference

import "strings"

// BuildCandidates turns the primary model plus an optional comma-separated
// fallback string into an ordered, duplicate-free candidate list. The
// primary always comes first; fallback entries keep their given order and
// the first occurrence of any identifier wins.
func BuildCandidates(primary string, fallbackRaw string) []string {
	candidates := []string{primary}
	for _, entry := range strings.Split(fallbackRaw, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			candidates = append(candidates, entry)
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	ordered := candidates[:0]
	for _, model := range candidates {
		if _, dup := seen[model]; dup {
			continue
		}
		seen[model] = struct{}{}
		ordered = append(ordered, model)
	}
	return ordered
}
