package lineage

import (
	"regexp"
	"strconv"
)

// genPattern matches a generation number embedded in an individual's ID,
// e.g. "gen3_sma_cross" or "adam_gen0".
var genPattern = regexp.MustCompile(`(?i)(?:^|[_-])gen(\d+)(?:[_-]|$)`)

// inferGeneration extracts a generation number from an ID, if present.
func inferGeneration(id string) (int, bool) {
	m := genPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// resolveGeneration decides the rank of one individual. Explicit data
// wins, then the ID-embedded pattern, then the strongest hint carried by
// inbound edges, then 0.
func resolveGeneration(def NodeDef, edgeHint map[string]int) int {
	if def.Generation != nil && *def.Generation >= 0 {
		return *def.Generation
	}
	if g, ok := inferGeneration(def.ID); ok {
		return g
	}
	if g, ok := edgeHint[def.ID]; ok {
		return g
	}
	return 0
}

// edgeHints collects the maximum generation hint per child from the edge
// list. Edges without a hint contribute nothing.
func edgeHints(edges []EdgeDef) map[string]int {
	hints := make(map[string]int)
	for _, e := range edges {
		_, child := e.endpoints()
		if child == "" || e.Generation == nil || *e.Generation < 0 {
			continue
		}
		if g, ok := hints[child]; !ok || *e.Generation > g {
			hints[child] = *e.Generation
		}
	}
	return hints
}
