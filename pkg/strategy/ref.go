package strategy

import "strings"

// refSep separates the producer ID from the output label in an encoded
// reference.
const refSep = "."

// Ref is a parsed symbolic reference to another node's output. It is
// derived from a dotted string, used to build edges and never persisted.
type Ref struct {
	Producer string // node ID of the producer
	Output   string // output label on the producer
}

// ParseRef decodes a dotted "producer.output" reference.
//
// The string is split at the first separator only; everything after it,
// separators preserved, becomes the output label ("a.b.c" parses to
// producer "a", output "b.c"). The second return is false when the value
// is not a string, has fewer than two segments, or either segment is
// empty. Malformed input never panics: upstream documents are often
// half-written while someone is editing them.
func ParseRef(v any) (Ref, bool) {
	s, ok := v.(string)
	if !ok {
		return Ref{}, false
	}
	producer, output, found := strings.Cut(s, refSep)
	if !found || producer == "" || output == "" {
		return Ref{}, false
	}
	return Ref{Producer: producer, Output: output}, true
}
