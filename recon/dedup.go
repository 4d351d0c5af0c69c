package recon

import "github.com/fnv360/semrecon/reconcore"

// dedupeByFormID groups items by FormID (preserving the first-seen order of
// each group) and keeps one representative per group, chosen by richer.
// richer(a, b) must report whether a should be kept over b. This backs the
// universal "richest instance wins" dedup policy of spec §3 and the
// specific tie-break rules of §4.8 for dialogues and topics.
func dedupeByFormID[T any](items []T, formID func(T) reconcore.FormID, richer func(a, b T) bool) []T {
	order := make([]reconcore.FormID, 0, len(items))
	best := make(map[reconcore.FormID]T, len(items))

	for _, item := range items {
		id := formID(item)
		cur, seen := best[id]
		if !seen {
			order = append(order, id)
			best[id] = item
			continue
		}
		if richer(item, cur) {
			best[id] = item
		}
	}

	out := make([]T, 0, len(order))
	for _, id := range order {
		out = append(out, best[id])
	}
	return out
}
