package recon

import "github.com/fnv360/semrecon/reconcore"

// dedupeDialogues implements spec §4.8's dialogue dedup policy: keep the
// instance with the most responses, tie-broken by greatest total response
// text length. BE/LE mirror regions are the usual source of duplicates.
func dedupeDialogues(items []*Dialogue) []*Dialogue {
	return dedupeByFormID(items,
		func(d *Dialogue) reconcore.FormID { return d.FormID },
		func(a, b *Dialogue) bool {
			if len(a.Responses) != len(b.Responses) {
				return len(a.Responses) > len(b.Responses)
			}
			return a.TotalResponseLen() > b.TotalResponseLen()
		},
	)
}

// dedupeTopics implements spec §4.8's topic dedup policy: prefer a non-null
// speaker, then longer full name, then longer editor ID.
func dedupeTopics(items []*Topic) []*Topic {
	return dedupeByFormID(items,
		func(t *Topic) reconcore.FormID { return t.FormID },
		func(a, b *Topic) bool {
			if (!a.SpeakerFormID.Null()) != (!b.SpeakerFormID.Null()) {
				return !a.SpeakerFormID.Null()
			}
			if len(a.FullName) != len(b.FullName) {
				return len(a.FullName) > len(b.FullName)
			}
			return len(a.EditorID) > len(b.EditorID)
		},
	)
}

// richestStub is the comparator behind the universal "richest instance
// wins" policy (spec §3) for record kinds without a kind-specific rule: it
// reports whether a should be kept over b, preferring a non-empty full name,
// then a longer EditorID; on a tie it reports false, so the first-seen
// (ESM-before-runtime) entry is kept.
func richestStub(aFullName, bFullName string, aEDID, bEDID string) bool {
	if (aFullName != "") != (bFullName != "") {
		return aFullName != ""
	}
	return len(aEDID) > len(bEDID)
}
