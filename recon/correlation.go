package recon

import (
	"sort"
	"strings"

	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Correlation is the two-way FormID<->EditorID index built once per
// reconstruction (spec §4.3). Lookups by EditorID are case-insensitive.
type Correlation struct {
	formToEdid map[reconcore.FormID]string
	edidToForm map[string]reconcore.FormID // key is lower-cased EditorID

	// formOrder records the order FormIDs were first inserted into
	// formToEdid, so step 4's inversion can invert deterministically
	// instead of ranging over the map itself (spec §4.3, §8 "Dedup
	// determinism").
	formOrder []reconcore.FormID

	// firstMainRecord indexes MainRecords by FormID, first occurrence wins.
	firstMainRecord map[reconcore.FormID]recondump.MainRecord
}

// setEdid records formID -> edid if formID has no mapping yet, tracking
// insertion order for the deterministic step-4 inversion.
func (c *Correlation) setEdid(formID reconcore.FormID, edid string) {
	if _, exists := c.formToEdid[formID]; exists {
		return
	}
	c.formToEdid[formID] = edid
	c.formOrder = append(c.formOrder, formID)
}

// BuildCorrelation builds the FormID<->EditorID index from sr following the
// steps in spec §4.3. If external is non-nil, it replaces step 2 (the
// nearest-preceding-MainRecord EDID attribution) entirely.
func BuildCorrelation(sr *recondump.ScanResult, external map[reconcore.FormID]string) *Correlation {
	c := &Correlation{
		formToEdid:      make(map[reconcore.FormID]string),
		edidToForm:      make(map[string]reconcore.FormID),
		firstMainRecord: make(map[reconcore.FormID]recondump.MainRecord),
	}

	// Step 1: index MainRecords by FormID, first occurrence wins.
	for _, mr := range sr.MainRecords {
		if _, exists := c.firstMainRecord[mr.FormID]; !exists {
			c.firstMainRecord[mr.FormID] = mr
		}
	}

	if external != nil {
		// external is a caller-supplied map; range over a sorted copy of its
		// keys instead of the map directly so insertion order (and
		// therefore step 4's inversion) doesn't depend on Go's randomized
		// map order.
		formIDs := make([]reconcore.FormID, 0, len(external))
		for formID := range external {
			formIDs = append(formIDs, formID)
		}
		sort.Slice(formIDs, func(i, j int) bool { return formIDs[i] < formIDs[j] })
		for _, formID := range formIDs {
			c.setEdid(formID, external[formID])
		}
	} else {
		// Step 2: seed form_id -> editor_id by nearest preceding MainRecord
		// whose data extent covers the EDID's offset. First EDID wins per
		// FormID.
		sortedMains := append([]recondump.MainRecord(nil), sr.MainRecords...)
		for _, ed := range sr.EditorIDs {
			mr, ok := closestPrecedingRecord(sortedMains, ed.Offset)
			if !ok {
				continue
			}
			c.setEdid(mr.FormID, ed.Name)
		}
	}

	// Step 3: merge RuntimeEditorID entries whose FormID is non-zero and
	// not yet mapped.
	for _, red := range sr.RuntimeEditorIDs {
		if red.FormID.Null() {
			continue
		}
		c.setEdid(red.FormID, red.EditorID)
	}

	// Step 4: invert, keeping the first FormID seen for any EditorID that
	// appears under multiple. Inverting from formOrder (rather than
	// ranging over formToEdid) keeps the winner deterministic across
	// rebuilds of identical input, since Go map iteration order is
	// randomized.
	for _, formID := range c.formOrder {
		key := strings.ToLower(c.formToEdid[formID])
		if _, exists := c.edidToForm[key]; !exists {
			c.edidToForm[key] = formID
		}
	}

	return c
}

// closestPrecedingRecord finds the MainRecord whose subrecord-stream extent
// [Offset+mainRecordHeaderLen, Offset+mainRecordHeaderLen+DataSize) covers
// offset, preferring the one with the largest Offset (i.e. the nearest
// preceding record whose extent covers it).
func closestPrecedingRecord(mains []recondump.MainRecord, offset int64) (recondump.MainRecord, bool) {
	var best recondump.MainRecord
	found := false
	for _, mr := range mains {
		start := mr.Offset + mainRecordHeaderLen
		end := start + int64(mr.DataSize)
		if offset >= start && offset < end {
			if !found || mr.Offset > best.Offset {
				best = mr
				found = true
			}
		}
	}
	return best, found
}

// EditorIDFor returns the EditorID correlated with formID, if any.
func (c *Correlation) EditorIDFor(formID reconcore.FormID) (string, bool) {
	edid, ok := c.formToEdid[formID]
	return edid, ok
}

// FormIDFor returns the FormID correlated with editorID (case-insensitive).
func (c *Correlation) FormIDFor(editorID string) (reconcore.FormID, bool) {
	id, ok := c.edidToForm[strings.ToLower(editorID)]
	return id, ok
}
