// Package recon implements the semantic reconstruction engine: it scans the
// subrecord streams of ESM main records found in a ScanResult, correlates
// them with runtime C++ object-graph entries, and assembles typed,
// cross-referenced reconstructions of a Fallout: New Vegas save's in-game
// objects. See spec.md / SPEC_FULL.md for the full contract.
package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Base is embedded by every reconstructed entity; it carries the fields the
// spec requires of all of them (spec §3 "Reconstructed entities").
type Base struct {
	FormID      reconcore.FormID
	EditorID    string
	Offset      int64
	IsBigEndian bool
}

// mainRecordHeaderLen is the fixed size of an ESM main-record header; the
// subrecord stream starts immediately after it (spec §6).
const mainRecordHeaderLen = 24

// fullNameSearchWindow is the ±500 byte window used to attribute a bare
// FULL subrecord to a main record when no accessor is available (spec
// §4.4's scan-result mode, flagged as an Open Question in spec §9).
const fullNameSearchWindow = 500

// nearestFullName finds the FullName scan entry within
// ±fullNameSearchWindow bytes of offset, preferring the closest one.
func nearestFullName(names []recondump.FullName, offset int64) (text string, ok bool) {
	bestDist := int64(fullNameSearchWindow) + 1
	for _, fn := range names {
		dist := fn.Offset - offset
		if dist < 0 {
			dist = -dist
		}
		if dist <= fullNameSearchWindow && dist < bestDist {
			bestDist = dist
			text = fn.Text
			ok = true
		}
	}
	return text, ok
}

// subrecordWindow reads the dataSize bytes of a main record's subrecord
// stream via acc. It reports ok=false (short buffer, spec §7) if the read
// fails, in which case the caller must fall back to scan-result mode.
func subrecordWindow(acc recondump.Accessor, mr recondump.MainRecord) (buf []byte, ok bool) {
	if acc == nil || mr.DataSize == 0 {
		return nil, false
	}
	buf = make([]byte, mr.DataSize)
	if err := acc.ReadAt(uint64(mr.Offset)+mainRecordHeaderLen, buf); err != nil {
		return nil, false
	}
	return buf, true
}

// single32FormID reads a subrecord payload expected to be exactly one
// uint32 FormID.
func single32FormID(payload []byte, bigEndian bool) (reconcore.FormID, bool) {
	v, ok := binutil.Uint32At(payload, 0, bigEndian)
	return reconcore.FormID(v), ok
}

// buildBase constructs the common Base fields for a MainRecord, using the
// correlation map for EditorID.
func buildBase(mr recondump.MainRecord, corr *Correlation) Base {
	edid, _ := corr.EditorIDFor(mr.FormID)
	return Base{
		FormID:      mr.FormID,
		EditorID:    edid,
		Offset:      mr.Offset,
		IsBigEndian: mr.IsBigEndian,
	}
}

// stubFullName resolves the scan-result-mode FULL text for mr via the
// nearest-FULL heuristic (spec §4.4).
func stubFullName(mr recondump.MainRecord, sr *recondump.ScanResult) string {
	text, _ := nearestFullName(sr.FullNames, mr.Offset)
	return text
}
