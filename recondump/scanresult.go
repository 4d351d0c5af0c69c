// Package recondump models the immutable ScanResult input the reconstruction
// engine consumes. Producing a ScanResult — scanning the raw dump for
// MainRecords, EditorIDs, and the rest — is the job of the external scanner
// collaborator (spec.md §1's "Out of scope"); this package only describes
// the shape of that collaborator's output.
package recondump

import "github.com/fnv360/semrecon/reconcore"

// MainRecord is one ESM main-record header found resident in the dump.
type MainRecord struct {
	FormID      reconcore.FormID
	RecordType  reconcore.Signature
	Offset      int64
	DataSize    uint32
	IsBigEndian bool
}

// EditorID is an EDID subrecord found in the dump, possibly without a
// FormID already assigned (the correlation pass fills that in, spec §4.3).
type EditorID struct {
	FormID reconcore.FormID // 0 if not yet correlated
	Name   string
	Offset int64
}

// FullName is a FULL subrecord found in the dump without reliable
// attribution to a specific main record.
type FullName struct {
	Text   string
	Offset int64
}

// Point is a 3D world-space position.
type Point struct {
	X, Y, Z float32
}

// Refr describes a placed-object reference (REFR/ACHR/ACRE-family record)
// found in the dump.
type Refr struct {
	Header      MainRecord
	BaseFormID  reconcore.FormID
	Position    *Point
	Scale       float32
	Owner       *reconcore.FormID
	IsMapMarker bool
	MarkerType  *uint8
	MarkerName  *string
}

// Land describes one LAND record's heightmap.
type Land struct {
	CellX, CellY int32
	Heightmap    []int16
}

// CellGrid is a CellGrid (XCLC) subrecord found in the dump.
type CellGrid struct {
	GridX, GridY int32
	Offset       int64
}

// ResponseText is an NAM1/response-text subrecord found in the dump without
// reliable attribution to a specific INFO record.
type ResponseText struct {
	Text   string
	Offset int64
}

// ActorBase mirrors the fields of an ACBS subrecord found resident in free
// memory (§4.2), tagged with where it was found.
type ActorBase struct {
	Flags         uint32
	FatigueBase   uint16
	BarterGold    uint16
	Level         int16
	CalcMin       uint16
	CalcMax       uint16
	SpeedMul      uint16
	Karma         float32
	Disposition   int16
	TemplateFlags uint16
	Offset        int64
	IsBigEndian   bool
}

// Condition mirrors the fields of a CTDA subrecord found resident in free
// memory (§4.2).
type Condition struct {
	Type          uint8
	Operator      uint8
	CompValue     float32
	FunctionIndex uint16
	Param1        uint32
	Param2        uint32
	RunOnType     uint32
	HasRunOnType  bool
	Offset        int64
	IsBigEndian   bool
}

// RuntimeEditorID is an editor-ID-bearing runtime TESForm entry observed in
// the live object graph.
type RuntimeEditorID struct {
	FormID        reconcore.FormID
	FormType      byte
	EditorID      string
	DisplayName   *string
	TESFormOffset *uint64
}

// ScanResult is the immutable, borrowed input to reconstruction. It is
// produced by the external scanner collaborator and consumed read-only for
// the duration of a single reconstruct_all call.
type ScanResult struct {
	MainRecords      []MainRecord
	EditorIDs        []EditorID
	FullNames        []FullName
	Refrs            []Refr
	Lands            []Land
	CellGrids        []CellGrid
	ResponseTexts    []ResponseText
	ActorBases       []ActorBase
	Conditions       []Condition
	RuntimeEditorIDs []RuntimeEditorID
}

// MainRecordsOfKind returns the MainRecords whose RecordType matches sig, in
// scan order.
func (sr *ScanResult) MainRecordsOfKind(sig reconcore.Signature) []MainRecord {
	var out []MainRecord
	for _, mr := range sr.MainRecords {
		if mr.RecordType == sig {
			out = append(out, mr)
		}
	}
	return out
}
