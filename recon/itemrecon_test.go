package recon

import (
	"errors"
	"math"
	"testing"

	"github.com/fnv360/semrecon/recondump"
)

var errShortRead = errors.New("fakeFixedAccessor: read past end of data")

// itemDataPayload builds the common value(i32)/weight(f32) DATA shape
// shared by ARMO/ALCH/MISC/KEYM/BOOK.
func itemDataPayload(value int32, weight float32) []byte {
	buf := make([]byte, 8)
	le := func(off int, v uint32) {
		buf[off], buf[off+1], buf[off+2], buf[off+3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	}
	le(0, uint32(value))
	le(4, math.Float32bits(weight))
	return buf
}

// fakeFixedAccessor is a minimal recondump.Accessor backed by a single byte
// slice, for reconstructors that only ever read starting at a main record's
// own offset.
type fakeFixedAccessor struct {
	data []byte
}

func (f *fakeFixedAccessor) ReadAt(offset uint64, dst []byte) error {
	if int(offset)+len(dst) > len(f.data) {
		return errShortRead
	}
	copy(dst, f.data[offset:int(offset)+len(dst)])
	return nil
}

// prependHeader pads buf with a mainRecordHeaderLen-byte dummy header so
// subrecordWindow's "subrecords start after the header" offset math lines
// up the same way it does against a real dump.
func prependHeader(buf []byte) []byte {
	return append(make([]byte, mainRecordHeaderLen), buf...)
}

func TestPopulateArmor_EDIDFullScriptAndData(t *testing.T) {
	buf := buildSubrecords(false, []fakeSubrecord{
		{"EDID", []byte("TestArmor\x00")},
		{"FULL", []byte("Combat Armor\x00")},
		{"SCRI", le32FormIDBytes(0x123)},
		{"DATA", itemDataPayload(250, 12.5)},
	})
	sr := &recondump.ScanResult{MainRecords: []recondump.MainRecord{
		{FormID: 1, RecordType: "ARMO", Offset: 0, DataSize: uint32(len(buf))},
	}}
	acc := &fakeFixedAccessor{data: prependHeader(buf)}
	out := reconstructArmors(sr, acc, &Correlation{}, nil)
	if len(out) != 1 {
		t.Fatalf("got %d armors, want 1", len(out))
	}
	a := out[0]
	if a.EditorID != "TestArmor" || a.FullName != "Combat Armor" {
		t.Errorf("EDID/FULL = %q/%q", a.EditorID, a.FullName)
	}
	if a.Script != 0x123 {
		t.Errorf("Script = %v, want 0x123", a.Script)
	}
	if a.Value != 250 || a.Weight != 12.5 {
		t.Errorf("Value/Weight = %v/%v, want 250/12.5", a.Value, a.Weight)
	}
}

func TestPopulateConsumable_DataParsed(t *testing.T) {
	buf := buildSubrecords(false, []fakeSubrecord{
		{"EDID", []byte("TestChem\x00")},
		{"DATA", itemDataPayload(10, 0.1)},
	})
	sr := &recondump.ScanResult{MainRecords: []recondump.MainRecord{
		{FormID: 2, RecordType: "ALCH", Offset: 0, DataSize: uint32(len(buf))},
	}}
	acc := &fakeFixedAccessor{data: prependHeader(buf)}
	out := reconstructConsumables(sr, acc, &Correlation{}, nil)
	if len(out) != 1 || out[0].Value != 10 {
		t.Fatalf("got %+v", out)
	}
}

func TestPopulateMiscAndKey_ShareItemDATAParsing(t *testing.T) {
	buf := buildSubrecords(false, []fakeSubrecord{
		{"EDID", []byte("TestMisc\x00")},
		{"DATA", itemDataPayload(5, 1.0)},
	})
	srMisc := &recondump.ScanResult{MainRecords: []recondump.MainRecord{
		{FormID: 3, RecordType: "MISC", Offset: 0, DataSize: uint32(len(buf))},
	}}
	accMisc := &fakeFixedAccessor{data: prependHeader(buf)}
	misc := reconstructMiscItems(srMisc, accMisc, &Correlation{}, nil)
	if len(misc) != 1 || misc[0].Value != 5 || misc[0].Weight != 1.0 {
		t.Fatalf("misc = %+v", misc)
	}

	srKey := &recondump.ScanResult{MainRecords: []recondump.MainRecord{
		{FormID: 4, RecordType: "KEYM", Offset: 0, DataSize: uint32(len(buf))},
	}}
	accKey := &fakeFixedAccessor{data: prependHeader(buf)}
	keys := reconstructKeys(srKey, accKey, &Correlation{}, nil)
	if len(keys) != 1 || keys[0].Value != 5 {
		t.Fatalf("keys = %+v", keys)
	}
}

func TestPopulateCell_XCLCSetsGridAndExteriorFlag(t *testing.T) {
	buf := buildSubrecords(false, []fakeSubrecord{
		{"EDID", []byte("TestCell\x00")},
		{"DATA", []byte{0x00}}, // exterior: bit0 unset
		{"XCLC", append(le32(3), le32(4)...)},
	})
	sr := &recondump.ScanResult{MainRecords: []recondump.MainRecord{
		{FormID: 5, RecordType: "CELL", Offset: 0, DataSize: uint32(len(buf))},
	}}
	acc := &fakeFixedAccessor{data: prependHeader(buf)}
	out := reconstructCells(sr, acc, &Correlation{}, nil)
	if len(out) != 1 {
		t.Fatalf("got %d cells, want 1", len(out))
	}
	c := out[0]
	if c.IsInterior {
		t.Errorf("IsInterior = true, want false (flag bit0 unset)")
	}
	if !c.HasGrid || c.GridX != 3 || c.GridY != 4 {
		t.Errorf("grid = %d,%d,%v; want 3,4,true", c.GridX, c.GridY, c.HasGrid)
	}
}

func TestPopulateCell_FallsBackToNearestCellGridWhenNoXCLC(t *testing.T) {
	buf := buildSubrecords(false, []fakeSubrecord{
		{"EDID", []byte("NoXCLCCell\x00")},
	})
	sr := &recondump.ScanResult{
		MainRecords: []recondump.MainRecord{
			{FormID: 6, RecordType: "CELL", Offset: 0, DataSize: uint32(len(buf))},
		},
		CellGrids: []recondump.CellGrid{{GridX: 9, GridY: 10, Offset: mainRecordHeaderLen}},
	}
	acc := &fakeFixedAccessor{data: prependHeader(buf)}
	out := reconstructCells(sr, acc, &Correlation{}, nil)
	if len(out) != 1 || !out[0].HasGrid || out[0].GridX != 9 {
		t.Fatalf("cell = %+v, want fallback grid 9,10", out)
	}
}

func TestPopulateContainer_CNTOAccumulatesAndDATAParsesFlagsWeight(t *testing.T) {
	buf := buildSubrecords(false, []fakeSubrecord{
		{"EDID", []byte("TestCont\x00")},
		{"CNTO", append(le32FormIDBytes(0xAA), le32(2)...)},
		{"CNTO", append(le32FormIDBytes(0xBB), le32(1)...)},
		{"DATA", append([]byte{0x01, 0, 0, 0}, itemDataPayload(0, 15.0)[4:8]...)},
	})
	sr := &recondump.ScanResult{MainRecords: []recondump.MainRecord{
		{FormID: 7, RecordType: "CONT", Offset: 0, DataSize: uint32(len(buf))},
	}}
	acc := &fakeFixedAccessor{data: prependHeader(buf)}
	out := reconstructContainers(sr, acc, &Correlation{}, nil)
	if len(out) != 1 {
		t.Fatalf("got %d containers, want 1", len(out))
	}
	c := out[0]
	if len(c.Contents) != 2 || c.Contents[0].ItemFormID != 0xAA || c.Contents[1].Count != 1 {
		t.Errorf("Contents = %+v", c.Contents)
	}
	if c.Flags != 0x01 {
		t.Errorf("Flags = %v, want 0x01", c.Flags)
	}
}

func TestPopulateTopic_TNAMSetsSpeaker(t *testing.T) {
	buf := buildSubrecords(false, []fakeSubrecord{
		{"EDID", []byte("TestTopic\x00")},
		{"FULL", []byte("Hello\x00")},
		{"TNAM", le32FormIDBytes(0xCC)},
	})
	sr := &recondump.ScanResult{MainRecords: []recondump.MainRecord{
		{FormID: 8, RecordType: "DIAL", Offset: 0, DataSize: uint32(len(buf))},
	}}
	acc := &fakeFixedAccessor{data: prependHeader(buf)}
	out := reconstructTopics(sr, acc, &Correlation{}, nil)
	if len(out) != 1 || out[0].SpeakerFormID != 0xCC {
		t.Fatalf("topics = %+v", out)
	}
}
