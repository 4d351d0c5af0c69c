package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// LeveledListType tags which of LVLI/LVLN/LVLC a LeveledList was
// reconstructed from. The three kinds share an identical entry shape, so
// they are modeled as one flat struct plus this tag rather than three
// near-duplicate types (spec §9 design notes).
type LeveledListType uint8

const (
	LeveledListItem LeveledListType = iota
	LeveledListNPC
	LeveledListCreature
)

func (t LeveledListType) String() string {
	switch t {
	case LeveledListItem:
		return "LVLI"
	case LeveledListNPC:
		return "LVLN"
	case LeveledListCreature:
		return "LVLC"
	default:
		return "LVL?"
	}
}

// LeveledListEntry is one LVLO entry.
type LeveledListEntry struct {
	FormID reconcore.FormID
	Level  int16
	Count  int16
}

// LeveledList is a reconstructed LVLI, LVLN, or LVLC record.
type LeveledList struct {
	Base
	ListType   LeveledListType
	ChanceNone uint8
	Flags      uint8
	Entries    []LeveledListEntry
}

func reconstructLeveledLists(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*LeveledList {
	var out []*LeveledList
	out = append(out, reconstructLeveledListsOfKind(sr, acc, corr, log, reconcore.KindLVLI.Sig, LeveledListItem)...)
	out = append(out, reconstructLeveledListsOfKind(sr, acc, corr, log, reconcore.KindLVLN.Sig, LeveledListNPC)...)
	out = append(out, reconstructLeveledListsOfKind(sr, acc, corr, log, reconcore.KindLVLC.Sig, LeveledListCreature)...)
	return out
}

func reconstructLeveledListsOfKind(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger, sig reconcore.Signature, listType LeveledListType) []*LeveledList {
	var out []*LeveledList
	for _, mr := range sr.MainRecordsOfKind(sig) {
		l := &LeveledList{Base: buildBase(mr, corr), ListType: listType}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			out = append(out, l)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				l.EditorID = binutil.CString(payload)
			case "LVLD":
				if len(payload) >= 1 {
					l.ChanceNone = payload[0]
				}
			case "LVLF":
				if len(payload) >= 1 {
					l.Flags = payload[0]
				}
			case "LVLO":
				if len(payload) < 10 {
					return true
				}
				level, ok1 := binutil.Int16At(payload, 0, bigEndian)
				formID, ok2 := binutil.Uint32At(payload, 4, bigEndian)
				count, ok3 := binutil.Int16At(payload, 8, bigEndian)
				if ok1 && ok2 && ok3 {
					l.Entries = append(l.Entries, LeveledListEntry{
						FormID: reconcore.FormID(formID), Level: level, Count: count,
					})
				}
			default:
				if log != nil {
					log.Debugf("%s %s: skipping unknown subrecord %q", listType, l.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, l)
	}
	return out
}
