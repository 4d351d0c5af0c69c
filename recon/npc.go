package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// ActorBaseStats is the parsed payload of an ACBS subrecord (spec §4.2,
// §6), shared by NPC_ and CREA reconstructions.
type ActorBaseStats struct {
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
}

func actorBaseStatsFromFields(f binutil.ACBSFields) *ActorBaseStats {
	return &ActorBaseStats{
		Flags: f.Flags, FatigueBase: f.FatigueBase, BarterGold: f.BarterGold,
		Level: f.Level, CalcMin: f.CalcMin, CalcMax: f.CalcMax,
		SpeedMul: f.SpeedMul, Karma: f.Karma, Disposition: f.Disposition,
		TemplateFlags: f.TemplateFlags,
	}
}

// FactionRank is a SNAM faction membership entry.
type FactionRank struct {
	FactionFormID reconcore.FormID
	Rank          int8
}

// InventoryItem is a CNTO inventory entry (NPC default inventory or
// container contents).
type InventoryItem struct {
	ItemFormID reconcore.FormID
	Count      int32
}

// NPC is a reconstructed NPC_ record.
type NPC struct {
	Base
	FullName string

	ActorBase *ActorBaseStats

	Race     reconcore.FormID // RNAM
	Script   reconcore.FormID // SCRI
	Class    reconcore.FormID // CNAM
	DeathItem reconcore.FormID // INAM
	Voice    reconcore.FormID // VTCK
	Template reconcore.FormID // TPLT

	Factions []FactionRank
	Spells   []reconcore.FormID
	Items    []InventoryItem
	Packages []reconcore.FormID
}

// reconstructNPCs builds the NPC_ ESM track (spec §4.4).
func reconstructNPCs(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*NPC {
	var out []*NPC
	for _, mr := range sr.MainRecordsOfKind(reconcore.Signature(reconcore.KindNPC.Sig)) {
		n := &NPC{Base: buildBase(mr, corr)}

		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			n.FullName = stubFullName(mr, sr)
			out = append(out, n)
			continue
		}

		populateNPC(n, buf, mr.IsBigEndian, log)
		out = append(out, n)
	}
	return out
}

func populateNPC(n *NPC, buf []byte, bigEndian bool, log recondump.Logger) {
	it := binutil.NewSubrecordIter(buf, bigEndian)
	it.Each(func(s binutil.Subrecord) bool {
		payload := s.Payload(buf)
		switch s.Signature {
		case "EDID":
			n.EditorID = binutil.CString(payload)
		case "FULL":
			n.FullName = DecodeText(payload)
		case "ACBS":
			if len(payload) != 24 {
				return true
			}
			window := buf[s.DataOffset-6 : s.DataOffset+s.DataLength]
			if f, ok := binutil.TryACBS(window); ok {
				n.ActorBase = actorBaseStatsFromFields(f)
			}
		case "RNAM":
			if v, ok := single32FormID(payload, bigEndian); ok {
				n.Race = v
			}
		case "SCRI":
			if v, ok := single32FormID(payload, bigEndian); ok {
				n.Script = v
			}
		case "CNAM":
			if v, ok := single32FormID(payload, bigEndian); ok {
				n.Class = v
			}
		case "INAM":
			if v, ok := single32FormID(payload, bigEndian); ok {
				n.DeathItem = v
			}
		case "VTCK":
			if v, ok := single32FormID(payload, bigEndian); ok {
				n.Voice = v
			}
		case "TPLT":
			if v, ok := single32FormID(payload, bigEndian); ok {
				n.Template = v
			}
		case "SNAM":
			if len(payload) < 5 {
				return true
			}
			formID, ok := binutil.Uint32At(payload, 0, bigEndian)
			rank, rok := binutil.Int8At(payload, 4)
			if ok && rok {
				n.Factions = append(n.Factions, FactionRank{reconcore.FormID(formID), rank})
			}
		case "SPLO":
			if v, ok := single32FormID(payload, bigEndian); ok {
				n.Spells = append(n.Spells, v)
			}
		case "CNTO":
			if len(payload) < 8 {
				return true
			}
			itemID, ok1 := binutil.Uint32At(payload, 0, bigEndian)
			count, ok2 := binutil.Int32At(payload, 4, bigEndian)
			if ok1 && ok2 {
				n.Items = append(n.Items, InventoryItem{reconcore.FormID(itemID), count})
			}
		case "PKID":
			if v, ok := single32FormID(payload, bigEndian); ok {
				n.Packages = append(n.Packages, v)
			}
		default:
			if log != nil {
				log.Debugf("npc %s: skipping unknown subrecord %q", n.FormID, s.Signature)
			}
		}
		return true
	})
}
