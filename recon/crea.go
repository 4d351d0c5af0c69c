package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Creature is a reconstructed CREA record.
type Creature struct {
	Base
	FullName  string
	ActorBase *ActorBaseStats
	Script    reconcore.FormID

	Factions []FactionRank
	Items    []InventoryItem
}

func reconstructCreatures(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Creature {
	var out []*Creature
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindCREA.Sig) {
		c := &Creature{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			c.FullName = stubFullName(mr, sr)
			out = append(out, c)
			continue
		}

		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			if basicSubrecordSwitch(s.Signature, payload, bigEndian, &c.EditorID, &c.FullName, &c.Script) {
				return true
			}
			switch s.Signature {
			case "ACBS":
				if len(payload) != 24 {
					return true
				}
				window := buf[s.DataOffset-6 : s.DataOffset+s.DataLength]
				if f, ok := binutil.TryACBS(window); ok {
					c.ActorBase = actorBaseStatsFromFields(f)
				}
			case "SNAM":
				if len(payload) < 5 {
					return true
				}
				formID, ok := binutil.Uint32At(payload, 0, bigEndian)
				rank, rok := binutil.Int8At(payload, 4)
				if ok && rok {
					c.Factions = append(c.Factions, FactionRank{reconcore.FormID(formID), rank})
				}
			case "CNTO":
				if len(payload) < 8 {
					return true
				}
				itemID, ok1 := binutil.Uint32At(payload, 0, bigEndian)
				count, ok2 := binutil.Int32At(payload, 4, bigEndian)
				if ok1 && ok2 {
					c.Items = append(c.Items, InventoryItem{reconcore.FormID(itemID), count})
				}
			default:
				if log != nil {
					log.Debugf("crea %s: skipping unknown subrecord %q", c.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, c)
	}
	return out
}
