package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Container is a reconstructed CONT record.
type Container struct {
	Base
	FullName string
	Script   reconcore.FormID
	Flags    uint8
	Weight   float32

	// Contents is the static CNTO inventory list. Per spec §4.5, the
	// runtime merge pass replaces (not enriches) this slice when the live
	// container state has a non-empty contents list, since current game
	// state overrides the static definition.
	Contents []InventoryItem
}

func reconstructContainers(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Container {
	var out []*Container
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindCONT.Sig) {
		c := &Container{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			c.FullName = stubFullName(mr, sr)
			out = append(out, c)
			continue
		}
		it := binutil.NewSubrecordIter(buf, mr.IsBigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			if basicSubrecordSwitch(s.Signature, payload, mr.IsBigEndian, &c.EditorID, &c.FullName, &c.Script) {
				return true
			}
			switch s.Signature {
			case "CNTO":
				if len(payload) < 8 {
					return true
				}
				itemID, ok1 := binutil.Uint32At(payload, 0, mr.IsBigEndian)
				count, ok2 := binutil.Int32At(payload, 4, mr.IsBigEndian)
				if ok1 && ok2 {
					c.Contents = append(c.Contents, InventoryItem{reconcore.FormID(itemID), count})
				}
			case "DATA":
				if len(payload) >= 1 {
					c.Flags = payload[0]
				}
				if w, ok := binutil.Float32At(payload, 4, mr.IsBigEndian); ok {
					c.Weight = w
				}
			default:
				if log != nil {
					log.Debugf("cont %s: skipping unknown subrecord %q", c.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, c)
	}
	return out
}
