package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Consumable is a reconstructed ALCH record (chems, food, drink).
type Consumable struct {
	Base
	FullName string
	Script   reconcore.FormID
	Value    int32
	Weight   float32

	// IsFood marks a non-addictive, non-medical consumable per the ENIT
	// flags word (bit 0x01 in the vanilla layout).
	IsFood bool
}

func reconstructConsumables(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Consumable {
	var out []*Consumable
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindALCH.Sig) {
		a := &Consumable{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			a.FullName = stubFullName(mr, sr)
			out = append(out, a)
			continue
		}
		it := binutil.NewSubrecordIter(buf, mr.IsBigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			if basicSubrecordSwitch(s.Signature, payload, mr.IsBigEndian, &a.EditorID, &a.FullName, &a.Script) {
				return true
			}
			switch s.Signature {
			case "DATA":
				if d, ok := parseItemDATA(payload, mr.IsBigEndian); ok {
					a.Value, a.Weight = d.Value, d.Weight
				}
			case "ENIT":
				if len(payload) >= 4 {
					flags, ok := binutil.Uint32At(payload, 0, mr.IsBigEndian)
					if ok {
						a.IsFood = flags&0x01 != 0
					}
				}
			default:
				if log != nil {
					log.Debugf("alch %s: skipping unknown subrecord %q", a.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, a)
	}
	return out
}
