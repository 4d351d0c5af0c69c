package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Armor is a reconstructed ARMO record.
type Armor struct {
	Base
	FullName string
	Script   reconcore.FormID
	Value    int32
	Weight   float32

	// ArmorRating is the DNAM subrecord's protection value.
	ArmorRating float32
}

func reconstructArmors(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Armor {
	var out []*Armor
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindARMO.Sig) {
		a := &Armor{Base: buildBase(mr, corr)}
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
			case "DNAM":
				if v, ok := binutil.Float32At(payload, 0, mr.IsBigEndian); ok {
					a.ArmorRating = v
				}
			default:
				if log != nil {
					log.Debugf("armo %s: skipping unknown subrecord %q", a.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, a)
	}
	return out
}
