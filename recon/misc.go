package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// MiscItem is a reconstructed MISC record.
type MiscItem struct {
	Base
	FullName string
	Script   reconcore.FormID
	Value    int32
	Weight   float32
}

func reconstructMiscItems(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*MiscItem {
	var out []*MiscItem
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindMISC.Sig) {
		m := &MiscItem{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			m.FullName = stubFullName(mr, sr)
			out = append(out, m)
			continue
		}
		it := binutil.NewSubrecordIter(buf, mr.IsBigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			if basicSubrecordSwitch(s.Signature, payload, mr.IsBigEndian, &m.EditorID, &m.FullName, &m.Script) {
				return true
			}
			switch s.Signature {
			case "DATA":
				if d, ok := parseItemDATA(payload, mr.IsBigEndian); ok {
					m.Value, m.Weight = d.Value, d.Weight
				}
			default:
				if log != nil {
					log.Debugf("misc %s: skipping unknown subrecord %q", m.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, m)
	}
	return out
}
