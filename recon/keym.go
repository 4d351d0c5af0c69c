package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Key is a reconstructed KEYM record.
type Key struct {
	Base
	FullName string
	Script   reconcore.FormID
	Value    int32
	Weight   float32
}

func reconstructKeys(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Key {
	var out []*Key
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindKEYM.Sig) {
		k := &Key{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			k.FullName = stubFullName(mr, sr)
			out = append(out, k)
			continue
		}
		it := binutil.NewSubrecordIter(buf, mr.IsBigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			if basicSubrecordSwitch(s.Signature, payload, mr.IsBigEndian, &k.EditorID, &k.FullName, &k.Script) {
				return true
			}
			switch s.Signature {
			case "DATA":
				if d, ok := parseItemDATA(payload, mr.IsBigEndian); ok {
					k.Value, k.Weight = d.Value, d.Weight
				}
			default:
				if log != nil {
					log.Debugf("keym %s: skipping unknown subrecord %q", k.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, k)
	}
	return out
}
