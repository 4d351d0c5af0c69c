package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Ammo is a reconstructed AMMO record.
type Ammo struct {
	Base
	FullName string
	Value    int32
	Weight   float32

	ProjectilesPerShot uint32
	ProjectileFormID   reconcore.FormID

	// ProjectileModelPath is attached by the cross-enrichment pass (spec
	// §4.6, "Ammo ← Weapon ← Projectile") when the ammo's own DAT2 carries
	// no projectile but one can be inferred from a weapon.
	ProjectileModelPath string
}

func reconstructAmmo(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Ammo {
	var out []*Ammo
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindAMMO.Sig) {
		a := &Ammo{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			a.FullName = stubFullName(mr, sr)
			out = append(out, a)
			continue
		}

		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				a.EditorID = binutil.CString(payload)
			case "FULL":
				a.FullName = DecodeText(payload)
			case "DATA":
				if d, ok := parseItemDATA(payload, bigEndian); ok {
					a.Value, a.Weight = d.Value, d.Weight
				}
			case "DAT2":
				if len(payload) < 8 {
					return true
				}
				if v, ok := binutil.Uint32At(payload, 0, bigEndian); ok {
					a.ProjectilesPerShot = v
				}
				if v, ok := binutil.Uint32At(payload, 4, bigEndian); ok {
					a.ProjectileFormID = reconcore.FormID(v)
				}
				// weight (offset 8) is optional; DATA already carries weight.
			default:
				if log != nil {
					log.Debugf("ammo %s: skipping unknown subrecord %q", a.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, a)
	}
	return out
}
