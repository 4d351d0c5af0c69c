package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Projectile is a reconstructed PROJ record.
type Projectile struct {
	Base
	FullName      string
	Speed         float32
	Gravity       float32
	Range         float32
	ExplosionForm reconcore.FormID
}

func reconstructProjectiles(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Projectile {
	var out []*Projectile
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindPROJ.Sig) {
		p := &Projectile{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			p.FullName = stubFullName(mr, sr)
			out = append(out, p)
			continue
		}

		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				p.EditorID = binutil.CString(payload)
			case "FULL":
				p.FullName = DecodeText(payload)
			case "DATA":
				if len(payload) < 12 {
					return true
				}
				if v, ok := binutil.Float32At(payload, 0, bigEndian); ok {
					p.Speed = v
				}
				if v, ok := binutil.Float32At(payload, 4, bigEndian); ok {
					p.Gravity = v
				}
				if v, ok := binutil.Float32At(payload, 8, bigEndian); ok {
					p.Range = v
				}
			case "XNAM":
				if v, ok := single32FormID(payload, bigEndian); ok {
					p.ExplosionForm = v
				}
			default:
				if log != nil {
					log.Debugf("proj %s: skipping unknown subrecord %q", p.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, p)
	}
	return out
}

// Explosion is a reconstructed EXPL record.
type Explosion struct {
	Base
	FullName  string
	Force     float32
	Damage    float32
	Radius    float32
}

func reconstructExplosions(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Explosion {
	var out []*Explosion
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindEXPL.Sig) {
		e := &Explosion{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			e.FullName = stubFullName(mr, sr)
			out = append(out, e)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				e.EditorID = binutil.CString(payload)
			case "FULL":
				e.FullName = DecodeText(payload)
			case "DATA":
				if len(payload) < 12 {
					return true
				}
				if v, ok := binutil.Float32At(payload, 0, bigEndian); ok {
					e.Force = v
				}
				if v, ok := binutil.Float32At(payload, 4, bigEndian); ok {
					e.Damage = v
				}
				if v, ok := binutil.Float32At(payload, 8, bigEndian); ok {
					e.Radius = v
				}
			default:
				if log != nil {
					log.Debugf("expl %s: skipping unknown subrecord %q", e.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, e)
	}
	return out
}
