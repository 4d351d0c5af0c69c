package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// ProjectileData is runtime-sourced projectile physics attached to a weapon
// (spec §4.6, "Weapon ← Projectile physics").
type ProjectileData struct {
	Gravity       float32
	Speed         float32
	Range         float32
	ExplosionForm reconcore.FormID
	Sounds        []reconcore.FormID
}

// Weapon is a reconstructed WEAP record.
type Weapon struct {
	Base
	FullName string
	Script   reconcore.FormID
	Value    int32
	Weight   float32
	Damage   int16
	ClipSize uint8

	AmmoFormID       reconcore.FormID
	ProjectileFormID reconcore.FormID

	AnimationType uint32
	Speed         float32
	Reach         float32
	MinRange      float32
	MaxRange      float32
	ShotsPerSec   float32
	ActionPoints  float32

	// ProjectileData is attached by the cross-enrichment pass (spec §4.6),
	// not by the ESM track.
	ProjectileData *ProjectileData
}

func reconstructWeapons(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Weapon {
	var out []*Weapon
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindWEAP.Sig) {
		w := &Weapon{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			w.FullName = stubFullName(mr, sr)
			out = append(out, w)
			continue
		}

		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			if basicSubrecordSwitch(s.Signature, payload, bigEndian, &w.EditorID, &w.FullName, &w.Script) {
				return true
			}
			switch s.Signature {
			case "ANAM":
				if v, ok := single32FormID(payload, bigEndian); ok {
					w.AmmoFormID = v
				}
			case "DATA":
				if len(payload) < 11 {
					return true
				}
				if v, ok := binutil.Int32At(payload, 0, bigEndian); ok {
					w.Value = v
				}
				if v, ok := binutil.Float32At(payload, 4, bigEndian); ok {
					w.Weight = v
				}
				if v, ok := binutil.Int16At(payload, 8, bigEndian); ok {
					w.Damage = v
				}
				if len(payload) >= 11 {
					w.ClipSize = payload[10]
				}
			case "DNAM":
				if len(payload) < 64 {
					return true
				}
				if v, ok := binutil.Uint32At(payload, 0, bigEndian); ok {
					w.AnimationType = v
				}
				if v, ok := binutil.Float32At(payload, 4, bigEndian); ok {
					w.Speed = v
				}
				if v, ok := binutil.Float32At(payload, 8, bigEndian); ok {
					w.Reach = v
				}
				if v, ok := binutil.Uint32At(payload, 36, bigEndian); ok {
					w.ProjectileFormID = reconcore.FormID(v)
				}
				if v, ok := binutil.Float32At(payload, 44, bigEndian); ok {
					w.MinRange = v
				}
				if v, ok := binutil.Float32At(payload, 48, bigEndian); ok {
					w.MaxRange = v
				}
				if v, ok := binutil.Float32At(payload, 64, bigEndian); ok {
					w.ShotsPerSec = v
				}
				if v, ok := binutil.Float32At(payload, 68, bigEndian); ok {
					w.ActionPoints = v
				}
			default:
				if log != nil {
					log.Debugf("weap %s: skipping unknown subrecord %q", w.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, w)
	}
	return out
}
