package recon

import (
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// bsStringTModelOffset is the field offset (+80 bytes into a TESForm) the
// runtime projectile model path is read from (spec §4.6).
const bsStringTModelOffset = 80

// tesFormOffsetOf looks up the dump offset of the runtime TESForm backing
// formID, if the scan recorded one.
func tesFormOffsetOf(sr *recondump.ScanResult, formID reconcore.FormID) (uint64, bool) {
	for _, r := range sr.RuntimeEditorIDs {
		if r.FormID == formID && r.TESFormOffset != nil {
			return *r.TESFormOffset, true
		}
	}
	return 0, false
}

// enrichAmmoProjectiles implements the "Ammo ← Weapon ← Projectile" pass
// (spec §4.6): every weapon that names both an ammo and a projectile
// implies an ammo→projectile mapping; ammo missing its own projectile
// inherits the implied one, plus the projectile's runtime model path when
// available.
func enrichAmmoProjectiles(weapons []*Weapon, ammo []*Ammo, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) {
	implied := make(map[reconcore.FormID]reconcore.FormID)
	for _, w := range weapons {
		if w.AmmoFormID.Null() || w.ProjectileFormID.Null() {
			continue
		}
		if _, exists := implied[w.AmmoFormID]; !exists {
			implied[w.AmmoFormID] = w.ProjectileFormID
		}
	}

	for _, a := range ammo {
		if !a.ProjectileFormID.Null() {
			continue
		}
		projectileFormID, ok := implied[a.FormID]
		if !ok {
			continue
		}
		a.ProjectileFormID = projectileFormID

		if reader == nil {
			continue
		}
		offset, ok := tesFormOffsetOf(sr, projectileFormID)
		if !ok {
			continue
		}
		path, ok := reader.ReadBSStringT(offset, bsStringTModelOffset)
		if !ok {
			if log != nil {
				log.Debugf("ammo %s: BSStringT model path read failed for projectile %s", a.FormID, projectileFormID)
			}
			continue
		}
		a.ProjectileModelPath = path
	}
}

// enrichWeaponProjectilePhysics implements "Weapon ← Projectile physics"
// (spec §4.6): every weapon naming a projectile with a live runtime entry
// gets that projectile's physics attached.
func enrichWeaponProjectilePhysics(weapons []*Weapon, reader recondump.RuntimeReader, log recondump.Logger) {
	if reader == nil {
		return
	}
	for _, w := range weapons {
		if w.ProjectileFormID.Null() {
			continue
		}
		phys, ok := reader.ReadProjectilePhysics(w.ProjectileFormID)
		if !ok {
			if log != nil {
				log.Debugf("weap %s: projectile physics read failed for %s", w.FormID, w.ProjectileFormID)
			}
			continue
		}
		w.ProjectileData = &ProjectileData{
			Gravity:       phys.Gravity,
			Speed:         phys.Speed,
			Range:         phys.Range,
			ExplosionForm: phys.ExplosionForm,
			Sounds:        phys.Sounds,
		}
	}
}

// runCrossEnrichment runs all three cross-enrichment passes in the fixed
// order of spec §4.6.
func runCrossEnrichment(weapons []*Weapon, ammo []*Ammo, cells []*Cell, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) {
	enrichAmmoProjectiles(weapons, ammo, sr, reader, log)
	enrichWeaponProjectilePhysics(weapons, reader, log)
	attachLandHeightmaps(cells, sr.Lands)
}
