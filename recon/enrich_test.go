package recon

import (
	"testing"

	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// TestEnrichAmmoProjectiles_S5 is spec §8 scenario S5: a weapon names both
// an ammo and a projectile; the ammo lacks its own projectile; the runtime
// reader resolves the projectile's model path via a BSStringT read at
// tes_form_offset+80.
func TestEnrichAmmoProjectiles_S5(t *testing.T) {
	const weaponID, ammoID, projID = reconcore.FormID(0x1), reconcore.FormID(0x2), reconcore.FormID(0x3)
	const tesFormOffset = uint64(0xDEAD0000)

	weapons := []*Weapon{{Base: Base{FormID: weaponID}, AmmoFormID: ammoID, ProjectileFormID: projID}}
	ammo := []*Ammo{{Base: Base{FormID: ammoID}}}

	sr := &recondump.ScanResult{
		RuntimeEditorIDs: []recondump.RuntimeEditorID{
			{FormID: projID, TESFormOffset: ptrUint64(tesFormOffset)},
		},
	}

	reader := &fakeRuntimeReader{
		bsString: func(fileOffset, fieldOffset uint64) (string, bool) {
			if fileOffset == tesFormOffset && fieldOffset == bsStringTModelOffset {
				return "meshes/weapons/ammo/9mmround.nif", true
			}
			return "", false
		},
	}

	enrichAmmoProjectiles(weapons, ammo, sr, reader, nil)

	if ammo[0].ProjectileFormID != projID {
		t.Errorf("ammo.ProjectileFormID = %v, want %v", ammo[0].ProjectileFormID, projID)
	}
	if ammo[0].ProjectileModelPath != "meshes/weapons/ammo/9mmround.nif" {
		t.Errorf("ammo.ProjectileModelPath = %q, want the resolved BSStringT value", ammo[0].ProjectileModelPath)
	}
}

func TestEnrichAmmoProjectiles_SkipsAmmoThatAlreadyHasProjectile(t *testing.T) {
	weapons := []*Weapon{{Base: Base{FormID: 1}, AmmoFormID: 2, ProjectileFormID: 3}}
	ammo := []*Ammo{{Base: Base{FormID: 2}, ProjectileFormID: 99}}
	enrichAmmoProjectiles(weapons, ammo, &recondump.ScanResult{}, nil, nil)
	if ammo[0].ProjectileFormID != 99 {
		t.Errorf("enrichAmmoProjectiles overwrote an ammo's existing projectile")
	}
}

func TestEnrichWeaponProjectilePhysics_AttachesOnSuccess(t *testing.T) {
	weapons := []*Weapon{{Base: Base{FormID: 1}, ProjectileFormID: 3}}
	reader := &fakeRuntimeReader{
		projectile: func(formID reconcore.FormID) (recondump.RuntimeProjectilePhysics, bool) {
			if formID != 3 {
				return recondump.RuntimeProjectilePhysics{}, false
			}
			return recondump.RuntimeProjectilePhysics{Gravity: 0.5, Speed: 9000, Range: 10000}, true
		},
	}
	enrichWeaponProjectilePhysics(weapons, reader, nil)
	if weapons[0].ProjectileData == nil {
		t.Fatalf("expected ProjectileData to be attached")
	}
	if weapons[0].ProjectileData.Speed != 9000 {
		t.Errorf("ProjectileData.Speed = %v, want 9000", weapons[0].ProjectileData.Speed)
	}
}

func TestEnrichWeaponProjectilePhysics_NilReaderNoPanic(t *testing.T) {
	weapons := []*Weapon{{Base: Base{FormID: 1}, ProjectileFormID: 3}}
	enrichWeaponProjectilePhysics(weapons, nil, nil)
	if weapons[0].ProjectileData != nil {
		t.Errorf("expected no ProjectileData with a nil reader")
	}
}

func ptrUint64(v uint64) *uint64 { return &v }
