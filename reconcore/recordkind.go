package reconcore

// RecordKind identifies one of the closed set of ESM record types this
// engine reconstructs, and carries both its main-record Signature and (if
// any) the runtime TESForm form-type byte used to match live C++ objects
// against it (spec §6's runtime form-type byte map).
type RecordKind struct {
	Enum

	// Sig is the 4-character main-record signature, e.g. "NPC_".
	Sig Signature

	// FormType is the runtime form-type byte, or -1 if this kind has no
	// published runtime form type. DIAL and INFO both carry 0x45, the
	// shared fallback value (see spec §4.7).
	FormType int16
}

// HasFormType reports whether this kind has a known runtime form-type byte.
func (k RecordKind) HasFormType() bool { return k.FormType >= 0 }

// Known record kinds. FormType values are the contract values from spec §6;
// kinds not mentioned there (no published runtime form type) carry -1 and
// are only reconstructed from the ESM track.
var (
	KindNPC   = RecordKind{Enum{"Non-Player Character"}, "NPC_", 0x2A}
	KindCREA  = RecordKind{Enum{"Creature"}, "CREA", 0x2B}
	KindFACT  = RecordKind{Enum{"Faction"}, "FACT", 0x08}
	KindQUST  = RecordKind{Enum{"Quest"}, "QUST", 0x47}
	KindINFO  = RecordKind{Enum{"Dialogue Response"}, "INFO", 0x45}
	KindDIAL  = RecordKind{Enum{"Dialogue Topic"}, "DIAL", 0x45}
	KindCELL  = RecordKind{Enum{"Cell"}, "CELL", -1}
	KindWRLD  = RecordKind{Enum{"Worldspace"}, "WRLD", -1}
	KindWEAP  = RecordKind{Enum{"Weapon"}, "WEAP", 0x28}
	KindARMO  = RecordKind{Enum{"Armor"}, "ARMO", 0x18}
	KindAMMO  = RecordKind{Enum{"Ammunition"}, "AMMO", 0x29}
	KindALCH  = RecordKind{Enum{"Consumable"}, "ALCH", 0x2F}
	KindMISC  = RecordKind{Enum{"Misc Item"}, "MISC", 0x1F}
	KindKEYM  = RecordKind{Enum{"Key"}, "KEYM", 0x2E}
	KindCONT  = RecordKind{Enum{"Container"}, "CONT", 0x1B}
	KindPERK  = RecordKind{Enum{"Perk"}, "PERK", -1}
	KindSPEL  = RecordKind{Enum{"Spell/Ability"}, "SPEL", -1}
	KindRACE  = RecordKind{Enum{"Race"}, "RACE", -1}
	KindBOOK  = RecordKind{Enum{"Book"}, "BOOK", -1}
	KindTERM  = RecordKind{Enum{"Terminal"}, "TERM", 0x17}
	KindNOTE  = RecordKind{Enum{"Note"}, "NOTE", 0x31}
	KindLVLI  = RecordKind{Enum{"Leveled Item List"}, "LVLI", -1}
	KindLVLN  = RecordKind{Enum{"Leveled NPC List"}, "LVLN", -1}
	KindLVLC  = RecordKind{Enum{"Leveled Creature List"}, "LVLC", -1}
	KindGMST  = RecordKind{Enum{"Game Setting"}, "GMST", -1}
	KindGLOB  = RecordKind{Enum{"Global Variable"}, "GLOB", -1}
	KindENCH  = RecordKind{Enum{"Object Effect"}, "ENCH", -1}
	KindMGEF  = RecordKind{Enum{"Magic Effect"}, "MGEF", -1}
	KindIMOD  = RecordKind{Enum{"Item Mod"}, "IMOD", -1}
	KindRCPE  = RecordKind{Enum{"Recipe"}, "RCPE", -1}
	KindCHAL  = RecordKind{Enum{"Challenge"}, "CHAL", -1}
	KindREPU  = RecordKind{Enum{"Reputation"}, "REPU", -1}
	KindPROJ  = RecordKind{Enum{"Projectile"}, "PROJ", 0x33}
	KindEXPL  = RecordKind{Enum{"Explosion"}, "EXPL", -1}
	KindMESG  = RecordKind{Enum{"Message"}, "MESG", -1}
	KindCLAS  = RecordKind{Enum{"Class"}, "CLAS", -1}
)

// RecordKinds enumerates every supported record kind. Order here is
// cosmetic; it does not affect reconstruction ordering (which follows
// ScanResult.MainRecords order per record, see spec §5).
var RecordKinds = []RecordKind{
	KindNPC, KindCREA, KindFACT, KindQUST, KindINFO, KindDIAL,
	KindCELL, KindWRLD, KindWEAP, KindARMO, KindAMMO, KindALCH,
	KindMISC, KindKEYM, KindCONT, KindPERK, KindSPEL, KindRACE,
	KindBOOK, KindTERM, KindNOTE, KindLVLI, KindLVLN, KindLVLC,
	KindGMST, KindGLOB, KindENCH, KindMGEF, KindIMOD, KindRCPE,
	KindCHAL, KindREPU, KindPROJ, KindEXPL, KindMESG, KindCLAS,
}

// KindBySignature looks up a RecordKind by its main-record signature. ok is
// false for signatures this engine does not reconstruct.
func KindBySignature(sig Signature) (kind RecordKind, ok bool) {
	for _, k := range RecordKinds {
		if k.Sig == sig {
			return k, true
		}
	}
	return RecordKind{}, false
}
