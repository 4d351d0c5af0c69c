package recondump

import "github.com/fnv360/semrecon/reconcore"

// RuntimeActorBase is the runtime-track view of an NPC_/CREA's actor-base
// stats, read directly from the live TESForm's ACBS-shaped fields.
type RuntimeActorBase struct {
	Flags         uint32
	FatigueBase   uint16
	BarterGold    uint16
	Level         int16
	CalcMin       uint16
	CalcMax       uint16
	SpeedMul      uint16
	Karma         float32
	Disposition   int16
	TemplateFlags uint16
}

// RuntimeNPC is the runtime-track view of an NPC_ TESForm.
type RuntimeNPC struct {
	FormID      reconcore.FormID
	EditorID    string
	FullName    string
	ActorBase   *RuntimeActorBase
	Race        reconcore.FormID
	Class       reconcore.FormID
	Voice       reconcore.FormID
	Template    reconcore.FormID
	DumpOffset  int64
	IsBigEndian bool
}

// RuntimeCreature is the runtime-track view of a CREA TESForm.
type RuntimeCreature struct {
	FormID      reconcore.FormID
	EditorID    string
	FullName    string
	ActorBase   *RuntimeActorBase
	DumpOffset  int64
	IsBigEndian bool
}

// RuntimeWeapon is the runtime-track view of a WEAP TESForm.
type RuntimeWeapon struct {
	FormID           reconcore.FormID
	EditorID         string
	FullName         string
	AmmoFormID       reconcore.FormID
	ProjectileFormID reconcore.FormID
	Damage           int16
	DumpOffset       int64
	IsBigEndian      bool
}

// RuntimeFaction is the runtime-track view of a FACT TESForm.
type RuntimeFaction struct {
	FormID      reconcore.FormID
	EditorID    string
	FullName    string
	Flags       uint32
	DumpOffset  int64
	IsBigEndian bool
}

// RuntimeQuest is the runtime-track view of a QUST TESForm.
type RuntimeQuest struct {
	FormID      reconcore.FormID
	EditorID    string
	FullName    string
	Flags       uint8
	Priority    uint8
	DumpOffset  int64
	IsBigEndian bool
}

// RuntimeArmor is the runtime-track view of an ARMO TESForm.
type RuntimeArmor struct {
	FormID      reconcore.FormID
	EditorID    string
	FullName    string
	Value       int32
	Weight      float32
	ArmorRating float32
	DumpOffset  int64
	IsBigEndian bool
}

// RuntimeAmmo is the runtime-track view of an AMMO TESForm.
type RuntimeAmmo struct {
	FormID             reconcore.FormID
	EditorID           string
	FullName           string
	Value              int32
	Weight             float32
	ProjectilesPerShot uint32
	ProjectileFormID   reconcore.FormID
	DumpOffset         int64
	IsBigEndian        bool
}

// RuntimeConsumable is the runtime-track view of an ALCH TESForm.
type RuntimeConsumable struct {
	FormID      reconcore.FormID
	EditorID    string
	FullName    string
	Value       int32
	Weight      float32
	IsFood      bool
	DumpOffset  int64
	IsBigEndian bool
}

// RuntimeMiscItem is the runtime-track view of a MISC TESForm.
type RuntimeMiscItem struct {
	FormID      reconcore.FormID
	EditorID    string
	FullName    string
	Value       int32
	Weight      float32
	DumpOffset  int64
	IsBigEndian bool
}

// RuntimeKey is the runtime-track view of a KEYM TESForm.
type RuntimeKey struct {
	FormID      reconcore.FormID
	EditorID    string
	FullName    string
	Value       int32
	Weight      float32
	DumpOffset  int64
	IsBigEndian bool
}

// RuntimeTerminal is the runtime-track view of a TERM TESForm.
type RuntimeTerminal struct {
	FormID       reconcore.FormID
	EditorID     string
	FullName     string
	DifficultyID uint8
	DumpOffset   int64
	IsBigEndian  bool
}

// RuntimeNote is the runtime-track view of a NOTE TESForm.
type RuntimeNote struct {
	FormID      reconcore.FormID
	EditorID    string
	FullName    string
	Text        string
	SoundFormID reconcore.FormID
	DumpOffset  int64
	IsBigEndian bool
}

// RuntimeInventoryItem is one runtime container-contents entry.
type RuntimeInventoryItem struct {
	ItemFormID reconcore.FormID
	Count      int32
}

// RuntimeContainer is the runtime-track view of a CONT TESForm. Contents
// reflects current in-game state and, when non-empty, supersedes the ESM's
// static CNTO list per spec §4.5's container exception.
type RuntimeContainer struct {
	FormID      reconcore.FormID
	EditorID    string
	FullName    string
	Contents    []RuntimeInventoryItem
	DumpOffset  int64
	IsBigEndian bool
}

// RuntimeDialogueInfo is the runtime-track view of a TESTopicInfo struct.
type RuntimeDialogueInfo struct {
	FormID        reconcore.FormID
	EditorID      string
	PromptText    string
	InfoIndex     int32
	InfoFlags     uint32
	InfoFlagsExt  uint32
	Difficulty    uint32
	SpeakerFormID reconcore.FormID
	QuestFormID   reconcore.FormID
	DumpOffset    int64
	IsBigEndian   bool
}

// RuntimeProjectilePhysics is the runtime-track view of a PROJ TESForm's
// physics fields, attached to weapons by the Weapon←Projectile enrichment
// pass (spec §4.6).
type RuntimeProjectilePhysics struct {
	Gravity       float32
	Speed         float32
	Range         float32
	ExplosionForm reconcore.FormID
	Sounds        []reconcore.FormID
}

// QuestInfoEntry is one entry of a TESTopic.m_listQuestInfo walk: an INFO
// FormID plus the virtual address of its backing TESTopicInfo struct.
type QuestInfoEntry struct {
	FormID        reconcore.FormID
	VirtualAddr   uint64
}

// QuestInfoList is one quest's INFO entries under a walked DIAL topic.
type QuestInfoList struct {
	QuestFormID reconcore.FormID
	Infos       []QuestInfoEntry
}

// RuntimeReader is the capability trait exposing the live C++ object graph,
// one typed method per supported record kind plus the handful of
// specialized walks the dialogue graph builder needs (spec §6). Every
// method returns ok=false on any failure; the core treats that as absence
// and continues (spec §4.9).
type RuntimeReader interface {
	ReadRuntimeNPC(formID reconcore.FormID) (RuntimeNPC, bool)
	ReadRuntimeCreature(formID reconcore.FormID) (RuntimeCreature, bool)
	ReadRuntimeFaction(formID reconcore.FormID) (RuntimeFaction, bool)
	ReadRuntimeQuest(formID reconcore.FormID) (RuntimeQuest, bool)
	ReadRuntimeWeapon(formID reconcore.FormID) (RuntimeWeapon, bool)
	ReadRuntimeArmor(formID reconcore.FormID) (RuntimeArmor, bool)
	ReadRuntimeAmmo(formID reconcore.FormID) (RuntimeAmmo, bool)
	ReadRuntimeConsumable(formID reconcore.FormID) (RuntimeConsumable, bool)
	ReadRuntimeMiscItem(formID reconcore.FormID) (RuntimeMiscItem, bool)
	ReadRuntimeKey(formID reconcore.FormID) (RuntimeKey, bool)
	ReadRuntimeContainer(formID reconcore.FormID) (RuntimeContainer, bool)
	ReadRuntimeTerminal(formID reconcore.FormID) (RuntimeTerminal, bool)
	ReadRuntimeNote(formID reconcore.FormID) (RuntimeNote, bool)
	ReadRuntimeDialogueInfo(formID reconcore.FormID) (RuntimeDialogueInfo, bool)
	ReadProjectilePhysics(formID reconcore.FormID) (RuntimeProjectilePhysics, bool)

	// WalkTopicQuestInfoList walks TESTopic.m_listQuestInfo for the DIAL
	// runtime entry identified by topicFormID.
	WalkTopicQuestInfoList(topicFormID reconcore.FormID) ([]QuestInfoList, bool)

	// ReadBSStringT reads a runtime C++ string at fieldOffset bytes into
	// the TESForm resident at fileOffset.
	ReadBSStringT(fileOffset uint64, fieldOffset uint64) (string, bool)

	// ReadAllRuntimeLandData returns every runtime-resident LAND heightmap,
	// keyed implicitly by (CellX, CellY) on each returned Land.
	ReadAllRuntimeLandData() ([]Land, bool)
}
