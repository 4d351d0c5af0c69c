package recon

import (
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// fakeRuntimeReader is a test double for recondump.RuntimeReader: every
// method defaults to "not found" unless the corresponding func field is
// set, letting each test wire up only the runtime entries it cares about.
type fakeRuntimeReader struct {
	npc          func(reconcore.FormID) (recondump.RuntimeNPC, bool)
	creature     func(reconcore.FormID) (recondump.RuntimeCreature, bool)
	faction      func(reconcore.FormID) (recondump.RuntimeFaction, bool)
	quest        func(reconcore.FormID) (recondump.RuntimeQuest, bool)
	weapon       func(reconcore.FormID) (recondump.RuntimeWeapon, bool)
	armor        func(reconcore.FormID) (recondump.RuntimeArmor, bool)
	ammo         func(reconcore.FormID) (recondump.RuntimeAmmo, bool)
	consumable   func(reconcore.FormID) (recondump.RuntimeConsumable, bool)
	miscItem     func(reconcore.FormID) (recondump.RuntimeMiscItem, bool)
	key          func(reconcore.FormID) (recondump.RuntimeKey, bool)
	container    func(reconcore.FormID) (recondump.RuntimeContainer, bool)
	terminal     func(reconcore.FormID) (recondump.RuntimeTerminal, bool)
	note         func(reconcore.FormID) (recondump.RuntimeNote, bool)
	dialogueInfo func(reconcore.FormID) (recondump.RuntimeDialogueInfo, bool)
	projectile   func(reconcore.FormID) (recondump.RuntimeProjectilePhysics, bool)
	walkTopic    func(reconcore.FormID) ([]recondump.QuestInfoList, bool)
	bsString     func(fileOffset, fieldOffset uint64) (string, bool)
	allLandData  func() ([]recondump.Land, bool)
}

func (f *fakeRuntimeReader) ReadRuntimeNPC(formID reconcore.FormID) (recondump.RuntimeNPC, bool) {
	if f.npc == nil {
		return recondump.RuntimeNPC{}, false
	}
	return f.npc(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeCreature(formID reconcore.FormID) (recondump.RuntimeCreature, bool) {
	if f.creature == nil {
		return recondump.RuntimeCreature{}, false
	}
	return f.creature(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeFaction(formID reconcore.FormID) (recondump.RuntimeFaction, bool) {
	if f.faction == nil {
		return recondump.RuntimeFaction{}, false
	}
	return f.faction(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeQuest(formID reconcore.FormID) (recondump.RuntimeQuest, bool) {
	if f.quest == nil {
		return recondump.RuntimeQuest{}, false
	}
	return f.quest(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeWeapon(formID reconcore.FormID) (recondump.RuntimeWeapon, bool) {
	if f.weapon == nil {
		return recondump.RuntimeWeapon{}, false
	}
	return f.weapon(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeArmor(formID reconcore.FormID) (recondump.RuntimeArmor, bool) {
	if f.armor == nil {
		return recondump.RuntimeArmor{}, false
	}
	return f.armor(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeAmmo(formID reconcore.FormID) (recondump.RuntimeAmmo, bool) {
	if f.ammo == nil {
		return recondump.RuntimeAmmo{}, false
	}
	return f.ammo(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeConsumable(formID reconcore.FormID) (recondump.RuntimeConsumable, bool) {
	if f.consumable == nil {
		return recondump.RuntimeConsumable{}, false
	}
	return f.consumable(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeMiscItem(formID reconcore.FormID) (recondump.RuntimeMiscItem, bool) {
	if f.miscItem == nil {
		return recondump.RuntimeMiscItem{}, false
	}
	return f.miscItem(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeKey(formID reconcore.FormID) (recondump.RuntimeKey, bool) {
	if f.key == nil {
		return recondump.RuntimeKey{}, false
	}
	return f.key(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeContainer(formID reconcore.FormID) (recondump.RuntimeContainer, bool) {
	if f.container == nil {
		return recondump.RuntimeContainer{}, false
	}
	return f.container(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeTerminal(formID reconcore.FormID) (recondump.RuntimeTerminal, bool) {
	if f.terminal == nil {
		return recondump.RuntimeTerminal{}, false
	}
	return f.terminal(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeNote(formID reconcore.FormID) (recondump.RuntimeNote, bool) {
	if f.note == nil {
		return recondump.RuntimeNote{}, false
	}
	return f.note(formID)
}

func (f *fakeRuntimeReader) ReadRuntimeDialogueInfo(formID reconcore.FormID) (recondump.RuntimeDialogueInfo, bool) {
	if f.dialogueInfo == nil {
		return recondump.RuntimeDialogueInfo{}, false
	}
	return f.dialogueInfo(formID)
}

func (f *fakeRuntimeReader) ReadProjectilePhysics(formID reconcore.FormID) (recondump.RuntimeProjectilePhysics, bool) {
	if f.projectile == nil {
		return recondump.RuntimeProjectilePhysics{}, false
	}
	return f.projectile(formID)
}

func (f *fakeRuntimeReader) WalkTopicQuestInfoList(topicFormID reconcore.FormID) ([]recondump.QuestInfoList, bool) {
	if f.walkTopic == nil {
		return nil, false
	}
	return f.walkTopic(topicFormID)
}

func (f *fakeRuntimeReader) ReadBSStringT(fileOffset, fieldOffset uint64) (string, bool) {
	if f.bsString == nil {
		return "", false
	}
	return f.bsString(fileOffset, fieldOffset)
}

func (f *fakeRuntimeReader) ReadAllRuntimeLandData() ([]recondump.Land, bool) {
	if f.allLandData == nil {
		return nil, false
	}
	return f.allLandData()
}

var _ recondump.RuntimeReader = (*fakeRuntimeReader)(nil)
