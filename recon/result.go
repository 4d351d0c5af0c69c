package recon

import "github.com/fnv360/semrecon/reconcore"

// SemanticReconstructionResult is the flat output aggregate of
// reconstruct_all: one field per supported record kind, plus the
// correlation indexes and bookkeeping counters (spec §6). Field order is
// stable.
type SemanticReconstructionResult struct {
	NPCs            []*NPC
	Creatures       []*Creature
	Factions        []*Faction
	Quests          []*Quest
	Dialogues       []*Dialogue
	Topics          []*Topic
	Cells           []*Cell
	Worldspaces     []*Worldspace
	Weapons         []*Weapon
	Armors          []*Armor
	Ammo            []*Ammo
	Consumables     []*Consumable
	MiscItems       []*MiscItem
	Keys            []*Key
	Containers      []*Container
	Perks           []*Perk
	Spells          []*Spell
	Races           []*Race
	Books           []*Book
	Terminals       []*Terminal
	Notes           []*Note
	LeveledLists    []*LeveledList
	GameSettings    []*GameSetting
	GlobalVariables []*GlobalVariable
	Enchantments    []*Enchantment
	MagicEffects    []*MagicEffect
	ItemMods        []*ItemMod
	Recipes         []*Recipe
	Challenges      []*Challenge
	Reputations     []*Reputation
	Projectiles     []*Projectile
	Explosions      []*Explosion
	Messages        []*Message
	Classes         []*Class

	FormIDToEditorID    map[reconcore.FormID]string
	FormIDToDisplayName map[reconcore.FormID]string

	TotalRecordsProcessed     int
	UnreconstructedTypeCounts map[reconcore.Signature]int

	DialogueTree *DialogueTree
}
