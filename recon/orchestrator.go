package recon

import (
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// dedupeGeneric applies the universal "richest instance wins" dedup policy
// (spec §3) to record kinds without a kind-specific rule (§4.8 only
// special-cases dialogues and topics).
func dedupeGeneric[T any](items []T, formID func(T) reconcore.FormID, editorID func(T) string, fullName func(T) string) []T {
	return dedupeByFormID(items, formID, func(a, b T) bool {
		return richestStub(fullName(a), fullName(b), editorID(a), editorID(b))
	})
}

func applyCap[T any](items []T, sig reconcore.Signature, cfg Config, counts map[reconcore.Signature]int, log recondump.Logger) []T {
	if cfg.MaxRecordsPerKind <= 0 || len(items) <= cfg.MaxRecordsPerKind {
		return items
	}
	overflow := len(items) - cfg.MaxRecordsPerKind
	counts[sig] += overflow
	if log != nil {
		log.Debugf("%s: capped at %d records, %d dropped", sig, cfg.MaxRecordsPerKind, overflow)
	}
	return items[:cfg.MaxRecordsPerKind]
}

// ReconstructAll is the single-threaded, synchronous reconstruct_all entry
// point (spec §2 item 9, §5). Passes run in a fixed order: per-type ESM
// reconstruction, runtime-struct merge, cross-enrichment, dialogue graph
// construction, then bookkeeping.
//
// acc may be nil (scan-result only, no subrecord access). reader may be nil
// (no runtime track available): the runtime-merge pass is skipped, and
// cross-enrichment does only the work that needs no runtime reads (implied
// ammo projectiles and LAND heightmaps). external may be nil, in which case Correlation
// falls back to its nearest-preceding-MainRecord EDID heuristic.
func ReconstructAll(sr *recondump.ScanResult, acc recondump.Accessor, reader recondump.RuntimeReader, external map[reconcore.FormID]string, cfg Config, log recondump.Logger) *SemanticReconstructionResult {
	corr := BuildCorrelation(sr, external)

	counts := make(map[reconcore.Signature]int)

	npcs := applyCap(reconstructNPCs(sr, acc, corr, log), reconcore.KindNPC.Sig, cfg, counts, log)
	creatures := applyCap(reconstructCreatures(sr, acc, corr, log), reconcore.KindCREA.Sig, cfg, counts, log)
	factions := applyCap(reconstructFactions(sr, acc, corr, log), reconcore.KindFACT.Sig, cfg, counts, log)
	quests := applyCap(reconstructQuests(sr, acc, corr, log), reconcore.KindQUST.Sig, cfg, counts, log)
	dialogues := applyCap(reconstructDialogues(sr, acc, corr, log), reconcore.KindINFO.Sig, cfg, counts, log)
	topics := applyCap(reconstructTopics(sr, acc, corr, log), reconcore.KindDIAL.Sig, cfg, counts, log)
	cells := applyCap(reconstructCells(sr, acc, corr, log), reconcore.KindCELL.Sig, cfg, counts, log)
	worldspaces := applyCap(reconstructWorldspaces(sr, acc, corr, log), reconcore.KindWRLD.Sig, cfg, counts, log)
	weapons := applyCap(reconstructWeapons(sr, acc, corr, log), reconcore.KindWEAP.Sig, cfg, counts, log)
	armors := applyCap(reconstructArmors(sr, acc, corr, log), reconcore.KindARMO.Sig, cfg, counts, log)
	ammo := applyCap(reconstructAmmo(sr, acc, corr, log), reconcore.KindAMMO.Sig, cfg, counts, log)
	consumables := applyCap(reconstructConsumables(sr, acc, corr, log), reconcore.KindALCH.Sig, cfg, counts, log)
	miscItems := applyCap(reconstructMiscItems(sr, acc, corr, log), reconcore.KindMISC.Sig, cfg, counts, log)
	keys := applyCap(reconstructKeys(sr, acc, corr, log), reconcore.KindKEYM.Sig, cfg, counts, log)
	containers := applyCap(reconstructContainers(sr, acc, corr, log), reconcore.KindCONT.Sig, cfg, counts, log)
	perks := applyCap(reconstructPerks(sr, acc, corr, log), reconcore.KindPERK.Sig, cfg, counts, log)
	spells := applyCap(reconstructSpells(sr, acc, corr, log), reconcore.KindSPEL.Sig, cfg, counts, log)
	races := applyCap(reconstructRaces(sr, acc, corr, log), reconcore.KindRACE.Sig, cfg, counts, log)
	books := applyCap(reconstructBooks(sr, acc, corr, log), reconcore.KindBOOK.Sig, cfg, counts, log)
	terminals := applyCap(reconstructTerminals(sr, acc, corr, log), reconcore.KindTERM.Sig, cfg, counts, log)
	notes := applyCap(reconstructNotes(sr, acc, corr, log), reconcore.KindNOTE.Sig, cfg, counts, log)
	leveledLists := reconstructLeveledLists(sr, acc, corr, log)
	gameSettings := applyCap(reconstructGameSettings(sr, acc, corr, log), reconcore.KindGMST.Sig, cfg, counts, log)
	globalVariables := applyCap(reconstructGlobalVariables(sr, acc, corr, log), reconcore.KindGLOB.Sig, cfg, counts, log)
	enchantments := applyCap(reconstructEnchantments(sr, acc, corr, log), reconcore.KindENCH.Sig, cfg, counts, log)
	magicEffects := applyCap(reconstructMagicEffects(sr, acc, corr, log), reconcore.KindMGEF.Sig, cfg, counts, log)
	itemMods := applyCap(reconstructItemMods(sr, acc, corr, log), reconcore.KindIMOD.Sig, cfg, counts, log)
	recipes := applyCap(reconstructRecipes(sr, acc, corr, log), reconcore.KindRCPE.Sig, cfg, counts, log)
	challenges := applyCap(reconstructChallenges(sr, acc, corr, log), reconcore.KindCHAL.Sig, cfg, counts, log)
	reputations := applyCap(reconstructReputations(sr, acc, corr, log), reconcore.KindREPU.Sig, cfg, counts, log)
	projectiles := applyCap(reconstructProjectiles(sr, acc, corr, log), reconcore.KindPROJ.Sig, cfg, counts, log)
	explosions := applyCap(reconstructExplosions(sr, acc, corr, log), reconcore.KindEXPL.Sig, cfg, counts, log)
	messages := applyCap(reconstructMessages(sr, acc, corr, log), reconcore.KindMESG.Sig, cfg, counts, log)
	classes := applyCap(reconstructClasses(sr, acc, corr, log), reconcore.KindCLAS.Sig, cfg, counts, log)

	if cfg.RuntimeMerge && reader != nil {
		npcs = mergeRuntimeNPCs(npcs, sr, reader, log)
		creatures = mergeRuntimeCreatures(creatures, sr, reader, log)
		factions = mergeRuntimeFactions(factions, sr, reader, log)
		quests = mergeRuntimeQuests(quests, sr, reader, log)
		weapons = mergeRuntimeWeapons(weapons, sr, reader, log)
		armors = mergeRuntimeArmors(armors, sr, reader, log)
		ammo = mergeRuntimeAmmo(ammo, sr, reader, log)
		consumables = mergeRuntimeConsumables(consumables, sr, reader, log)
		miscItems = mergeRuntimeMiscItems(miscItems, sr, reader, log)
		keys = mergeRuntimeKeys(keys, sr, reader, log)
		containers = mergeRuntimeContainers(containers, sr, reader, log)
		terminals = mergeRuntimeTerminals(terminals, sr, reader, log)
		notes = mergeRuntimeNotes(notes, sr, reader, log)
	}

	npcs = dedupeGeneric(npcs, func(n *NPC) reconcore.FormID { return n.FormID }, func(n *NPC) string { return n.EditorID }, func(n *NPC) string { return n.FullName })
	creatures = dedupeGeneric(creatures, func(c *Creature) reconcore.FormID { return c.FormID }, func(c *Creature) string { return c.EditorID }, func(c *Creature) string { return c.FullName })
	factions = dedupeGeneric(factions, func(f *Faction) reconcore.FormID { return f.FormID }, func(f *Faction) string { return f.EditorID }, func(f *Faction) string { return f.FullName })
	quests = dedupeGeneric(quests, func(q *Quest) reconcore.FormID { return q.FormID }, func(q *Quest) string { return q.EditorID }, func(q *Quest) string { return q.FullName })
	cells = dedupeGeneric(cells, func(c *Cell) reconcore.FormID { return c.FormID }, func(c *Cell) string { return c.EditorID }, func(c *Cell) string { return c.FullName })
	worldspaces = dedupeGeneric(worldspaces, func(w *Worldspace) reconcore.FormID { return w.FormID }, func(w *Worldspace) string { return w.EditorID }, func(w *Worldspace) string { return w.FullName })
	weapons = dedupeGeneric(weapons, func(w *Weapon) reconcore.FormID { return w.FormID }, func(w *Weapon) string { return w.EditorID }, func(w *Weapon) string { return w.FullName })
	armors = dedupeGeneric(armors, func(a *Armor) reconcore.FormID { return a.FormID }, func(a *Armor) string { return a.EditorID }, func(a *Armor) string { return a.FullName })
	ammo = dedupeGeneric(ammo, func(a *Ammo) reconcore.FormID { return a.FormID }, func(a *Ammo) string { return a.EditorID }, func(a *Ammo) string { return a.FullName })
	consumables = dedupeGeneric(consumables, func(c *Consumable) reconcore.FormID { return c.FormID }, func(c *Consumable) string { return c.EditorID }, func(c *Consumable) string { return c.FullName })
	miscItems = dedupeGeneric(miscItems, func(m *MiscItem) reconcore.FormID { return m.FormID }, func(m *MiscItem) string { return m.EditorID }, func(m *MiscItem) string { return m.FullName })
	keys = dedupeGeneric(keys, func(k *Key) reconcore.FormID { return k.FormID }, func(k *Key) string { return k.EditorID }, func(k *Key) string { return k.FullName })
	containers = dedupeGeneric(containers, func(c *Container) reconcore.FormID { return c.FormID }, func(c *Container) string { return c.EditorID }, func(c *Container) string { return c.FullName })
	perks = dedupeGeneric(perks, func(p *Perk) reconcore.FormID { return p.FormID }, func(p *Perk) string { return p.EditorID }, func(p *Perk) string { return p.FullName })
	spells = dedupeGeneric(spells, func(s *Spell) reconcore.FormID { return s.FormID }, func(s *Spell) string { return s.EditorID }, func(s *Spell) string { return s.FullName })
	races = dedupeGeneric(races, func(r *Race) reconcore.FormID { return r.FormID }, func(r *Race) string { return r.EditorID }, func(r *Race) string { return r.FullName })
	books = dedupeGeneric(books, func(b *Book) reconcore.FormID { return b.FormID }, func(b *Book) string { return b.EditorID }, func(b *Book) string { return b.FullName })
	terminals = dedupeGeneric(terminals, func(t *Terminal) reconcore.FormID { return t.FormID }, func(t *Terminal) string { return t.EditorID }, func(t *Terminal) string { return t.FullName })
	notes = dedupeGeneric(notes, func(n *Note) reconcore.FormID { return n.FormID }, func(n *Note) string { return n.EditorID }, func(n *Note) string { return n.FullName })
	leveledLists = dedupeGeneric(leveledLists, func(l *LeveledList) reconcore.FormID { return l.FormID }, func(l *LeveledList) string { return l.EditorID }, func(l *LeveledList) string { return "" })
	gameSettings = dedupeGeneric(gameSettings, func(g *GameSetting) reconcore.FormID { return g.FormID }, func(g *GameSetting) string { return g.EditorID }, func(g *GameSetting) string { return "" })
	globalVariables = dedupeGeneric(globalVariables, func(g *GlobalVariable) reconcore.FormID { return g.FormID }, func(g *GlobalVariable) string { return g.EditorID }, func(g *GlobalVariable) string { return "" })
	enchantments = dedupeGeneric(enchantments, func(e *Enchantment) reconcore.FormID { return e.FormID }, func(e *Enchantment) string { return e.EditorID }, func(e *Enchantment) string { return e.FullName })
	magicEffects = dedupeGeneric(magicEffects, func(m *MagicEffect) reconcore.FormID { return m.FormID }, func(m *MagicEffect) string { return m.EditorID }, func(m *MagicEffect) string { return m.FullName })
	itemMods = dedupeGeneric(itemMods, func(i *ItemMod) reconcore.FormID { return i.FormID }, func(i *ItemMod) string { return i.EditorID }, func(i *ItemMod) string { return i.FullName })
	recipes = dedupeGeneric(recipes, func(r *Recipe) reconcore.FormID { return r.FormID }, func(r *Recipe) string { return r.EditorID }, func(r *Recipe) string { return "" })
	challenges = dedupeGeneric(challenges, func(c *Challenge) reconcore.FormID { return c.FormID }, func(c *Challenge) string { return c.EditorID }, func(c *Challenge) string { return c.FullName })
	reputations = dedupeGeneric(reputations, func(r *Reputation) reconcore.FormID { return r.FormID }, func(r *Reputation) string { return r.EditorID }, func(r *Reputation) string { return r.FullName })
	projectiles = dedupeGeneric(projectiles, func(p *Projectile) reconcore.FormID { return p.FormID }, func(p *Projectile) string { return p.EditorID }, func(p *Projectile) string { return p.FullName })
	explosions = dedupeGeneric(explosions, func(e *Explosion) reconcore.FormID { return e.FormID }, func(e *Explosion) string { return e.EditorID }, func(e *Explosion) string { return e.FullName })
	messages = dedupeGeneric(messages, func(m *Message) reconcore.FormID { return m.FormID }, func(m *Message) string { return m.EditorID }, func(m *Message) string { return m.FullName })
	classes = dedupeGeneric(classes, func(c *Class) reconcore.FormID { return c.FormID }, func(c *Class) string { return c.EditorID }, func(c *Class) string { return c.FullName })

	if cfg.CrossEnrichment {
		runCrossEnrichment(weapons, ammo, cells, sr, reader, log)
	}

	var tree *DialogueTree
	if cfg.DialogueGraph {
		dialogues, topics, tree = buildDialogueGraph(dialogues, topics, quests, sr, reader, log)
	} else {
		dialogues = dedupeDialogues(dialogues)
		topics = dedupeTopics(topics)
	}

	formIDToEditorID := make(map[reconcore.FormID]string)
	formIDToDisplayName := make(map[reconcore.FormID]string)
	for _, mr := range sr.MainRecords {
		if edid, ok := corr.EditorIDFor(mr.FormID); ok {
			formIDToEditorID[mr.FormID] = edid
		}
	}
	collectDisplayName := func(formID reconcore.FormID, name string) {
		if name != "" {
			formIDToDisplayName[formID] = name
		}
	}
	for _, n := range npcs {
		collectDisplayName(n.FormID, n.FullName)
	}
	for _, c := range creatures {
		collectDisplayName(c.FormID, c.FullName)
	}
	for _, f := range factions {
		collectDisplayName(f.FormID, f.FullName)
	}
	for _, q := range quests {
		collectDisplayName(q.FormID, q.FullName)
	}
	for _, t := range topics {
		collectDisplayName(t.FormID, t.FullName)
	}
	for _, c := range cells {
		collectDisplayName(c.FormID, c.FullName)
	}
	for _, w := range worldspaces {
		collectDisplayName(w.FormID, w.FullName)
	}
	for _, w := range weapons {
		collectDisplayName(w.FormID, w.FullName)
	}
	for _, a := range armors {
		collectDisplayName(a.FormID, a.FullName)
	}
	for _, a := range ammo {
		collectDisplayName(a.FormID, a.FullName)
	}
	for _, c := range consumables {
		collectDisplayName(c.FormID, c.FullName)
	}
	for _, m := range miscItems {
		collectDisplayName(m.FormID, m.FullName)
	}
	for _, k := range keys {
		collectDisplayName(k.FormID, k.FullName)
	}
	for _, c := range containers {
		collectDisplayName(c.FormID, c.FullName)
	}
	for _, p := range perks {
		collectDisplayName(p.FormID, p.FullName)
	}
	for _, s := range spells {
		collectDisplayName(s.FormID, s.FullName)
	}
	for _, r := range races {
		collectDisplayName(r.FormID, r.FullName)
	}
	for _, b := range books {
		collectDisplayName(b.FormID, b.FullName)
	}
	for _, t := range terminals {
		collectDisplayName(t.FormID, t.FullName)
	}
	for _, n := range notes {
		collectDisplayName(n.FormID, n.FullName)
	}
	for _, e := range enchantments {
		collectDisplayName(e.FormID, e.FullName)
	}
	for _, m := range magicEffects {
		collectDisplayName(m.FormID, m.FullName)
	}
	for _, i := range itemMods {
		collectDisplayName(i.FormID, i.FullName)
	}
	for _, c := range challenges {
		collectDisplayName(c.FormID, c.FullName)
	}
	for _, r := range reputations {
		collectDisplayName(r.FormID, r.FullName)
	}
	for _, p := range projectiles {
		collectDisplayName(p.FormID, p.FullName)
	}
	for _, e := range explosions {
		collectDisplayName(e.FormID, e.FullName)
	}
	for _, m := range messages {
		collectDisplayName(m.FormID, m.FullName)
	}
	for _, c := range classes {
		collectDisplayName(c.FormID, c.FullName)
	}

	for _, mr := range sr.MainRecords {
		if _, ok := reconcore.KindBySignature(mr.RecordType); !ok {
			counts[mr.RecordType]++
		}
	}

	return &SemanticReconstructionResult{
		NPCs: npcs, Creatures: creatures, Factions: factions, Quests: quests,
		Dialogues: dialogues, Topics: topics, Cells: cells, Worldspaces: worldspaces,
		Weapons: weapons, Armors: armors, Ammo: ammo, Consumables: consumables,
		MiscItems: miscItems, Keys: keys, Containers: containers, Perks: perks,
		Spells: spells, Races: races, Books: books, Terminals: terminals, Notes: notes,
		LeveledLists: leveledLists, GameSettings: gameSettings, GlobalVariables: globalVariables,
		Enchantments: enchantments, MagicEffects: magicEffects, ItemMods: itemMods,
		Recipes: recipes, Challenges: challenges, Reputations: reputations,
		Projectiles: projectiles, Explosions: explosions, Messages: messages, Classes: classes,

		FormIDToEditorID:    formIDToEditorID,
		FormIDToDisplayName: formIDToDisplayName,

		TotalRecordsProcessed:     len(sr.MainRecords),
		UnreconstructedTypeCounts: counts,

		DialogueTree: tree,
	}
}
