package recon

import (
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// candidateRuntimeFormIDs returns the distinct FormIDs of runtime entries
// whose scanned form_type byte matches formType (spec §4.5 step 1). formType
// < 0 means the kind has no published runtime form type; nothing merges.
func candidateRuntimeFormIDs(sr *recondump.ScanResult, formType int16) []reconcore.FormID {
	if formType < 0 {
		return nil
	}
	seen := make(map[reconcore.FormID]bool)
	var out []reconcore.FormID
	for _, r := range sr.RuntimeEditorIDs {
		if int16(r.FormType) != formType || r.FormID.Null() || seen[r.FormID] {
			continue
		}
		seen[r.FormID] = true
		out = append(out, r.FormID)
	}
	return out
}

func richestBase(aEDID, bEDID, aFullName, bFullName string) bool {
	return richestStub(aFullName, bFullName, aEDID, bEDID)
}

// mergeRuntimeNPCs implements spec §4.5 for NPC_: enrich in place where the
// ESM track left a field absent, append runtime-only entries, dedup by
// FormID.
func mergeRuntimeNPCs(npcs []*NPC, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*NPC {
	if reader == nil {
		return npcs
	}
	byFormID := make(map[reconcore.FormID]*NPC, len(npcs))
	for _, n := range npcs {
		byFormID[n.FormID] = n
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindNPC.FormType) {
		rn, ok := reader.ReadRuntimeNPC(formID)
		if !ok {
			if log != nil {
				log.Debugf("npc %s: runtime read failed", formID)
			}
			continue
		}
		if n, exists := byFormID[formID]; exists {
			enrichNPC(n, rn)
			continue
		}
		n := npcFromRuntime(rn)
		npcs = append(npcs, n)
		byFormID[formID] = n
	}
	return dedupeByFormID(npcs,
		func(n *NPC) reconcore.FormID { return n.FormID },
		func(a, b *NPC) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

func enrichNPC(n *NPC, rn recondump.RuntimeNPC) {
	if n.EditorID == "" {
		n.EditorID = rn.EditorID
	}
	if n.FullName == "" {
		n.FullName = rn.FullName
	}
	if n.ActorBase == nil && rn.ActorBase != nil {
		n.ActorBase = &ActorBaseStats{
			Flags: rn.ActorBase.Flags, FatigueBase: rn.ActorBase.FatigueBase,
			BarterGold: rn.ActorBase.BarterGold, Level: rn.ActorBase.Level,
			CalcMin: rn.ActorBase.CalcMin, CalcMax: rn.ActorBase.CalcMax,
			SpeedMul: rn.ActorBase.SpeedMul, Karma: rn.ActorBase.Karma,
			Disposition: rn.ActorBase.Disposition, TemplateFlags: rn.ActorBase.TemplateFlags,
		}
	}
	if n.Race.Null() {
		n.Race = rn.Race
	}
	if n.Class.Null() {
		n.Class = rn.Class
	}
	if n.Voice.Null() {
		n.Voice = rn.Voice
	}
	if n.Template.Null() {
		n.Template = rn.Template
	}
}

func npcFromRuntime(rn recondump.RuntimeNPC) *NPC {
	n := &NPC{
		Base: Base{FormID: rn.FormID, EditorID: rn.EditorID, Offset: rn.DumpOffset, IsBigEndian: rn.IsBigEndian},
		FullName: rn.FullName, Race: rn.Race, Class: rn.Class, Voice: rn.Voice, Template: rn.Template,
	}
	if rn.ActorBase != nil {
		enrichNPC(n, rn)
	}
	return n
}

// mergeRuntimeCreatures is CREA's analogue of mergeRuntimeNPCs.
func mergeRuntimeCreatures(creatures []*Creature, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Creature {
	if reader == nil {
		return creatures
	}
	byFormID := make(map[reconcore.FormID]*Creature, len(creatures))
	for _, c := range creatures {
		byFormID[c.FormID] = c
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindCREA.FormType) {
		rc, ok := reader.ReadRuntimeCreature(formID)
		if !ok {
			if log != nil {
				log.Debugf("crea %s: runtime read failed", formID)
			}
			continue
		}
		if c, exists := byFormID[formID]; exists {
			enrichCreature(c, rc)
			continue
		}
		c := &Creature{
			Base:     Base{FormID: rc.FormID, EditorID: rc.EditorID, Offset: rc.DumpOffset, IsBigEndian: rc.IsBigEndian},
			FullName: rc.FullName,
		}
		if rc.ActorBase != nil {
			enrichCreature(c, rc)
		}
		creatures = append(creatures, c)
		byFormID[formID] = c
	}
	return dedupeByFormID(creatures,
		func(c *Creature) reconcore.FormID { return c.FormID },
		func(a, b *Creature) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

func enrichCreature(c *Creature, rc recondump.RuntimeCreature) {
	if c.EditorID == "" {
		c.EditorID = rc.EditorID
	}
	if c.FullName == "" {
		c.FullName = rc.FullName
	}
	if c.ActorBase == nil && rc.ActorBase != nil {
		c.ActorBase = &ActorBaseStats{
			Flags: rc.ActorBase.Flags, FatigueBase: rc.ActorBase.FatigueBase,
			BarterGold: rc.ActorBase.BarterGold, Level: rc.ActorBase.Level,
			CalcMin: rc.ActorBase.CalcMin, CalcMax: rc.ActorBase.CalcMax,
			SpeedMul: rc.ActorBase.SpeedMul, Karma: rc.ActorBase.Karma,
			Disposition: rc.ActorBase.Disposition, TemplateFlags: rc.ActorBase.TemplateFlags,
		}
	}
}

// mergeRuntimeWeapons implements spec §4.5 for WEAP.
func mergeRuntimeWeapons(weapons []*Weapon, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Weapon {
	if reader == nil {
		return weapons
	}
	byFormID := make(map[reconcore.FormID]*Weapon, len(weapons))
	for _, w := range weapons {
		byFormID[w.FormID] = w
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindWEAP.FormType) {
		rw, ok := reader.ReadRuntimeWeapon(formID)
		if !ok {
			if log != nil {
				log.Debugf("weap %s: runtime read failed", formID)
			}
			continue
		}
		if w, exists := byFormID[formID]; exists {
			if w.EditorID == "" {
				w.EditorID = rw.EditorID
			}
			if w.FullName == "" {
				w.FullName = rw.FullName
			}
			if w.AmmoFormID.Null() {
				w.AmmoFormID = rw.AmmoFormID
			}
			if w.ProjectileFormID.Null() {
				w.ProjectileFormID = rw.ProjectileFormID
			}
			if w.Damage == 0 {
				w.Damage = rw.Damage
			}
			continue
		}
		w := &Weapon{
			Base:             Base{FormID: rw.FormID, EditorID: rw.EditorID, Offset: rw.DumpOffset, IsBigEndian: rw.IsBigEndian},
			FullName:         rw.FullName,
			AmmoFormID:       rw.AmmoFormID,
			ProjectileFormID: rw.ProjectileFormID,
			Damage:           rw.Damage,
		}
		weapons = append(weapons, w)
		byFormID[formID] = w
	}
	return dedupeByFormID(weapons,
		func(w *Weapon) reconcore.FormID { return w.FormID },
		func(a, b *Weapon) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

// mergeRuntimeFactions implements spec §4.5 for FACT.
func mergeRuntimeFactions(factions []*Faction, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Faction {
	if reader == nil {
		return factions
	}
	byFormID := make(map[reconcore.FormID]*Faction, len(factions))
	for _, f := range factions {
		byFormID[f.FormID] = f
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindFACT.FormType) {
		rf, ok := reader.ReadRuntimeFaction(formID)
		if !ok {
			if log != nil {
				log.Debugf("fact %s: runtime read failed", formID)
			}
			continue
		}
		if f, exists := byFormID[formID]; exists {
			if f.EditorID == "" {
				f.EditorID = rf.EditorID
			}
			if f.FullName == "" {
				f.FullName = rf.FullName
			}
			if f.Flags == 0 {
				f.Flags = rf.Flags
			}
			continue
		}
		f := &Faction{
			Base:     Base{FormID: rf.FormID, EditorID: rf.EditorID, Offset: rf.DumpOffset, IsBigEndian: rf.IsBigEndian},
			FullName: rf.FullName,
			Flags:    rf.Flags,
		}
		factions = append(factions, f)
		byFormID[formID] = f
	}
	return dedupeByFormID(factions,
		func(f *Faction) reconcore.FormID { return f.FormID },
		func(a, b *Faction) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

// mergeRuntimeQuests implements spec §4.5 for QUST. The runtime track carries
// no stage/objective data, so only the identifying and DATA-shaped fields
// can be filled from it.
func mergeRuntimeQuests(quests []*Quest, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Quest {
	if reader == nil {
		return quests
	}
	byFormID := make(map[reconcore.FormID]*Quest, len(quests))
	for _, q := range quests {
		byFormID[q.FormID] = q
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindQUST.FormType) {
		rq, ok := reader.ReadRuntimeQuest(formID)
		if !ok {
			if log != nil {
				log.Debugf("qust %s: runtime read failed", formID)
			}
			continue
		}
		if q, exists := byFormID[formID]; exists {
			if q.EditorID == "" {
				q.EditorID = rq.EditorID
			}
			if q.FullName == "" {
				q.FullName = rq.FullName
			}
			if q.Flags == 0 {
				q.Flags = rq.Flags
			}
			if q.Priority == 0 {
				q.Priority = rq.Priority
			}
			continue
		}
		q := &Quest{
			Base:     Base{FormID: rq.FormID, EditorID: rq.EditorID, Offset: rq.DumpOffset, IsBigEndian: rq.IsBigEndian},
			FullName: rq.FullName,
			Flags:    rq.Flags,
			Priority: rq.Priority,
		}
		quests = append(quests, q)
		byFormID[formID] = q
	}
	return dedupeByFormID(quests,
		func(q *Quest) reconcore.FormID { return q.FormID },
		func(a, b *Quest) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

// mergeRuntimeArmors implements spec §4.5 for ARMO.
func mergeRuntimeArmors(armors []*Armor, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Armor {
	if reader == nil {
		return armors
	}
	byFormID := make(map[reconcore.FormID]*Armor, len(armors))
	for _, a := range armors {
		byFormID[a.FormID] = a
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindARMO.FormType) {
		ra, ok := reader.ReadRuntimeArmor(formID)
		if !ok {
			if log != nil {
				log.Debugf("armo %s: runtime read failed", formID)
			}
			continue
		}
		if a, exists := byFormID[formID]; exists {
			if a.EditorID == "" {
				a.EditorID = ra.EditorID
			}
			if a.FullName == "" {
				a.FullName = ra.FullName
			}
			if a.Value == 0 {
				a.Value = ra.Value
			}
			if a.Weight == 0 {
				a.Weight = ra.Weight
			}
			if a.ArmorRating == 0 {
				a.ArmorRating = ra.ArmorRating
			}
			continue
		}
		a := &Armor{
			Base:        Base{FormID: ra.FormID, EditorID: ra.EditorID, Offset: ra.DumpOffset, IsBigEndian: ra.IsBigEndian},
			FullName:    ra.FullName,
			Value:       ra.Value,
			Weight:      ra.Weight,
			ArmorRating: ra.ArmorRating,
		}
		armors = append(armors, a)
		byFormID[formID] = a
	}
	return dedupeByFormID(armors,
		func(a *Armor) reconcore.FormID { return a.FormID },
		func(a, b *Armor) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

// mergeRuntimeAmmo implements spec §4.5 for AMMO.
func mergeRuntimeAmmo(ammo []*Ammo, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Ammo {
	if reader == nil {
		return ammo
	}
	byFormID := make(map[reconcore.FormID]*Ammo, len(ammo))
	for _, a := range ammo {
		byFormID[a.FormID] = a
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindAMMO.FormType) {
		ra, ok := reader.ReadRuntimeAmmo(formID)
		if !ok {
			if log != nil {
				log.Debugf("ammo %s: runtime read failed", formID)
			}
			continue
		}
		if a, exists := byFormID[formID]; exists {
			if a.EditorID == "" {
				a.EditorID = ra.EditorID
			}
			if a.FullName == "" {
				a.FullName = ra.FullName
			}
			if a.Value == 0 {
				a.Value = ra.Value
			}
			if a.Weight == 0 {
				a.Weight = ra.Weight
			}
			if a.ProjectilesPerShot == 0 {
				a.ProjectilesPerShot = ra.ProjectilesPerShot
			}
			if a.ProjectileFormID.Null() {
				a.ProjectileFormID = ra.ProjectileFormID
			}
			continue
		}
		a := &Ammo{
			Base:               Base{FormID: ra.FormID, EditorID: ra.EditorID, Offset: ra.DumpOffset, IsBigEndian: ra.IsBigEndian},
			FullName:           ra.FullName,
			Value:              ra.Value,
			Weight:             ra.Weight,
			ProjectilesPerShot: ra.ProjectilesPerShot,
			ProjectileFormID:   ra.ProjectileFormID,
		}
		ammo = append(ammo, a)
		byFormID[formID] = a
	}
	return dedupeByFormID(ammo,
		func(a *Ammo) reconcore.FormID { return a.FormID },
		func(a, b *Ammo) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

// mergeRuntimeConsumables implements spec §4.5 for ALCH.
func mergeRuntimeConsumables(consumables []*Consumable, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Consumable {
	if reader == nil {
		return consumables
	}
	byFormID := make(map[reconcore.FormID]*Consumable, len(consumables))
	for _, c := range consumables {
		byFormID[c.FormID] = c
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindALCH.FormType) {
		rc, ok := reader.ReadRuntimeConsumable(formID)
		if !ok {
			if log != nil {
				log.Debugf("alch %s: runtime read failed", formID)
			}
			continue
		}
		if c, exists := byFormID[formID]; exists {
			if c.EditorID == "" {
				c.EditorID = rc.EditorID
			}
			if c.FullName == "" {
				c.FullName = rc.FullName
			}
			if c.Value == 0 {
				c.Value = rc.Value
			}
			if c.Weight == 0 {
				c.Weight = rc.Weight
			}
			continue
		}
		c := &Consumable{
			Base:     Base{FormID: rc.FormID, EditorID: rc.EditorID, Offset: rc.DumpOffset, IsBigEndian: rc.IsBigEndian},
			FullName: rc.FullName,
			Value:    rc.Value,
			Weight:   rc.Weight,
			IsFood:   rc.IsFood,
		}
		consumables = append(consumables, c)
		byFormID[formID] = c
	}
	return dedupeByFormID(consumables,
		func(c *Consumable) reconcore.FormID { return c.FormID },
		func(a, b *Consumable) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

// mergeRuntimeMiscItems implements spec §4.5 for MISC.
func mergeRuntimeMiscItems(miscItems []*MiscItem, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*MiscItem {
	if reader == nil {
		return miscItems
	}
	byFormID := make(map[reconcore.FormID]*MiscItem, len(miscItems))
	for _, m := range miscItems {
		byFormID[m.FormID] = m
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindMISC.FormType) {
		rm, ok := reader.ReadRuntimeMiscItem(formID)
		if !ok {
			if log != nil {
				log.Debugf("misc %s: runtime read failed", formID)
			}
			continue
		}
		if m, exists := byFormID[formID]; exists {
			if m.EditorID == "" {
				m.EditorID = rm.EditorID
			}
			if m.FullName == "" {
				m.FullName = rm.FullName
			}
			if m.Value == 0 {
				m.Value = rm.Value
			}
			if m.Weight == 0 {
				m.Weight = rm.Weight
			}
			continue
		}
		m := &MiscItem{
			Base:     Base{FormID: rm.FormID, EditorID: rm.EditorID, Offset: rm.DumpOffset, IsBigEndian: rm.IsBigEndian},
			FullName: rm.FullName,
			Value:    rm.Value,
			Weight:   rm.Weight,
		}
		miscItems = append(miscItems, m)
		byFormID[formID] = m
	}
	return dedupeByFormID(miscItems,
		func(m *MiscItem) reconcore.FormID { return m.FormID },
		func(a, b *MiscItem) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

// mergeRuntimeKeys implements spec §4.5 for KEYM.
func mergeRuntimeKeys(keys []*Key, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Key {
	if reader == nil {
		return keys
	}
	byFormID := make(map[reconcore.FormID]*Key, len(keys))
	for _, k := range keys {
		byFormID[k.FormID] = k
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindKEYM.FormType) {
		rk, ok := reader.ReadRuntimeKey(formID)
		if !ok {
			if log != nil {
				log.Debugf("keym %s: runtime read failed", formID)
			}
			continue
		}
		if k, exists := byFormID[formID]; exists {
			if k.EditorID == "" {
				k.EditorID = rk.EditorID
			}
			if k.FullName == "" {
				k.FullName = rk.FullName
			}
			if k.Value == 0 {
				k.Value = rk.Value
			}
			if k.Weight == 0 {
				k.Weight = rk.Weight
			}
			continue
		}
		k := &Key{
			Base:     Base{FormID: rk.FormID, EditorID: rk.EditorID, Offset: rk.DumpOffset, IsBigEndian: rk.IsBigEndian},
			FullName: rk.FullName,
			Value:    rk.Value,
			Weight:   rk.Weight,
		}
		keys = append(keys, k)
		byFormID[formID] = k
	}
	return dedupeByFormID(keys,
		func(k *Key) reconcore.FormID { return k.FormID },
		func(a, b *Key) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

// mergeRuntimeTerminals implements spec §4.5 for TERM.
func mergeRuntimeTerminals(terminals []*Terminal, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Terminal {
	if reader == nil {
		return terminals
	}
	byFormID := make(map[reconcore.FormID]*Terminal, len(terminals))
	for _, t := range terminals {
		byFormID[t.FormID] = t
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindTERM.FormType) {
		rt, ok := reader.ReadRuntimeTerminal(formID)
		if !ok {
			if log != nil {
				log.Debugf("term %s: runtime read failed", formID)
			}
			continue
		}
		if t, exists := byFormID[formID]; exists {
			if t.EditorID == "" {
				t.EditorID = rt.EditorID
			}
			if t.FullName == "" {
				t.FullName = rt.FullName
			}
			if t.DifficultyID == 0 {
				t.DifficultyID = rt.DifficultyID
			}
			continue
		}
		t := &Terminal{
			Base:         Base{FormID: rt.FormID, EditorID: rt.EditorID, Offset: rt.DumpOffset, IsBigEndian: rt.IsBigEndian},
			FullName:     rt.FullName,
			DifficultyID: rt.DifficultyID,
		}
		terminals = append(terminals, t)
		byFormID[formID] = t
	}
	return dedupeByFormID(terminals,
		func(t *Terminal) reconcore.FormID { return t.FormID },
		func(a, b *Terminal) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

// mergeRuntimeNotes implements spec §4.5 for NOTE.
func mergeRuntimeNotes(notes []*Note, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Note {
	if reader == nil {
		return notes
	}
	byFormID := make(map[reconcore.FormID]*Note, len(notes))
	for _, n := range notes {
		byFormID[n.FormID] = n
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindNOTE.FormType) {
		rn, ok := reader.ReadRuntimeNote(formID)
		if !ok {
			if log != nil {
				log.Debugf("note %s: runtime read failed", formID)
			}
			continue
		}
		if n, exists := byFormID[formID]; exists {
			if n.EditorID == "" {
				n.EditorID = rn.EditorID
			}
			if n.FullName == "" {
				n.FullName = rn.FullName
			}
			if n.Text == "" {
				n.Text = rn.Text
			}
			if n.SoundFormID.Null() {
				n.SoundFormID = rn.SoundFormID
			}
			continue
		}
		n := &Note{
			Base:        Base{FormID: rn.FormID, EditorID: rn.EditorID, Offset: rn.DumpOffset, IsBigEndian: rn.IsBigEndian},
			FullName:    rn.FullName,
			Text:        rn.Text,
			SoundFormID: rn.SoundFormID,
		}
		notes = append(notes, n)
		byFormID[formID] = n
	}
	return dedupeByFormID(notes,
		func(n *Note) reconcore.FormID { return n.FormID },
		func(a, b *Note) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}

// mergeRuntimeContainers implements spec §4.5 for CONT, including the
// container-contents exception: non-empty runtime Contents replace (not
// fill gaps in) the ESM's static CNTO list, since live game state overrides
// the definition. An empty runtime Contents list leaves the ESM list as is.
func mergeRuntimeContainers(containers []*Container, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Container {
	if reader == nil {
		return containers
	}
	byFormID := make(map[reconcore.FormID]*Container, len(containers))
	for _, c := range containers {
		byFormID[c.FormID] = c
	}
	for _, formID := range candidateRuntimeFormIDs(sr, reconcore.KindCONT.FormType) {
		rc, ok := reader.ReadRuntimeContainer(formID)
		if !ok {
			if log != nil {
				log.Debugf("cont %s: runtime read failed", formID)
			}
			continue
		}
		contents := make([]InventoryItem, 0, len(rc.Contents))
		for _, it := range rc.Contents {
			contents = append(contents, InventoryItem{ItemFormID: it.ItemFormID, Count: it.Count})
		}
		if c, exists := byFormID[formID]; exists {
			if c.EditorID == "" {
				c.EditorID = rc.EditorID
			}
			if c.FullName == "" {
				c.FullName = rc.FullName
			}
			if len(contents) > 0 {
				c.Contents = contents
			}
			continue
		}
		c := &Container{
			Base:     Base{FormID: rc.FormID, EditorID: rc.EditorID, Offset: rc.DumpOffset, IsBigEndian: rc.IsBigEndian},
			FullName: rc.FullName,
			Contents: contents,
		}
		containers = append(containers, c)
		byFormID[formID] = c
	}
	return dedupeByFormID(containers,
		func(c *Container) reconcore.FormID { return c.FormID },
		func(a, b *Container) bool { return richestBase(a.EditorID, b.EditorID, a.FullName, b.FullName) },
	)
}
