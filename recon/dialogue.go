package recon

import (
	"sort"
	"strings"

	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// topicFormTypeValidateMin/topicFormTypeValidateSample implement the
// "validate by reading ≥3 of the first 20 candidates" rule of spec §4.7
// step 1.
const (
	topicFormTypeValidateSample = 20
	topicFormTypeValidateMin    = 3
	topicFormTypeMatchMin       = 2
	dialTopicFallbackFormType   = 0x45
)

// detectTopicFormType implements spec §4.7 step 1: probe the dump's runtime
// form-type byte used for DIAL records by cross-referencing known DIAL
// FormIDs against runtime entries, falling back to the empirical 0x45 byte
// validated by a successful-read sample.
func detectTopicFormType(topics []*Topic, sr *recondump.ScanResult, reader recondump.RuntimeReader) (int16, bool) {
	known := make(map[reconcore.FormID]bool, len(topics))
	for _, t := range topics {
		known[t.FormID] = true
	}

	counts := make(map[int16]int)
	for _, r := range sr.RuntimeEditorIDs {
		if known[r.FormID] {
			counts[int16(r.FormType)]++
		}
	}
	var bestType int16 = -1
	bestCount := 0
	for ft, c := range counts {
		if c > bestCount {
			bestType, bestCount = ft, c
		}
	}
	if bestCount >= topicFormTypeMatchMin {
		return bestType, true
	}

	if reader == nil {
		return 0, false
	}
	candidates := candidateRuntimeFormIDs(sr, dialTopicFallbackFormType)
	if len(candidates) == 0 {
		return 0, false
	}
	n := len(candidates)
	if n > topicFormTypeValidateSample {
		n = topicFormTypeValidateSample
	}
	success := 0
	for i := 0; i < n; i++ {
		if _, ok := reader.WalkTopicQuestInfoList(candidates[i]); ok {
			success++
		}
	}
	if success >= topicFormTypeValidateMin {
		return dialTopicFallbackFormType, true
	}
	return 0, false
}

// walkTopicsAndEnrichInfos runs spec §4.7 steps 2-4: it walks every runtime
// DIAL topic's m_listQuestInfo, links or creates Dialogue records for each
// INFO entry found, assigns topics their runtime-derived quest (when not
// already set), and enriches every dialogue from its TESTopicInfo struct.
func walkTopicsAndEnrichInfos(dialogues []*Dialogue, topics []*Topic, formType int16, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) []*Dialogue {
	if reader == nil {
		return dialogues
	}

	byFormID := make(map[reconcore.FormID]*Dialogue, len(dialogues))
	for _, d := range dialogues {
		byFormID[d.FormID] = d
	}
	topicsByFormID := make(map[reconcore.FormID]*Topic, len(topics))
	for _, t := range topics {
		topicsByFormID[t.FormID] = t
	}

	for _, topicFormID := range candidateRuntimeFormIDs(sr, formType) {
		lists, ok := reader.WalkTopicQuestInfoList(topicFormID)
		if !ok {
			if log != nil {
				log.Debugf("dial %s: m_listQuestInfo walk failed", topicFormID)
			}
			continue
		}
		if t, exists := topicsByFormID[topicFormID]; exists && t.QuestFormID.Null() && len(lists) > 0 {
			t.QuestFormID = lists[0].QuestFormID
		}
		for _, ql := range lists {
			for _, info := range ql.Infos {
				if d, exists := byFormID[info.FormID]; exists {
					if d.TopicFormID.Null() {
						d.TopicFormID = topicFormID
					}
					if d.QuestFormID.Null() {
						d.QuestFormID = ql.QuestFormID
					}
					continue
				}
				nd := &Dialogue{
					Base:        Base{FormID: info.FormID},
					TopicFormID: topicFormID,
					QuestFormID: ql.QuestFormID,
				}
				dialogues = append(dialogues, nd)
				byFormID[info.FormID] = nd
			}
		}
	}

	for _, d := range dialogues {
		rdi, ok := reader.ReadRuntimeDialogueInfo(d.FormID)
		if !ok {
			continue
		}
		if d.EditorID == "" {
			d.EditorID = rdi.EditorID
		}
		if len(d.Responses) == 0 && rdi.PromptText != "" {
			d.Responses = append(d.Responses, InfoResponse{Text: rdi.PromptText})
		}
		d.InfoIndex = rdi.InfoIndex
		d.InfoFlags = rdi.InfoFlags
		d.InfoFlagsExt = rdi.InfoFlagsExt
		if rdi.Difficulty > 0 {
			d.Difficulty = rdi.Difficulty
		}
		if d.SpeakerFormID.Null() {
			d.SpeakerFormID = rdi.SpeakerFormID
		}
		if d.QuestFormID.Null() {
			d.QuestFormID = rdi.QuestFormID
		}
		if d.Offset == 0 {
			d.Offset = rdi.DumpOffset
			d.IsBigEndian = rdi.IsBigEndian
		}
	}

	return dialogues
}

// propagateTopicSpeaker implements spec §4.7 step 5: every INFO under a
// topic that has no speaker of its own inherits the topic's TNAM speaker.
func propagateTopicSpeaker(dialogues []*Dialogue, topics []*Topic) {
	speakerByTopic := make(map[reconcore.FormID]reconcore.FormID, len(topics))
	for _, t := range topics {
		if !t.SpeakerFormID.Null() {
			speakerByTopic[t.FormID] = t.SpeakerFormID
		}
	}
	for _, d := range dialogues {
		if !d.SpeakerFormID.Null() {
			continue
		}
		if speaker, ok := speakerByTopic[d.TopicFormID]; ok {
			d.SpeakerFormID = speaker
		}
	}
}

// linkUnlinkedByEditorIDPrefix implements spec §4.7 step 6: an unlinked
// dialogue with an EditorID is linked to the quest whose EditorID is the
// longest case-insensitive strict prefix of the dialogue's EditorID.
func linkUnlinkedByEditorIDPrefix(dialogues []*Dialogue, quests []*Quest) {
	type questKey struct {
		lower  string
		formID reconcore.FormID
	}
	keys := make([]questKey, 0, len(quests))
	for _, q := range quests {
		if q.EditorID != "" {
			keys = append(keys, questKey{strings.ToLower(q.EditorID), q.FormID})
		}
	}

	for _, d := range dialogues {
		if !d.TopicFormID.Null() || d.EditorID == "" {
			continue
		}
		lowerEdid := strings.ToLower(d.EditorID)
		var bestFormID reconcore.FormID
		bestLen := -1
		for _, k := range keys {
			if len(k.lower) >= len(lowerEdid) {
				continue
			}
			if strings.HasPrefix(lowerEdid, k.lower) && len(k.lower) > bestLen {
				bestLen = len(k.lower)
				bestFormID = k.formID
			}
		}
		if bestLen >= 0 && d.QuestFormID.Null() {
			d.QuestFormID = bestFormID
		}
	}
}

// InfoDialogueNode is one INFO leaf of the dialogue tree.
type InfoDialogueNode struct {
	Dialogue     *Dialogue
	LinkedTopics []reconcore.FormID
}

// TopicDialogueNode is one topic (or synthetic "(Unlinked Responses)"
// bucket) of the dialogue tree.
type TopicDialogueNode struct {
	TopicFormID reconcore.FormID
	Topic       *Topic // nil for synthetic topics
	Name        string
	Priority    uint8
	Infos       []*InfoDialogueNode
}

// QuestDialogueNode groups a quest's topics.
type QuestDialogueNode struct {
	QuestFormID reconcore.FormID
	Topics      []*TopicDialogueNode
}

// DialogueTree is the root of the reconstructed quest→topic→INFO graph
// (spec §4.7 step 7).
type DialogueTree struct {
	Quests  []*QuestDialogueNode
	Orphans []*TopicDialogueNode
}

const unlinkedResponsesTopicName = "(Unlinked Responses)"

// buildDialogueTree implements spec §4.7 step 7.
func buildDialogueTree(dialogues []*Dialogue, topics []*Topic, quests []*Quest) *DialogueTree {
	topicsByFormID := make(map[reconcore.FormID]*Topic, len(topics))
	topicNodes := make(map[reconcore.FormID]*TopicDialogueNode, len(topics))
	for _, t := range topics {
		topicsByFormID[t.FormID] = t
		topicNodes[t.FormID] = &TopicDialogueNode{TopicFormID: t.FormID, Topic: t, Name: t.FullName}
		if topicNodes[t.FormID].Name == "" {
			topicNodes[t.FormID].Name = t.EditorID
		}
	}

	questPriority := make(map[reconcore.FormID]uint8, len(quests))
	questByFormID := make(map[reconcore.FormID]*Quest, len(quests))
	for _, q := range quests {
		questPriority[q.FormID] = q.Priority
		questByFormID[q.FormID] = q
	}

	byTopic := make(map[reconcore.FormID][]*Dialogue)
	var orphanInfos []*Dialogue
	for _, d := range dialogues {
		if d.TopicFormID.Null() {
			orphanInfos = append(orphanInfos, d)
			continue
		}
		if _, known := topicNodes[d.TopicFormID]; !known {
			topicNodes[d.TopicFormID] = &TopicDialogueNode{TopicFormID: d.TopicFormID, Name: d.TopicFormID.String()}
		}
		byTopic[d.TopicFormID] = append(byTopic[d.TopicFormID], d)
	}

	linkedTopicsOf := func(d *Dialogue) []reconcore.FormID {
		var out []reconcore.FormID
		seen := make(map[reconcore.FormID]bool)
		for _, formID := range append(append([]reconcore.FormID{}, d.LinkToTopics...), d.AddTopics...) {
			if _, known := topicNodes[formID]; known && !seen[formID] {
				seen[formID] = true
				out = append(out, formID)
			}
		}
		return out
	}

	for topicFormID, infos := range byTopic {
		sort.SliceStable(infos, func(i, j int) bool { return infos[i].InfoIndex < infos[j].InfoIndex })
		node := topicNodes[topicFormID]
		for _, d := range infos {
			node.Infos = append(node.Infos, &InfoDialogueNode{Dialogue: d, LinkedTopics: linkedTopicsOf(d)})
		}
	}

	questTopics := make(map[reconcore.FormID][]*TopicDialogueNode)
	var orphanTopics []*TopicDialogueNode
	for topicFormID, node := range topicNodes {
		questFormID := reconcore.FormID(0)
		if t, known := topicsByFormID[topicFormID]; known && !t.QuestFormID.Null() {
			questFormID = t.QuestFormID
		} else {
			for _, info := range node.Infos {
				if !info.Dialogue.QuestFormID.Null() {
					questFormID = info.Dialogue.QuestFormID
					break
				}
			}
		}
		if questFormID.Null() {
			orphanTopics = append(orphanTopics, node)
			continue
		}
		node.Priority = questPriority[questFormID]
		questTopics[questFormID] = append(questTopics[questFormID], node)
	}

	if len(orphanInfos) > 0 {
		byQuest := make(map[reconcore.FormID][]*Dialogue)
		for _, d := range orphanInfos {
			byQuest[d.QuestFormID] = append(byQuest[d.QuestFormID], d)
		}
		for questFormID, infos := range byQuest {
			sort.SliceStable(infos, func(i, j int) bool { return infos[i].InfoIndex < infos[j].InfoIndex })
			node := &TopicDialogueNode{Name: unlinkedResponsesTopicName, Priority: questPriority[questFormID]}
			for _, d := range infos {
				node.Infos = append(node.Infos, &InfoDialogueNode{Dialogue: d})
			}
			if questFormID.Null() {
				orphanTopics = append(orphanTopics, node)
			} else {
				questTopics[questFormID] = append(questTopics[questFormID], node)
			}
		}
	}

	sortTopics := func(nodes []*TopicDialogueNode) {
		sort.SliceStable(nodes, func(i, j int) bool {
			if nodes[i].Priority != nodes[j].Priority {
				return nodes[i].Priority > nodes[j].Priority
			}
			return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
		})
	}

	tree := &DialogueTree{}
	for questFormID, nodes := range questTopics {
		sortTopics(nodes)
		tree.Quests = append(tree.Quests, &QuestDialogueNode{QuestFormID: questFormID, Topics: nodes})
	}
	sort.Slice(tree.Quests, func(i, j int) bool { return tree.Quests[i].QuestFormID < tree.Quests[j].QuestFormID })

	sortTopics(orphanTopics)
	tree.Orphans = orphanTopics

	return tree
}

// buildDialogueGraph runs the complete dialogue graph builder pipeline
// (spec §4.7): topic form-type detection, runtime topic/INFO merge,
// dedup, speaker propagation, EditorID-prefix fallback linking, and tree
// construction.
func buildDialogueGraph(dialogues []*Dialogue, topics []*Topic, quests []*Quest, sr *recondump.ScanResult, reader recondump.RuntimeReader, log recondump.Logger) ([]*Dialogue, []*Topic, *DialogueTree) {
	if reader != nil {
		if formType, ok := detectTopicFormType(topics, sr, reader); ok {
			dialogues = walkTopicsAndEnrichInfos(dialogues, topics, formType, sr, reader, log)
		} else if log != nil {
			log.Debugf("dialogue graph: topic form-type detection failed, runtime topic enrichment skipped")
		}
	}

	dialogues = dedupeDialogues(dialogues)
	topics = dedupeTopics(topics)

	propagateTopicSpeaker(dialogues, topics)
	linkUnlinkedByEditorIDPrefix(dialogues, quests)

	tree := buildDialogueTree(dialogues, topics, quests)
	return dialogues, topics, tree
}
