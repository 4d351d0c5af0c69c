package recon

import (
	"testing"

	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// TestWalkTopicsAndEnrichInfos_S3 is spec §8 scenario S3: a runtime DIAL
// entry's m_listQuestInfo names a quest and one INFO entry that has no ESM
// counterpart; the walk must create a new Dialogue record for it.
func TestWalkTopicsAndEnrichInfos_S3(t *testing.T) {
	const topicFormID = reconcore.FormID(0x0100DD00)
	const questFormID = reconcore.FormID(0x05000010)
	const infoFormID = reconcore.FormID(0x0100EE01)
	const vaddr = uint64(0xABCD1234)

	sr := &recondump.ScanResult{
		RuntimeEditorIDs: []recondump.RuntimeEditorID{
			{FormID: topicFormID, FormType: 0x45},
		},
	}

	reader := &fakeRuntimeReader{
		walkTopic: func(formID reconcore.FormID) ([]recondump.QuestInfoList, bool) {
			if formID != topicFormID {
				return nil, false
			}
			return []recondump.QuestInfoList{
				{QuestFormID: questFormID, Infos: []recondump.QuestInfoEntry{{FormID: infoFormID, VirtualAddr: vaddr}}},
			}, true
		},
		dialogueInfo: func(formID reconcore.FormID) (recondump.RuntimeDialogueInfo, bool) {
			if formID != infoFormID {
				return recondump.RuntimeDialogueInfo{}, false
			}
			return recondump.RuntimeDialogueInfo{
				FormID: infoFormID, DumpOffset: 999, IsBigEndian: true,
			}, true
		},
	}

	var dialogues []*Dialogue
	topics := []*Topic{{Base: Base{FormID: topicFormID}}}

	dialogues = walkTopicsAndEnrichInfos(dialogues, topics, 0x45, sr, reader, nil)

	if len(dialogues) != 1 {
		t.Fatalf("walkTopicsAndEnrichInfos produced %d dialogues, want 1", len(dialogues))
	}
	d := dialogues[0]
	if d.FormID != infoFormID {
		t.Errorf("FormID = %v, want %v", d.FormID, infoFormID)
	}
	if d.TopicFormID != topicFormID {
		t.Errorf("TopicFormID = %v, want %v", d.TopicFormID, topicFormID)
	}
	if d.QuestFormID != questFormID {
		t.Errorf("QuestFormID = %v, want %v", d.QuestFormID, questFormID)
	}
	if !d.IsBigEndian || d.Offset != 999 {
		t.Errorf("Offset/IsBigEndian = %v/%v, want 999/true (from runtime enrichment)", d.Offset, d.IsBigEndian)
	}
}

// TestPropagateTopicSpeaker_S4 is spec §8 scenario S4: a topic's TNAM
// speaker propagates to every INFO under it that has no speaker of its own.
func TestPropagateTopicSpeaker_S4(t *testing.T) {
	const topicFormID = reconcore.FormID(0xAA)
	const speaker = reconcore.FormID(0x0200AA00)
	const otherSpeaker = reconcore.FormID(0x0200AA00)

	topics := []*Topic{{Base: Base{FormID: topicFormID}, SpeakerFormID: speaker}}
	dialogues := []*Dialogue{
		{Base: Base{FormID: 1}, TopicFormID: topicFormID, SpeakerFormID: 0},
		{Base: Base{FormID: 2}, TopicFormID: topicFormID, SpeakerFormID: otherSpeaker},
		{Base: Base{FormID: 3}, TopicFormID: topicFormID, SpeakerFormID: 0},
	}

	propagateTopicSpeaker(dialogues, topics)

	for i, d := range dialogues {
		if d.SpeakerFormID != speaker {
			t.Errorf("dialogues[%d].SpeakerFormID = %v, want %v", i, d.SpeakerFormID, speaker)
		}
	}
}

func TestPropagateTopicSpeaker_LeavesUnrelatedTopicsAlone(t *testing.T) {
	topics := []*Topic{{Base: Base{FormID: 1}, SpeakerFormID: 0x10}}
	dialogues := []*Dialogue{{Base: Base{FormID: 100}, TopicFormID: 2}}
	propagateTopicSpeaker(dialogues, topics)
	if !dialogues[0].SpeakerFormID.Null() {
		t.Errorf("speaker leaked across unrelated topics")
	}
}

func TestDetectTopicFormType_PrefersRuntimeMatch(t *testing.T) {
	topics := []*Topic{{Base: Base{FormID: 1}}, {Base: Base{FormID: 2}}}
	sr := &recondump.ScanResult{
		RuntimeEditorIDs: []recondump.RuntimeEditorID{
			{FormID: 1, FormType: 0x50},
			{FormID: 2, FormType: 0x50},
		},
	}
	formType, ok := detectTopicFormType(topics, sr, nil)
	if !ok || formType != 0x50 {
		t.Errorf("detectTopicFormType = %v, %v; want 0x50, true", formType, ok)
	}
}

func TestDetectTopicFormType_FallsBackTo0x45WithValidation(t *testing.T) {
	topics := []*Topic{{Base: Base{FormID: 1}}}
	sr := &recondump.ScanResult{
		RuntimeEditorIDs: []recondump.RuntimeEditorID{
			{FormID: 500, FormType: 0x45},
			{FormID: 501, FormType: 0x45},
			{FormID: 502, FormType: 0x45},
		},
	}
	reader := &fakeRuntimeReader{
		walkTopic: func(reconcore.FormID) ([]recondump.QuestInfoList, bool) {
			return []recondump.QuestInfoList{{}}, true
		},
	}
	formType, ok := detectTopicFormType(topics, sr, reader)
	if !ok || formType != 0x45 {
		t.Errorf("detectTopicFormType fallback = %v, %v; want 0x45, true", formType, ok)
	}
}

func TestDetectTopicFormType_FailsWithoutValidatedCandidates(t *testing.T) {
	topics := []*Topic{{Base: Base{FormID: 1}}}
	sr := &recondump.ScanResult{}
	if _, ok := detectTopicFormType(topics, sr, nil); ok {
		t.Errorf("expected detectTopicFormType to fail with no candidates and a nil reader")
	}
}

func TestLinkUnlinkedByEditorIDPrefix_LongestPrefixWins(t *testing.T) {
	quests := []*Quest{
		{Base: Base{FormID: 1, EditorID: "MQ"}},
		{Base: Base{FormID: 2, EditorID: "MQ01"}},
	}
	dialogues := []*Dialogue{
		{Base: Base{FormID: 10, EditorID: "MQ01GreetingTopic"}},
	}
	linkUnlinkedByEditorIDPrefix(dialogues, quests)
	if dialogues[0].QuestFormID != 2 {
		t.Errorf("QuestFormID = %v, want 2 (longest matching quest EditorID prefix)", dialogues[0].QuestFormID)
	}
}

func TestLinkUnlinkedByEditorIDPrefix_SkipsAlreadyLinked(t *testing.T) {
	quests := []*Quest{{Base: Base{FormID: 1, EditorID: "MQ"}}}
	dialogues := []*Dialogue{{Base: Base{FormID: 10, EditorID: "MQGreeting"}, TopicFormID: 99, QuestFormID: 0}}
	linkUnlinkedByEditorIDPrefix(dialogues, quests)
	if !dialogues[0].QuestFormID.Null() {
		t.Errorf("linkUnlinkedByEditorIDPrefix should skip dialogues that already have a topic")
	}
}

func TestLinkUnlinkedByEditorIDPrefix_DoesNotClobberExistingQuestFormID(t *testing.T) {
	quests := []*Quest{{Base: Base{FormID: 1, EditorID: "MQ01"}}}
	dialogues := []*Dialogue{
		{Base: Base{FormID: 10, EditorID: "MQ01GreetingTopic"}, QuestFormID: 0x7777},
	}
	linkUnlinkedByEditorIDPrefix(dialogues, quests)
	if dialogues[0].QuestFormID != 0x7777 {
		t.Errorf("QuestFormID = %v, want 0x7777 (an explicit QSTI-derived quest must not be overwritten by the naming-convention fallback)", dialogues[0].QuestFormID)
	}
}

func TestBuildDialogueTree_OrdersTopicsByPriorityThenName(t *testing.T) {
	quest := &Quest{Base: Base{FormID: 1}, Priority: 50}
	topicLow := &Topic{Base: Base{FormID: 10}, FullName: "Zeta", QuestFormID: 1}
	topicHigh := &Topic{Base: Base{FormID: 11}, FullName: "Alpha", QuestFormID: 1}
	dialogues := []*Dialogue{
		{Base: Base{FormID: 100}, TopicFormID: 10, InfoIndex: 0},
		{Base: Base{FormID: 101}, TopicFormID: 11, InfoIndex: 0},
	}

	tree := buildDialogueTree(dialogues, []*Topic{topicLow, topicHigh}, []*Quest{quest})

	if len(tree.Quests) != 1 {
		t.Fatalf("tree.Quests = %d entries, want 1", len(tree.Quests))
	}
	topics := tree.Quests[0].Topics
	if len(topics) != 2 {
		t.Fatalf("quest topics = %d, want 2", len(topics))
	}
	// Equal priority (both inherit the quest's 50): ordering falls back to
	// case-insensitive name, ascending.
	if topics[0].Name != "Alpha" || topics[1].Name != "Zeta" {
		t.Errorf("topic order = [%s %s], want [Alpha Zeta]", topics[0].Name, topics[1].Name)
	}
}

func TestBuildDialogueTree_EveryInfoUnderExactlyOneTopic(t *testing.T) {
	topic := &Topic{Base: Base{FormID: 1}}
	dialogues := []*Dialogue{
		{Base: Base{FormID: 10}, TopicFormID: 1, InfoIndex: 2},
		{Base: Base{FormID: 11}, TopicFormID: 1, InfoIndex: 1},
		{Base: Base{FormID: 12}}, // unlinked
	}
	tree := buildDialogueTree(dialogues, []*Topic{topic}, nil)

	seen := map[reconcore.FormID]int{}
	for _, qn := range tree.Quests {
		for _, tn := range qn.Topics {
			for _, in := range tn.Infos {
				seen[in.Dialogue.FormID]++
			}
		}
	}
	for _, tn := range tree.Orphans {
		for _, in := range tn.Infos {
			seen[in.Dialogue.FormID]++
		}
	}
	for _, d := range dialogues {
		if seen[d.FormID] != 1 {
			t.Errorf("dialogue %v appears under %d topic nodes, want exactly 1", d.FormID, seen[d.FormID])
		}
	}

	// Infos within the topic are ordered ascending by InfoIndex.
	found := false
	for _, qn := range tree.Quests {
		for _, tn := range qn.Topics {
			if tn.TopicFormID == 1 {
				found = true
				if len(tn.Infos) != 2 || tn.Infos[0].Dialogue.InfoIndex != 1 || tn.Infos[1].Dialogue.InfoIndex != 2 {
					t.Errorf("topic infos not ascending by InfoIndex: %+v", tn.Infos)
				}
			}
		}
	}
	for _, tn := range tree.Orphans {
		if tn.TopicFormID == 1 {
			found = true
			if len(tn.Infos) != 2 || tn.Infos[0].Dialogue.InfoIndex != 1 || tn.Infos[1].Dialogue.InfoIndex != 2 {
				t.Errorf("topic infos not ascending by InfoIndex: %+v", tn.Infos)
			}
		}
	}
	if !found {
		t.Fatalf("topic 1 not found in tree")
	}
}
