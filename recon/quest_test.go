package recon

import "testing"

// TestPopulateQuest_StagesAndObjectivesAccumulateAndFlush exercises spec
// §4.4's QUST contract: INDX flushes the in-progress stage and starts a
// new one, CNAM sets its log text, QOBJ flushes the in-progress objective
// and starts a new one, NNAM sets its display text and closes it, and a
// final flush runs after the subrecord loop.
func TestPopulateQuest_StagesAndObjectivesAccumulateAndFlush(t *testing.T) {
	buf := buildSubrecords(false, []fakeSubrecord{
		{"EDID", []byte("MQ01\x00")},
		{"FULL", []byte("Main Quest\x00")},
		{"DATA", []byte{0x01, 0x32}}, // flags=1, priority=50
		{"INDX", le16(10)},
		{"CNAM", []byte("Stage 10 text\x00")},
		{"QSDT", []byte{0x01}},
		{"INDX", le16(20)}, // flushes stage 10
		{"CNAM", []byte("Stage 20 text\x00")},
		{"QOBJ", le32(0)},
		{"NNAM", []byte("Objective 0 text\x00")}, // flushes objective 0
		{"QOBJ", le32(1)},
		{"NNAM", []byte("Objective 1 text\x00")},
	})

	q := &Quest{}
	populateQuest(q, buf, false, nil)

	if q.EditorID != "MQ01" || q.FullName != "Main Quest" {
		t.Fatalf("EditorID/FullName = %q/%q", q.EditorID, q.FullName)
	}
	if q.Flags != 1 || q.Priority != 50 {
		t.Fatalf("Flags/Priority = %d/%d, want 1/50", q.Flags, q.Priority)
	}
	if len(q.Stages) != 2 {
		t.Fatalf("Stages = %d, want 2", len(q.Stages))
	}
	if q.Stages[0].Index != 10 || q.Stages[0].LogEntry != "Stage 10 text" || q.Stages[0].Flags != 1 {
		t.Errorf("Stages[0] = %+v", q.Stages[0])
	}
	if q.Stages[1].Index != 20 || q.Stages[1].LogEntry != "Stage 20 text" {
		t.Errorf("Stages[1] = %+v", q.Stages[1])
	}
	if len(q.Objectives) != 2 {
		t.Fatalf("Objectives = %d, want 2", len(q.Objectives))
	}
	if q.Objectives[0].DisplayText != "Objective 0 text" || q.Objectives[1].DisplayText != "Objective 1 text" {
		t.Errorf("Objectives = %+v", q.Objectives)
	}
}

func TestPopulateQuest_StagesSortedAscendingByIndex(t *testing.T) {
	buf := buildSubrecords(false, []fakeSubrecord{
		{"INDX", le16(99)},
		{"INDX", le16(1)},
	})
	q := &Quest{}
	populateQuest(q, buf, false, nil)
	if len(q.Stages) != 2 || q.Stages[0].Index != 1 || q.Stages[1].Index != 99 {
		t.Errorf("Stages not sorted ascending: %+v", q.Stages)
	}
}
