package recon

import (
	"testing"

	"github.com/fnv360/semrecon/reconcore"
)

// TestDedupeDialogues_MoreResponsesWins is spec §8 scenario S6: two
// dialogues share a FormID; the one with more responses survives even
// though it has less total text.
func TestDedupeDialogues_MoreResponsesWins(t *testing.T) {
	sparse := &Dialogue{
		Base:      Base{FormID: 0x0100EE02},
		Responses: []InfoResponse{{Text: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}, {Text: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}, {Text: "cccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc"}},
	}
	rich := &Dialogue{
		Base:      Base{FormID: 0x0100EE02},
		Responses: []InfoResponse{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}},
	}
	if len(sparse.Responses[0].Text)+len(sparse.Responses[1].Text)+len(sparse.Responses[2].Text) != 240 {
		t.Fatalf("test fixture miscalibrated, total len = %d, want 240", sparse.TotalResponseLen())
	}

	got := dedupeDialogues([]*Dialogue{sparse, rich})
	if len(got) != 1 {
		t.Fatalf("dedupeDialogues produced %d entries, want 1", len(got))
	}
	if got[0] != rich {
		t.Errorf("dedupeDialogues kept the 3-response/240-char instance, want the 4-response instance")
	}
}

func TestDedupeDialogues_TiesBrokenByResponseLength(t *testing.T) {
	short := &Dialogue{Base: Base{FormID: 1}, Responses: []InfoResponse{{Text: "hi"}}}
	long := &Dialogue{Base: Base{FormID: 1}, Responses: []InfoResponse{{Text: "hello there"}}}
	got := dedupeDialogues([]*Dialogue{short, long})
	if len(got) != 1 || got[0] != long {
		t.Errorf("dedupeDialogues did not keep the longer-text instance on a response-count tie")
	}
}

func TestDedupeTopics_PrefersNonNullSpeaker(t *testing.T) {
	noSpeaker := &Topic{Base: Base{FormID: 1}, FullName: "Longer Full Name Here"}
	withSpeaker := &Topic{Base: Base{FormID: 1}, FullName: "X", SpeakerFormID: 0xAB}
	got := dedupeTopics([]*Topic{noSpeaker, withSpeaker})
	if len(got) != 1 || got[0] != withSpeaker {
		t.Errorf("dedupeTopics did not prefer the non-null-speaker instance")
	}
}

func TestDedupeTopics_FallsBackToLongerFullNameThenEditorID(t *testing.T) {
	a := &Topic{Base: Base{FormID: 1, EditorID: "Short"}, FullName: "AAA"}
	b := &Topic{Base: Base{FormID: 1, EditorID: "ShortB"}, FullName: "AAAAAAA"}
	got := dedupeTopics([]*Topic{a, b})
	if len(got) != 1 || got[0] != b {
		t.Errorf("dedupeTopics did not prefer the longer FullName instance")
	}
}

func TestDedupeGeneric_RichestStubWins(t *testing.T) {
	stub := &NPC{Base: Base{FormID: 0x10}}
	rich := &NPC{Base: Base{FormID: 0x10, EditorID: "SomeNPC"}, FullName: "Some NPC"}
	got := dedupeGeneric([]*NPC{stub, rich},
		func(n *NPC) reconcore.FormID { return n.FormID },
		func(n *NPC) string { return n.EditorID },
		func(n *NPC) string { return n.FullName },
	)
	if len(got) != 1 || got[0] != rich {
		t.Errorf("dedupeGeneric did not keep the richer instance")
	}
}
