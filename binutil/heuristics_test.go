package binutil

import "testing"

// TestTryACBS_LEHappyPath is spec §8 scenario S1: a valid little-endian
// ACBS payload at a free-memory offset parses with all fields populated and
// IsBigEndian=false.
func TestTryACBS_LEHappyPath(t *testing.T) {
	window := []byte{
		'A', 'C', 'B', 'S', 0x18, 0x00,
		0x01, 0x00, 0x00, 0x00, // flags = 1
		0x64, 0x00, // fatigue_base = 100
		0x32, 0x00, // barter_gold = 50
		0x05, 0x00, // level = 5
		0x01, 0x00, // calc_min = 1
		0x05, 0x00, // calc_max = 5
		0x64, 0x00, // speed_mul = 100
		0x00, 0x00, 0x00, 0x00, // karma = 0.0
		0x0A, 0x00, // disposition = 10
		0x00, 0x00, // template_flags = 0
	}

	fields, ok := TryACBS(window)
	if !ok {
		t.Fatalf("TryACBS rejected a valid LE payload")
	}
	want := ACBSFields{
		Flags: 1, FatigueBase: 100, BarterGold: 50, Level: 5,
		CalcMin: 1, CalcMax: 5, SpeedMul: 100, Karma: 0.0,
		Disposition: 10, TemplateFlags: 0, IsBigEndian: false,
	}
	if fields != want {
		t.Errorf("TryACBS = %+v, want %+v", fields, want)
	}
}

// TestTryACBS_FlagsRejection is spec §8 scenario S2: a big-endian ACBS
// window whose flags carry bits in the reserved 0xFFF00000 range is
// rejected under both endiannesses (the LE attempt fails on the declared
// length, the BE attempt on the flags).
func TestTryACBS_FlagsRejection(t *testing.T) {
	window := []byte{
		'A', 'C', 'B', 'S', 0x00, 0x18,
		0xFF, 0xF0, 0x00, 0x00, // flags = 0xFFF00000 (BE)
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
	}

	if _, ok := TryACBS(window); ok {
		t.Fatalf("TryACBS accepted a payload with reserved flag bits set")
	}
}

func TestTryACBS_ShortWindowRejected(t *testing.T) {
	window := []byte{'A', 'C', 'B', 'S', 0x18, 0x00, 0x01, 0x02}
	if _, ok := TryACBS(window); ok {
		t.Fatalf("TryACBS accepted a too-short window")
	}
}

func TestTryACBS_WrongLengthRejected(t *testing.T) {
	window := make([]byte, acbsWindowLen)
	copy(window, []byte{'A', 'C', 'B', 'S', 0x10, 0x00}) // declares 16, not 24
	if _, ok := TryACBS(window); ok {
		t.Fatalf("TryACBS accepted a payload with a wrong declared length")
	}
}

func TestTryCTDA_ShortPayload(t *testing.T) {
	window := []byte{
		'C', 'T', 'D', 'A', 0x18, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x05, 0x00, // function_index = 5
		0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	fields, ok := TryCTDA(window)
	if !ok {
		t.Fatalf("TryCTDA rejected a valid 24-byte payload")
	}
	if fields.FunctionIndex != 5 || fields.HasRunOnType {
		t.Errorf("TryCTDA = %+v, want FunctionIndex=5, HasRunOnType=false", fields)
	}
}

func TestTryCTDA_FunctionIndexRejection(t *testing.T) {
	window := []byte{
		'C', 'T', 'D', 'A', 0x18, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0xE9, 0x03, // function_index = 1001, over the 1000 cap
		0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	if _, ok := TryCTDA(window); ok {
		t.Fatalf("TryCTDA accepted function_index > 1000")
	}
}

func TestTryCTDA_LongPayloadHasRunOnType(t *testing.T) {
	window := []byte{
		'C', 'T', 'D', 'A', 0x1C, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, // function_index = 1
		0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, // run_on_type = 2
		0x00, 0x00, 0x00, 0x00,
	}
	fields, ok := TryCTDA(window)
	if !ok {
		t.Fatalf("TryCTDA rejected a valid 28-byte payload")
	}
	if !fields.HasRunOnType || fields.RunOnType != 2 {
		t.Errorf("TryCTDA = %+v, want HasRunOnType=true RunOnType=2", fields)
	}
}
