package binutil

import "testing"

func TestSubrecordIter_LittleEndian(t *testing.T) {
	buf := []byte{
		'E', 'D', 'I', 'D', 0x04, 0x00, 'F', 'o', 'o', 0x00,
		'F', 'U', 'L', 'L', 0x03, 0x00, 'B', 'a', 'r',
	}

	it := NewSubrecordIter(buf, false)

	sub, ok := it.Next()
	if !ok || sub.Signature != "EDID" || sub.DataLength != 4 {
		t.Fatalf("first subrecord = %+v, ok=%v", sub, ok)
	}
	if got := CString(sub.Payload(buf)); got != "Foo" {
		t.Errorf("payload = %q, want %q", got, "Foo")
	}

	sub, ok = it.Next()
	if !ok || sub.Signature != "FULL" || string(sub.Payload(buf)) != "Bar" {
		t.Fatalf("second subrecord = %+v, ok=%v", sub, ok)
	}

	if _, ok := it.Next(); ok {
		t.Fatalf("iterator did not terminate at end of buffer")
	}
}

// TestSubrecordIter_BigEndianSignatureReversed verifies that big-endian
// records store signature bytes reversed in memory and the iterator
// un-reverses them on read (spec §4.1/§6).
func TestSubrecordIter_BigEndianSignatureReversed(t *testing.T) {
	buf := []byte{
		'D', 'I', 'D', 'E', 0x00, 0x02, 'H', 'i',
	}
	it := NewSubrecordIter(buf, true)
	sub, ok := it.Next()
	if !ok {
		t.Fatalf("Next() failed on valid BE subrecord")
	}
	if sub.Signature != "EDID" {
		t.Errorf("Signature = %q, want %q", sub.Signature, "EDID")
	}
	if sub.DataLength != 2 {
		t.Errorf("DataLength = %d, want 2", sub.DataLength)
	}
}

func TestSubrecordIter_TruncatedHeaderStopsCleanly(t *testing.T) {
	buf := []byte{'E', 'D', 'I'}
	it := NewSubrecordIter(buf, false)
	if _, ok := it.Next(); ok {
		t.Fatalf("expected no subrecord from a truncated header")
	}
}

func TestSubrecordIter_DeclaredLengthPastEndStopsCleanly(t *testing.T) {
	buf := []byte{'E', 'D', 'I', 'D', 0xFF, 0x00, 'x'}
	it := NewSubrecordIter(buf, false)
	if _, ok := it.Next(); ok {
		t.Fatalf("expected no subrecord when declared length exceeds buffer")
	}
}

func TestSubrecordIter_EachVisitsAllAndStopsEarly(t *testing.T) {
	buf := []byte{
		'A', 'A', 'A', 'A', 0x00, 0x00,
		'B', 'B', 'B', 'B', 0x00, 0x00,
		'C', 'C', 'C', 'C', 0x00, 0x00,
	}
	var seen []string
	NewSubrecordIter(buf, false).Each(func(s Subrecord) bool {
		seen = append(seen, s.Signature)
		return s.Signature != "BBBB"
	})
	if len(seen) != 2 || seen[0] != "AAAA" || seen[1] != "BBBB" {
		t.Errorf("Each visited %v, want [AAAA BBBB]", seen)
	}
}

func TestPrimitiveReaders_ShortSliceRejected(t *testing.T) {
	b := []byte{0x01, 0x02}
	if _, ok := Uint32At(b, 0, false); ok {
		t.Error("Uint32At accepted a too-short slice")
	}
	if _, ok := Float32At(b, 0, false); ok {
		t.Error("Float32At accepted a too-short slice")
	}
	if _, ok := Int8At(b, 5); ok {
		t.Error("Int8At accepted an out-of-range offset")
	}
}

func TestCString_TruncatesAtNUL(t *testing.T) {
	if got := CString([]byte("abc\x00def")); got != "abc" {
		t.Errorf("CString = %q, want %q", got, "abc")
	}
	if got := CString([]byte("noterm")); got != "noterm" {
		t.Errorf("CString = %q, want %q", got, "noterm")
	}
}
