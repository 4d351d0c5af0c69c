package binutil

// Subrecord describes one (signature, data_offset, data_length) triple
// yielded by SubrecordIter. Offsets are relative to the buffer the iterator
// was built over.
type Subrecord struct {
	// Signature is the 4-character ASCII subrecord tag, already corrected
	// for endianness (i.e. never byte-reversed, regardless of BigEndian).
	Signature string

	// DataOffset is the offset of the subrecord's payload within the
	// iterated buffer.
	DataOffset int

	// DataLength is the declared payload length.
	DataLength int
}

// subrecordHeaderLen is signature (4) + length (2).
const subrecordHeaderLen = 6

// SubrecordIter lazily yields Subrecords from a byte buffer. It is a
// finite, non-restartable sequence: it never panics on malformed input,
// and terminates cleanly at end-of-buffer or on a declared length that
// would run past the buffer's end.
type SubrecordIter struct {
	buf       []byte
	pos       int
	bigEndian bool
	done      bool
}

// NewSubrecordIter creates an iterator over buf. bigEndian selects whether
// subrecord signatures are stored byte-reversed (console-native BE regions)
// and whether the 2-byte length is big-endian.
func NewSubrecordIter(buf []byte, bigEndian bool) *SubrecordIter {
	return &SubrecordIter{buf: buf, bigEndian: bigEndian}
}

// Next advances the iterator and returns the next Subrecord. ok is false
// once the buffer is exhausted or malformed data is encountered; the
// iterator does not resume after that point.
func (it *SubrecordIter) Next() (sub Subrecord, ok bool) {
	if it.done {
		return Subrecord{}, false
	}
	if it.pos+subrecordHeaderLen > len(it.buf) {
		it.done = true
		return Subrecord{}, false
	}

	sigBytes := [4]byte{it.buf[it.pos], it.buf[it.pos+1], it.buf[it.pos+2], it.buf[it.pos+3]}
	if it.bigEndian {
		sigBytes[0], sigBytes[1], sigBytes[2], sigBytes[3] =
			sigBytes[3], sigBytes[2], sigBytes[1], sigBytes[0]
	}

	length, ok := Uint16At(it.buf, it.pos+4, it.bigEndian)
	if !ok {
		it.done = true
		return Subrecord{}, false
	}

	dataOffset := it.pos + subrecordHeaderLen
	dataLength := int(length)
	if dataOffset+dataLength > len(it.buf) {
		it.done = true
		return Subrecord{}, false
	}

	sub = Subrecord{
		Signature:  string(sigBytes[:]),
		DataOffset: dataOffset,
		DataLength: dataLength,
	}
	it.pos = dataOffset + dataLength
	return sub, true
}

// Each iterates all remaining subrecords, invoking fn for each. It stops
// early if fn returns false.
func (it *SubrecordIter) Each(fn func(Subrecord) bool) {
	for {
		sub, ok := it.Next()
		if !ok {
			return
		}
		if !fn(sub) {
			return
		}
	}
}

// Payload returns the subrecord's data slice from buf.
func (s Subrecord) Payload(buf []byte) []byte {
	return buf[s.DataOffset : s.DataOffset+s.DataLength]
}
