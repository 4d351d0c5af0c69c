package recon

import "encoding/binary"

// fakeSubrecord is a (signature, payload) pair used to hand-build a
// subrecord stream buffer for per-type reconstructor tests, mirroring the
// literal-byte-slice fixture style spec §8's S1/S2 scenarios use.
type fakeSubrecord struct {
	sig     string
	payload []byte
}

// buildSubrecords assembles buf the way it would appear after a main
// record's 24-byte header: consecutive (4-byte signature, 2-byte length,
// payload) triples. For bigEndian records the signature bytes are stored
// reversed and the length is big-endian, matching spec §4.1/§6.
func buildSubrecords(bigEndian bool, subs []fakeSubrecord) []byte {
	var buf []byte
	order := binary.ByteOrder(binary.LittleEndian)
	if bigEndian {
		order = binary.BigEndian
	}
	for _, s := range subs {
		sig := []byte(s.sig)
		if bigEndian {
			sig = []byte{sig[3], sig[2], sig[1], sig[0]}
		}
		buf = append(buf, sig...)
		lenBuf := make([]byte, 2)
		order.PutUint16(lenBuf, uint16(len(s.payload)))
		buf = append(buf, lenBuf...)
		buf = append(buf, s.payload...)
	}
	return buf
}

func le16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func le32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}
