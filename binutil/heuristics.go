package binutil

import "math"

// Heuristic subrecord validators (spec §4.2). These recover subrecords that
// appear in free memory without their parent main-record header, so there is
// no record-level endianness tag to trust; each validator tries
// little-endian first, then big-endian, and accepts the first parse whose
// payload passes a range-based sanity check. LE wins ties.

// ACBSFields is the parsed, validated payload of an ACBS subrecord.
type ACBSFields struct {
	Flags          uint32
	FatigueBase    uint16
	BarterGold     uint16
	Level          int16
	CalcMin        uint16
	CalcMax        uint16
	SpeedMul       uint16
	Karma          float32
	Disposition    int16
	TemplateFlags  uint16
	IsBigEndian    bool
}

const acbsPayloadLen = 24
const acbsWindowLen = subrecordHeaderLen + acbsPayloadLen // 30

// TryACBS attempts to parse an ACBS subrecord out of window, where window
// starts at the subrecord's signature bytes and must be at least 30 bytes
// long. It returns ok=false if the window is too short, the declared length
// doesn't match the fixed ACBS size, or no endianness produces a payload
// that passes validation.
func TryACBS(window []byte) (fields ACBSFields, ok bool) {
	if len(window) < acbsWindowLen {
		return ACBSFields{}, false
	}
	payload := window[subrecordHeaderLen : subrecordHeaderLen+acbsPayloadLen]

	if le, ok := parseACBS(window, payload, false); ok {
		return le, true
	}
	if be, ok := parseACBS(window, payload, true); ok {
		return be, true
	}
	return ACBSFields{}, false
}

func parseACBS(window, payload []byte, bigEndian bool) (ACBSFields, bool) {
	length, ok := Uint16At(window, 4, bigEndian)
	if !ok || length != acbsPayloadLen {
		return ACBSFields{}, false
	}

	flags, _ := Uint32At(payload, 0, bigEndian)
	fatigueBase, _ := Uint16At(payload, 4, bigEndian)
	barterGold, _ := Uint16At(payload, 6, bigEndian)
	level, _ := Int16At(payload, 8, bigEndian)
	calcMin, _ := Uint16At(payload, 10, bigEndian)
	calcMax, _ := Uint16At(payload, 12, bigEndian)
	speedMul, _ := Uint16At(payload, 14, bigEndian)
	karma, _ := Float32At(payload, 16, bigEndian)
	disposition, _ := Int16At(payload, 20, bigEndian)
	templateFlags, _ := Uint16At(payload, 22, bigEndian)

	if flags&0xFFF00000 != 0 {
		return ACBSFields{}, false
	}
	if fatigueBase > 1000 {
		return ACBSFields{}, false
	}
	if level < -128 || level > 255 {
		return ACBSFields{}, false
	}
	if speedMul > 500 {
		return ACBSFields{}, false
	}
	if math.IsNaN(float64(karma)) || math.IsInf(float64(karma), 0) || math.Abs(float64(karma)) > 2.0 {
		return ACBSFields{}, false
	}

	return ACBSFields{
		Flags:         flags,
		FatigueBase:   fatigueBase,
		BarterGold:    barterGold,
		Level:         level,
		CalcMin:       calcMin,
		CalcMax:       calcMax,
		SpeedMul:      speedMul,
		Karma:         karma,
		Disposition:   disposition,
		TemplateFlags: templateFlags,
		IsBigEndian:   bigEndian,
	}, true
}

// CTDAFields is the parsed, validated payload of a CTDA subrecord.
type CTDAFields struct {
	Type          uint8
	Operator      uint8
	CompValue     float32
	FunctionIndex uint16
	Param1        uint32
	Param2        uint32
	RunOnType     uint32 // only valid when HasRunOnType
	HasRunOnType  bool
	IsBigEndian   bool
}

const ctdaPayloadLenShort = 24
const ctdaPayloadLenLong = 28

// TryCTDA attempts to parse a CTDA subrecord out of window (signature +
// length + 24-or-28 byte payload).
func TryCTDA(window []byte) (fields CTDAFields, ok bool) {
	if len(window) < subrecordHeaderLen+ctdaPayloadLenShort {
		return CTDAFields{}, false
	}

	if le, ok := parseCTDA(window, false); ok {
		return le, true
	}
	if be, ok := parseCTDA(window, true); ok {
		return be, true
	}
	return CTDAFields{}, false
}

func parseCTDA(window []byte, bigEndian bool) (CTDAFields, bool) {
	length, ok := Uint16At(window, 4, bigEndian)
	if !ok || (length != ctdaPayloadLenShort && length != ctdaPayloadLenLong) {
		return CTDAFields{}, false
	}
	if len(window) < subrecordHeaderLen+int(length) {
		return CTDAFields{}, false
	}
	payload := window[subrecordHeaderLen : subrecordHeaderLen+int(length)]

	typ, _ := Int8At(payload, 0)
	op, _ := Int8At(payload, 1)
	compValue, _ := Float32At(payload, 4, bigEndian)
	functionIndex, _ := Uint16At(payload, 8, bigEndian)
	param1, _ := Uint32At(payload, 12, bigEndian)
	param2, _ := Uint32At(payload, 16, bigEndian)

	if functionIndex > 1000 {
		return CTDAFields{}, false
	}
	if math.IsNaN(float64(compValue)) || math.IsInf(float64(compValue), 0) {
		return CTDAFields{}, false
	}

	f := CTDAFields{
		Type:          uint8(typ),
		Operator:      uint8(op),
		CompValue:     compValue,
		FunctionIndex: functionIndex,
		Param1:        param1,
		Param2:        param2,
		IsBigEndian:   bigEndian,
	}
	if length == ctdaPayloadLenLong {
		f.RunOnType, _ = Uint32At(payload, 20, bigEndian)
		f.HasRunOnType = true
	}
	return f, true
}
