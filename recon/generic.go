package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
)

// itemDATA is the common {value, weight} shape shared by ARMO/ALCH/MISC/
// KEYM/BOOK's DATA subrecord: value i32 @0, weight f32 @4.
type itemDATA struct {
	Value  int32
	Weight float32
}

func parseItemDATA(payload []byte, bigEndian bool) (itemDATA, bool) {
	if len(payload) < 8 {
		return itemDATA{}, false
	}
	value, ok1 := binutil.Int32At(payload, 0, bigEndian)
	weight, ok2 := binutil.Float32At(payload, 4, bigEndian)
	if !ok1 || !ok2 {
		return itemDATA{}, false
	}
	return itemDATA{Value: value, Weight: weight}, true
}

// basicSubrecordSwitch handles the EDID/FULL/SCRI subrecords common to most
// item-like record kinds, writing editorID/fullName/script through the given
// pointers. It returns handled=false for any other signature, so callers can
// fall through to their own switch-based populate logic.
func basicSubrecordSwitch(sig string, payload []byte, bigEndian bool, editorID, fullName *string, script *reconcore.FormID) (handled bool) {
	switch sig {
	case "EDID":
		*editorID = binutil.CString(payload)
	case "FULL":
		*fullName = DecodeText(payload)
	case "SCRI":
		if v, ok := single32FormID(payload, bigEndian); ok {
			*script = v
		}
	default:
		return false
	}
	return true
}
