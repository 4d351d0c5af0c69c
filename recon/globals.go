package recon

import (
	"strings"

	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// GameSetting is a reconstructed GMST record. Its DATA payload is
// polymorphic: the first character of the EditorID ('s', 'f', or 'i')
// selects which of StringValue/FloatValue/IntValue is meaningful.
type GameSetting struct {
	Base
	StringValue string
	FloatValue  float32
	IntValue    int32
}

func reconstructGameSettings(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*GameSetting {
	var out []*GameSetting
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindGMST.Sig) {
		g := &GameSetting{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			out = append(out, g)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				g.EditorID = binutil.CString(payload)
			case "DATA":
				populateGMSTValue(g, payload, bigEndian)
			default:
				if log != nil {
					log.Debugf("gmst %s: skipping unknown subrecord %q", g.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, g)
	}
	return out
}

func populateGMSTValue(g *GameSetting, payload []byte, bigEndian bool) {
	if g.EditorID == "" || len(payload) == 0 {
		return
	}
	switch strings.ToLower(g.EditorID)[0] {
	case 's':
		g.StringValue = DecodeText(payload)
	case 'f':
		if v, ok := binutil.Float32At(payload, 0, bigEndian); ok {
			g.FloatValue = v
		}
	default: // 'i', 'b', and anything else is treated as an integer setting
		if v, ok := binutil.Int32At(payload, 0, bigEndian); ok {
			g.IntValue = v
		}
	}
}

// GlobalVariable is a reconstructed GLOB record.
type GlobalVariable struct {
	Base
	Format byte // 's' short, 'l' long, 'f' float
	Value  float32
}

func reconstructGlobalVariables(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*GlobalVariable {
	var out []*GlobalVariable
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindGLOB.Sig) {
		g := &GlobalVariable{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			out = append(out, g)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				g.EditorID = binutil.CString(payload)
			case "FNAM":
				if len(payload) >= 1 {
					g.Format = payload[0]
				}
			case "FLTV":
				if v, ok := binutil.Float32At(payload, 0, bigEndian); ok {
					g.Value = v
				}
			default:
				if log != nil {
					log.Debugf("glob %s: skipping unknown subrecord %q", g.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, g)
	}
	return out
}
