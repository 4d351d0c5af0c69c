package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Book is a reconstructed BOOK record.
type Book struct {
	Base
	FullName string
	Script   reconcore.FormID
	Value    int32
	Weight   float32
	Text     string // CNAM / book text
}

func reconstructBooks(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Book {
	var out []*Book
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindBOOK.Sig) {
		b := &Book{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			b.FullName = stubFullName(mr, sr)
			out = append(out, b)
			continue
		}
		it := binutil.NewSubrecordIter(buf, mr.IsBigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			if basicSubrecordSwitch(s.Signature, payload, mr.IsBigEndian, &b.EditorID, &b.FullName, &b.Script) {
				return true
			}
			switch s.Signature {
			case "DATA":
				if d, ok := parseItemDATA(payload, mr.IsBigEndian); ok {
					b.Value, b.Weight = d.Value, d.Weight
				}
			case "CNAM":
				b.Text = DecodeText(payload)
			default:
				if log != nil {
					log.Debugf("book %s: skipping unknown subrecord %q", b.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, b)
	}
	return out
}

// Note is a reconstructed NOTE record (holotapes and paper notes).
type Note struct {
	Base
	FullName string
	Text     string // CNAM note text, empty for audio holotapes
	SoundFormID reconcore.FormID // SNAM, for holotape notes
}

func reconstructNotes(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Note {
	var out []*Note
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindNOTE.Sig) {
		n := &Note{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			n.FullName = stubFullName(mr, sr)
			out = append(out, n)
			continue
		}
		it := binutil.NewSubrecordIter(buf, mr.IsBigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				n.EditorID = binutil.CString(payload)
			case "FULL":
				n.FullName = DecodeText(payload)
			case "CNAM":
				n.Text = DecodeText(payload)
			case "SNAM":
				if v, ok := single32FormID(payload, mr.IsBigEndian); ok {
					n.SoundFormID = v
				}
			default:
				if log != nil {
					log.Debugf("note %s: skipping unknown subrecord %q", n.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, n)
	}
	return out
}

// Terminal is a reconstructed TERM record.
type Terminal struct {
	Base
	FullName     string
	Script       reconcore.FormID
	DifficultyID uint8 // DATA difficulty byte
}

func reconstructTerminals(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Terminal {
	var out []*Terminal
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindTERM.Sig) {
		t := &Terminal{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			t.FullName = stubFullName(mr, sr)
			out = append(out, t)
			continue
		}
		it := binutil.NewSubrecordIter(buf, mr.IsBigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			if basicSubrecordSwitch(s.Signature, payload, mr.IsBigEndian, &t.EditorID, &t.FullName, &t.Script) {
				return true
			}
			switch s.Signature {
			case "DATA":
				if len(payload) >= 1 {
					t.DifficultyID = payload[0]
				}
			default:
				if log != nil {
					log.Debugf("term %s: skipping unknown subrecord %q", t.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, t)
	}
	return out
}
