package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// ItemMod is a reconstructed IMOD record (weapon modification items).
type ItemMod struct {
	Base
	FullName string
	Value    int32
	Weight   float32
}

func reconstructItemMods(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*ItemMod {
	var out []*ItemMod
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindIMOD.Sig) {
		m := &ItemMod{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			m.FullName = stubFullName(mr, sr)
			out = append(out, m)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				m.EditorID = binutil.CString(payload)
			case "FULL":
				m.FullName = DecodeText(payload)
			case "DATA":
				if d, ok := parseItemDATA(payload, bigEndian); ok {
					m.Value, m.Weight = d.Value, d.Weight
				}
			default:
				if log != nil {
					log.Debugf("imod %s: skipping unknown subrecord %q", m.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, m)
	}
	return out
}

// RecipeIngredient is one RCIL ingredient entry of a Recipe.
type RecipeIngredient struct {
	FormID reconcore.FormID
	Count  int32
}

// Recipe is a reconstructed RCPE record (crafting workbench recipes).
type Recipe struct {
	Base
	SkillLevel  uint32
	Ingredients []RecipeIngredient
	CreatedItem reconcore.FormID
	CreatedCount int32
}

func reconstructRecipes(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Recipe {
	var out []*Recipe
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindRCPE.Sig) {
		r := &Recipe{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			out = append(out, r)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				r.EditorID = binutil.CString(payload)
			case "DATA":
				if v, ok := binutil.Uint32At(payload, 0, bigEndian); ok {
					r.SkillLevel = v
				}
			case "RCIL":
				if len(payload) < 8 {
					return true
				}
				formID, ok1 := binutil.Uint32At(payload, 0, bigEndian)
				count, ok2 := binutil.Int32At(payload, 4, bigEndian)
				if ok1 && ok2 {
					r.Ingredients = append(r.Ingredients, RecipeIngredient{reconcore.FormID(formID), count})
				}
			case "RCQY":
				if v, ok := binutil.Int32At(payload, 0, bigEndian); ok {
					r.CreatedCount = v
				}
			case "CNAM":
				if v, ok := single32FormID(payload, bigEndian); ok {
					r.CreatedItem = v
				}
			default:
				if log != nil {
					log.Debugf("rcpe %s: skipping unknown subrecord %q", r.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, r)
	}
	return out
}

// Message is a reconstructed MESG record (UI popup/notification messages).
type Message struct {
	Base
	FullName string
	Text     string
	Type     uint32
}

func reconstructMessages(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Message {
	var out []*Message
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindMESG.Sig) {
		m := &Message{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			m.FullName = stubFullName(mr, sr)
			out = append(out, m)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				m.EditorID = binutil.CString(payload)
			case "FULL":
				m.FullName = DecodeText(payload)
			case "DESC":
				m.Text = DecodeText(payload)
			case "DNAM":
				if v, ok := binutil.Uint32At(payload, 0, bigEndian); ok {
					m.Type = v
				}
			default:
				if log != nil {
					log.Debugf("mesg %s: skipping unknown subrecord %q", m.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, m)
	}
	return out
}
