package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Spell is a reconstructed SPEL record (spells and abilities).
type Spell struct {
	Base
	FullName  string
	SpellType uint32
	Cost      uint32
	Level     uint32
}

func reconstructSpells(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Spell {
	var out []*Spell
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindSPEL.Sig) {
		s := &Spell{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			s.FullName = stubFullName(mr, sr)
			out = append(out, s)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(sub binutil.Subrecord) bool {
			payload := sub.Payload(buf)
			switch sub.Signature {
			case "EDID":
				s.EditorID = binutil.CString(payload)
			case "FULL":
				s.FullName = DecodeText(payload)
			case "SPIT":
				if len(payload) < 12 {
					return true
				}
				if v, ok := binutil.Uint32At(payload, 0, bigEndian); ok {
					s.SpellType = v
				}
				if v, ok := binutil.Uint32At(payload, 4, bigEndian); ok {
					s.Cost = v
				}
				if v, ok := binutil.Uint32At(payload, 8, bigEndian); ok {
					s.Level = v
				}
			default:
				if log != nil {
					log.Debugf("spel %s: skipping unknown subrecord %q", s.FormID, sub.Signature)
				}
			}
			return true
		})
		out = append(out, s)
	}
	return out
}

// Enchantment is a reconstructed ENCH record (object effects).
type Enchantment struct {
	Base
	FullName  string
	EnchType  uint32
	Charge    uint32
}

func reconstructEnchantments(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Enchantment {
	var out []*Enchantment
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindENCH.Sig) {
		e := &Enchantment{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			e.FullName = stubFullName(mr, sr)
			out = append(out, e)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(sub binutil.Subrecord) bool {
			payload := sub.Payload(buf)
			switch sub.Signature {
			case "EDID":
				e.EditorID = binutil.CString(payload)
			case "FULL":
				e.FullName = DecodeText(payload)
			case "ENIT":
				if len(payload) < 8 {
					return true
				}
				if v, ok := binutil.Uint32At(payload, 0, bigEndian); ok {
					e.EnchType = v
				}
				if v, ok := binutil.Uint32At(payload, 4, bigEndian); ok {
					e.Charge = v
				}
			default:
				if log != nil {
					log.Debugf("ench %s: skipping unknown subrecord %q", e.FormID, sub.Signature)
				}
			}
			return true
		})
		out = append(out, e)
	}
	return out
}

// MagicEffect is a reconstructed MGEF record.
type MagicEffect struct {
	Base
	FullName    string
	Flags       uint32
	BaseCost    float32
}

func reconstructMagicEffects(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*MagicEffect {
	var out []*MagicEffect
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindMGEF.Sig) {
		m := &MagicEffect{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			m.FullName = stubFullName(mr, sr)
			out = append(out, m)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(sub binutil.Subrecord) bool {
			payload := sub.Payload(buf)
			switch sub.Signature {
			case "EDID":
				m.EditorID = binutil.CString(payload)
			case "FULL":
				m.FullName = DecodeText(payload)
			case "DATA":
				if len(payload) < 8 {
					return true
				}
				if v, ok := binutil.Uint32At(payload, 0, bigEndian); ok {
					m.Flags = v
				}
				if v, ok := binutil.Float32At(payload, 4, bigEndian); ok {
					m.BaseCost = v
				}
			default:
				if log != nil {
					log.Debugf("mgef %s: skipping unknown subrecord %q", m.FormID, sub.Signature)
				}
			}
			return true
		})
		out = append(out, m)
	}
	return out
}

// Perk is a reconstructed PERK record.
type Perk struct {
	Base
	FullName string
	Trait    uint8
	Level    uint8
	NumRanks uint8
}

func reconstructPerks(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Perk {
	var out []*Perk
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindPERK.Sig) {
		p := &Perk{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			p.FullName = stubFullName(mr, sr)
			out = append(out, p)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(sub binutil.Subrecord) bool {
			payload := sub.Payload(buf)
			switch sub.Signature {
			case "EDID":
				p.EditorID = binutil.CString(payload)
			case "FULL":
				p.FullName = DecodeText(payload)
			case "DATA":
				if len(payload) < 4 {
					return true
				}
				p.Trait = payload[0]
				p.Level = payload[1]
				p.NumRanks = payload[2]
			default:
				if log != nil {
					log.Debugf("perk %s: skipping unknown subrecord %q", p.FormID, sub.Signature)
				}
			}
			return true
		})
		out = append(out, p)
	}
	return out
}
