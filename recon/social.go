package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Faction is a reconstructed FACT record.
type Faction struct {
	Base
	FullName string
	Flags    uint32
}

func reconstructFactions(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Faction {
	var out []*Faction
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindFACT.Sig) {
		f := &Faction{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			f.FullName = stubFullName(mr, sr)
			out = append(out, f)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(sub binutil.Subrecord) bool {
			payload := sub.Payload(buf)
			switch sub.Signature {
			case "EDID":
				f.EditorID = binutil.CString(payload)
			case "FULL":
				f.FullName = DecodeText(payload)
			case "DATA":
				if v, ok := binutil.Uint32At(payload, 0, bigEndian); ok {
					f.Flags = v
				}
			default:
				if log != nil {
					log.Debugf("fact %s: skipping unknown subrecord %q", f.FormID, sub.Signature)
				}
			}
			return true
		})
		out = append(out, f)
	}
	return out
}

// Race is a reconstructed RACE record.
type Race struct {
	Base
	FullName string
}

func reconstructRaces(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Race {
	var out []*Race
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindRACE.Sig) {
		r := &Race{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			r.FullName = stubFullName(mr, sr)
			out = append(out, r)
			continue
		}
		it := binutil.NewSubrecordIter(buf, mr.IsBigEndian)
		it.Each(func(sub binutil.Subrecord) bool {
			payload := sub.Payload(buf)
			switch sub.Signature {
			case "EDID":
				r.EditorID = binutil.CString(payload)
			case "FULL":
				r.FullName = DecodeText(payload)
			default:
				if log != nil {
					log.Debugf("race %s: skipping unknown subrecord %q", r.FormID, sub.Signature)
				}
			}
			return true
		})
		out = append(out, r)
	}
	return out
}

// Class is a reconstructed CLAS record.
type Class struct {
	Base
	FullName string
	Tagskill1, Tagskill2, Tagskill3, Tagskill4 int8
}

func reconstructClasses(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Class {
	var out []*Class
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindCLAS.Sig) {
		c := &Class{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			c.FullName = stubFullName(mr, sr)
			out = append(out, c)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(sub binutil.Subrecord) bool {
			payload := sub.Payload(buf)
			switch sub.Signature {
			case "EDID":
				c.EditorID = binutil.CString(payload)
			case "FULL":
				c.FullName = DecodeText(payload)
			case "DATA":
				if len(payload) < 4 {
					return true
				}
				v1, _ := binutil.Int8At(payload, 0)
				v2, _ := binutil.Int8At(payload, 1)
				v3, _ := binutil.Int8At(payload, 2)
				v4, _ := binutil.Int8At(payload, 3)
				c.Tagskill1, c.Tagskill2, c.Tagskill3, c.Tagskill4 = v1, v2, v3, v4
			default:
				if log != nil {
					log.Debugf("clas %s: skipping unknown subrecord %q", c.FormID, sub.Signature)
				}
			}
			return true
		})
		out = append(out, c)
	}
	return out
}

// Reputation is a reconstructed REPU record (town/faction reputation
// levels).
type Reputation struct {
	Base
	FullName string
	Value    int32
}

func reconstructReputations(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Reputation {
	var out []*Reputation
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindREPU.Sig) {
		r := &Reputation{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			r.FullName = stubFullName(mr, sr)
			out = append(out, r)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(sub binutil.Subrecord) bool {
			payload := sub.Payload(buf)
			switch sub.Signature {
			case "EDID":
				r.EditorID = binutil.CString(payload)
			case "FULL":
				r.FullName = DecodeText(payload)
			case "DATA":
				if v, ok := binutil.Int32At(payload, 0, bigEndian); ok {
					r.Value = v
				}
			default:
				if log != nil {
					log.Debugf("repu %s: skipping unknown subrecord %q", r.FormID, sub.Signature)
				}
			}
			return true
		})
		out = append(out, r)
	}
	return out
}

// Challenge is a reconstructed CHAL record.
type Challenge struct {
	Base
	FullName string
	Type     uint32
	Target   int32
}

func reconstructChallenges(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Challenge {
	var out []*Challenge
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindCHAL.Sig) {
		c := &Challenge{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			c.FullName = stubFullName(mr, sr)
			out = append(out, c)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(sub binutil.Subrecord) bool {
			payload := sub.Payload(buf)
			switch sub.Signature {
			case "EDID":
				c.EditorID = binutil.CString(payload)
			case "FULL":
				c.FullName = DecodeText(payload)
			case "DATA":
				if len(payload) < 8 {
					return true
				}
				if v, ok := binutil.Uint32At(payload, 0, bigEndian); ok {
					c.Type = v
				}
				if v, ok := binutil.Int32At(payload, 4, bigEndian); ok {
					c.Target = v
				}
			default:
				if log != nil {
					log.Debugf("chal %s: skipping unknown subrecord %q", c.FormID, sub.Signature)
				}
			}
			return true
		})
		out = append(out, c)
	}
	return out
}
