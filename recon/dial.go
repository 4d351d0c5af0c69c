package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// Topic is a reconstructed DIAL record (a dialogue topic).
type Topic struct {
	Base
	FullName string

	// SpeakerFormID is the topic-level speaker (TNAM), propagated to any
	// INFO under the topic lacking its own speaker (spec §4.7 step 5).
	SpeakerFormID reconcore.FormID

	// QuestFormID is populated by the dialogue graph builder's runtime
	// merge, not by the ESM track (spec §4.7 steps 2 and 7).
	QuestFormID reconcore.FormID
}

func reconstructTopics(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Topic {
	var out []*Topic
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindDIAL.Sig) {
		t := &Topic{Base: buildBase(mr, corr)}

		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			t.FullName = stubFullName(mr, sr)
			out = append(out, t)
			continue
		}

		populateTopic(t, buf, mr.IsBigEndian, log)
		out = append(out, t)
	}
	return out
}

func populateTopic(t *Topic, buf []byte, bigEndian bool, log recondump.Logger) {
	it := binutil.NewSubrecordIter(buf, bigEndian)
	it.Each(func(s binutil.Subrecord) bool {
		payload := s.Payload(buf)
		switch s.Signature {
		case "EDID":
			t.EditorID = binutil.CString(payload)
		case "FULL":
			t.FullName = DecodeText(payload)
		case "TNAM":
			if v, ok := single32FormID(payload, bigEndian); ok {
				t.SpeakerFormID = v
			}
		default:
			if log != nil {
				log.Debugf("dial %s: skipping unknown subrecord %q", t.FormID, s.Signature)
			}
		}
		return true
	})
}
