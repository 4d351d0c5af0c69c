package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// InfoResponse is one NAM1/TRDT-delimited dialogue response line.
type InfoResponse struct {
	Text           string
	EmotionType    uint32
	EmotionValue   int32
	ResponseNumber uint8
}

// Dialogue is a reconstructed INFO record (a single dialogue response
// entry). Named "Dialogue" rather than "Info" to match the tree vocabulary
// used by the dialogue graph builder (spec §4.7, Glossary).
type Dialogue struct {
	Base

	QuestFormID        reconcore.FormID
	TopicFormID        reconcore.FormID
	PreviousInfoFormID reconcore.FormID
	SpeakerFormID      reconcore.FormID

	LinkToTopics   []reconcore.FormID
	LinkFromTopics []reconcore.FormID
	AddTopics      []reconcore.FormID

	Difficulty uint32

	Responses []InfoResponse

	// InfoIndex orders Dialogue within its Topic; populated by the dialogue
	// graph builder's runtime enrichment step (spec §4.7 step 4), zero
	// until then.
	InfoIndex int32

	// InfoFlags/InfoFlagsExt are populated by runtime enrichment only.
	InfoFlags    uint32
	InfoFlagsExt uint32
}

// TotalResponseLen returns the combined length of all response texts, used
// as the dedup tie-break in spec §4.8.
func (d *Dialogue) TotalResponseLen() int {
	n := 0
	for _, r := range d.Responses {
		n += len(r.Text)
	}
	return n
}

func reconstructDialogues(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Dialogue {
	var out []*Dialogue
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindINFO.Sig) {
		d := &Dialogue{Base: buildBase(mr, corr)}

		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			out = append(out, d)
			continue
		}

		populateDialogue(d, buf, mr.IsBigEndian, log)
		out = append(out, d)
	}
	return out
}

func populateDialogue(d *Dialogue, buf []byte, bigEndian bool, log recondump.Logger) {
	var cur *InfoResponse

	flush := func() {
		if cur != nil {
			d.Responses = append(d.Responses, *cur)
			cur = nil
		}
	}

	it := binutil.NewSubrecordIter(buf, bigEndian)
	it.Each(func(s binutil.Subrecord) bool {
		payload := s.Payload(buf)
		switch s.Signature {
		case "EDID":
			d.EditorID = binutil.CString(payload)
		case "QSTI":
			if v, ok := single32FormID(payload, bigEndian); ok {
				d.QuestFormID = v
			}
		case "NAM1":
			flush()
			cur = &InfoResponse{Text: DecodeText(payload)}
		case "TRDT":
			if len(payload) < 20 || cur == nil {
				return true
			}
			emoType, _ := binutil.Uint32At(payload, 0, bigEndian)
			emoValue, _ := binutil.Int32At(payload, 4, bigEndian)
			respNum, _ := binutil.Int8At(payload, 12)
			cur.EmotionType = emoType
			cur.EmotionValue = emoValue
			cur.ResponseNumber = uint8(respNum)
		case "PNAM":
			if v, ok := single32FormID(payload, bigEndian); ok {
				d.PreviousInfoFormID = v
			}
		case "ANAM":
			if v, ok := single32FormID(payload, bigEndian); ok {
				d.SpeakerFormID = v
			}
		case "TPIC":
			if v, ok := single32FormID(payload, bigEndian); ok {
				d.TopicFormID = v
			}
		case "TCLT":
			if v, ok := single32FormID(payload, bigEndian); ok && !v.Null() {
				d.LinkToTopics = append(d.LinkToTopics, v)
			}
		case "TCLF":
			if v, ok := single32FormID(payload, bigEndian); ok {
				d.LinkFromTopics = append(d.LinkFromTopics, v)
			}
		case "NAME":
			if v, ok := single32FormID(payload, bigEndian); ok {
				d.AddTopics = append(d.AddTopics, v)
			}
		case "DNAM":
			if len(payload) < 4 {
				return true
			}
			diff, ok := binutil.Uint32At(payload, 0, bigEndian)
			if !ok {
				return true
			}
			if diff > 10 {
				diff = 0
			}
			d.Difficulty = diff
		default:
			if log != nil {
				log.Debugf("info %s: skipping unknown subrecord %q", d.FormID, s.Signature)
			}
		}
		return true
	})

	flush()
}
