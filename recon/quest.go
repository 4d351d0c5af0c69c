package recon

import (
	"sort"

	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// QuestStage is one INDX-delimited quest stage.
type QuestStage struct {
	Index    int16
	Flags    uint8
	LogEntry string
}

// QuestObjective is one QOBJ-delimited quest objective.
type QuestObjective struct {
	Index       int32
	DisplayText string
}

// Quest is a reconstructed QUST record.
type Quest struct {
	Base
	FullName string
	Flags    uint8
	Priority uint8
	Script   reconcore.FormID

	Stages     []QuestStage
	Objectives []QuestObjective
}

func reconstructQuests(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Quest {
	var out []*Quest
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindQUST.Sig) {
		q := &Quest{Base: buildBase(mr, corr)}

		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			q.FullName = stubFullName(mr, sr)
			out = append(out, q)
			continue
		}

		populateQuest(q, buf, mr.IsBigEndian, log)
		out = append(out, q)
	}
	return out
}

func populateQuest(q *Quest, buf []byte, bigEndian bool, log recondump.Logger) {
	var curStage *QuestStage
	var curObjective *QuestObjective

	flushStage := func() {
		if curStage != nil {
			q.Stages = append(q.Stages, *curStage)
			curStage = nil
		}
	}
	flushObjective := func() {
		if curObjective != nil {
			q.Objectives = append(q.Objectives, *curObjective)
			curObjective = nil
		}
	}

	it := binutil.NewSubrecordIter(buf, bigEndian)
	it.Each(func(s binutil.Subrecord) bool {
		payload := s.Payload(buf)
		switch s.Signature {
		case "EDID":
			q.EditorID = binutil.CString(payload)
		case "FULL":
			q.FullName = DecodeText(payload)
		case "SCRI":
			if v, ok := single32FormID(payload, bigEndian); ok {
				q.Script = v
			}
		case "DATA":
			if len(payload) >= 2 {
				q.Flags = payload[0]
				q.Priority = payload[1]
			}
		case "INDX":
			if len(payload) < 2 {
				return true
			}
			flushStage()
			idx, ok := binutil.Int16At(payload, 0, bigEndian)
			if !ok {
				return true
			}
			curStage = &QuestStage{Index: idx}
		case "CNAM":
			if curStage != nil {
				curStage.LogEntry = DecodeText(payload)
			}
		case "QSDT":
			if curStage != nil && len(payload) >= 1 {
				curStage.Flags = payload[0]
			}
		case "QOBJ":
			if len(payload) < 4 {
				return true
			}
			flushObjective()
			idx, ok := binutil.Int32At(payload, 0, bigEndian)
			if !ok {
				return true
			}
			curObjective = &QuestObjective{Index: idx}
		case "NNAM":
			if curObjective != nil {
				curObjective.DisplayText = DecodeText(payload)
			}
			flushObjective()
		default:
			if log != nil {
				log.Debugf("qust %s: skipping unknown subrecord %q", q.FormID, s.Signature)
			}
		}
		return true
	})

	flushStage()
	flushObjective()

	sort.Slice(q.Stages, func(i, j int) bool { return q.Stages[i].Index < q.Stages[j].Index })
	sort.Slice(q.Objectives, func(i, j int) bool { return q.Objectives[i].Index < q.Objectives[j].Index })
}
