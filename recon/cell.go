package recon

import (
	"github.com/fnv360/semrecon/binutil"
	"github.com/fnv360/semrecon/reconcore"
	"github.com/fnv360/semrecon/recondump"
)

// cellGridSearchWindow bounds how far (before or after) a CELL main
// record's offset a scan-mode XCLC/CellGrid entry is trusted to belong to
// it, mirroring fullNameSearchWindow's nearest-within-window heuristic.
const cellGridSearchWindow = 2000

// Cell is a reconstructed CELL record. Heightmap is attached later by the
// cell/LAND cross-enrichment pass, not populated here.
type Cell struct {
	Base
	FullName   string
	Flags      uint8
	IsInterior bool
	GridX      int32
	GridY      int32
	HasGrid    bool
	Heightmap  []int16
}

func reconstructCells(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Cell {
	var out []*Cell
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindCELL.Sig) {
		c := &Cell{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			c.FullName = stubFullName(mr, sr)
			if gx, gy, found := nearestCellGrid(sr.CellGrids, mr.Offset); found {
				c.GridX, c.GridY, c.HasGrid = gx, gy, true
			}
			out = append(out, c)
			continue
		}
		bigEndian := mr.IsBigEndian
		it := binutil.NewSubrecordIter(buf, bigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				c.EditorID = binutil.CString(payload)
			case "FULL":
				c.FullName = DecodeText(payload)
			case "DATA":
				if len(payload) >= 1 {
					c.Flags = payload[0]
					c.IsInterior = c.Flags&0x01 != 0
				}
			case "XCLC":
				if len(payload) < 8 {
					return true
				}
				gx, ok1 := binutil.Int32At(payload, 0, bigEndian)
				gy, ok2 := binutil.Int32At(payload, 4, bigEndian)
				if ok1 && ok2 {
					c.GridX, c.GridY, c.HasGrid = gx, gy, true
				}
			default:
				if log != nil {
					log.Debugf("cell %s: skipping unknown subrecord %q", c.FormID, s.Signature)
				}
			}
			return true
		})
		if !c.HasGrid {
			if gx, gy, found := nearestCellGrid(sr.CellGrids, mr.Offset); found {
				c.GridX, c.GridY, c.HasGrid = gx, gy, true
			}
		}
		out = append(out, c)
	}
	return out
}

// nearestCellGrid finds the scan-result CellGrid entry closest to offset,
// within cellGridSearchWindow bytes on either side. Exterior worldspace
// cells are laid out near their XCLC in both the ESM and the runtime cell
// table, so this is a reasonable fallback when accessor-mode parsing of
// the CELL record itself did not yield an XCLC subrecord.
func nearestCellGrid(grids []recondump.CellGrid, offset int64) (x, y int32, ok bool) {
	best := int64(-1)
	var bestGrid recondump.CellGrid
	for _, g := range grids {
		d := g.Offset - offset
		if d < 0 {
			d = -d
		}
		if d > cellGridSearchWindow {
			continue
		}
		if best == -1 || d < best {
			best, bestGrid = d, g
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return bestGrid.GridX, bestGrid.GridY, true
}

// attachLandHeightmaps is the cell/LAND cross-enrichment pass (spec §4.6):
// it attaches a scanned Land heightmap to every exterior Cell sharing its
// (GridX, GridY) coordinate.
func attachLandHeightmaps(cells []*Cell, lands []recondump.Land) {
	if len(lands) == 0 {
		return
	}
	byCoord := make(map[[2]int32]recondump.Land, len(lands))
	for _, l := range lands {
		byCoord[[2]int32{l.CellX, l.CellY}] = l
	}
	for _, c := range cells {
		if c.IsInterior || !c.HasGrid {
			continue
		}
		if l, found := byCoord[[2]int32{c.GridX, c.GridY}]; found {
			c.Heightmap = l.Heightmap
		}
	}
}

// Worldspace is a reconstructed WRLD record.
type Worldspace struct {
	Base
	FullName string
}

func reconstructWorldspaces(sr *recondump.ScanResult, acc recondump.Accessor, corr *Correlation, log recondump.Logger) []*Worldspace {
	var out []*Worldspace
	for _, mr := range sr.MainRecordsOfKind(reconcore.KindWRLD.Sig) {
		w := &Worldspace{Base: buildBase(mr, corr)}
		buf, ok := subrecordWindow(acc, mr)
		if !ok {
			w.FullName = stubFullName(mr, sr)
			out = append(out, w)
			continue
		}
		it := binutil.NewSubrecordIter(buf, mr.IsBigEndian)
		it.Each(func(s binutil.Subrecord) bool {
			payload := s.Payload(buf)
			switch s.Signature {
			case "EDID":
				w.EditorID = binutil.CString(payload)
			case "FULL":
				w.FullName = DecodeText(payload)
			default:
				if log != nil {
					log.Debugf("wrld %s: skipping unknown subrecord %q", w.FormID, s.Signature)
				}
			}
			return true
		})
		out = append(out, w)
	}
	return out
}
