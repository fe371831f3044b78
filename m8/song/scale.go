package song

import (
	"encoding/binary"

	"github.com/m8kit/m8file/m8/util"
)

// ScaleNameLength is the fixed scale name field width.
const ScaleNameLength = 16

// NoteOffset is the tuning offset of one scale degree.
type NoteOffset struct {
	Semi uint8 `json:"semi"`
	Fine uint8 `json:"fine"`
}

// Scale is a 12-degree scale: a little-endian enable bitmask (bit n = degree
// n active), per-degree offsets, then the name.
type Scale struct {
	NoteMask uint16         `json:"note_mask"`
	Offsets  [12]NoteOffset `json:"offsets"`
	Name     string         `json:"name"`
}

func readScale(r *util.Reader) Scale {
	var s Scale
	if b := r.ReadBytes(2); b != nil {
		s.NoteMask = binary.LittleEndian.Uint16(b)
	}
	for n := range s.Offsets {
		s.Offsets[n] = NoteOffset{
			Semi: r.Read(),
			Fine: r.Read(),
		}
	}
	s.Name = r.ReadString(ScaleNameLength)
	return s
}

func (s Scale) write(w *util.Writer) {
	var mask [2]byte
	binary.LittleEndian.PutUint16(mask[:], s.NoteMask)
	w.WriteBytes(mask[:])
	for _, o := range s.Offsets {
		w.Write(o.Semi)
		w.Write(o.Fine)
	}
	w.WriteString(s.Name, ScaleNameLength)
}
