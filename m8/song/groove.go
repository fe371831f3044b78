package song

import "github.com/m8kit/m8file/m8/util"

// GrooveLength is the number of ticks-per-step entries in a groove.
const GrooveLength = 16

type Groove struct {
	Steps [GrooveLength]uint8 `json:"steps"`
}

func readGroove(r *util.Reader) Groove {
	var g Groove
	for n := range g.Steps {
		g.Steps[n] = r.Read()
	}
	return g
}

func (g Groove) write(w *util.Writer) {
	for _, s := range g.Steps {
		w.Write(s)
	}
}
