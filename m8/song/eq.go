package song

import "github.com/m8kit/m8file/m8/util"

// EqBand is one band of a three-band EQ.
type EqBand struct {
	Mode     uint8 `json:"mode"`
	Freq     uint8 `json:"freq"`
	FreqFine uint8 `json:"freq_fine"`
	Level    uint8 `json:"level"`
	Q        uint8 `json:"q"`
}

// Eq records exist from V3 on, referenced from instruments by index.
type Eq struct {
	Bands [3]EqBand `json:"bands"`
}

func readEq(r *util.Reader) Eq {
	var e Eq
	for n := range e.Bands {
		e.Bands[n] = EqBand{
			Mode:     r.Read(),
			Freq:     r.Read(),
			FreqFine: r.Read(),
			Level:    r.Read(),
			Q:        r.Read(),
		}
	}
	return e
}

func (e Eq) write(w *util.Writer) {
	for _, b := range e.Bands {
		w.Write(b.Mode)
		w.Write(b.Freq)
		w.Write(b.FreqFine)
		w.Write(b.Level)
		w.Write(b.Q)
	}
}
