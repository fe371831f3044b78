package song

import (
	"fmt"
	"strings"

	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/util"
)

// PhraseLength is the number of rows in a phrase.
const PhraseLength = 16

// PhraseRow is one step: a note with velocity, an instrument reference and
// three FX cells.
type PhraseRow struct {
	Note       uint8    `json:"note"`
	Velocity   uint8    `json:"velocity"`
	Instrument uint8    `json:"instrument"`
	FX         [3]fx.FX `json:"fx"`
}

func (row PhraseRow) IsEmpty() bool {
	if row.Note != EmptyRef || row.Instrument != EmptyRef {
		return false
	}
	for _, f := range row.FX {
		if !f.IsEmpty() {
			return false
		}
	}
	return true
}

type Phrase struct {
	Rows [PhraseLength]PhraseRow `json:"rows"`
}

func readPhrase(r *util.Reader) Phrase {
	var p Phrase
	for n := range p.Rows {
		row := PhraseRow{
			Note:       r.Read(),
			Velocity:   r.Read(),
			Instrument: r.Read(),
		}
		for i := range row.FX {
			row.FX[i] = fx.Read(r)
		}
		p.Rows[n] = row
	}
	return p
}

func (p Phrase) write(w *util.Writer) {
	for _, row := range p.Rows {
		w.Write(row.Note)
		w.Write(row.Velocity)
		w.Write(row.Instrument)
		for _, f := range row.FX {
			f.Write(w)
		}
	}
}

func (p Phrase) IsEmpty() bool {
	for _, row := range p.Rows {
		if !row.IsEmpty() {
			return false
		}
	}
	return true
}

// Print renders the phrase with mnemonics resolved through cmds and, for
// instrument-specific commands, through the pack of the row's instrument.
func (p Phrase) Print(cmds fx.Commands, packOf func(inst uint8) fx.CommandPack) string {
	lines := make([]string, 0, PhraseLength)
	for n, row := range p.Rows {
		pack := packOf(row.Instrument)
		cells := make([]string, 0, len(row.FX))
		for _, f := range row.FX {
			cells = append(cells, f.Print(cmds, pack))
		}
		lines = append(lines, fmt.Sprintf("%X %02X %02X %02X %s",
			n, row.Note, row.Velocity, row.Instrument, strings.Join(cells, " ")))
	}
	return strings.Join(lines, "\n")
}
