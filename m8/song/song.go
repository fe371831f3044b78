// Package song decodes and encodes the full song image: the arrangement
// grid plus the owned chain/phrase/instrument/table/groove/scale/EQ
// collections, laid out sequentially after the version header.
package song

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/enums"
	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/instrument"
	"github.com/m8kit/m8file/m8/log"
	"github.com/m8kit/m8file/m8/util"
	"github.com/m8kit/m8file/m8/version"
)

const (
	NumTracks      = 8
	NumRows        = 256
	NumChains      = 255
	NumPhrases     = 255
	NumInstruments = 128
	NumTables      = 256
	NumGrooves     = 32
	NumScales      = 16
	NumEqs         = 32

	NameLength = 12

	// EmptyRef in the primary byte of a cell marks it empty.
	EmptyRef = 0xFF
)

type Song struct {
	Version   version.Version `json:"version"`
	Name      string          `json:"name"`
	Tempo     uint8           `json:"tempo"`
	Transpose uint8           `json:"transpose"`

	// Steps is the arrangement grid: a chain number per (row, track).
	Steps [NumRows][NumTracks]uint8 `json:"steps"`

	Chains      [NumChains]Chain                      `json:"chains"`
	Phrases     [NumPhrases]Phrase                    `json:"phrases"`
	Instruments [NumInstruments]instrument.Instrument `json:"instruments"`
	Tables      [NumTables]Table                      `json:"tables"`
	Grooves     [NumGrooves]Groove                    `json:"grooves"`
	Scales      [NumScales]Scale                      `json:"scales"`

	// EQs exist from V3 on; on older files the array stays zero.
	Eqs [NumEqs]Eq `json:"eqs"`
}

// New returns an empty song for the given version: every reference cell is
// 0xFF and every instrument slot is unallocated.
func New(ver version.Version) *Song {
	s := &Song{Version: ver}
	for row := range s.Steps {
		for track := range s.Steps[row] {
			s.Steps[row][track] = EmptyRef
		}
	}
	for n := range s.Chains {
		for c := range s.Chains[n].Cells {
			s.Chains[n].Cells[c].Phrase = EmptyRef
		}
	}
	for n := range s.Phrases {
		for row := range s.Phrases[n].Rows {
			s.Phrases[n].Rows[row].Note = EmptyRef
			s.Phrases[n].Rows[row].Instrument = EmptyRef
			for i := range s.Phrases[n].Rows[row].FX {
				s.Phrases[n].Rows[row].FX[i] = fx.EmptyFX()
			}
		}
	}
	for n := range s.Instruments {
		s.Instruments[n] = instrument.None{}
	}
	for n := range s.Tables {
		for row := range s.Tables[n].Rows {
			for i := range s.Tables[n].Rows[row].FX {
				s.Tables[n].Rows[row].FX[i] = fx.EmptyFX()
			}
		}
	}
	return s
}

// Read decodes a complete song image.
func Read(data []byte) (*Song, error) {
	r := util.NewReader(data)
	ver, err := version.Read(r)
	if err != nil {
		return nil, err
	}
	log.Debugf("song file %s, %d bytes", ver, len(data))
	log.Enter()
	defer log.Leave()

	s := &Song{Version: ver}
	s.Name = r.ReadString(NameLength)
	s.Tempo = r.Read()
	s.Transpose = r.Read()

	for row := range s.Steps {
		for track := range s.Steps[row] {
			s.Steps[row][track] = r.Read()
		}
	}
	if err := r.Err(); err != nil {
		return nil, errors.Wrap(err, "song grid")
	}

	log.Debugf("chains at 0x%X", r.Pos())
	for n := range s.Chains {
		s.Chains[n] = readChain(r)
	}
	log.Debugf("phrases at 0x%X", r.Pos())
	for n := range s.Phrases {
		s.Phrases[n] = readPhrase(r)
	}
	if err := r.Err(); err != nil {
		return nil, errors.Wrap(err, "song sequence data")
	}

	log.Debugf("instruments at 0x%X", r.Pos())
	for n := range s.Instruments {
		inst, err := instrument.Read(r, ver, uint8(n))
		if err != nil {
			return nil, err
		}
		s.Instruments[n] = inst
	}

	log.Debugf("tables at 0x%X", r.Pos())
	for n := range s.Tables {
		s.Tables[n] = readTable(r)
	}
	log.Debugf("grooves at 0x%X", r.Pos())
	for n := range s.Grooves {
		s.Grooves[n] = readGroove(r)
	}
	log.Debugf("scales at 0x%X", r.Pos())
	for n := range s.Scales {
		s.Scales[n] = readScale(r)
	}
	if ver.AtLeast(3, 0) {
		log.Debugf("eqs at 0x%X", r.Pos())
		for n := range s.Eqs {
			s.Eqs[n] = readEq(r)
		}
	}
	if err := r.Err(); err != nil {
		return nil, errors.Wrap(err, "song tail")
	}
	return s, nil
}

// Bytes encodes the song back into a byte image. Encoding selects layout
// branches from s.Version, so a decoded song re-encodes byte-exact.
func (s *Song) Bytes() []byte {
	w := util.NewWriter()
	s.Version.Write(w)

	w.WriteString(s.Name, NameLength)
	w.Write(s.Tempo)
	w.Write(s.Transpose)

	for row := range s.Steps {
		for track := range s.Steps[row] {
			w.Write(s.Steps[row][track])
		}
	}
	for _, c := range s.Chains {
		c.write(w)
	}
	for _, p := range s.Phrases {
		p.write(w)
	}
	for _, inst := range s.Instruments {
		instrument.Write(w, s.Version, inst)
	}
	for _, t := range s.Tables {
		t.write(w)
	}
	for _, g := range s.Grooves {
		g.write(w)
	}
	for _, sc := range s.Scales {
		sc.write(w)
	}
	if s.Version.AtLeast(3, 0) {
		for _, e := range s.Eqs {
			e.write(w)
		}
	}
	return w.Bytes()
}

// CommandPackOf resolves the instrument-specific command pack for a phrase
// row's instrument reference; the empty pack for empty or out-of-range refs.
func (s *Song) CommandPackOf(inst uint8) fx.CommandPack {
	if int(inst) >= NumInstruments {
		return fx.CommandPack{}
	}
	return s.Instruments[inst].CommandPack(s.Version)
}

// PhraseString renders one phrase with this song's command tables.
func (s *Song) PhraseString(n uint8) string {
	return s.Phrases[n].Print(fx.CommandNames(s.Version), s.CommandPackOf)
}

func (s *Song) String() string {
	chains := 0
	for _, c := range s.Chains {
		if !c.IsEmpty() {
			chains++
		}
	}
	phrases := 0
	for _, p := range s.Phrases {
		if !p.IsEmpty() {
			phrases++
		}
	}
	t := []string{
		fmt.Sprintf("Song %q (%s) TEMPO=%02X TSP=%02X", s.Name, s.Version, s.Tempo, s.Transpose),
		fmt.Sprintf("%d chains, %d phrases in use", chains, phrases),
	}
	for _, inst := range s.Instruments {
		if inst.Kind() == enums.InstrumentKind_None {
			continue
		}
		t = append(t, inst.String())
	}
	return strings.Join(t, "\n")
}
