package instrument

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/enums"
	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/util"
	"github.com/m8kit/m8file/m8/version"
)

const (
	hyperSynthModOffset = 23
	numChordSlots       = 0x10
)

var hyperSynthCommands = []string{
	"VOL",
	"PIT",
	"FIN",
	"CRD",
	"SHF",
	"SWM",
	"WID",
	"SUB",
	"FLT",
	"CUT",
	"RES",
	"AMP",
	"LIM",
	"PAN",
	"DRY",

	"SCH",
	"SDL",
	"SRV",

	// EXTRA
	"CVO",
	"SNC",
}

var hyperSynthDestinations = []string{
	destOff,
	destVolume,
	destPitch,

	"SHIFT",
	"SWARM",
	"WIDTH",
	"SUBOSC",
	destCutoff,
	destRes,
	destAmp,
	destPan,
	destModAmt,
	destModRate,
	destModBoth,
	destModBInv,
}

type HyperSynth struct {
	Number    uint8       `json:"number"`
	Name      string      `json:"name"`
	TranspEq  TranspEq    `json:"transp_eq"`
	TableTick uint8       `json:"table_tick"`
	Params    SynthParams `json:"synth_params"`

	DefaultChord [7]uint8 `json:"default_chord"`
	Scale        uint8    `json:"scale"`
	Shift        uint8    `json:"shift"`
	Swarm        uint8    `json:"swarm"`
	Width        uint8    `json:"width"`
	SubOsc       uint8    `json:"subosc"`

	Chords [numChordSlots][6]uint8 `json:"chords"`
}

func (i *HyperSynth) Kind() enums.InstrumentKind { return enums.InstrumentKind_HyperSynth }

func (i *HyperSynth) CommandPack(_ version.Version) fx.CommandPack {
	return fx.CommandPack{Commands: hyperSynthCommands}
}

func (i *HyperSynth) DestinationNames(_ version.Version) []string {
	return hyperSynthDestinations
}

func (i *HyperSynth) readFrom(r *util.Reader, ver version.Version, number uint8) error {
	p := readPrefix(r, ver)
	i.Number = number
	i.Name = p.name
	i.TranspEq = p.transpEq
	i.TableTick = p.tableTick

	for n := range i.DefaultChord {
		i.DefaultChord[n] = r.Read()
	}
	i.Scale = r.Read()
	i.Shift = r.Read()
	i.Swarm = r.Read()
	i.Width = r.Read()
	i.SubOsc = r.Read()

	params, err := readSynthParams(r, ver, p.volume, p.pitch, p.fineTune, hyperSynthModOffset)
	if err != nil {
		return err
	}
	i.Params = params

	// Each chord slot carries a leading pad byte before its six keys.
	for n := range i.Chords {
		r.Read()
		for k := range i.Chords[n] {
			i.Chords[n][k] = r.Read()
		}
	}
	return errors.WithStack(r.Err())
}

func (i *HyperSynth) writeBody(w *util.Writer, _ int, ver version.Version) {
	writePrefix(w, ver, i.Name, i.TranspEq, i.TableTick, i.Params)

	for _, c := range i.DefaultChord {
		w.Write(c)
	}
	w.Write(i.Scale)
	w.Write(i.Shift)
	w.Write(i.Swarm)
	w.Write(i.Width)
	w.Write(i.SubOsc)

	i.Params.write(w, ver, hyperSynthModOffset)

	for _, chd := range i.Chords {
		w.Write(0xFF)
		for _, k := range chd {
			w.Write(k)
		}
	}
}

func (i *HyperSynth) String() string {
	head := fmt.Sprintf("HYPERSYN %02X %q: SCA=%02X SHF=%02X SWM=%02X WID=%02X SUB=%02X",
		i.Number, i.Name, i.Scale, i.Shift, i.Swarm, i.Width, i.SubOsc)
	return head + "\n" + util.Indent(i.Params.String(), "\t")
}
