package instrument

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/enums"
	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/util"
	"github.com/m8kit/m8file/m8/version"
)

const wavSynthModOffset = 30

var wavSynthCommands = []string{
	"VOL",
	"PIT",
	"FIN",
	"OSC",
	"SIZ",
	"MUL",
	"WRP",
	"MIR",
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
}

type WavSynth struct {
	Number    uint8       `json:"number"`
	Name      string      `json:"name"`
	TranspEq  TranspEq    `json:"transp_eq"`
	TableTick uint8       `json:"table_tick"`
	Params    SynthParams `json:"synth_params"`

	Shape  uint8 `json:"shape"`
	Size   uint8 `json:"size"`
	Mult   uint8 `json:"mult"`
	Warp   uint8 `json:"warp"`
	Mirror uint8 `json:"mirror"`
}

func (i *WavSynth) Kind() enums.InstrumentKind { return enums.InstrumentKind_WavSynth }

func (i *WavSynth) CommandPack(_ version.Version) fx.CommandPack {
	return fx.CommandPack{Commands: wavSynthCommands}
}

func (i *WavSynth) readFrom(r *util.Reader, ver version.Version, number uint8) error {
	p := readPrefix(r, ver)
	i.Number = number
	i.Name = p.name
	i.TranspEq = p.transpEq
	i.TableTick = p.tableTick

	i.Shape = r.Read()
	i.Size = r.Read()
	i.Mult = r.Read()
	i.Warp = r.Read()
	i.Mirror = r.Read()

	params, err := readSynthParams(r, ver, p.volume, p.pitch, p.fineTune, wavSynthModOffset)
	if err != nil {
		return err
	}
	i.Params = params
	return errors.WithStack(r.Err())
}

func (i *WavSynth) writeBody(w *util.Writer, _ int, ver version.Version) {
	writePrefix(w, ver, i.Name, i.TranspEq, i.TableTick, i.Params)

	w.Write(i.Shape)
	w.Write(i.Size)
	w.Write(i.Mult)
	w.Write(i.Warp)
	w.Write(i.Mirror)

	i.Params.write(w, ver, wavSynthModOffset)
}

func (i *WavSynth) String() string {
	head := fmt.Sprintf("WAVSYNTH %02X %q: OSC=%02X SIZ=%02X MUL=%02X WRP=%02X MIR=%02X",
		i.Number, i.Name, i.Shape, i.Size, i.Mult, i.Warp, i.Mirror)
	return head + "\n" + util.Indent(i.Params.String(), "\t")
}
