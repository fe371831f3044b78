package instrument

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/enums"
	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/util"
	"github.com/m8kit/m8file/m8/version"
)

const macroSynthModOffset = 30

var macroSynthCommands = []string{
	"VOL",
	"PIT",
	"FIN",
	"OSC",
	"TBR",
	"COL",
	"DEG",
	"RED",
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

type MacroSynth struct {
	Number    uint8       `json:"number"`
	Name      string      `json:"name"`
	TranspEq  TranspEq    `json:"transp_eq"`
	TableTick uint8       `json:"table_tick"`
	Params    SynthParams `json:"synth_params"`

	Shape   uint8 `json:"shape"`
	Timbre  uint8 `json:"timbre"`
	Color   uint8 `json:"color"`
	Degrade uint8 `json:"degrade"`
	Redux   uint8 `json:"redux"`
}

func (i *MacroSynth) Kind() enums.InstrumentKind { return enums.InstrumentKind_MacroSynth }

func (i *MacroSynth) CommandPack(_ version.Version) fx.CommandPack {
	return fx.CommandPack{Commands: macroSynthCommands}
}

func (i *MacroSynth) readFrom(r *util.Reader, ver version.Version, number uint8) error {
	p := readPrefix(r, ver)
	i.Number = number
	i.Name = p.name
	i.TranspEq = p.transpEq
	i.TableTick = p.tableTick

	i.Shape = r.Read()
	i.Timbre = r.Read()
	i.Color = r.Read()
	i.Degrade = r.Read()
	i.Redux = r.Read()

	params, err := readSynthParams(r, ver, p.volume, p.pitch, p.fineTune, macroSynthModOffset)
	if err != nil {
		return err
	}
	i.Params = params
	return errors.WithStack(r.Err())
}

func (i *MacroSynth) writeBody(w *util.Writer, _ int, ver version.Version) {
	writePrefix(w, ver, i.Name, i.TranspEq, i.TableTick, i.Params)

	w.Write(i.Shape)
	w.Write(i.Timbre)
	w.Write(i.Color)
	w.Write(i.Degrade)
	w.Write(i.Redux)

	i.Params.write(w, ver, macroSynthModOffset)
}

func (i *MacroSynth) String() string {
	head := fmt.Sprintf("MACROSYN %02X %q: OSC=%02X TBR=%02X COL=%02X DEG=%02X RED=%02X",
		i.Number, i.Name, i.Shape, i.Timbre, i.Color, i.Degrade, i.Redux)
	return head + "\n" + util.Indent(i.Params.String(), "\t")
}
