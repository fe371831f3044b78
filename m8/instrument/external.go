package instrument

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/enums"
	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/util"
	"github.com/m8kit/m8file/m8/version"
)

const externalModOffset = 22

var externalCommands = []string{
	"VOL",
	"PIT",
	"MPB",
	"MPG",
	"CCA",
	"CCB",
	"CCC",
	"CCD",
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
	"ADD",
	"CHD",
}

var externalDestinations = []string{
	destOff,
	destVolume,
	destCutoff,
	destRes,
	destAmp,
	destPan,
	"CCA",
	"CCB",
	"CCC",
	"CCD",
	destModAmt,
	destModRate,
	destModBoth,
	destModBInv,
}

// External drives an outboard device while still running audio through the
// local filter/mixer chain, so unlike MIDIOut it carries synth params.
type External struct {
	Number    uint8       `json:"number"`
	Name      string      `json:"name"`
	TranspEq  TranspEq    `json:"transp_eq"`
	TableTick uint8       `json:"table_tick"`
	Params    SynthParams `json:"synth_params"`

	Input   uint8         `json:"input"`
	Port    uint8         `json:"port"`
	Channel uint8         `json:"channel"`
	Bank    uint8         `json:"bank"`
	Program uint8         `json:"program"`
	CCA     ControlChange `json:"cca"`
	CCB     ControlChange `json:"ccb"`
	CCC     ControlChange `json:"ccc"`
	CCD     ControlChange `json:"ccd"`
}

func (i *External) Kind() enums.InstrumentKind { return enums.InstrumentKind_External }

func (i *External) CommandPack(_ version.Version) fx.CommandPack {
	return fx.CommandPack{Commands: externalCommands}
}

func (i *External) DestinationNames(_ version.Version) []string {
	return externalDestinations
}

func (i *External) readFrom(r *util.Reader, ver version.Version, number uint8) error {
	p := readPrefix(r, ver)
	i.Number = number
	i.Name = p.name
	i.TranspEq = p.transpEq
	i.TableTick = p.tableTick

	i.Input = r.Read()
	i.Port = r.Read()
	i.Channel = r.Read()
	i.Bank = r.Read()
	i.Program = r.Read()
	i.CCA = readControlChange(r)
	i.CCB = readControlChange(r)
	i.CCC = readControlChange(r)
	i.CCD = readControlChange(r)

	params, err := readSynthParams(r, ver, p.volume, p.pitch, p.fineTune, externalModOffset)
	if err != nil {
		return err
	}
	i.Params = params
	return errors.WithStack(r.Err())
}

func (i *External) writeBody(w *util.Writer, _ int, ver version.Version) {
	writePrefix(w, ver, i.Name, i.TranspEq, i.TableTick, i.Params)

	w.Write(i.Input)
	w.Write(i.Port)
	w.Write(i.Channel)
	w.Write(i.Bank)
	w.Write(i.Program)
	i.CCA.write(w)
	i.CCB.write(w)
	i.CCC.write(w)
	i.CCD.write(w)

	i.Params.write(w, ver, externalModOffset)
}

func (i *External) String() string {
	head := fmt.Sprintf("EXTERNAL %02X %q: IN=%02X PORT=%02X CH=%02X BANK=%02X PRG=%02X",
		i.Number, i.Name, i.Input, i.Port, i.Channel, i.Bank, i.Program)
	return head + "\n" + util.Indent(i.Params.String(), "\t")
}
