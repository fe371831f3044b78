package instrument

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/enums"
	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/util"
	"github.com/m8kit/m8file/m8/version"
)

const fmSynthModOffset = 2

var fmBaseCommands = []string{
	"VOL",
	"PIT",
	"FIN",
	"ALG",
	"FM1",
	"FM2",
	"FM3",
	"FM4",
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

var fmCommandsUpTo5 = append(append([]string{}, fmBaseCommands...), "FMP")

var fmCommandsFrom6 = append(append([]string{}, fmBaseCommands...), "SNC", "ERR")

var fmDestinations = []string{
	destOff,
	destVolume,
	destPitch,

	"MOD1",
	"MOD2",
	"MOD3",
	"MOD4",
	destCutoff,
	destRes,
	destAmp,
	destPan,
	destModAmt,
	destModRate,
	destModBoth,
	destModBInv,
}

// Operator is one of the four FM operators. On the wire the operator array
// is transposed: all shapes, then all (ratio, ratio_fine) pairs, then all
// (level, feedback) pairs, then all mod_a, then all mod_b.
type Operator struct {
	Shape     enums.FMWave `json:"shape"`
	Ratio     uint8        `json:"ratio"`
	RatioFine uint8        `json:"ratio_fine"`
	Level     uint8        `json:"level"`
	Feedback  uint8        `json:"feedback"`
	ModA      uint8        `json:"mod_a"`
	ModB      uint8        `json:"mod_b"`
}

func (op Operator) String() string {
	return fmt.Sprintf("%s RAT=%02X.%02X LEV=%02X FB=%02X MODA=%02X MODB=%02X",
		op.Shape, op.Ratio, op.RatioFine, op.Level, op.Feedback, op.ModA, op.ModB)
}

type FMSynth struct {
	Number    uint8       `json:"number"`
	Name      string      `json:"name"`
	TranspEq  TranspEq    `json:"transp_eq"`
	TableTick uint8       `json:"table_tick"`
	Params    SynthParams `json:"synth_params"`

	Algo      enums.FMAlgo `json:"algo"`
	Operators [4]Operator  `json:"operators"`
	Mod1      uint8        `json:"mod1"`
	Mod2      uint8        `json:"mod2"`
	Mod3      uint8        `json:"mod3"`
	Mod4      uint8        `json:"mod4"`
}

func (i *FMSynth) Kind() enums.InstrumentKind { return enums.InstrumentKind_FMSynth }

func (i *FMSynth) CommandPack(ver version.Version) fx.CommandPack {
	if ver.AtLeast(6, 0) {
		return fx.CommandPack{Commands: fmCommandsFrom6}
	}
	return fx.CommandPack{Commands: fmCommandsUpTo5}
}

func (i *FMSynth) DestinationNames(_ version.Version) []string {
	return fmDestinations
}

func (i *FMSynth) readFrom(r *util.Reader, ver version.Version, number uint8) error {
	p := readPrefix(r, ver)
	i.Number = number
	i.Name = p.name
	i.TranspEq = p.transpEq
	i.TableTick = p.tableTick

	i.Algo = enums.FMAlgo(r.Read())
	if r.Err() == nil && !i.Algo.Valid() {
		return errors.Wrapf(util.ErrInvalidEnum, "fm algo 0x%02X", int(i.Algo))
	}
	// The operator shape byte only exists from V1.4 on.
	if ver.AtLeast(1, 4) {
		for n := range i.Operators {
			wave := enums.FMWave(r.Read())
			if r.Err() == nil && !wave.Valid() {
				return errors.Wrapf(util.ErrInvalidEnum, "fm wave 0x%02X", int(wave))
			}
			i.Operators[n].Shape = wave
		}
	}
	for n := range i.Operators {
		i.Operators[n].Ratio = r.Read()
		i.Operators[n].RatioFine = r.Read()
	}
	for n := range i.Operators {
		i.Operators[n].Level = r.Read()
		i.Operators[n].Feedback = r.Read()
	}
	for n := range i.Operators {
		i.Operators[n].ModA = r.Read()
	}
	for n := range i.Operators {
		i.Operators[n].ModB = r.Read()
	}
	i.Mod1 = r.Read()
	i.Mod2 = r.Read()
	i.Mod3 = r.Read()
	i.Mod4 = r.Read()

	params, err := readSynthParams(r, ver, p.volume, p.pitch, p.fineTune, fmSynthModOffset)
	if err != nil {
		return err
	}
	i.Params = params
	return errors.WithStack(r.Err())
}

func (i *FMSynth) writeBody(w *util.Writer, _ int, ver version.Version) {
	writePrefix(w, ver, i.Name, i.TranspEq, i.TableTick, i.Params)

	w.Write(uint8(i.Algo))
	if ver.AtLeast(1, 4) {
		for _, op := range i.Operators {
			w.Write(uint8(op.Shape))
		}
	}
	for _, op := range i.Operators {
		w.Write(op.Ratio)
		w.Write(op.RatioFine)
	}
	for _, op := range i.Operators {
		w.Write(op.Level)
		w.Write(op.Feedback)
	}
	for _, op := range i.Operators {
		w.Write(op.ModA)
	}
	for _, op := range i.Operators {
		w.Write(op.ModB)
	}
	w.Write(i.Mod1)
	w.Write(i.Mod2)
	w.Write(i.Mod3)
	w.Write(i.Mod4)

	i.Params.write(w, ver, fmSynthModOffset)
}

func (i *FMSynth) String() string {
	t := []string{}
	for n, op := range i.Operators {
		t = append(t, fmt.Sprintf("OP%c: %s", 'A'+n, op))
	}
	t = append(t, i.Params.String())
	head := fmt.Sprintf("FMSYNTH %02X %q: ALG=%s", i.Number, i.Name, i.Algo)
	return head + "\n" + util.Indent(strings.Join(t, "\n"), "\t")
}
