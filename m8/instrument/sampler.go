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
	samplerModOffset = 29

	// The sample path sits at a fixed offset inside the slot, past the end
	// of the synth-params block.
	samplePathOffset = 0x57
	samplePathLength = 128
)

var samplerCommands = []string{
	"VOL",
	"PIT",
	"FIN",
	"PLY",
	"STA",
	"LOP",
	"LEN",
	"DEG",
	"SLI",
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

type Sampler struct {
	Number    uint8       `json:"number"`
	Name      string      `json:"name"`
	TranspEq  TranspEq    `json:"transp_eq"`
	TableTick uint8       `json:"table_tick"`
	Params    SynthParams `json:"synth_params"`

	SamplePath string `json:"sample_path"`
	PlayMode   uint8  `json:"play_mode"`
	Slice      uint8  `json:"slice"`
	Start      uint8  `json:"start"`
	LoopStart  uint8  `json:"loop_start"`
	Length     uint8  `json:"length"`
	Degrade    uint8  `json:"degrade"`

	// Bytes between the synth-params block and the sample path. Empty on
	// V3+ layouts, where the block ends exactly at the path offset; captured
	// verbatim on V2 in case newer firmware stores state there.
	pathPad []byte
}

func (i *Sampler) Kind() enums.InstrumentKind { return enums.InstrumentKind_Sampler }

func (i *Sampler) CommandPack(_ version.Version) fx.CommandPack {
	return fx.CommandPack{Commands: samplerCommands}
}

func (i *Sampler) readFrom(r *util.Reader, ver version.Version, start int, number uint8) error {
	p := readPrefix(r, ver)
	i.Number = number
	i.Name = p.name
	i.TranspEq = p.transpEq
	i.TableTick = p.tableTick

	i.PlayMode = r.Read()
	i.Slice = r.Read()
	i.Start = r.Read()
	i.LoopStart = r.Read()
	i.Length = r.Read()
	i.Degrade = r.Read()

	params, err := readSynthParams(r, ver, p.volume, p.pitch, p.fineTune, samplerModOffset)
	if err != nil {
		return err
	}
	i.Params = params

	if gap := start + samplePathOffset - r.Pos(); gap > 0 {
		if b := r.ReadBytes(gap); b != nil {
			i.pathPad = append([]byte(nil), b...)
		}
	}
	r.SetPos(start + samplePathOffset)
	i.SamplePath = r.ReadString(samplePathLength)
	return errors.WithStack(r.Err())
}

func (i *Sampler) writeBody(w *util.Writer, start int, ver version.Version) {
	writePrefix(w, ver, i.Name, i.TranspEq, i.TableTick, i.Params)

	w.Write(i.PlayMode)
	w.Write(i.Slice)
	w.Write(i.Start)
	w.Write(i.LoopStart)
	w.Write(i.Length)
	w.Write(i.Degrade)

	i.Params.write(w, ver, samplerModOffset)

	if len(i.pathPad) == start+samplePathOffset-w.Pos() {
		w.WriteBytes(i.pathPad)
	} else {
		w.FillTill(0xFF, start+samplePathOffset)
	}
	w.WriteString(i.SamplePath, samplePathLength)
}

func (i *Sampler) String() string {
	head := fmt.Sprintf("SAMPLER %02X %q: PLY=%02X SLI=%02X STA=%02X LOP=%02X LEN=%02X DEG=%02X",
		i.Number, i.Name, i.PlayMode, i.Slice, i.Start, i.LoopStart, i.Length, i.Degrade)
	path := fmt.Sprintf("PATH=%q", i.SamplePath)
	return head + "\n" + util.Indent(path+"\n"+i.Params.String(), "\t")
}
