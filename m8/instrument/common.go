package instrument

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/util"
	"github.com/m8kit/m8file/m8/version"
)

// CommonFilterTypes applies to every synth variant.
var CommonFilterTypes = []string{
	"OFF",
	"LOW PASS",
	"HIGH PASS",
	"BAND PASS",
	"BAND STOP",
	"LP>HP",
}

// TranspEq is the packed byte holding the transpose flag and, from V3, the
// associated EQ number.
type TranspEq struct {
	Transpose bool  `json:"transpose"`
	Eq        uint8 `json:"eq"`
}

// TranspEqFromByte unpacks the flags byte. V3 packs the EQ number into bits
// 1..7; V2 uses the whole byte as the transpose flag.
func TranspEqFromByte(ver version.Version, b uint8) TranspEq {
	if ver.AtLeast(3, 0) {
		return TranspEq{
			Transpose: b&1 != 0,
			Eq:        b >> 1,
		}
	}
	return TranspEq{Transpose: b != 0}
}

func (te TranspEq) ToByte(ver version.Version) uint8 {
	if ver.AtLeast(3, 0) {
		return util.BoolToByte(te.Transpose, 1) | te.Eq<<1
	}
	return util.BoolToByte(te.Transpose, 1)
}

// ControlChange is one (number, value) MIDI CC pair.
type ControlChange struct {
	Number uint8 `json:"number"`
	Value  uint8 `json:"value"`
}

func readControlChange(r *util.Reader) ControlChange {
	return ControlChange{
		Number: r.Read(),
		Value:  r.Read(),
	}
}

func (cc ControlChange) write(w *util.Writer) {
	w.Write(cc.Number)
	w.Write(cc.Value)
}

// prefix is the shared head of every instrument slot after the kind byte.
// MIDIOut deviates (no volume/pitch/fine tune) and reads its own.
type prefix struct {
	name      string
	transpEq  TranspEq
	tableTick uint8
	volume    uint8
	pitch     uint8
	fineTune  uint8
}

func readPrefix(r *util.Reader, ver version.Version) prefix {
	return prefix{
		name:      r.ReadString(NameLength),
		transpEq:  TranspEqFromByte(ver, r.Read()),
		tableTick: r.Read(),
		volume:    r.Read(),
		pitch:     r.Read(),
		fineTune:  r.Read(),
	}
}

func writePrefix(w *util.Writer, ver version.Version, name string, te TranspEq, tableTick uint8, p SynthParams) {
	w.WriteString(name, NameLength)
	w.Write(te.ToByte(ver))
	w.Write(tableTick)
	w.Write(p.Volume)
	w.Write(p.Pitch)
	w.Write(p.FineTune)
}

// SynthParams is the filter/amp/mixer block shared by all synth variants,
// followed by the four modulators.
type SynthParams struct {
	Volume   uint8 `json:"volume"`
	Pitch    uint8 `json:"pitch"`
	FineTune uint8 `json:"fine_tune"`

	FilterType   uint8 `json:"filter_type"`
	FilterCutoff uint8 `json:"filter_cutoff"`
	FilterRes    uint8 `json:"filter_res"`

	Amp   uint8 `json:"amp"`
	Limit uint8 `json:"limit"`

	MixerPan    uint8 `json:"mixer_pan"`
	MixerDry    uint8 `json:"mixer_dry"`
	MixerChorus uint8 `json:"mixer_chorus"`
	MixerDelay  uint8 `json:"mixer_delay"`
	MixerReverb uint8 `json:"mixer_reverb"`

	Mods [4]Mod `json:"mods"`

	// V3 layouts leave modOffset bytes between the mixer block and the
	// modulators. The bytes are captured on decode and replayed on encode so
	// files survive byte-exact; fresh models write zeros.
	modPad []byte
}

// readSynthParams decodes the V2 or V3 layout depending on ver. modOffset is
// the per-variant gap between the mixer block and the modulators.
func readSynthParams(r *util.Reader, ver version.Version, volume, pitch, fineTune uint8, modOffset int) (SynthParams, error) {
	p := SynthParams{
		Volume:   volume,
		Pitch:    pitch,
		FineTune: fineTune,

		FilterType:   r.Read(),
		FilterCutoff: r.Read(),
		FilterRes:    r.Read(),

		Amp:   r.Read(),
		Limit: r.Read(),

		MixerPan:    r.Read(),
		MixerDry:    r.Read(),
		MixerChorus: r.Read(),
		MixerDelay:  r.Read(),
		MixerReverb: r.Read(),
	}

	if !ver.AtLeast(3, 0) {
		// V2 inlines the four modulators right after the mixer; their types
		// are fixed by position.
		p.Mods = [4]Mod{
			readAHDEnv2(r),
			readAHDEnv2(r),
			readLFO2(r),
			readLFO2(r),
		}
		return p, errors.Wrap(r.Err(), "synth params")
	}

	if gap := r.ReadBytes(modOffset); gap != nil {
		p.modPad = append([]byte(nil), gap...)
	}
	for i := 0; i < 4; i++ {
		m, err := readMod(r)
		if err != nil {
			return p, errors.Wrapf(err, "mod %d", i+1)
		}
		p.Mods[i] = m
	}
	return p, errors.Wrap(r.Err(), "synth params")
}

func (p SynthParams) write(w *util.Writer, ver version.Version, modOffset int) {
	w.Write(p.FilterType)
	w.Write(p.FilterCutoff)
	w.Write(p.FilterRes)

	w.Write(p.Amp)
	w.Write(p.Limit)

	w.Write(p.MixerPan)
	w.Write(p.MixerDry)
	w.Write(p.MixerChorus)
	w.Write(p.MixerDelay)
	w.Write(p.MixerReverb)

	if !ver.AtLeast(3, 0) {
		for _, m := range p.Mods {
			writeMod2(w, m)
		}
		return
	}

	if len(p.modPad) == modOffset {
		w.WriteBytes(p.modPad)
	} else {
		w.FillTill(0x00, w.Pos()+modOffset)
	}
	for _, m := range p.Mods {
		writeMod3(w, m)
	}
}

func (p SynthParams) String() string {
	filter := "unknown"
	if int(p.FilterType) < len(CommonFilterTypes) {
		filter = CommonFilterTypes[p.FilterType]
	}
	t := []string{
		fmt.Sprintf("VOL=%02X PIT=%02X FIN=%02X", p.Volume, p.Pitch, p.FineTune),
		fmt.Sprintf("FLT=%s CUT=%02X RES=%02X", filter, p.FilterCutoff, p.FilterRes),
		fmt.Sprintf("AMP=%02X LIM=%02X", p.Amp, p.Limit),
		fmt.Sprintf("PAN=%02X DRY=%02X CHO=%02X DEL=%02X REV=%02X",
			p.MixerPan, p.MixerDry, p.MixerChorus, p.MixerDelay, p.MixerReverb),
	}
	for i, m := range p.Mods {
		if m == nil {
			continue
		}
		t = append(t, fmt.Sprintf("MOD%d: %s", i+1, m))
	}
	return strings.Join(t, "\n")
}
