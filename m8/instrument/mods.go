package instrument

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/enums"
	"github.com/m8kit/m8file/m8/util"
)

// ModSize is the on-disk size of one modulator record.
const ModSize = 6

// Mod is one of the six modulator variants. From V3 the first record byte
// packs the type into the high nibble and the destination into the low one;
// V2 stores the destination as its own byte and the type is implicit in the
// record position.
type Mod interface {
	Type() enums.ModType
	fmt.Stringer

	write3(w *util.Writer)
	write2(w *util.Writer)
}

// readMod decodes a V3+ modulator record. The cursor lands on the 6-byte
// record boundary regardless of how many bytes the variant carries.
func readMod(r *util.Reader) (Mod, error) {
	start := r.Pos()
	first := r.Read()
	if err := r.Err(); err != nil {
		return nil, err
	}
	ty := enums.ModType(first >> 4)
	dest := first & 0x0F

	var m Mod
	switch ty {
	case enums.ModType_AHDEnv:
		m = &AHDEnv{Dest: dest, Amount: r.Read(), Attack: r.Read(), Hold: r.Read(), Decay: r.Read()}
	case enums.ModType_ADSREnv:
		m = &ADSREnv{Dest: dest, Amount: r.Read(), Attack: r.Read(), Decay: r.Read(), Sustain: r.Read(), Release: r.Read()}
	case enums.ModType_DrumEnv:
		m = &DrumEnv{Dest: dest, Amount: r.Read(), Peak: r.Read(), Body: r.Read(), Decay: r.Read()}
	case enums.ModType_LFO:
		m = &LFO{Dest: dest, Amount: r.Read(), Shape: r.Read(), TriggerMode: r.Read(), Freq: r.Read()}
	case enums.ModType_TrigEnv:
		m = &TrigEnv{Dest: dest, Amount: r.Read(), Attack: r.Read(), Hold: r.Read(), Decay: r.Read(), Src: r.Read()}
	case enums.ModType_TrackingEnv:
		m = &TrackingEnv{Dest: dest, Amount: r.Read(), Src: r.Read(), LVal: r.Read(), HVal: r.Read()}
	default:
		return nil, errors.Wrapf(util.ErrUnknownTag, "mod type %d at offset 0x%X", int(ty), start)
	}

	r.SetPos(start + ModSize)
	return m, r.Err()
}

// writeMod3 emits the V3+ record, padded to exactly ModSize bytes. A nil
// slot encodes as a default AHD envelope so the encoder stays total.
func writeMod3(w *util.Writer, m Mod) {
	if m == nil {
		m = &AHDEnv{}
	}
	start := w.Pos()
	m.write3(w)
	w.FillTill(0x00, start+ModSize)
}

// writeMod2 emits the V2 inline record. Only AHD envelopes and LFOs exist on
// a V2 disk; other variants fall back to their V3 form so the encoder stays
// total on hand-built models.
func writeMod2(w *util.Writer, m Mod) {
	if m == nil {
		m = &AHDEnv{}
	}
	start := w.Pos()
	m.write2(w)
	w.FillTill(0x00, start+ModSize)
}

func packModHead(ty enums.ModType, dest uint8) uint8 {
	return uint8(ty)<<4 | dest&0x0F
}

type AHDEnv struct {
	Dest   uint8 `json:"dest"`
	Amount uint8 `json:"amount"`
	Attack uint8 `json:"attack"`
	Hold   uint8 `json:"hold"`
	Decay  uint8 `json:"decay"`
}

// readAHDEnv2 decodes the V2 inline form (dedicated destination byte).
func readAHDEnv2(r *util.Reader) *AHDEnv {
	e := &AHDEnv{
		Dest:   r.Read(),
		Amount: r.Read(),
		Attack: r.Read(),
		Hold:   r.Read(),
		Decay:  r.Read(),
	}
	r.Read()
	return e
}

func (e *AHDEnv) Type() enums.ModType { return enums.ModType_AHDEnv }

func (e *AHDEnv) write3(w *util.Writer) {
	w.Write(packModHead(e.Type(), e.Dest))
	w.Write(e.Amount)
	w.Write(e.Attack)
	w.Write(e.Hold)
	w.Write(e.Decay)
}

func (e *AHDEnv) write2(w *util.Writer) {
	w.Write(e.Dest)
	w.Write(e.Amount)
	w.Write(e.Attack)
	w.Write(e.Hold)
	w.Write(e.Decay)
}

func (e *AHDEnv) String() string {
	return fmt.Sprintf("AHD DEST=%X AMT=%02X A=%02X H=%02X D=%02X", e.Dest, e.Amount, e.Attack, e.Hold, e.Decay)
}

type ADSREnv struct {
	Dest    uint8 `json:"dest"`
	Amount  uint8 `json:"amount"`
	Attack  uint8 `json:"attack"`
	Decay   uint8 `json:"decay"`
	Sustain uint8 `json:"sustain"`
	Release uint8 `json:"release"`
}

func (e *ADSREnv) Type() enums.ModType { return enums.ModType_ADSREnv }

func (e *ADSREnv) write3(w *util.Writer) {
	w.Write(packModHead(e.Type(), e.Dest))
	w.Write(e.Amount)
	w.Write(e.Attack)
	w.Write(e.Decay)
	w.Write(e.Sustain)
	w.Write(e.Release)
}

func (e *ADSREnv) write2(w *util.Writer) { e.write3(w) }

func (e *ADSREnv) String() string {
	return fmt.Sprintf("ADSR DEST=%X AMT=%02X A=%02X D=%02X S=%02X R=%02X",
		e.Dest, e.Amount, e.Attack, e.Decay, e.Sustain, e.Release)
}

type DrumEnv struct {
	Dest   uint8 `json:"dest"`
	Amount uint8 `json:"amount"`
	Peak   uint8 `json:"peak"`
	Body   uint8 `json:"body"`
	Decay  uint8 `json:"decay"`
}

func (e *DrumEnv) Type() enums.ModType { return enums.ModType_DrumEnv }

func (e *DrumEnv) write3(w *util.Writer) {
	w.Write(packModHead(e.Type(), e.Dest))
	w.Write(e.Amount)
	w.Write(e.Peak)
	w.Write(e.Body)
	w.Write(e.Decay)
}

func (e *DrumEnv) write2(w *util.Writer) { e.write3(w) }

func (e *DrumEnv) String() string {
	return fmt.Sprintf("DRUM DEST=%X AMT=%02X PEAK=%02X BODY=%02X D=%02X",
		e.Dest, e.Amount, e.Peak, e.Body, e.Decay)
}

type LFO struct {
	Dest        uint8 `json:"dest"`
	Amount      uint8 `json:"amount"`
	Shape       uint8 `json:"shape"`
	TriggerMode uint8 `json:"trigger_mode"`
	Freq        uint8 `json:"freq"`
}

// readLFO2 decodes the V2 inline form; note the V2 field order differs from
// the V3 record.
func readLFO2(r *util.Reader) *LFO {
	l := &LFO{
		Shape:       r.Read(),
		Dest:        r.Read(),
		TriggerMode: r.Read(),
		Freq:        r.Read(),
		Amount:      r.Read(),
	}
	r.Read()
	return l
}

func (l *LFO) Type() enums.ModType { return enums.ModType_LFO }

func (l *LFO) write3(w *util.Writer) {
	w.Write(packModHead(l.Type(), l.Dest))
	w.Write(l.Amount)
	w.Write(l.Shape)
	w.Write(l.TriggerMode)
	w.Write(l.Freq)
}

func (l *LFO) write2(w *util.Writer) {
	w.Write(l.Shape)
	w.Write(l.Dest)
	w.Write(l.TriggerMode)
	w.Write(l.Freq)
	w.Write(l.Amount)
}

func (l *LFO) String() string {
	return fmt.Sprintf("LFO DEST=%X AMT=%02X SHP=%02X TRG=%02X FRQ=%02X",
		l.Dest, l.Amount, l.Shape, l.TriggerMode, l.Freq)
}

type TrigEnv struct {
	Dest   uint8 `json:"dest"`
	Amount uint8 `json:"amount"`
	Attack uint8 `json:"attack"`
	Hold   uint8 `json:"hold"`
	Decay  uint8 `json:"decay"`
	Src    uint8 `json:"src"`
}

func (e *TrigEnv) Type() enums.ModType { return enums.ModType_TrigEnv }

func (e *TrigEnv) write3(w *util.Writer) {
	w.Write(packModHead(e.Type(), e.Dest))
	w.Write(e.Amount)
	w.Write(e.Attack)
	w.Write(e.Hold)
	w.Write(e.Decay)
	w.Write(e.Src)
}

func (e *TrigEnv) write2(w *util.Writer) { e.write3(w) }

func (e *TrigEnv) String() string {
	return fmt.Sprintf("TRIG DEST=%X AMT=%02X A=%02X H=%02X D=%02X SRC=%02X",
		e.Dest, e.Amount, e.Attack, e.Hold, e.Decay, e.Src)
}

type TrackingEnv struct {
	Dest   uint8 `json:"dest"`
	Amount uint8 `json:"amount"`
	Src    uint8 `json:"src"`
	LVal   uint8 `json:"lval"`
	HVal   uint8 `json:"hval"`
}

func (e *TrackingEnv) Type() enums.ModType { return enums.ModType_TrackingEnv }

func (e *TrackingEnv) write3(w *util.Writer) {
	w.Write(packModHead(e.Type(), e.Dest))
	w.Write(e.Amount)
	w.Write(e.Src)
	w.Write(e.LVal)
	w.Write(e.HVal)
}

func (e *TrackingEnv) write2(w *util.Writer) { e.write3(w) }

func (e *TrackingEnv) String() string {
	return fmt.Sprintf("TRACK DEST=%X AMT=%02X SRC=%02X LO=%02X HI=%02X",
		e.Dest, e.Amount, e.Src, e.LVal, e.HVal)
}

// defaultMods is the modulator set synthesized for variants without on-disk
// modulators (MIDIOut).
func defaultMods() [4]Mod {
	return [4]Mod{&AHDEnv{}, &AHDEnv{}, &AHDEnv{}, &AHDEnv{}}
}
