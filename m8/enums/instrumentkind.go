package enums

import (
	"encoding/json"
	"fmt"
)

// InstrumentKind is the tag byte at offset 0 of every instrument slot.
type InstrumentKind int

const (
	InstrumentKind_WavSynth   InstrumentKind = 0x00
	InstrumentKind_MacroSynth InstrumentKind = 0x01
	InstrumentKind_Sampler    InstrumentKind = 0x02
	InstrumentKind_MIDIOut    InstrumentKind = 0x03
	InstrumentKind_FMSynth    InstrumentKind = 0x04
	InstrumentKind_HyperSynth InstrumentKind = 0x05
	InstrumentKind_External   InstrumentKind = 0x06
	InstrumentKind_None       InstrumentKind = 0xFF
)

func (k InstrumentKind) String() string {
	s := "unknown"
	switch k {
	case InstrumentKind_WavSynth:
		s = "WAVSYNTH"
	case InstrumentKind_MacroSynth:
		s = "MACROSYN"
	case InstrumentKind_Sampler:
		s = "SAMPLER"
	case InstrumentKind_MIDIOut:
		s = "MIDIOUT"
	case InstrumentKind_FMSynth:
		s = "FMSYNTH"
	case InstrumentKind_HyperSynth:
		s = "HYPERSYN"
	case InstrumentKind_External:
		s = "EXTERNAL"
	case InstrumentKind_None:
		s = "NONE"
	}
	return fmt.Sprintf("%s(0x%02X)", s, int(k))
}

func (k InstrumentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
