package enums

import (
	"encoding/json"
	"fmt"
)

// ModType is the high nibble of the first byte of a V3+ modulator record.
type ModType int

const (
	ModType_AHDEnv ModType = iota
	ModType_ADSREnv
	ModType_DrumEnv
	ModType_LFO
	ModType_TrigEnv
	ModType_TrackingEnv
)

func (t ModType) String() string {
	s := "unknown"
	switch t {
	case ModType_AHDEnv:
		s = "AHD ENV"
	case ModType_ADSREnv:
		s = "ADSR ENV"
	case ModType_DrumEnv:
		s = "DRUM ENV"
	case ModType_LFO:
		s = "LFO"
	case ModType_TrigEnv:
		s = "TRIG ENV"
	case ModType_TrackingEnv:
		s = "TRACKING"
	}
	return fmt.Sprintf("%s(%d)", s, int(t))
}

func (t ModType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
