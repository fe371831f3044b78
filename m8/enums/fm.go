package enums

import (
	"encoding/json"
	"fmt"
)

// FMAlgo is the operator routing of an FM instrument.
type FMAlgo int

var fmAlgoStrings = [0x0C]string{
	"A>B>C>D",
	"[A+B]>C>D",
	"[A>B+C]>D",
	"[A>B+A>C]>D",
	"[A+B+C]>D",
	"[A>B>C]+D",
	"[A>B>C]+[A>B>D]",
	"[A>B]+[C>D]",
	"[A>B]+[A>C]+[A>D]",
	"[A>B]+[A>C]+D",
	"[A>B]+C+D",
	"A+B+C+D",
}

func (a FMAlgo) Valid() bool {
	return 0 <= int(a) && int(a) < len(fmAlgoStrings)
}

func (a FMAlgo) String() string {
	if !a.Valid() {
		return fmt.Sprintf("unknown(%d)", int(a))
	}
	return fmt.Sprintf("%d[ %s ]", int(a), fmAlgoStrings[a])
}

func (a FMAlgo) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// FMWave is an FM operator oscillator shape.
type FMWave int

var fmWaveNames = buildFMWaveNames()

// The device exposes 16 named shapes; firmware 4.1 extends the table with
// numbered wavetable entries up to W45.
func buildFMWaveNames() []string {
	names := []string{
		"SIN", "SW2", "SW3", "SW4", "SW5", "SW6", "TRI", "SAW",
		"SQR", "PUL", "IMP", "NOI", "NLP", "NHP", "NBP", "CLK",
	}
	for i := 0x09; i <= 0x45; i++ {
		names = append(names, fmt.Sprintf("W%02X", i))
	}
	return names
}

func (w FMWave) Valid() bool {
	return 0 <= int(w) && int(w) < len(fmWaveNames)
}

func (w FMWave) String() string {
	if !w.Valid() {
		return fmt.Sprintf("unknown(%d)", int(w))
	}
	return fmWaveNames[w]
}

func (w FMWave) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}
