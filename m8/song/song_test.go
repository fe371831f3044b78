package song

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/instrument"
	"github.com/m8kit/m8file/m8/util"
	"github.com/m8kit/m8file/m8/version"
)

func v(major, minor uint8) version.Version {
	return version.Version{Major: major, Minor: minor}
}

func testMods() [4]instrument.Mod {
	return [4]instrument.Mod{
		&instrument.AHDEnv{Dest: 1, Amount: 0x40, Hold: 0x10, Decay: 0x20},
		&instrument.AHDEnv{Dest: 2},
		&instrument.LFO{Dest: 3, Amount: 0x7F, Freq: 0x10},
		&instrument.LFO{},
	}
}

// testSong builds a small but fully-referenced arrangement: one step, one
// chain, one phrase, two instruments, a table row, a groove, a scale and an
// EQ curve.
func testSong(ver version.Version) *Song {
	s := New(ver)
	s.Name = "TESTSONG"
	s.Tempo = 0x78
	s.Transpose = 0x01

	s.Steps[0][0] = 0x00
	s.Chains[0].Cells[0] = ChainCell{Phrase: 0x00, Transpose: 0x02}
	s.Phrases[0].Rows[0] = PhraseRow{
		Note:       0x40,
		Velocity:   0x64,
		Instrument: 0x01,
		FX: [3]fx.FX{
			{Command: 0x00, Value: 0x22},
			fx.EmptyFX(),
			fx.EmptyFX(),
		},
	}

	s.Instruments[1] = &instrument.WavSynth{
		Number: 1,
		Name:   "LEAD",
		Params: instrument.SynthParams{
			Volume: 0x10,
			Mods:   testMods(),
		},
		Shape: 2,
	}
	s.Instruments[3] = &instrument.MIDIOut{
		Number:  3,
		Name:    "OUT",
		Port:    1,
		Channel: 10,
		Mods:    [4]instrument.Mod{&instrument.AHDEnv{}, &instrument.AHDEnv{}, &instrument.AHDEnv{}, &instrument.AHDEnv{}},
	}

	s.Tables[1].Rows[0] = TableRow{
		Transpose: 0x0C,
		FX:        [3]fx.FX{{Command: 0x01, Value: 0x10}, fx.EmptyFX(), fx.EmptyFX()},
	}
	s.Grooves[0].Steps[0] = 6
	s.Scales[0] = Scale{NoteMask: 0x0AB5, Name: "MAJOR PENT"}
	s.Eqs[2].Bands[0] = EqBand{Mode: 1, Freq: 0x40, Level: 0x20, Q: 0x08}
	return s
}

func imageSize(ver version.Version) int {
	size := version.Size + NameLength + 2 +
		NumRows*NumTracks +
		NumChains*ChainLength*2 +
		NumPhrases*PhraseLength*(3+3*fx.Size) +
		NumInstruments*instrument.SlotSize +
		NumTables*TableLength*(1+3*fx.Size) +
		NumGrooves*GrooveLength +
		NumScales*(2+12*2+ScaleNameLength)
	if ver.AtLeast(3, 0) {
		size += NumEqs * 3 * 5
	}
	return size
}

func TestImageSize(t *testing.T) {
	for _, ver := range []version.Version{v(2, 5), v(3, 0), v(4, 0)} {
		if got := len(New(ver).Bytes()); got != imageSize(ver) {
			t.Errorf("%s image = %d bytes, want %d", ver, got, imageSize(ver))
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, ver := range []version.Version{v(3, 0), v(4, 0)} {
		t.Run(ver.String(), func(t *testing.T) {
			data := testSong(ver).Bytes()

			s, err := Read(data)
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if s.Name != "TESTSONG" {
				t.Errorf("Name = %q, want TESTSONG", s.Name)
			}
			if s.Tempo != 0x78 {
				t.Errorf("Tempo = 0x%02X, want 0x78", s.Tempo)
			}
			if got := s.Phrases[0].Rows[0].Instrument; got != 0x01 {
				t.Errorf("phrase 0 row 0 instrument = 0x%02X, want 0x01", got)
			}
			lead, ok := s.Instruments[1].(*instrument.WavSynth)
			if !ok {
				t.Fatalf("instrument 1 = %T, want *WavSynth", s.Instruments[1])
			}
			if lead.Name != "LEAD" {
				t.Errorf("instrument 1 name = %q, want LEAD", lead.Name)
			}
			if got := s.Eqs[2].Bands[0].Freq; got != 0x40 {
				t.Errorf("eq 2 band 0 freq = 0x%02X, want 0x40", got)
			}

			if got := s.Bytes(); !bytes.Equal(got, data) {
				t.Error("re-encoded image differs from its source")
			}
		})
	}
}

// V2 images carry no EQ block and use the inline modulator layout.
func TestRoundTripV2(t *testing.T) {
	ver := v(2, 5)
	src := testSong(ver)
	src.Eqs = [NumEqs]Eq{}
	data := src.Bytes()

	if got := len(data); got != imageSize(ver) {
		t.Fatalf("image = %d bytes, want %d", got, imageSize(ver))
	}
	s, err := Read(data)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got := s.Bytes(); !bytes.Equal(got, data) {
		t.Error("re-encoded image differs from its source")
	}
}

func TestReadErrors(t *testing.T) {
	data := testSong(v(4, 0)).Bytes()
	_, err := Read(data[:1000])
	if errors.Cause(err) != util.ErrTruncated {
		t.Errorf("Read() of truncated image error = %v, want ErrTruncated", err)
	}

	_, err = Read([]byte{9, 0})
	if errors.Cause(err) != util.ErrUnsupportedVersion {
		t.Errorf("Read() error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestCommandPackOf(t *testing.T) {
	s := testSong(v(4, 0))
	if got := len(s.CommandPackOf(1).Commands); got == 0 {
		t.Error("CommandPackOf(1) is empty for an allocated wavsynth")
	}
	if got := len(s.CommandPackOf(0).Commands); got != 0 {
		t.Errorf("CommandPackOf(0) has %d commands for an empty slot", got)
	}
	if got := len(s.CommandPackOf(0xFF).Commands); got != 0 {
		t.Errorf("CommandPackOf(0xFF) has %d commands", got)
	}
}

func TestPhraseString(t *testing.T) {
	s := testSong(v(4, 0))
	out := s.PhraseString(0)
	if !strings.Contains(out, "ARP22") {
		t.Errorf("PhraseString(0) does not render ARP22:\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("PhraseString(0) does not render empty cells:\n%s", out)
	}
}

func TestEmptiness(t *testing.T) {
	s := New(v(4, 0))
	if !s.Chains[0].IsEmpty() {
		t.Error("fresh chain not empty")
	}
	if !s.Phrases[0].IsEmpty() {
		t.Error("fresh phrase not empty")
	}

	s.Phrases[0].Rows[3].FX[1] = fx.FX{Command: 0x05, Value: 1}
	if s.Phrases[0].IsEmpty() {
		t.Error("phrase with an FX cell reported empty")
	}
	s.Chains[0].Cells[0].Phrase = 0
	if s.Chains[0].IsEmpty() {
		t.Error("chain with a phrase reference reported empty")
	}
}
