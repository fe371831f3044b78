package remap

import (
	"bytes"
	"testing"

	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/instrument"
	"github.com/m8kit/m8file/m8/song"
	"github.com/m8kit/m8file/m8/version"
)

func v4() version.Version {
	return version.Version{Major: 4, Minor: 0}
}

func testMods() [4]instrument.Mod {
	return [4]instrument.Mod{
		&instrument.AHDEnv{}, &instrument.AHDEnv{},
		&instrument.LFO{}, &instrument.LFO{},
	}
}

func wavSynth(name string, eq uint8) *instrument.WavSynth {
	return &instrument.WavSynth{
		Name:     name,
		TranspEq: instrument.TranspEq{Eq: eq},
		Params:   instrument.SynthParams{Mods: testMods()},
	}
}

func commandID(t *testing.T, cmds fx.Commands, name string) uint8 {
	t.Helper()
	ids := cmds.FindIndices([]string{name})
	if len(ids) != 1 {
		t.Fatalf("command %q resolves to %v", name, ids)
	}
	return ids[0]
}

func mappings(m []uint8, cmds fx.Commands) (InstrumentMapping, TableMapping, EqMapping) {
	return NewInstrumentMapping(m, cmds),
		NewTableMapping(Identity(song.NumTables), cmds),
		NewEqMapping(Identity(song.NumEqs), cmds)
}

func TestApplyRotatesInstrumentReferences(t *testing.T) {
	s := song.New(v4())
	cmds := fx.CommandNames(s.Version)
	ich := commandID(t, cmds, "ICH")
	arp := commandID(t, cmds, "ARP")

	for n := 0; n < 3; n++ {
		s.Instruments[n] = wavSynth("INST", 0)
	}
	s.Phrases[0].Rows[0].Instrument = 1
	s.Phrases[0].Rows[0].FX[0] = fx.FX{Command: ich, Value: 1}
	s.Phrases[0].Rows[1].FX[0] = fx.FX{Command: arp, Value: 1}

	m := Identity(song.NumInstruments)
	m[0], m[1], m[2] = 2, 0, 1
	im, tm, em := mappings(m, cmds)
	Apply(s, im, tm, em)

	if got := s.Phrases[0].Rows[0].Instrument; got != 0 {
		t.Errorf("row instrument = %d, want 0", got)
	}
	if got := s.Phrases[0].Rows[0].FX[0]; got != (fx.FX{Command: ich, Value: 0}) {
		t.Errorf("ICH cell = %+v, want value 0", got)
	}
	// Commands whose value is not a reference keep their value.
	if got := s.Phrases[0].Rows[1].FX[0]; got != (fx.FX{Command: arp, Value: 1}) {
		t.Errorf("ARP cell = %+v, want value 1", got)
	}
}

func TestIdentityMappingIsNoOp(t *testing.T) {
	s := song.New(v4())
	cmds := fx.CommandNames(s.Version)
	s.Instruments[0] = wavSynth("A", 3)
	s.Instruments[5] = wavSynth("B", 0)
	s.Phrases[2].Rows[0].Instrument = 5
	s.Phrases[2].Rows[0].FX[0] = fx.FX{Command: commandID(t, cmds, "TBL"), Value: 5}
	s.Tables[5].Rows[1].FX[2] = fx.FX{Command: commandID(t, cmds, "EQM"), Value: 3}

	before := s.Bytes()
	im, tm, em := mappings(Identity(song.NumInstruments), cmds)
	Apply(s, im, tm, em)

	if !bytes.Equal(s.Bytes(), before) {
		t.Error("identity remap changed the song image")
	}
}

func TestDroppedReferenceClearsCell(t *testing.T) {
	cmds := fx.CommandNames(v4())
	ich := commandID(t, cmds, "ICH")

	m := Identity(song.NumInstruments)
	m[5] = Dropped
	im, tm, em := mappings(m, cmds)

	got := MapFX(fx.FX{Command: ich, Value: 5}, im, tm, em)
	if !got.IsEmpty() {
		t.Errorf("MapFX() = %+v, want the cell cleared", got)
	}
}

// An identity table mapping stores 0xFF at index 255, which is also the
// Dropped sentinel. A tracked cell whose operand is 0xFF must pass through
// rather than being cleared by that collision.
func TestUnsetOperandPassesThrough(t *testing.T) {
	cmds := fx.CommandNames(v4())
	tbl := commandID(t, cmds, "TBL")

	im, tm, em := mappings(Identity(song.NumInstruments), cmds)
	cell := fx.FX{Command: tbl, Value: 0xFF}
	if got := MapFX(cell, im, tm, em); got != cell {
		t.Errorf("MapFX() = %+v, want the cell unchanged", got)
	}
}

func TestTableAndEqTracking(t *testing.T) {
	s := song.New(v4())
	cmds := fx.CommandNames(s.Version)
	tbx := commandID(t, cmds, "TBX")
	eqi := commandID(t, cmds, "EQI")

	s.Phrases[0].Rows[0].FX[0] = fx.FX{Command: tbx, Value: 4}
	s.Tables[0].Rows[0].FX[0] = fx.FX{Command: eqi, Value: 2}
	s.Instruments[0] = wavSynth("A", 2)

	tMap := Identity(song.NumTables)
	tMap[4] = 9
	eMap := Identity(song.NumEqs)
	eMap[2] = 7

	im := NewInstrumentMapping(Identity(song.NumInstruments), cmds)
	tm := NewTableMapping(tMap, cmds)
	em := NewEqMapping(eMap, cmds)
	Apply(s, im, tm, em)

	if got := s.Phrases[0].Rows[0].FX[0].Value; got != 9 {
		t.Errorf("TBX value = %d, want 9", got)
	}
	if got := s.Tables[0].Rows[0].FX[0].Value; got != 7 {
		t.Errorf("EQI value = %d, want 7", got)
	}
	if got := s.Instruments[0].(*instrument.WavSynth).TranspEq.Eq; got != 7 {
		t.Errorf("instrument eq = %d, want 7", got)
	}
}

func TestAllocate(t *testing.T) {
	dst := song.New(v4())
	src := song.New(v4())
	dst.Instruments[0] = wavSynth("D0", 0)
	dst.Instruments[2] = wavSynth("D2", 0)
	src.Instruments[0] = wavSynth("S0", 0)
	src.Instruments[4] = wavSynth("S4", 0)

	mapping, err := AllocateInstruments(dst, src)
	if err != nil {
		t.Fatalf("AllocateInstruments() error: %v", err)
	}
	if mapping[0] != 1 || mapping[4] != 3 {
		t.Errorf("mapping = [0]=%d [4]=%d, want 1 and 3", mapping[0], mapping[4])
	}
	if mapping[1] != Dropped {
		t.Errorf("mapping[1] = %d, want Dropped", mapping[1])
	}

	for n := range dst.Instruments {
		dst.Instruments[n] = wavSynth("FULL", 0)
	}
	if _, err := AllocateInstruments(dst, src); err == nil {
		t.Error("AllocateInstruments() on a full song did not fail")
	}
}

// Command ids are table indices, so content written under one era's table
// cannot be rewritten into a song using another.
func TestSpliceRejectsMixedCommandTables(t *testing.T) {
	dst := song.New(version.Version{Major: 4, Minor: 0})
	src := song.New(version.Version{Major: 2, Minor: 5})
	src.Instruments[0] = wavSynth("SRC", 0)

	if err := Splice(dst, src); err == nil {
		t.Error("Splice() across command-table eras did not fail")
	}
	if _, ok := dst.Instruments[0].(instrument.None); !ok {
		t.Error("rejected splice still copied an instrument")
	}
}

func TestSplice(t *testing.T) {
	ver := v4()
	cmds := fx.CommandNames(ver)
	ich := commandID(t, cmds, "ICH")
	tbl := commandID(t, cmds, "TBL")

	dst := song.New(ver)
	dst.Instruments[0] = wavSynth("DST", 0)
	dst.Phrases[0].Rows[0].Note = 0x30
	dst.Chains[0].Cells[0].Phrase = 0

	src := song.New(ver)
	src.Instruments[0] = wavSynth("SRC", 0)
	src.Tables[0].Rows[0].Transpose = 0x0C
	src.Phrases[0].Rows[0] = song.PhraseRow{
		Note:       0x40,
		Velocity:   0x64,
		Instrument: 0,
		FX: [3]fx.FX{
			{Command: ich, Value: 0},
			{Command: tbl, Value: 0},
			fx.EmptyFX(),
		},
	}
	src.Chains[0].Cells[0].Phrase = 0

	if err := Splice(dst, src); err != nil {
		t.Fatalf("Splice() error: %v", err)
	}

	inst, ok := dst.Instruments[1].(*instrument.WavSynth)
	if !ok || inst.Name != "SRC" {
		t.Fatalf("instrument 1 = %#v, want the spliced SRC wavsynth", dst.Instruments[1])
	}
	// The instrument's table moves with it.
	if got := dst.Tables[1].Rows[0].Transpose; got != 0x0C {
		t.Errorf("table 1 transpose = 0x%02X, want 0x0C", got)
	}

	row := dst.Phrases[1].Rows[0]
	if row.Instrument != 1 {
		t.Errorf("spliced row instrument = %d, want 1", row.Instrument)
	}
	if row.FX[0] != (fx.FX{Command: ich, Value: 1}) {
		t.Errorf("spliced ICH cell = %+v, want value 1", row.FX[0])
	}
	if row.FX[1] != (fx.FX{Command: tbl, Value: 1}) {
		t.Errorf("spliced TBL cell = %+v, want value 1", row.FX[1])
	}
	if got := dst.Chains[1].Cells[0].Phrase; got != 1 {
		t.Errorf("spliced chain references phrase %d, want 1", got)
	}
	// Destination content is untouched.
	if dst.Phrases[0].Rows[0].Note != 0x30 {
		t.Error("existing destination phrase was modified")
	}
}
