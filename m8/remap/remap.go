// Package remap rewrites instrument, table and EQ references throughout a
// decoded song when the underlying collections are renumbered, as happens
// when song fragments are spliced together.
package remap

import (
	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/enums"
	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/instrument"
	"github.com/m8kit/m8file/m8/song"
)

// Dropped marks a mapping entry whose referent was not carried over.
const Dropped = 0xFF

// Mnemonics whose FX value is a reference into the corresponding collection.
var (
	InstrumentTrackingNames = []string{
		"ICH", "IDE", "IRE", "IC2", "ID2", "IR2",
		"IVO", "IV2", "VIN", "VI2", "INS",
	}
	TableTrackingNames = []string{"TBL", "TBX"}
	EqTrackingNames    = []string{"EQM", "EQI"}
)

// InstrumentMapping maps old instrument numbers to new ones. Tracking holds
// the command ids whose value byte is an instrument reference under the
// command table the song was decoded with.
type InstrumentMapping struct {
	Mapping  []uint8
	Tracking []uint8
}

type TableMapping struct {
	Mapping  []uint8
	Tracking []uint8
}

type EqMapping struct {
	Mapping  []uint8
	Tracking []uint8
}

func NewInstrumentMapping(mapping []uint8, cmds fx.Commands) InstrumentMapping {
	return InstrumentMapping{Mapping: mapping, Tracking: cmds.FindIndices(InstrumentTrackingNames)}
}

func NewTableMapping(mapping []uint8, cmds fx.Commands) TableMapping {
	return TableMapping{Mapping: mapping, Tracking: cmds.FindIndices(TableTrackingNames)}
}

func NewEqMapping(mapping []uint8, cmds fx.Commands) EqMapping {
	return EqMapping{Mapping: mapping, Tracking: cmds.FindIndices(EqTrackingNames)}
}

// Identity returns the identity mapping of length n.
func Identity(n int) []uint8 {
	m := make([]uint8, n)
	for i := range m {
		m[i] = uint8(i)
	}
	return m
}

func tracked(tracking []uint8, cmd uint8) bool {
	for _, t := range tracking {
		if t == cmd {
			return true
		}
	}
	return false
}

// MapFX rewrites one FX cell. A cell whose command tracks a remapped
// category gets its value looked up in the mapping; a value mapped to
// Dropped clears the whole cell. An operand of 0xFF already means "no
// reference" and passes through untouched; it also keeps table 255 (whose
// identity entry collides with the Dropped sentinel) out of the lookup.
func MapFX(f fx.FX, im InstrumentMapping, tm TableMapping, em EqMapping) fx.FX {
	if f.Value == Dropped {
		return f
	}
	var mapped uint8
	switch {
	case tracked(im.Tracking, f.Command) && int(f.Value) < len(im.Mapping):
		mapped = im.Mapping[f.Value]
	case tracked(tm.Tracking, f.Command) && int(f.Value) < len(tm.Mapping):
		mapped = tm.Mapping[f.Value]
	case tracked(em.Tracking, f.Command) && int(f.Value) < len(em.Mapping):
		mapped = em.Mapping[f.Value]
	default:
		return f
	}
	if mapped == Dropped {
		return fx.EmptyFX()
	}
	return fx.FX{Command: f.Command, Value: mapped}
}

// Apply rewrites every reference in s: phrase-row instrument refs, FX cells
// in phrases and tables, and the EQ number carried by each instrument.
func Apply(s *song.Song, im InstrumentMapping, tm TableMapping, em EqMapping) {
	for n := range s.Phrases {
		remapPhrase(&s.Phrases[n], im, tm, em)
	}
	for n := range s.Tables {
		remapTable(&s.Tables[n], im, tm, em)
	}
	for _, inst := range s.Instruments {
		remapInstrumentEq(inst, em)
	}
}

func remapPhrase(p *song.Phrase, im InstrumentMapping, tm TableMapping, em EqMapping) {
	for row := range p.Rows {
		r := &p.Rows[row]
		if r.Instrument != song.EmptyRef && int(r.Instrument) < len(im.Mapping) {
			r.Instrument = im.Mapping[r.Instrument]
		}
		for i := range r.FX {
			r.FX[i] = MapFX(r.FX[i], im, tm, em)
		}
	}
}

func remapTable(t *song.Table, im InstrumentMapping, tm TableMapping, em EqMapping) {
	for row := range t.Rows {
		r := &t.Rows[row]
		for i := range r.FX {
			r.FX[i] = MapFX(r.FX[i], im, tm, em)
		}
	}
}

// remapInstrumentEq rewrites the EQ number packed into the instrument flags
// byte. An EQ mapped to Dropped keeps its old number; the slot cannot be
// made empty.
func remapInstrumentEq(inst instrument.Instrument, em EqMapping) {
	var te *instrument.TranspEq
	switch i := inst.(type) {
	case *instrument.WavSynth:
		te = &i.TranspEq
	case *instrument.MacroSynth:
		te = &i.TranspEq
	case *instrument.Sampler:
		te = &i.TranspEq
	case *instrument.FMSynth:
		te = &i.TranspEq
	case *instrument.HyperSynth:
		te = &i.TranspEq
	case *instrument.External:
		te = &i.TranspEq
	default:
		return
	}
	if int(te.Eq) < len(em.Mapping) && em.Mapping[te.Eq] != Dropped {
		te.Eq = em.Mapping[te.Eq]
	}
}

// AllocateInstruments assigns every allocated instrument of src a free slot
// in dst, scanning slots in order. The result maps src numbers to dst
// numbers, Dropped for unallocated src slots.
func AllocateInstruments(dst, src *song.Song) ([]uint8, error) {
	mapping := make([]uint8, song.NumInstruments)
	for i := range mapping {
		mapping[i] = Dropped
	}
	next := 0
	for n, inst := range src.Instruments {
		if inst.Kind() == enums.InstrumentKind_None {
			continue
		}
		for next < song.NumInstruments && dst.Instruments[next].Kind() != enums.InstrumentKind_None {
			next++
		}
		if next == song.NumInstruments {
			return nil, errors.Errorf("no free instrument slot for source instrument %02X", n)
		}
		mapping[n] = uint8(next)
		next++
	}
	return mapping, nil
}

// AllocatePhrases does the same for phrases, keyed on emptiness.
func AllocatePhrases(dst, src *song.Song) ([]uint8, error) {
	mapping := make([]uint8, song.NumPhrases)
	for i := range mapping {
		mapping[i] = Dropped
	}
	next := 0
	for n := range src.Phrases {
		if src.Phrases[n].IsEmpty() {
			continue
		}
		for next < song.NumPhrases && !dst.Phrases[next].IsEmpty() {
			next++
		}
		if next == song.NumPhrases {
			return nil, errors.Errorf("no free phrase slot for source phrase %02X", n)
		}
		mapping[n] = uint8(next)
		next++
	}
	return mapping, nil
}

// AllocateChains does the same for chains.
func AllocateChains(dst, src *song.Song) ([]uint8, error) {
	mapping := make([]uint8, song.NumChains)
	for i := range mapping {
		mapping[i] = Dropped
	}
	next := 0
	for n := range src.Chains {
		if src.Chains[n].IsEmpty() {
			continue
		}
		for next < song.NumChains && !dst.Chains[next].IsEmpty() {
			next++
		}
		if next == song.NumChains {
			return nil, errors.Errorf("no free chain slot for source chain %02X", n)
		}
		mapping[n] = uint8(next)
		next++
	}
	return mapping, nil
}
