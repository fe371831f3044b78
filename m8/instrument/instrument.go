// Package instrument decodes and encodes the instrument slot: a byte-tagged
// union of seven variants plus the empty slot, each occupying exactly
// SlotSize bytes on disk.
package instrument

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/enums"
	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/log"
	"github.com/m8kit/m8file/m8/util"
	"github.com/m8kit/m8file/m8/version"
)

const (
	// SlotSize is the frozen on-disk size of one instrument slot.
	SlotSize = 215
	// NameLength is the fixed instrument name field width.
	NameLength = 12
)

// Instrument is the decoded instrument union. Dispatch is closed: the only
// implementations are the variants in this package.
type Instrument interface {
	Kind() enums.InstrumentKind
	// CommandPack is the table of instrument-specific FX commands addressed
	// by command ids >= 0x80.
	CommandPack(ver version.Version) fx.CommandPack
	fmt.Stringer

	// writeBody emits everything after the kind byte. start is the absolute
	// slot offset, needed by variants with fixed-position fields.
	writeBody(w *util.Writer, start int, ver version.Version)
}

// Read decodes one instrument slot. The cursor lands on the slot boundary
// regardless of how many bytes the variant consumed.
func Read(r *util.Reader, ver version.Version, number uint8) (Instrument, error) {
	start := r.Pos()
	kind := enums.InstrumentKind(r.Read())
	if err := r.Err(); err != nil {
		return nil, errors.Wrapf(err, "instrument %02X", number)
	}
	log.Debugf("instrument %02X at 0x%X: %s", number, start, kind)

	var inst Instrument
	var err error
	switch kind {
	case enums.InstrumentKind_WavSynth:
		i := &WavSynth{}
		err = i.readFrom(r, ver, number)
		inst = i
	case enums.InstrumentKind_MacroSynth:
		i := &MacroSynth{}
		err = i.readFrom(r, ver, number)
		inst = i
	case enums.InstrumentKind_Sampler:
		i := &Sampler{}
		err = i.readFrom(r, ver, start, number)
		inst = i
	case enums.InstrumentKind_MIDIOut:
		i := &MIDIOut{}
		err = i.readFrom(r, number)
		inst = i
	case enums.InstrumentKind_FMSynth:
		i := &FMSynth{}
		err = i.readFrom(r, ver, number)
		inst = i
	case enums.InstrumentKind_HyperSynth:
		if !ver.AtLeast(3, 0) {
			return nil, errors.Wrapf(util.ErrUnknownTag, "instrument %02X: %s needs V3, file is %s", number, kind, ver)
		}
		i := &HyperSynth{}
		err = i.readFrom(r, ver, number)
		inst = i
	case enums.InstrumentKind_External:
		if !ver.AtLeast(3, 0) {
			return nil, errors.Wrapf(util.ErrUnknownTag, "instrument %02X: %s needs V3, file is %s", number, kind, ver)
		}
		i := &External{}
		err = i.readFrom(r, ver, number)
		inst = i
	case enums.InstrumentKind_None:
		inst = None{}
	default:
		return nil, errors.Wrapf(util.ErrUnknownTag, "instrument %02X: kind 0x%02X", number, int(kind))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "instrument %02X (%s)", number, kind)
	}

	r.SetPos(start + SlotSize)
	return inst, nil
}

// Write encodes one instrument slot, padding the slack region with 0xFF up
// to the slot boundary.
func Write(w *util.Writer, ver version.Version, inst Instrument) {
	start := w.Pos()
	w.Write(uint8(inst.Kind()))
	inst.writeBody(w, start, ver)
	w.FillTill(0xFF, start+SlotSize)
}

// ReadFile decodes a standalone instrument file: a version header followed
// by a single slot.
func ReadFile(data []byte) (Instrument, version.Version, error) {
	if len(data) < SlotSize+version.Size {
		return nil, version.Version{}, errors.Wrapf(util.ErrTruncated,
			"%d bytes is not long enough to be an M8 instrument", len(data))
	}
	r := util.NewReader(data)
	ver, err := version.Read(r)
	if err != nil {
		return nil, version.Version{}, err
	}
	inst, err := Read(r, ver, 0)
	if err != nil {
		return nil, ver, err
	}
	return inst, ver, nil
}

// WriteFile encodes a standalone instrument file.
func WriteFile(inst Instrument, ver version.Version) []byte {
	w := util.NewWriter()
	ver.Write(w)
	Write(w, ver, inst)
	return w.Bytes()
}

// None is the empty instrument slot (kind byte 0xFF).
type None struct{}

func (None) Kind() enums.InstrumentKind { return enums.InstrumentKind_None }

func (None) CommandPack(_ version.Version) fx.CommandPack { return fx.CommandPack{} }

func (None) String() string { return "NONE" }

func (None) writeBody(_ *util.Writer, _ int, _ version.Version) {}
