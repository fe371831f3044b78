package instrument

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/enums"
	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/util"
	"github.com/m8kit/m8file/m8/version"
)

var midiOutCommands = []string{
	"VOL",
	"PIT",
	"MPG",
	"MPB",
	"CCA",
	"CCB",
	"CCC",
	"CCD",
	"CCE",
	"CCF",
	"CCG",
	"CCH",
}

// MIDIOut has no synth-params block on disk; its modulators are synthesized
// as four default AHD envelopes. The transpose byte is a plain bool in every
// version.
type MIDIOut struct {
	Number    uint8  `json:"number"`
	Name      string `json:"name"`
	Transpose bool   `json:"transpose"`
	TableTick uint8  `json:"table_tick"`

	Port          uint8            `json:"port"`
	Channel       uint8            `json:"channel"`
	BankSelect    uint8            `json:"bank_select"`
	ProgramChange uint8            `json:"program_change"`
	CustomCC      [8]ControlChange `json:"custom_cc"`

	Mods [4]Mod `json:"mods"`

	pad [3]uint8 // unassigned on the device, kept for byte-exact round trip
}

func (i *MIDIOut) Kind() enums.InstrumentKind { return enums.InstrumentKind_MIDIOut }

func (i *MIDIOut) CommandPack(_ version.Version) fx.CommandPack {
	return fx.CommandPack{Commands: midiOutCommands}
}

func (i *MIDIOut) readFrom(r *util.Reader, number uint8) error {
	i.Number = number
	i.Name = r.ReadString(NameLength)
	i.Transpose = r.ReadBool()
	i.TableTick = r.Read()

	i.Port = r.Read()
	i.Channel = r.Read()
	i.BankSelect = r.Read()
	i.ProgramChange = r.Read()
	if b := r.ReadBytes(3); b != nil {
		copy(i.pad[:], b)
	}
	for n := range i.CustomCC {
		i.CustomCC[n] = readControlChange(r)
	}
	i.Mods = defaultMods()
	return errors.WithStack(r.Err())
}

func (i *MIDIOut) writeBody(w *util.Writer, _ int, _ version.Version) {
	w.WriteString(i.Name, NameLength)
	w.WriteBool(i.Transpose)
	w.Write(i.TableTick)

	w.Write(i.Port)
	w.Write(i.Channel)
	w.Write(i.BankSelect)
	w.Write(i.ProgramChange)
	w.WriteBytes(i.pad[:])
	for _, cc := range i.CustomCC {
		cc.write(w)
	}
}

func (i *MIDIOut) String() string {
	return fmt.Sprintf("MIDIOUT %02X %q: PORT=%02X CH=%02X BANK=%02X PRG=%02X",
		i.Number, i.Name, i.Port, i.Channel, i.BankSelect, i.ProgramChange)
}
