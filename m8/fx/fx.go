// Package fx holds the two-byte FX cell codec and the per-version command
// mnemonic tables.
package fx

import (
	"fmt"

	"github.com/m8kit/m8file/m8/util"
)

// Size is the on-disk size of an FX cell.
const Size = 2

// EmptyCommand in the command byte marks an empty cell.
const EmptyCommand = 0xFF

// FX is one (command, value) cell of a phrase or table row.
type FX struct {
	Command uint8 `json:"command"`
	Value   uint8 `json:"value"`
}

func EmptyFX() FX {
	return FX{Command: EmptyCommand, Value: 0}
}

func Read(r *util.Reader) FX {
	return FX{
		Command: r.Read(),
		Value:   r.Read(),
	}
}

func (f FX) Write(w *util.Writer) {
	w.Write(f.Command)
	w.Write(f.Value)
}

func (f FX) IsEmpty() bool {
	return f.Command == EmptyCommand
}

func (f FX) Print(cmds Commands, pack CommandPack) string {
	if f.IsEmpty() {
		return "---  "
	}
	return fmt.Sprintf("%s%02x", f.formatCommand(cmds, pack), f.Value)
}

func (f FX) formatCommand(cmds Commands, pack CommandPack) string {
	if s, ok := cmds.TryRender(f.Command); ok {
		return s
	}
	if s, ok := pack.TryRender(f.Command); ok {
		return s
	}
	if f.Command >= 0x80 {
		// An instrument-range id the pack does not know.
		return fmt.Sprintf("I%02X", f.Command-0x80)
	}
	return fmt.Sprintf("?%02x", f.Command)
}
