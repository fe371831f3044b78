package fx

import (
	"github.com/m8kit/m8file/m8/version"
)

// Order is the wire contract: a command id is its index in the table.

var seqCommandsV2 = []string{
	"ARP",
	"CHA",
	"DEL",
	"GRV",
	"HOP",
	"KIL",
	"RAN",
	"RET",
	"REP",
	"NTH",
	"PSL",
	"PSN",
	"PVB",
	"PVX",
	"SCA",
	"SCG",
	"SED",
	"SNG",
	"TBL",
	"THO",
	"TIC",
	"TPO",
	"TSP",
}

var fxMixerCommandsV2 = []string{
	"VMV",
	"XCM",
	"XCF",
	"XCW",
	"XCR",
	"XDT",
	"XDF",
	"XDW",
	"XDR",
	"XRS",
	"XRD",
	"XRM",
	"XRF",
	"XRW",
	"XRZ",
	"VCH",
	"VCD",
	"VRE",
	"VT1",
	"VT2",
	"VT3",
	"VT4",
	"VT5",
	"VT6",
	"VT7",
	"VT8",
	"DJF",
	"IVO",
	"ICH",
	"IDE",
	"IRE",
	"IV2",
	"IC2",
	"ID2",
	"IR2",
	"USB",
}

var seqCommandsV3 = []string{
	"ARP",
	"CHA",
	"DEL",
	"GRV",
	"HOP",
	"KIL",
	"RND",
	"RNL",
	"RET",
	"REP",
	"RMX",
	"NTH",
	"PSL",
	"PBN",
	"PVB",
	"PVX",
	"SCA",
	"SCG",
	"SED",
	"SNG",
	"TBL",
	"THO",
	"TIC",
	"TBX",
	"TPO",
	"TSP",
	"OFF",
}

var fxMixerCommandsV4 = []string{
	"VMV",
	"XCM",
	"XCF",
	"XCW",
	"XCR",
	"XDT",
	"XDF",
	"XDW",
	"XDR",
	"XRS",
	"XRD",
	"XRM",
	"XRF",
	"XRW",
	"XRZ",
	"VCH",
	"VDE",
	"VRE",
	"VT1",
	"VT2",
	"VT3",
	"VT4",
	"VT5",
	"VT6",
	"VT7",
	"VT8",
	"DJC",
	"VIN",
	"ICH",
	"IDE",
	"IRE",
	"VI2",
	"IC2",
	"ID2",
	"IR2",
	"USB",

	"DJR", // 0x3F
	"DJT", // 0x40
	"EQM", // 0x41
	"EQI", // 0x42
	"INS", // 0x43
	"RTO", // 0x44
	"ARC", // 0x45
	"GGR", // 0x46
	"NXT", // 0x47
}

var commandsV2 = concat(seqCommandsV2, fxMixerCommandsV2)
var commandsV3 = concat(seqCommandsV3, fxMixerCommandsV2)
var commandsV4 = concat(seqCommandsV3, fxMixerCommandsV4)

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Commands is the FX mnemonic table of one format revision.
type Commands struct {
	commands []string
}

// CommandNames retrieves the command table for a given version.
func CommandNames(ver version.Version) Commands {
	if ver.AtLeast(4, 0) {
		return Commands{commands: commandsV4}
	} else if ver.AtLeast(3, 0) {
		return Commands{commands: commandsV3}
	}
	return Commands{commands: commandsV2}
}

func (c Commands) Len() int {
	return len(c.commands)
}

func (c Commands) TryRender(cmd uint8) (string, bool) {
	if int(cmd) < len(c.commands) {
		return c.commands[cmd], true
	}
	return "", false
}

// FindIndices resolves mnemonics to command ids. Unknown names are skipped;
// the result is in id order.
func (c Commands) FindIndices(toFind []string) []uint8 {
	out := []uint8{}
	for i, cmd := range c.commands {
		for _, name := range toFind {
			if cmd == name {
				out = append(out, uint8(i))
				break
			}
		}
	}
	return out
}

// BaseInstrumentCommandCount is the length of the shared portion of every
// instrument-specific command table (volume/pitch head, filter/amp/mixer
// tail).
const BaseInstrumentCommandCount = 18

// CommandPack is the instrument-specific command table addressed by command
// ids >= 0x80.
type CommandPack struct {
	Commands []string
}

func (p CommandPack) Accepts(cmd uint8) bool {
	return 0x80 <= cmd && int(cmd-0x80) < len(p.Commands)
}

func (p CommandPack) TryRender(cmd uint8) (string, bool) {
	if !p.Accepts(cmd) {
		return "", false
	}
	return p.Commands[cmd-0x80], true
}
