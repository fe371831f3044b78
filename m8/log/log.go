// Package log is the codec's leveled stderr logger. At debug level the
// decoders trace each file section and instrument slot as they walk the
// byte image, indented by record nesting; dump and splice map their
// verbosity flags onto Level.
package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

type LogLevel int

const (
	LogLevel_None = iota
	LogLevel_Warn
	LogLevel_Info
	LogLevel_Debug
)

var Level LogLevel = LogLevel_Info

var cyan = color.New(color.FgCyan)
var yellow = color.New(color.FgYellow)

func Warnf(f string, args ...interface{}) {
	if LogLevel_Warn <= Level {
		yellow.Fprintf(os.Stderr, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...interface{}) {
	if LogLevel_Info <= Level {
		fmt.Fprintf(os.Stderr, f+"\n", args...)
	}
}

var indent = 0

// Debugf traces one decode step at the current nesting depth.
func Debugf(f string, args ...interface{}) {
	if LogLevel_Debug <= Level {
		cyan.Fprintf(os.Stderr, strings.Repeat("  ", indent)+f+"\n", args...)
	}
}

// Enter deepens the trace indent for the records of an enclosing image;
// Leave restores it. Song decoding brackets its section traces with these.
func Enter() {
	indent++
}

func Leave() {
	indent--
}
