package pptxbullet

import (
	"github.com/fatih/color"
)

// Debug enables trace output of every structural edit
var Debug bool

var (
	traceColor = color.New(color.FgHiCyan)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

func tracef(format string, args ...any) {
	if !Debug {
		return
	}
	traceColor.Fprintf(color.Error, "\t"+format+"\n", args...)
}

// Errors go to stderr like warnings, stdout stays for document output
func errorf(format string, args ...any) {
	errorColor.Fprintf(color.Error, format+"\n", args...)
}

// Warnings go out regardless of Debug
func warnf(format string, args ...any) {
	warnColor.Fprintf(color.Error, "WARN: "+format+"\n", args...)
}
