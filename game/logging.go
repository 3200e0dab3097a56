package game

import (
	"fmt"
	"io"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logFieldState prints a one-line tick/energy/stability summary, the
// console equivalent of telemetry.WindowStats.LogStats for callers that
// want a glance at the current frame rather than a flushed window.
func (g *Game) logFieldState() {
	Logf("tick=%d energy=%.6g stable=%v speed=%dx boundary=%s",
		g.tick, g.grid.TotalEnergy(), g.grid.IsStable(), g.stepsPerUpdate, g.boundaryLabel)
}
