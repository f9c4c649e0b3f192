// Package logging builds the leveled key/value logger shared by the front ends.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options selects the destination and verbosity.
type Options struct {
	Debug bool
	// File receives log output when set. The TUI owns the terminal, so it
	// logs only to a file.
	File string
	// Quiet discards output when no File is given.
	Quiet bool
}

// New returns a logger and a close func for its file, if any.
func New(opt Options) (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	switch {
	case opt.File != "":
		f, err := os.OpenFile(opt.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	case opt.Quiet:
		w = io.Discard
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: opt.File != "",
		Prefix:          "packlist",
	})
	l.SetLevel(log.WarnLevel)
	if opt.Debug {
		l.SetLevel(log.DebugLevel)
	}
	return l, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
