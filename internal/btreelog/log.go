// Package btreelog is the ambient logging surface of the btree core: a
// thin wrapper over the stdlib log package, used at the handful of spots that log at all (mostly
// nonfatal snapshot warnings) rather than pulling in a structured-logging dependency (see
// DESIGN.md).
package btreelog

import (
	"io"
	"log"
	"os"
)

// New returns a *log.Logger writing to w (os.Stderr if w is nil) with prefix, in the shape every
// package-level logger in this repo is constructed with.
func New(w io.Writer, prefix string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.New(w, prefix, log.LstdFlags)
}

// Default is the package-level logger used wherever a caller hasn't supplied its own.
var Default = New(os.Stderr, "btree: ")
