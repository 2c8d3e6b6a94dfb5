package execx

import (
	"io"
	"os"
	"sync"
)

// Shared returns a writer that can be given to a subprocess as its stdout and
// written to from other goroutines at the same time. Files pass through
// unchanged so the child inherits the descriptor; anything else gets its
// writes serialized.
func Shared(w io.Writer) io.Writer {
	switch v := w.(type) {
	case *os.File, *lockedWriter:
		return v
	}
	return &lockedWriter{w: w}
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
