// Package relay copies a subprocess stream to another writer line by line
// while the subprocess runs.
package relay

import (
	"bufio"
	"errors"
	"io"
	"os"
	"time"
)

// Relay is a single background copy from src to dst.
type Relay struct {
	src  io.ReadCloser
	dst  io.Writer
	done chan struct{}

	lines int
	err   error
}

// Start begins relaying src to dst in its own goroutine. Every complete line
// is written to dst with one Write call as soon as it is read; a trailing
// partial line is written at EOF. The goroutine exits on EOF, on a read
// error, or on the first write error.
func Start(src io.ReadCloser, dst io.Writer) *Relay {
	r := &Relay{src: src, dst: dst, done: make(chan struct{})}
	go r.loop()
	return r
}

func (r *Relay) loop() {
	defer close(r.done)
	br := bufio.NewReader(r.src)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := r.dst.Write(line); werr != nil {
				r.err = werr
				return
			}
			r.lines++
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.err = err
			}
			return
		}
	}
}

// Join waits up to grace for the relay to reach end of stream. If the stream
// is still open after grace, src is closed to stop the relay and truncated is
// true. src must unblock pending reads on Close, as os.File pipes do.
func (r *Relay) Join(grace time.Duration) (lines int, truncated bool, err error) {
	timer := time.NewTimer(grace)
	defer timer.Stop()
	select {
	case <-r.done:
	case <-timer.C:
		truncated = true
		_ = r.src.Close()
		<-r.done
	}
	err = r.err
	if truncated && errors.Is(err, os.ErrClosed) {
		err = nil
	}
	return r.lines, truncated, err
}
