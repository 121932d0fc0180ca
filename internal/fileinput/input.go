// Package fileinput implements sequential rune reading across a queue of
// input streams, tracking whether the most recently read rune was a
// newline so a caller can decide when a fresh prompt is due.
package fileinput

import (
	"io"

	"github.com/sixtyfourth-lang/sixtyfourth/internal/runeio"
)

// Input reads runes from a Queue of readers in order, falling through to
// the next queued reader on EOF. Additional readers may be appended to
// Queue even after reading has begun; they are read once every reader
// ahead of them, including the current one, has reached EOF.
type Input struct {
	rr    runeio.Reader
	Queue []io.Reader

	atLineStart bool
}

// NewInput returns an Input primed to report a fresh line at the very
// start of reading, before any rune has been consumed.
func NewInput(queue ...io.Reader) *Input {
	return &Input{Queue: queue, atLineStart: true}
}

// ReadRune reads one rune from the current input stream, advancing to the
// next queued reader on EOF.
func (in *Input) ReadRune() (rune, int, error) {
	if in.rr == nil && !in.nextIn() {
		return 0, 0, io.EOF
	}

	r, n, err := in.rr.ReadRune()
	if r != 0 {
		in.atLineStart = r == '\n'
		return r, n, nil
	}
	if err == io.EOF && in.nextIn() {
		return in.ReadRune()
	}
	return 0, n, err
}

// AtLineStart reports whether the most recently consumed rune was a
// newline -- i.e. whether the next token begins a fresh line.
func (in *Input) AtLineStart() bool { return in.atLineStart }

func (in *Input) nextIn() bool {
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
	}
	return in.rr != nil
}
