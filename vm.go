package main

import (
	"io"

	"github.com/sixtyfourth-lang/sixtyfourth/internal/fileinput"
	"github.com/sixtyfourth-lang/sixtyfourth/internal/flushio"
	"github.com/sixtyfourth-lang/sixtyfourth/internal/logio"
)

// Interpreter states, driving the outer interpreter's STATE machine.
const (
	stateInteractive = 0
	stateColon       = 1
	stateCompile     = 2
)

// VM ties together the memory/stacks, the threaded-code engine, the
// dictionary, and the outer interpreter's I/O. A VM is constructed once per
// session; a recoverable fault resets its stacks in place rather than
// replacing it (see Memory.ResetStacks).
type VM struct {
	mem  *Memory
	dict dictionary

	in        *fileinput.Input
	out       flushio.WriteFlusher
	diag      *logio.Logger
	promptOut io.Writer
	closers   []io.Closer

	// tracef, when non-nil, receives one line per opcode dispatched by the
	// engine. It is only ever wired up through WithTrace, as diag's own
	// "TRACE" level, for debugging and tests -- the CLI surface in main.go
	// never exposes it.
	tracef func(mess string, args ...interface{})

	// primAddr records the compiled address of each opcode's <opcode NEXT>
	// sequence, keyed by opcode, plus the shared DOSEM cell every callable
	// word returns through. Populated once by bootstrap.
	primAddr [opMax]uint
	dosemAt  uint
}

// diagf prints a bare, un-prefixed line to the diagnostic stream:
// interpreter diagnostics are printed exactly as spec.md section 6
// mandates, with no leveling decoration. Prompts do not go through here;
// printPrompt writes them to promptOut without a newline.
func (vm *VM) diagf(format string, args ...interface{}) {
	if vm.diag != nil {
		vm.diag.Printf("", format, args...)
	}
}

func (vm *VM) trace(mess string, args ...interface{}) {
	if vm.tracef != nil {
		vm.tracef(mess, args...)
	}
}

// halt flushes output, reports mess on the diagnostic stream, and performs
// a hard invariant violation stop: it panics with FatalError so the
// outermost Run can recover it into a returned error.
func (vm *VM) halt(mess string) {
	func() {
		defer func() { recover() }()
		if vm.out != nil {
			vm.out.Flush()
		}
	}()
	func() {
		defer func() { recover() }()
		vm.diagf("%v", mess)
	}()
	fatal(mess)
}

// Close releases any closers registered by VMOptions, most recently
// registered first.
func (vm *VM) Close() (err error) {
	for i := len(vm.closers) - 1; i >= 0; i-- {
		if cerr := vm.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}
