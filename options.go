package main

import (
	"io"
	"os"

	"github.com/sixtyfourth-lang/sixtyfourth/internal/fileinput"
	"github.com/sixtyfourth-lang/sixtyfourth/internal/flushio"
	"github.com/sixtyfourth-lang/sixtyfourth/internal/logio"
)

// VMOption configures a VM at construction time; see New.
type VMOption interface {
	apply(vm *VM)
}

type vmOptionFunc func(vm *VM)

func (f vmOptionFunc) apply(vm *VM) { f(vm) }

// WithDataSize sets the number of cells available to the data/code area,
// on top of the fixed 512+512 cell stack regions.
func WithDataSize(n int) VMOption {
	return vmOptionFunc(func(vm *VM) {
		vm.mem = NewMemory(n)
	})
}

// WithInput appends r to the queue of readers the outer interpreter tokenizes
// from. Readers are consumed in the order given across calls.
func WithInput(r io.Reader) VMOption {
	return vmOptionFunc(func(vm *VM) {
		vm.in.Queue = append(vm.in.Queue, r)
	})
}

// WithOutput adds w as a destination PRINT writes decimal values to. It may
// be given more than once, in which case PRINT tees its output to every
// registered destination.
func WithOutput(w io.Writer) VMOption {
	return vmOptionFunc(func(vm *VM) {
		wf := flushio.NewWriteFlusher(w)
		if vm.out == nil {
			vm.out = wf
		} else {
			vm.out = flushio.WriteFlushers(vm.out, wf)
		}
	})
}

// WithDiagOutput sets the stream prompts and diagnostics are written to,
// replacing the default of os.Stderr.
func WithDiagOutput(w io.WriteCloser) VMOption {
	return vmOptionFunc(func(vm *VM) {
		vm.diag.SetOutput(w)
		vm.promptOut = w
	})
}

// WithTrace enables per-opcode step tracing: the engine logs one "TRACE: "
// line per instruction dispatched, through the same logio.Logger used for
// diagnostics (so it follows WithDiagOutput's destination). It is meant for
// debugging and tests; the CLI never wires it up.
func WithTrace() VMOption {
	return vmOptionFunc(func(vm *VM) {
		vm.tracef = vm.diag.Leveledf("TRACE")
	})
}

// WithCloser registers c to be closed, most-recently-registered-first, when
// the VM's Close method runs. Useful alongside WithInput/WithOutput when an
// option opens a file the VM should own for its lifetime.
func WithCloser(c io.Closer) VMOption {
	return vmOptionFunc(func(vm *VM) {
		vm.closers = append(vm.closers, c)
	})
}

// New builds a VM ready to run: memory is allocated, the bootstrap phase has
// compiled every primitive and built-in, and I/O defaults to stdin/stdout/
// stderr unless overridden by an option.
func New(opts ...VMOption) *VM {
	vm := &VM{
		mem: NewMemory(DefaultDataSize),
		in:  fileinput.NewInput(),
		diag: func() *logio.Logger {
			log := &logio.Logger{}
			log.SetOutput(nopCloser{os.Stderr})
			return log
		}(),
		promptOut: os.Stderr,
	}
	for _, opt := range opts {
		opt.apply(vm)
	}
	if len(vm.in.Queue) == 0 {
		vm.in.Queue = append(vm.in.Queue, os.Stdin)
	}
	if vm.out == nil {
		vm.out = flushio.NewWriteFlusher(os.Stdout)
	}
	vm.bootstrap()
	return vm
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
