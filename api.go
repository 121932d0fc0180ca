package main

import "github.com/sixtyfourth-lang/sixtyfourth/internal/panicerr"

// Run drives the outer interpreter to completion. It returns nil on a clean
// EOF. A hard invariant violation (see halt) is recovered here and returned
// as a haltError rather than crashing the process, so a caller can choose
// its own exit code.
func (vm *VM) Run() error {
	defer vm.Close()

	err := panicerr.Recover("64th", vm.repl)
	if err == nil {
		if vm.out != nil {
			vm.out.Flush()
		}
		return nil
	}
	if panicerr.IsPanic(err) {
		return haltError{err}
	}
	return err
}
