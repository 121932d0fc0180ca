package main

import (
	"bytes"
	"strings"
)

// newTestVM builds a VM wired to an in-memory stdout and diagnostic buffer,
// feeding src as its sole input, for use across this package's test files.
func newTestVM(src string) (vm *VM, stdout, diag *bytes.Buffer) {
	stdout = &bytes.Buffer{}
	diag = &bytes.Buffer{}
	vm = New(
		WithInput(strings.NewReader(src)),
		WithOutput(stdout),
		WithDiagOutput(nopWriteCloser{diag}),
	)
	return vm, stdout, diag
}

type nopWriteCloser struct{ *bytes.Buffer }

func (nopWriteCloser) Close() error { return nil }
