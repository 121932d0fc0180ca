package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberStrictDecimal(t *testing.T) {
	tests := []struct {
		tok  string
		v    Cell
		isOK bool
	}{
		{"0", 0, true},
		{"00", 0, true},
		{"7", 7, true},
		{"+0", 0, true},
		{"-0", 0, true},
		{"-7", ^Cell(7) + 1, true},
		{"+7", 7, true},
		{"", 0, false},
		{"+", 0, false},
		{"-", 0, false},
		{"12abc", 0, false},
		{"abc", 0, false},
		{"1 2", 0, false},
	}
	for _, tt := range tests {
		v, ok := parseNumber(tt.tok)
		assert.Equalf(t, tt.isOK, ok, "token %q", tt.tok)
		if tt.isOK {
			assert.Equalf(t, tt.v, v, "token %q", tt.tok)
		}
	}
}

func TestReadTokenSkipsWhitespaceClasses(t *testing.T) {
	vm, _, _ := newTestVM("")
	vm.in.Queue = append(vm.in.Queue, strings.NewReader(" \t\r\nfoo\vbar\n"))

	tok, err := vm.readToken()
	require.NoError(t, err)
	assert.Equal(t, "foo", tok)

	tok, err = vm.readToken()
	require.NoError(t, err)
	assert.Equal(t, "bar", tok)
}

func TestReadTokenTruncatesAt255Bytes(t *testing.T) {
	long := strings.Repeat("a", 300)
	vm, _, _ := newTestVM(long + "\n")

	tok, err := vm.readToken()
	require.NoError(t, err)
	assert.Len(t, tok, maxTokenBytes)

	tok, err = vm.readToken()
	require.NoError(t, err)
	assert.Len(t, tok, 300-maxTokenBytes, "the overflow is read as a separate token")
}

func TestReadTokenEOF(t *testing.T) {
	vm, _, _ := newTestVM("")
	_, err := vm.readToken()
	assert.Error(t, err)
}

func TestColonStateNameIsNotSpecial(t *testing.T) {
	// In STATE = COLON, even ";" just names the new word.
	vm, _, _ := newTestVM(": ; 1 ; ;\n")
	require.NoError(t, vm.Run())
	w := vm.dict.lookup(";")
	require.NotNil(t, w)
}

func TestInteractiveUnknownWordContinuesSession(t *testing.T) {
	vm, stdout, diag := newTestVM("bogus 1 2 + .\n")
	require.NoError(t, vm.Run())
	assert.Contains(t, diag.String(), "bogus not found")
	assert.Equal(t, "3\n", stdout.String())
}

func TestCompileStateUnknownWordPreservesPartialDefinition(t *testing.T) {
	vm, _, diag := newTestVM(": broken nope 1 + ;\n")
	require.NoError(t, vm.Run())
	assert.Contains(t, diag.String(), "nope not found")
	assert.EqualValues(t, stateInteractive, vm.mem.State(), "STATE returns to INTERACTIVE once ; is reached")
	assert.NotNil(t, vm.dict.lookup("broken"), "the partially compiled word is not discarded")
}
