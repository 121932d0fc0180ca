package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryLayout(t *testing.T) {
	m := NewMemory(64)
	assert.EqualValues(t, ParamStackBase+ParamStackSize, m.SP)
	assert.EqualValues(t, ReturnStackBase+ReturnStackSize, m.RSP)
	assert.Equal(t, uint(DataBase), m.Here())
	assert.EqualValues(t, ParamStackSize+ReturnStackSize+64, m.Size())
}

func TestParamStackPushPop(t *testing.T) {
	m := NewMemory(64)
	m.PushParam(1)
	m.PushParam(2)
	m.PushParam(3)
	assert.EqualValues(t, 3, m.Peek(0))
	assert.EqualValues(t, 2, m.Peek(1))
	assert.EqualValues(t, 3, m.PopParam())
	assert.EqualValues(t, 2, m.PopParam())
	assert.EqualValues(t, 1, m.PopParam())
}

func TestParamStackOverflowUnderflowPredicates(t *testing.T) {
	m := NewMemory(3)

	assert.True(t, m.Underflow(1), "empty stack underflows on any pop")
	assert.False(t, m.Overflow(1), "full free region never overflows on one push")

	for i := uint(0); i < ParamStackSize; i++ {
		require.False(t, m.Overflow(1), "slot %d should still be free", i)
		m.PushParam(Cell(i))
	}
	assert.True(t, m.Overflow(1), "parameter stack is now full")
	assert.False(t, m.Underflow(ParamStackSize), "stack holds exactly ParamStackSize items")
}

func TestParamStackHardStopOnFullPush(t *testing.T) {
	m := NewMemory(3)
	for i := uint(0); i < ParamStackSize; i++ {
		m.PushParam(Cell(i))
	}
	assert.PanicsWithValue(t, FatalError{"fatal stack overflow"}, func() {
		m.PushParam(0)
	})
}

func TestParamStackHardStopOnEmptyPop(t *testing.T) {
	m := NewMemory(3)
	assert.PanicsWithValue(t, FatalError{"fatal stack underflow"}, func() {
		m.PopParam()
	})
}

func TestReturnStackPushPopAndEmpty(t *testing.T) {
	m := NewMemory(3)
	assert.True(t, m.ReturnEmpty())
	m.PushReturn(42)
	assert.False(t, m.ReturnEmpty())
	assert.EqualValues(t, 42, m.PopReturn())
	assert.True(t, m.ReturnEmpty())
}

func TestFaultBoundary(t *testing.T) {
	m := NewMemory(64)
	tests := []struct {
		addr  uint
		fault bool
	}{
		{0, true},
		{ParamStackSize - 1, true},
		{ReservedBase - 1, true},
		{AddrState, false},
		{AddrHere, false},
		{AddrLatest, false},
		{DataBase, false},
		{m.Size() - 1, false},
		{m.Size(), true},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.fault, m.Fault(tt.addr), "addr %d", tt.addr)
	}
}

func TestFetchStoreHonorFault(t *testing.T) {
	m := NewMemory(64)
	_, ok := m.Fetch(0)
	assert.False(t, ok)
	assert.False(t, m.Store(0, 1))

	ok = m.Store(DataBase, 99)
	require.True(t, ok)
	v, ok := m.Fetch(DataBase)
	require.True(t, ok)
	assert.EqualValues(t, 99, v)
}

func TestCompileAdvancesHere(t *testing.T) {
	m := NewMemory(4)
	start := m.Here()
	addr := m.Compile(7)
	assert.Equal(t, start, addr)
	assert.Equal(t, start+1, m.Here())
	v, ok := m.Fetch(addr)
	require.True(t, ok)
	assert.EqualValues(t, 7, v)
}

func TestCompilePastEndIsFatal(t *testing.T) {
	m := NewMemory(4)
	m.Compile(1)
	assert.Panics(t, func() {
		m.Compile(2)
	})
}

func TestResetStacksLeavesHereAndDictionaryAlone(t *testing.T) {
	m := NewMemory(64)
	m.PushParam(1)
	m.PushParam(2)
	m.PushReturn(3)
	m.Compile(9)
	here := m.Here()

	m.ResetStacks()

	assert.EqualValues(t, ParamStackSize, m.SP)
	assert.EqualValues(t, ReturnStackBase+ReturnStackSize, m.RSP)
	assert.Equal(t, here, m.Here())
}
