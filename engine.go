package main

import "fmt"

// exec runs the inner interpreter starting at entry, which must be the
// DOCOL code field of a callable word (every dictionary entry has one); a
// bare primitive opcode cell is not a valid entry, since the NEXT after it
// fetches from entry itself. It returns nil once a DOSEM leaves the return
// stack empty, or one of ErrUnderflow/ErrOverflow/ErrFault if a recoverable
// condition is hit. It never panics for those conditions -- only a hard
// invariant violation (see memory.go) does, and that propagates as a Go
// panic by design, to be caught by the top-level Run loop.
func (vm *VM) exec(entry uint) error {
	m := vm.mem
	I, W, P := entry, entry, entry

	for {
		if m.Fault(I) || m.Fault(W) || m.Fault(P) {
			return ErrFault
		}
		op := int(m.rawFetch(P))
		if op < 0 || op >= opMax {
			return ErrFault
		}

		vm.trace("%-5s I=%d W=%d P=%d SP=%d RSP=%d", opcodeNames[op], I, W, P, m.SP, m.RSP)

		switch op {
		case opNEXT:
			W = uint(m.rawFetch(I))
			I++
			P = W

		case opDOCOL:
			m.PushReturn(Cell(I))
			I = W + 1
			W = uint(m.rawFetch(I))
			I++
			P = W

		case opDOSEM:
			I = uint(m.PopReturn())
			if m.ReturnEmpty() {
				return nil
			}
			W = uint(m.rawFetch(I))
			I++
			P = W

		case opDOLIT:
			if m.Overflow(1) {
				return ErrOverflow
			}
			m.PushParam(m.rawFetch(I))
			I++
			P++

		default:
			if err := vm.doOp(op); err != nil {
				return err
			}
			P++
		}
	}
}

// doOp executes a single non-control opcode: a stack, memory, or
// arithmetic/logic primitive. It checks the stack-depth preconditions the
// spec's opcode table requires before touching the stacks, so a failure
// leaves no partial effect beyond what the table documents.
func (vm *VM) doOp(op int) error {
	m := vm.mem

	switch op {
	case opPRINT:
		if m.Underflow(1) {
			return ErrUnderflow
		}
		v := m.PopParam()
		fmt.Fprintf(vm.out, "%d\n", int64(v))

	case opLOAD:
		if m.Underflow(1) {
			return ErrUnderflow
		}
		a := m.PopParam()
		v, ok := m.Fetch(uint(a))
		if !ok {
			return ErrFault
		}
		m.PushParam(v)

	case opSTORE:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		a := m.PopParam()
		v := m.PopParam()
		if !m.Store(uint(a), v) {
			return ErrFault
		}

	case opDROP:
		if m.Underflow(1) {
			return ErrUnderflow
		}
		m.PopParam()

	case opSWAP:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y := m.PopParam()
		x := m.PopParam()
		m.PushParam(y)
		m.PushParam(x)

	case opDUP:
		if m.Underflow(1) {
			return ErrUnderflow
		}
		if m.Overflow(1) {
			return ErrOverflow
		}
		m.PushParam(m.Peek(0))

	case opOVER:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		if m.Overflow(1) {
			return ErrOverflow
		}
		m.PushParam(m.Peek(1))

	case opROT:
		if m.Underflow(3) {
			return ErrUnderflow
		}
		z := m.PopParam()
		y := m.PopParam()
		x := m.PopParam()
		m.PushParam(y)
		m.PushParam(z)
		m.PushParam(x)

	case opPUSH:
		if m.Underflow(1) {
			return ErrUnderflow
		}
		m.PushReturn(m.PopParam())

	case opPULL:
		if m.Overflow(1) {
			return ErrOverflow
		}
		m.PushParam(m.PopReturn())

	case opNOT:
		if m.Underflow(1) {
			return ErrUnderflow
		}
		m.PushParam(^m.PopParam())

	case opAND:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		m.PushParam(x & y)

	case opOR:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		m.PushParam(x | y)

	case opXOR:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		m.PushParam(x ^ y)

	case opADD:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		m.PushParam(x + y)

	case opSUB:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		m.PushParam(x - y)

	case opMUL:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		m.PushParam(x * y)

	case opDIV:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		if y == 0 {
			return ErrFault
		}
		m.PushParam(x / y)

	case opLSH:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		m.PushParam(x << clampShift(y))

	case opRSH:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		m.PushParam(x >> clampShift(y))

	case opEQ:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		m.PushParam(boolCell(x == y))

	case opLT:
		if m.Underflow(2) {
			return ErrUnderflow
		}
		y, x := m.PopParam(), m.PopParam()
		m.PushParam(boolCell(int64(x) < int64(y)))

	default:
		return ErrFault
	}
	return nil
}

// clampShift caps a shift count to one less than the cell width, so LSH and
// RSH never trap on oversized counts, per spec.md section 4.2.
func clampShift(n Cell) Cell {
	const maxShift = 63
	if n > maxShift {
		return maxShift
	}
	return n
}

// boolCell renders a boolean as the engine's canonical all-ones/all-zero
// truth values.
func boolCell(b bool) Cell {
	if b {
		return ^Cell(0)
	}
	return 0
}
