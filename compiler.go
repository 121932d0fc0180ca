package main

// bodyTok is one element of a composite built-in's definition: either a
// literal value (compiled as DOLIT followed by the value) or a reference to
// an already-defined word (compiled as that word's code-field address).
type bodyTok struct {
	lit   bool
	value Cell
	name  string
}

func lit(v Cell) bodyTok        { return bodyTok{lit: true, value: v} }
func call(name string) bodyTok { return bodyTok{name: name} }

// bootstrap compiles the primitive opcode bank and the shared DOSEM cell,
// then defines every user-visible primitive and the small set of built-ins
// expressed in terms of those primitives. It runs once per VM instance,
// before the REPL reads its first token.
func (vm *VM) bootstrap() {
	m := vm.mem

	vm.dosemAt = m.Compile(Cell(opDOSEM))

	for _, op := range []int{
		opDOLIT, opPRINT, opLOAD, opSTORE, opDROP, opSWAP, opDUP, opOVER,
		opROT, opPUSH, opPULL, opNOT, opAND, opOR, opXOR, opADD, opSUB,
		opMUL, opDIV, opLSH, opRSH, opEQ, opLT,
	} {
		addr := m.Compile(Cell(op))
		m.Compile(Cell(opNEXT))
		vm.primAddr[op] = addr
	}

	for _, p := range []struct {
		name            string
		op              int
		inputs, outputs int
	}{
		{".", opPRINT, 1, 0},
		{"@", opLOAD, 1, 1},
		{"!", opSTORE, 2, 0},
		{"drop", opDROP, 1, 0},
		{"swap", opSWAP, 2, 2},
		{"dup", opDUP, 1, 2},
		{"over", opOVER, 2, 3},
		{"rot", opROT, 3, 3},
		{">r", opPUSH, 1, 0},
		{"r>", opPULL, 0, 1},
		{"not", opNOT, 1, 1},
		{"and", opAND, 2, 1},
		{"or", opOR, 2, 1},
		{"xor", opXOR, 2, 1},
		{"+", opADD, 2, 1},
		{"-", opSUB, 2, 1},
		{"*", opMUL, 2, 1},
		{"/", opDIV, 2, 1},
		{"<<", opLSH, 2, 1},
		{">>", opRSH, 2, 1},
		{"=", opEQ, 2, 1},
		{"<", opLT, 2, 1},
	} {
		vm.definePrimitive(p.name, p.op, p.inputs, p.outputs)
	}

	vm.defineComposite("state", 0, 1, lit(Cell(AddrState)), call("@"))
	vm.defineComposite("here", 0, 1, lit(Cell(AddrHere)), call("@"))
	vm.defineComposite(",", 1, 0,
		call("here"), call("!"),
		call("here"), lit(1), call("+"), lit(Cell(AddrHere)), call("!"))
	vm.defineComposite("allot", 1, 0,
		call("here"), call("+"), lit(Cell(AddrHere)), call("!"))
}

// definePrimitive wires a dictionary entry directly to one opcode: the word's
// code field is DOCOL, the address of that opcode's bank entry, and the
// shared DOSEM address. This is the uniform indirection spec.md section 4.3
// describes, so primitives and colon-defined words dispatch identically.
func (vm *VM) definePrimitive(name string, op int, inputs, outputs int) *word {
	m := vm.mem
	addr := m.Compile(Cell(opDOCOL))
	m.Compile(Cell(vm.primAddr[op]))
	m.Compile(Cell(vm.dosemAt))
	w := vm.dict.create(name, addr, inputs, outputs)
	m.setLatest(addr)
	return w
}

// defineComposite compiles a DOCOL-headed body out of previously defined
// words and literals, the same shape the outer interpreter's colon
// compilation produces. It is used for built-ins (state, here, `,`, allot)
// that are easiest to express in terms of already-bootstrapped primitives.
func (vm *VM) defineComposite(name string, inputs, outputs int, body ...bodyTok) *word {
	m := vm.mem
	addr := m.Compile(Cell(opDOCOL))
	for _, t := range body {
		if t.lit {
			m.Compile(Cell(vm.primAddr[opDOLIT]))
			m.Compile(t.value)
			continue
		}
		w := vm.dict.lookup(t.name)
		if w == nil {
			vm.halt("bootstrap: undefined word " + t.name)
		}
		m.Compile(Cell(w.addr))
	}
	m.Compile(Cell(vm.dosemAt))
	w := vm.dict.create(name, addr, inputs, outputs)
	m.setLatest(addr)
	return w
}

// openColon begins a new colon definition: it creates the dictionary entry
// at the current HERE and compiles its DOCOL cell, leaving HERE pointing at
// the first body cell. The caller (the outer interpreter) is responsible
// for the STATE transition to COMPILE.
func (vm *VM) openColon(name string) *word {
	m := vm.mem
	addr := m.Compile(Cell(opDOCOL))
	w := vm.dict.create(name, addr, 0, 0)
	m.setLatest(addr)
	return w
}

// compileLiteral appends a DOLIT reference and its value to the body
// currently being compiled, and accounts for it in the definition's
// declared output arity per spec.md section 4.3.
func (vm *VM) compileLiteral(v Cell) {
	m := vm.mem
	m.Compile(Cell(vm.primAddr[opDOLIT]))
	m.Compile(v)
	if w := vm.dict.latest; w != nil {
		w.outputs++
	}
}

// compileCall appends a reference to an already-defined word's code field.
func (vm *VM) compileCall(w *word) {
	vm.mem.Compile(Cell(w.addr))
}

// closeColon appends the shared DOSEM terminator, ending the definition
// currently under compilation.
func (vm *VM) closeColon() {
	vm.mem.Compile(Cell(vm.dosemAt))
}
