package main

import "io"

// maxTokenBytes bounds a single token per spec.md section 6: tokens longer
// than this are truncated at the boundary, and the remainder is read as a
// separate token rather than being discarded. The cut is made after the
// rune that brings the token to this many bytes or more; a multi-byte rune
// straddling the boundary is kept whole, so such a token can run up to 3
// bytes over.
const maxTokenBytes = 255

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v':
		return true
	}
	return false
}

// parseNumber implements the strict redesign from spec.md section 9: a
// token is numeric iff it is entirely an optionally-signed run of decimal
// digits. Anything else -- "12abc", a bare sign, an empty token -- falls
// through to dictionary lookup instead.
func parseNumber(tok string) (Cell, bool) {
	if tok == "" {
		return 0, false
	}
	i := 0
	neg := false
	if tok[0] == '+' || tok[0] == '-' {
		neg = tok[0] == '-'
		i++
	}
	if i == len(tok) {
		return 0, false
	}
	var mag uint64
	for ; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		mag = mag*10 + uint64(c-'0')
	}
	v := Cell(mag)
	if neg {
		v = -v
	}
	return v, true
}

// readToken reads one whitespace-delimited token from vm.in, skipping
// leading whitespace. It returns io.EOF once no further token is available.
// Every rune read is preceded by a flush of vm.out, so PRINT output already
// queued in its buffer reaches the user before the read can block -- the
// same ordering the teacher's own readRune enforces.
func (vm *VM) readToken() (string, error) {
	var buf []byte
	for {
		if vm.out != nil {
			vm.out.Flush()
		}
		r, _, err := vm.in.ReadRune()
		if err != nil {
			if len(buf) > 0 {
				return string(buf), nil
			}
			return "", err
		}
		if isSpace(r) {
			if len(buf) > 0 {
				return string(buf), nil
			}
			continue
		}
		buf = append(buf, string(r)...)
		if len(buf) >= maxTokenBytes {
			return string(buf), nil
		}
	}
}

// printPrompt writes the STATE-appropriate prompt, un-decorated and without
// a forced trailing newline, so a following terminal echo lands on the same
// line.
func (vm *VM) printPrompt() {
	if vm.promptOut == nil {
		return
	}
	if vm.mem.State() == stateInteractive {
		io.WriteString(vm.promptOut, "ok> ")
	} else {
		io.WriteString(vm.promptOut, "..> ")
	}
}

// repl runs the outer interpreter to completion: it tokenizes standard
// input and drives the STATE machine until EOF. It returns nil on a clean
// EOF; a hard invariant violation propagates as a panic (see halt), not a
// returned error, which is converted further up by Run.
func (vm *VM) repl() error {
	for {
		if vm.in.AtLineStart() {
			vm.printPrompt()
		}
		tok, err := vm.readToken()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		vm.handleToken(tok)
	}
}

func (vm *VM) handleToken(tok string) {
	switch vm.mem.State() {
	case stateInteractive:
		vm.interactiveToken(tok)
	case stateColon:
		vm.colonNameToken(tok)
	case stateCompile:
		vm.compileToken(tok)
	}
}

func (vm *VM) interactiveToken(tok string) {
	if tok == ":" {
		vm.mem.setState(stateColon)
		return
	}
	if v, ok := parseNumber(tok); ok {
		vm.pushLiteral(v)
		return
	}
	w := vm.dict.lookup(tok)
	if w == nil {
		vm.diagf("%s not found", tok)
		return
	}
	if vm.mem.Underflow(uint(w.inputs)) {
		vm.diagf("%s requires %d inputs", tok, w.inputs)
		return
	}
	if err := vm.exec(w.addr); err != nil {
		vm.handleEngineError(err)
	}
}

// colonNameToken handles the single token read in STATE = COLON: it always
// names a new word, even if it is spelled ";" -- that name is only special
// while compiling a body, per spec.md section 4.5.
func (vm *VM) colonNameToken(tok string) {
	vm.openColon(tok)
	vm.mem.setState(stateCompile)
}

func (vm *VM) compileToken(tok string) {
	if tok == ";" {
		vm.closeColon()
		vm.mem.setState(stateInteractive)
		return
	}
	if v, ok := parseNumber(tok); ok {
		vm.compileLiteral(v)
		return
	}
	w := vm.dict.lookup(tok)
	if w == nil {
		vm.diagf("%s not found", tok)
		return
	}
	if w.flags&flagImmediate != 0 {
		if vm.mem.Underflow(uint(w.inputs)) {
			vm.diagf("%s requires %d inputs", tok, w.inputs)
			return
		}
		if err := vm.exec(w.addr); err != nil {
			vm.handleEngineError(err)
		}
		return
	}
	vm.compileCall(w)
}

// pushLiteral pushes a numeric token read in STATE = INTERACTIVE, treating
// an out-of-room stack the same recoverable way the engine's own DOLIT
// would.
func (vm *VM) pushLiteral(v Cell) {
	if vm.mem.Overflow(1) {
		vm.handleEngineError(ErrOverflow)
		return
	}
	vm.mem.PushParam(v)
}

// handleEngineError reports a recoverable engine condition on the
// diagnostic stream and resets the stacks, per the redesigned restart
// behavior in spec.md section 9: HERE and the dictionary are left intact.
func (vm *VM) handleEngineError(err error) {
	switch err {
	case ErrUnderflow:
		vm.diagf("stack underflow")
	case ErrOverflow:
		vm.diagf("stack overflow")
	case ErrFault:
		vm.diagf("invalid data address")
	default:
		vm.diagf("%v", err)
	}
	vm.mem.ResetStacks()
}
