package main

// word is a single dictionary entry: a name, the address of its code
// field, its declared input/output arity, an immediate flag, and a link to
// the next-older entry. Entries are prepended to the chain and never
// removed within a session, matching spec.md section 4.4.
type word struct {
	symbol  string
	addr    uint
	inputs  int
	outputs int
	flags   byte
	next    *word
}

// flagImmediate marks a word that runs immediately even while compiling a
// colon definition, rather than being compiled as a call.
const flagImmediate = 1

// dictionary is the newest-to-oldest chain of defined words, owned by the
// outer interpreter for the life of a session.
type dictionary struct {
	latest *word
}

// lookup walks the chain from the head and returns the first entry whose
// symbol matches s by exact byte equality, or nil if none does.
func (d *dictionary) lookup(s string) *word {
	for w := d.latest; w != nil; w = w.next {
		if w.symbol == s {
			return w
		}
	}
	return nil
}

// create prepends a new entry to the chain and returns it.
func (d *dictionary) create(symbol string, addr uint, inputs, outputs int) *word {
	w := &word{
		symbol:  symbol,
		addr:    addr,
		inputs:  inputs,
		outputs: outputs,
		next:    d.latest,
	}
	d.latest = w
	return w
}
