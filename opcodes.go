package main

// Opcode values, compiled into the code field of every primitive and
// dispatched on the code field of every colon-defined word's DOCOL entry.
// Order matches the reference VM's enum exactly.
const (
	opNEXT = iota
	opDOCOL
	opDOSEM
	opDOLIT
	opPRINT
	opLOAD
	opSTORE
	opDROP
	opSWAP
	opDUP
	opOVER
	opROT
	opPUSH
	opPULL
	opNOT
	opAND
	opOR
	opXOR
	opADD
	opSUB
	opMUL
	opDIV
	opLSH
	opRSH
	opEQ
	opLT

	opMax
)

var opcodeNames = [opMax]string{
	opNEXT:  "NEXT",
	opDOCOL: "DOCOL",
	opDOSEM: "DOSEM",
	opDOLIT: "DOLIT",
	opPRINT: "PRINT",
	opLOAD:  "LOAD",
	opSTORE: "STORE",
	opDROP:  "DROP",
	opSWAP:  "SWAP",
	opDUP:   "DUP",
	opOVER:  "OVER",
	opROT:   "ROT",
	opPUSH:  "PUSH",
	opPULL:  "PULL",
	opNOT:   "NOT",
	opAND:   "AND",
	opOR:    "OR",
	opXOR:   "XOR",
	opADD:   "ADD",
	opSUB:   "SUB",
	opMUL:   "MUL",
	opDIV:   "DIV",
	opLSH:   "LSH",
	opRSH:   "RSH",
	opEQ:    "EQ",
	opLT:    "LT",
}
