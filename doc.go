/*
Package main implements 64th, a small interactive stack language in the
tradition of indirect-threaded Forth.

64th fuses three machines around one flat cell-addressable memory: a
parameter and return stack carved from its low addresses, an inner
interpreter that decodes and dispatches indirect-threaded code, and a
STATE-driven outer interpreter that tokenizes standard input and either
pushes literals, calls dictionary words through the inner interpreter, or
compiles new threaded code when a colon definition is open.

Memory is a single array of cells, allocated once at startup:

	[0, 512)     parameter stack, grows downward from 512
	[512, 1024)  return stack, grows downward from 1024
	[1024, 1027) STATE, HERE, LATEST
	[1027, N)    dictionary code and user data

Everything callable -- primitive or user-defined -- is entered through a
DOCOL code field and returns through a shared DOSEM cell, so the inner
interpreter never distinguishes primitives from colon definitions once a
word has been compiled.
*/
package main
