package main

import (
	"fmt"
	"os"
)

const usage = "64th [-d <cells>]"

// parseArgs implements the CLI's exact flag contract by hand, rather than
// through the flag package, since the required diagnostics and exit codes
// don't match what flag produces: -h prints the usage line and exits 0; -d
// takes a positive decimal cell count; -- ends flag parsing; anything else
// starting with '-' is reported and is a hard CLI-usage failure.
func parseArgs(args []string) (dataSize int, exitCode int, done bool) {
	dataSize = DefaultDataSize

	i := 0
	for i < len(args) {
		arg := args[i]

		if arg == "--" {
			i++
			break
		}
		if arg == "-h" {
			fmt.Println(usage)
			return 0, 0, true
		}
		if arg == "-d" {
			i++
			if i >= len(args) {
				return badOption("-d")
			}
			n, ok := parseNumber(args[i])
			if !ok || int64(n) <= 0 {
				return badOption("-d")
			}
			dataSize = int(n)
			i++
			continue
		}
		if len(arg) > 0 && arg[0] == '-' {
			return badOption(arg)
		}
		break
	}
	return dataSize, 0, false
}

// badOption reports only the single offending flag character, e.g. "-xyz"
// is reported as '-x', matching the reference CLI's OPT_FLAG behavior.
func badOption(arg string) (int, int, bool) {
	c := byte('-')
	if len(arg) > 1 {
		c = arg[1]
	}
	fmt.Fprintf(os.Stderr, "Invalid option '-%c'\n", c)
	fmt.Fprintln(os.Stderr, usage)
	return 0, 1, true
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	dataSize, exitCode, done := parseArgs(args)
	if done {
		return exitCode
	}

	vm := New(
		WithDataSize(dataSize),
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
	)
	if err := vm.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	return 0
}
