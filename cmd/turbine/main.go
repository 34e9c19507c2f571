// Command turbine is the driver binary: it loads a build file, locates
// source and archive inputs, runs the binder, and reports the result.
// Producing the syntax trees the binder consumes is someone else's job
// (a tokenizer/parser this module never implements) — see Frontend.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	c := newCLIFromArgs(args)
	return c.execute()
}

func argumentError(message string, args ...interface{}) {
	fmt.Fprint(os.Stderr, "argument error: ", fmt.Sprintf(message, args...), "\n\n")
	fmt.Fprint(os.Stderr, usage)
	os.Exit(1)
}

const usage = `Usage: turbine [flags|options] <path to build file or project directory>

Flags:
------
-h, --help      Display usage information.
-v, --version   Display the binder version.

Options:
--------
-ll, --loglevel   Set the log level. One of:
                    - "verbose" for every message (default)
                    - "warn" for errors and warnings
                    - "error" for errors only
                    - "silent" for no output
`
