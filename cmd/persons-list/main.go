// main is the entry point of the persons-list example driver.
//
// SEQUENCE:
//  1. Load configuration (optional; defaults apply when none is given)
//  2. Initialise the logger on standard error
//  3. Build a list of three people and print it
//  4. Remove the first person and print again
//  5. Append a new person and print a third time
//  6. Destroy the list
//
// RUNNING:
//
//	go run ./cmd/persons-list
//
// or, with JSON output:
//
//	OUTPUT_FORMAT=json go run ./cmd/persons-list
package main

import (
	"fmt"
	"os"
)

func main() {
	// run takes the process fundamentals as arguments so it can be tested
	// without touching the real command line, environment or streams.
	if err := run(os.Args, os.Getenv, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
