// SPDX-License-Identifier: EPL-2.0

// Command ohrli compares audio files perceptually.
//
// Usage:
//
//	ohrli [flags] <command> [args]
//
// Commands:
//
//	compare   - MOS or distance between two files
//	distance  - distance between two files
//	batch     - score several files against one reference
//	mos       - convert distances to MOS
//	resample  - write a 16-bit mono WAV at a new rate
//	info      - engine constants and supported formats
//	config    - print the effective configuration
package main

import (
	"fmt"
	"os"

	"github.com/ik5/ohrli/cmd/ohrli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
