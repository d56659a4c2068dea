// Command jsonmendfmt exposes the jsonmend recovery operations as a CLI:
// one subcommand per public operation, reading from stdin or the file named
// by --file and writing the recovered result to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/nwalsh/jsonmend/cmd/jsonmendfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
