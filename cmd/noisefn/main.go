// Package main provides the noisefn CLI, which samples a fixed demo noise tree
// over a grid and prints the result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
