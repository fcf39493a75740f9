/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command recordstore inspects the seeded entity stores from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
