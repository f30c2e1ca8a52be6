/*
Ansibox renders markup files as aligned, bordered boxes on the terminal.

	ansibox render --border rounded --align center motd.txt news.txt
	ansibox borders

Configuration is read from $XDG_CONFIG_HOME/ansibox/config.toml or from a
file given with --config.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
