// Package main provides the strbuf text inspection tool.
//
// Usage:
//
//	strbuf <command> [args]
//
// Commands:
//
//	escape   - rewrite input with C-style backslash escapes
//	unescape - decode C-style backslash escapes
//	runes    - list the code points of the input with sequence lengths
//	pack     - pack decimal integers as big-endian bytes, hex encoded
//
// Input is taken from the arguments, or from stdin when none are
// given.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
