// Command lwwgraph runs an LWW-Element-Graph replica node and works with
// snapshot files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lwwgraph:", err)
		os.Exit(1)
	}
}
