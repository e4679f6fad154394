// Command blscli is a thin front-end exercising the public operations of
// this module end to end: key generation, threshold splitting, signing,
// verification, threshold assembly, and proxy re-signing. It is a
// demonstration and manual-testing surface, not a network-facing service.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := CLI().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
