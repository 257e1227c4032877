// Command pathtrace runs simulation scenarios headlessly and prints the
// positions of their paths. It also exposes the root solver and polynomial
// calculus for inspection.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
