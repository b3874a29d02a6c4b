// Command aigopt runs the logic-optimization passes over a network read
// from disk and writes the optimized network, decision log and
// embedding-export files back out.
package main

import "github.com/katalvlaran/aigopt/cmd/aigopt/cmd"

func main() {
	cmd.Execute()
}
