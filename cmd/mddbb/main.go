// Command mddbb runs the branch-and-bound solver against bundled example
// problems from the command line.
package main

import "github.com/katalvlaran/mddbb/cmd/mddbb/cmd"

func main() {
	cmd.Execute()
}
