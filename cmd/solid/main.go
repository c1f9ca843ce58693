// Command solid runs the SOLID principle demonstrations.
package main

import (
	"os"

	"github.com/mesh-intelligence/solid/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
