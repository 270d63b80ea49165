// Command mapgen renders the interactive economic map from the pipeline output.
package main

import (
	"os"

	"econmap/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteMapgen())
}
