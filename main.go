// Command econmap joins GDP and inflation data into the economic dataset.
package main

import (
	"os"

	"econmap/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
