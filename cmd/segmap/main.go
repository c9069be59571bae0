// Command segmap is the CLI entry point for the segmap toolkit.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/segmap/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
