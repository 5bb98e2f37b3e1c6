// Binary chaf filters text streams with boolean queries.
package main

import (
	"context"
	"os"

	"github.com/fatih/color"
)

func main() {
	// Output is usually piped, so colors are decided by stderr.
	color.NoColor = colorDisabled(os.Stderr)

	root := rootCmd(!color.NoColor)
	if err := root.ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
