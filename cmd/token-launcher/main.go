package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/altuslabsxyz/token-launcher/cmd/token-launcher/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
