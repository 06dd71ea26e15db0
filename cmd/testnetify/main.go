package main

import (
	"os"

	"github.com/likecoin/testnetify/cmd/testnetify/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
