package main

import (
	"os"

	"github.com/curved-dex/curved/cmd/curved/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
