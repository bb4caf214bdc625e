package main

import (
	"os"

	"github.com/msto63/mink/cmd/mink/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
