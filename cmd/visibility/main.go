package main

import (
	"os"

	"github.com/go-drift/visibility/cmd/visibility/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
