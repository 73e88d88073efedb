package main

import (
	"os"

	"github.com/bianoble/ff-fonts/cmd/ff-fonts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
