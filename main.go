package main

import (
	"os"

	"github.com/pdxmph/contacts-board/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
