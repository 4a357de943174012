package main

import (
	"os"

	"github.com/msto63/dynstr/cmd/dynstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
