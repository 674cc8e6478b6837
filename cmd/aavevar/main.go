package main

import (
	"os"

	"aavevar/cmd"

	_ "github.com/lib/pq"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
