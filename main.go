package main

import (
	"os"

	"github.com/tatumgames/tatumtech/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
