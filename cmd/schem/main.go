package main

import (
	"os"

	"github.com/bnema/voxel-schematics/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
