package main

import (
	"os"

	"github.com/fweiner/parrotsoftware-treatment-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
