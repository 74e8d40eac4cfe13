package main

import (
	"os"

	"github.com/Rana718/mockdb/cmd"
	"github.com/fatih/color"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("❌ %v", err)
		os.Exit(1)
	}
}
