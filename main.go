package main

import (
	"os"

	"github.com/wordwebnav/wwn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
