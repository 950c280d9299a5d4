package main

import (
	"os"

	"github.com/great123-artV/GradeX/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
