package main

import (
	"os"

	"github.com/2210030429cse-tech/learningplatform/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
