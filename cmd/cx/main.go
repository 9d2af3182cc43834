package main

import (
	"fmt"
	"os"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/cmd/cx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
