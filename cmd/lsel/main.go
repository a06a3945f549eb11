package main

import (
	"fmt"
	"os"

	"github.com/JackWReid/lsel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lsel: %v\n", err)
		os.Exit(1)
	}
}
