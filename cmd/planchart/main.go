package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"planchart/cmd/planchart/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
