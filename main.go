package main

import (
	"fmt"
	"os"

	cli "go.dedis.ch/sssrecon/cmd"
)

func main() {
	command := cli.NewRootCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
