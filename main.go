package main

import (
	"os"

	"github.com/sohandillikar/statue-confirmation-component/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
