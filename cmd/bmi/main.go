package main

import (
	"fmt"
	"os"

	"github.com/danielhkuo/quickly-bmi/cmd/bmi/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
