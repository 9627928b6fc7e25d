package main

import (
	"os"

	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintErr("Error: %v", err)
		os.Exit(1)
	}
}
