package main

import (
	"os"

	"device-compare/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
