package main

import (
	"os"

	"cinegrip/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
