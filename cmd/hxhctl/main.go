package main

import (
	"os"

	"github.com/dom/hxh-catalog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
