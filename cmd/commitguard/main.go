package main

import (
	"os"

	"github.com/dshills/commitguard/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
