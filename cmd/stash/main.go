package main

import (
	"os"

	"github.com/MrSnakeDoc/stash/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
