package main

import (
	"os"

	"github.com/rocketscienceinc/tictactoe-backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
