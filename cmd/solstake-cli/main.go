package main

import (
	"os"

	"github.com/portfoliofull/solstake/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
