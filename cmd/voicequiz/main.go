package main

import (
	"os"

	"github.com/saulo-duarte/voicequiz/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
