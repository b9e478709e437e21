package main

import (
	"os"

	"github.com/ppiankov/verbosity/internal/commands"
	"github.com/ppiankov/verbosity/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	logging.InitGlobalStuff()

	if err := commands.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
