package main

import (
	"os"

	"github.com/philipgreat/timing-evaluation-nanoseconds/cmd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Logs go to stderr so the report on stdout stays parseable
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cmd.Execute()
}
