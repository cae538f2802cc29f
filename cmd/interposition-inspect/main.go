// Command interposition-inspect is a small developer tool for poking at
// a cassette file on disk. It carries no core semantics of its own: it
// loads a cassette through the reference filestore and prints a summary.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("interposition-inspect failed")
		os.Exit(1)
	}
}
