// Command meowindc is the compiler front-end driver of spec section 6: it
// reads one source file, runs the lexer and parser in sequence, and prints
// whichever stage's diagnostics are non-empty before exiting.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	if err := newRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}
