package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/agenthands/mica/pkg/interp"
)

func main() {
	dumpIR := flag.Bool("dump-ir", false, "print the compiled instruction listing instead of running")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: mica [-dump-ir] <source-file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		logger.Error().Str("stage", "read").Str("file", path).Msg(err.Error())
		os.Exit(1)
	}

	if *dumpIR {
		bc, err := interp.Compile(src)
		if err != nil {
			fail(logger, err)
		}
		fmt.Print(bc.String())
		return
	}

	if err := interp.Run(src, os.Stdout); err != nil {
		fail(logger, err)
	}
}

func fail(logger zerolog.Logger, err error) {
	var stageErr *interp.Error
	if errors.As(err, &stageErr) {
		logger.Error().Str("stage", string(stageErr.Stage)).Msg(stageErr.Err.Error())
	} else {
		logger.Error().Msg(err.Error())
	}
	os.Exit(1)
}
