package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/stimuli/internal/cli"
	"github.com/pkg/errors"
)

func main() {
	prog := filepath.Base(os.Args[0])
	logger := log.New(os.Stderr, prog+": ", 0)

	inv, err := cli.ParseInvocation(prog, os.Args[1:])
	if err != nil {
		if e, ok := errors.Cause(err).(*cli.InvocationError); ok {
			fmt.Fprintln(os.Stderr, strings.TrimRight(e.Message, "\n"))
			os.Exit(e.ExitCode)
		}
		logger.Print(err)
		os.Exit(cli.ExitFailure)
	}

	if err = cli.Run(inv, logger); err != nil {
		logger.Print(err)
		os.Exit(cli.ExitFailure)
	}
}
