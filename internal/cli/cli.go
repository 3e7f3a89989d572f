// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the stimgen command line.
package cli

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/db47h/stimuli"
	"github.com/pkg/errors"
)

// Process exit codes.
const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitInvalidInvocation = 2
)

// DefaultExt is appended to the output name when no -ext flag is given.
const DefaultExt = ".vhdl"

// Invocation is a parsed command line.
type Invocation struct {
	Output  string // output file path, extension included
	Delay   string
	Names   []string // expanded stimulus names
	Lang    stimuli.Lang
	Process string
	Verbose bool
}

// InvocationError is returned by ParseInvocation on bad usage.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...interface{}) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// Usage returns the usage message for the named program.
func Usage(prog string) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "usage: %s [flags] <output name> <delay> <stimulus 1> [<stimulus 2> ...]\n", prog)
	fs := newFlagSet(prog, new(invocationFlags))
	fs.SetOutput(&b)
	fs.PrintDefaults()
	return b.String()
}

type invocationFlags struct {
	lang    string
	ext     string
	process string
	verbose bool
}

func newFlagSet(prog string, f *invocationFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.lang, "lang", "nl", "header comment language (nl or en)")
	fs.StringVar(&f.ext, "ext", DefaultExt, "extension appended to the output name")
	fs.StringVar(&f.process, "process", stimuli.DefaultProcess, "label of the generated process")
	fs.BoolVar(&f.verbose, "v", false, "log every generated combination")
	return fs
}

// ParseInvocation parses the command line arguments, program name excluded.
func ParseInvocation(prog string, args []string) (Invocation, error) {
	var f invocationFlags
	fs := newFlagSet(prog, &f)
	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v\n%s", err, Usage(prog))
	}
	pos := fs.Args()
	if len(pos) < 3 {
		return Invocation{}, invalidInvocationf("%s", Usage(prog))
	}
	lang, err := stimuli.ParseLang(f.lang)
	if err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if pos[0] == "" {
		return Invocation{}, invalidInvocationf("empty output name")
	}
	if pos[1] == "" {
		return Invocation{}, invalidInvocationf("empty delay")
	}
	names, err := stimuli.ExpandNames(pos[2:])
	if err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if len(names) > stimuli.MaxStimuli {
		return Invocation{}, invalidInvocationf("%d stimuli given: %v", len(names), stimuli.ErrTooManyStimuli)
	}
	return Invocation{
		Output:  pos[0] + f.ext,
		Delay:   pos[1],
		Names:   names,
		Lang:    lang,
		Process: f.process,
		Verbose: f.verbose,
	}, nil
}

// Run truncates or creates the output file and writes the stimulus script to
// it. On failure, a partially written file is left behind.
func Run(inv Invocation, logger *log.Logger) (err error) {
	out, err := os.Create(inv.Output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()

	opts := stimuli.Options{
		Delay:   inv.Delay,
		Lang:    inv.Lang,
		Process: inv.Process,
	}
	if inv.Verbose && logger != nil {
		opts.Progress = func(i uint64) {
			logger.Printf("combination %d", i)
		}
	}
	if err = stimuli.Generate(out, inv.Names, opts); err != nil {
		return errors.Wrap(err, inv.Output)
	}
	if logger != nil {
		logger.Printf("%d combinations of %d stimuli written to %s", stimuli.Frames(len(inv.Names)), len(inv.Names), inv.Output)
	}
	return nil
}
