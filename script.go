// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package stimuli

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultProcess is the default label of the generated VHDL process.
const DefaultProcess = "signal_generator"

// Lang selects the language of the script header comment.
type Lang int

// Supported header languages.
const (
	Dutch Lang = iota
	English
)

// ParseLang returns the Lang for a language code ("nl" or "en").
func ParseLang(code string) (Lang, error) {
	switch code {
	case "nl":
		return Dutch, nil
	case "en":
		return English, nil
	}
	return Dutch, errors.Errorf("unsupported language %q", code)
}

// String returns the language code of l.
func (l Lang) String() string {
	switch l {
	case Dutch:
		return "nl"
	case English:
		return "en"
	}
	return "Lang(" + strconv.Itoa(int(l)) + ")"
}

type header struct {
	comment string
	hint    string
}

var headers = map[Lang]header{
	Dutch:   {"gebruik dit als eigen declaratie", "tijd(standaard 50 ns)"},
	English: {"use this as your own declaration", "time(default 50 ns)"},
}

// Options control script generation.
type Options struct {
	// Delay is inserted verbatim after every "wait for". Required.
	Delay string
	// Header comment language. Defaults to Dutch.
	Lang Lang
	// Process label. Defaults to DefaultProcess.
	Process string
	// If not nil, Progress is called with the frame index after each frame
	// has been written.
	Progress func(index uint64)
}

// Generate writes a complete stimulus process for the given stimulus names
// to w. All output goes through a single buffered writer that is flushed
// before returning. The first write error aborts generation.
func Generate(w io.Writer, names []string, opts Options) error {
	if opts.Delay == "" {
		return errors.New("empty delay")
	}
	if len(names) > MaxStimuli {
		return ErrTooManyStimuli
	}
	h, ok := headers[opts.Lang]
	if !ok {
		return errors.Errorf("unsupported language %v", opts.Lang)
	}
	process := opts.Process
	if process == "" {
		process = DefaultProcess
	}

	sw := &scriptWriter{w: bufio.NewWriter(w)}
	sw.line("--")
	sw.line("--  ", h.comment)
	sw.line("--  constant ", opts.Delay, " : time := ", h.hint, ";")
	sw.line("--")
	sw.line()
	sw.line()
	sw.line(process, ": process is")
	sw.line("begin")
	if sw.err != nil {
		return errors.Wrap(sw.err, "write header")
	}

	err := Enumerate(names, func(f *Frame) error {
		for _, a := range f.Assignments {
			sw.line("  ", a.Name, " <= ", a.Literal(), ";")
		}
		sw.line("  wait for ", opts.Delay, ";")
		if sw.err != nil {
			return errors.Wrapf(sw.err, "write frame %d", f.Index)
		}
		if opts.Progress != nil {
			opts.Progress(f.Index)
		}
		return nil
	})
	if err != nil {
		return err
	}

	sw.line("  wait;")
	sw.line("end process ", process, ";")
	if sw.err == nil {
		sw.err = sw.w.Flush()
	}
	return errors.Wrap(sw.err, "write trailer")
}

// scriptWriter keeps the first write error so that callers can check once per
// group of lines.
type scriptWriter struct {
	w   *bufio.Writer
	err error
}

func (sw *scriptWriter) line(parts ...string) {
	if sw.err != nil {
		return
	}
	for _, p := range parts {
		if _, sw.err = sw.w.WriteString(p); sw.err != nil {
			return
		}
	}
	sw.err = sw.w.WriteByte('\n')
}
