// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package stimtest provides utility functions for testing generated stimulus
// scripts.
package stimtest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/db47h/stimuli"
	"github.com/pkg/errors"
)

// A Trace is a stimulus script read back by Parse.
type Trace struct {
	// Delay found in the header comment.
	Delay string
	// Process label.
	Process string
	// Frames holds the value of every stimulus assigned so far, at each
	// "wait for" statement.
	Frames []map[string]bool
	// Changes holds the names assigned in each frame, in script order.
	Changes [][]string
	// Terminated is set once the final unconditional wait has been seen.
	Terminated bool
}

// Parse reads a script produced by stimuli.Generate.
func Parse(r io.Reader) (*Trace, error) {
	var (
		tr      Trace
		state   = make(map[string]bool)
		changes []string
		ln      int
		ended   bool
	)
	s := bufio.NewScanner(r)
	for s.Scan() {
		ln++
		line := s.Text()
		if ended {
			if line != "" {
				return nil, errors.Errorf("line %d: %q after end of process", ln, line)
			}
			continue
		}
		switch {
		case line == "" || line == "begin":
		case strings.HasPrefix(line, "--"):
			if d, ok := headerDelay(line); ok {
				tr.Delay = d
			}
		case strings.HasSuffix(line, ": process is"):
			tr.Process = strings.TrimSuffix(line, ": process is")
		case strings.HasPrefix(line, "end process "):
			if !tr.Terminated {
				return nil, errors.Errorf("line %d: end of process without final wait", ln)
			}
			if p := strings.TrimSuffix(strings.TrimPrefix(line, "end process "), ";"); p != tr.Process {
				return nil, errors.Errorf("line %d: end of process %q, expected %q", ln, p, tr.Process)
			}
			ended = true
		case tr.Terminated:
			return nil, errors.Errorf("line %d: %q after final wait", ln, line)
		case line == "  wait;":
			tr.Terminated = true
		case strings.HasPrefix(line, "  wait for "):
			d := strings.TrimSuffix(strings.TrimPrefix(line, "  wait for "), ";")
			if d != tr.Delay {
				return nil, errors.Errorf("line %d: wait for %q, expected %q", ln, d, tr.Delay)
			}
			snap := make(map[string]bool, len(state))
			for k, v := range state {
				snap[k] = v
			}
			tr.Frames = append(tr.Frames, snap)
			tr.Changes = append(tr.Changes, changes)
			changes = nil
		default:
			name, v, err := parseAssignment(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", ln)
			}
			state[name] = v
			changes = append(changes, name)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	if len(changes) > 0 {
		return nil, errors.Errorf("assignments to %v not followed by a wait", changes)
	}
	return &tr, nil
}

// headerDelay extracts the delay from a "constant <delay> : time := ..." comment.
func headerDelay(line string) (string, bool) {
	const prefix = "--  constant "
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	line = line[len(prefix):]
	i := strings.Index(line, " : time := ")
	if i < 0 {
		return "", false
	}
	return line[:i], true
}

func parseAssignment(line string) (string, bool, error) {
	if !strings.HasPrefix(line, "  ") {
		return "", false, errors.Errorf("unexpected %q", line)
	}
	i := strings.Index(line, " <= ")
	if i < 0 {
		return "", false, errors.Errorf("unexpected %q", line)
	}
	name := strings.TrimSpace(line[:i])
	switch line[i+4:] {
	case "'0';":
		return name, false, nil
	case "'1';":
		return name, true, nil
	}
	return "", false, errors.Errorf("invalid assignment %q", line)
}

// CheckExhaustive checks that tr walks through every combination of the given
// stimuli in binary counting order and ends with a final wait.
func CheckExhaustive(t testing.TB, names []string, tr *Trace) {
	t.Helper()

	if !tr.Terminated {
		t.Error("missing final wait")
	}
	exp := stimuli.Frames(len(names))
	if len(names) == 0 {
		exp = 0
	}
	if uint64(len(tr.Frames)) != exp {
		t.Fatalf("got %d frames, expected %d", len(tr.Frames), exp)
	}

	errString := func(k int, name string, ex, got bool) string {
		var b strings.Builder
		for i, n := range names {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n)
			b.WriteRune('=')
			if k&(1<<uint(i)) != 0 {
				b.WriteRune('1')
			} else {
				b.WriteRune('0')
			}
		}
		return fmt.Sprintf("\nframe %d: expected %s => %s=%v\nGot %v", k, b.String(), name, ex, got)
	}

	for k, f := range tr.Frames {
		if len(f) != len(names) {
			t.Fatalf("frame %d: %d stimuli assigned, expected %d", k, len(f), len(names))
		}
		for i, n := range names {
			ex := k&(1<<uint(i)) != 0
			got, ok := f[n]
			if !ok || got != ex {
				t.Fatal(errString(k, n, ex, got))
			}
		}
	}
}
