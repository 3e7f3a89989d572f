// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package stimuli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BusPinName returns the VHDL name of element i of the given bus: bus(i).
func BusPinName(bus string, i int) string {
	return bus + "(" + strconv.Itoa(i) + ")"
}

// ExpandNames expands bus declarations in stimulus names to individual
// element names and checks that the resulting names are distinct.
//
// A bus is declared either with its width or with an index range. Ranges are
// expanded in the order they are written:
//
//	ExpandNames([]string{"sel", "d[2]"})  // []string{"sel", "d(0)", "d(1)"}
//	ExpandNames([]string{"q[3..1]"})      // []string{"q(3)", "q(2)", "q(1)"}
//
// Names are otherwise passed through untouched.
func ExpandNames(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		names, err := expandBus(arg)
		if err != nil {
			return nil, errors.Wrap(err, "expand "+strconv.Quote(arg))
		}
		for _, n := range names {
			if seen[n] {
				return nil, errors.Errorf("duplicate stimulus name %q", n)
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out, nil
}

func expandBus(name string) ([]string, error) {
	if name == "" {
		return nil, errors.New("empty stimulus name")
	}
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	if !strings.HasSuffix(n, "]") {
		return nil, errors.New("no terminating ] in bus declaration")
	}
	n = n[:len(n)-1]

	i = strings.Index(n, "..")
	if i < 0 {
		width, err := strconv.Atoi(n)
		if err != nil {
			return nil, errors.Wrap(err, "bus width")
		}
		if width <= 0 || width > MaxStimuli {
			return nil, errors.Errorf("invalid bus width %d", width)
		}
		return busRange(bus, 0, width-1), nil
	}

	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrap(err, "bus range start")
	}
	end, err := strconv.Atoi(n[i+2:])
	if err != nil {
		return nil, errors.Wrap(err, "bus range end")
	}
	if start < 0 || end < 0 {
		return nil, errors.Errorf("negative index in bus range %d..%d", start, end)
	}
	if d := end - start; d >= MaxStimuli || -d >= MaxStimuli {
		return nil, errors.Errorf("bus range %d..%d too wide", start, end)
	}
	return busRange(bus, start, end), nil
}

func busRange(bus string, start, end int) []string {
	step := 1
	if end < start {
		step = -1
	}
	r := make([]string, 0, (end-start)*step+1)
	for i := start; ; i += step {
		r = append(r, BusPinName(bus, i))
		if i == end {
			break
		}
	}
	return r
}
