// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package stimuli

import (
	"github.com/pkg/errors"
)

// MaxStimuli is the maximum number of stimuli that can be enumerated. Bit
// MaxStimuli of the 64 bits counter marks the end of the enumeration.
const MaxStimuli = 63

// ErrTooManyStimuli is returned by Enumerate and Generate when more than
// MaxStimuli names are given.
var ErrTooManyStimuli = errors.Errorf("too many stimuli (max %d)", MaxStimuli)

// An Assignment sets a stimulus to a new value.
type Assignment struct {
	Name  string
	Value bool
}

// Literal returns the single bit VHDL literal for a's value: '0' or '1'.
func (a Assignment) Literal() string {
	if a.Value {
		return "'1'"
	}
	return "'0'"
}

// A Frame is one combination of stimulus values. Assignments lists the
// stimuli that changed since the previous frame, in bit order.
type Frame struct {
	Index       uint64
	Assignments []Assignment
}

// Changed reports whether bit flips when counting from binary-1 to binary.
//
// For binary == 0, binary-1 wraps around to all ones, so every bit that is
// clear in binary reports as changed.
func Changed(binary uint64, bit uint) bool {
	return binary&(1<<bit) != (binary-1)&(1<<bit)
}

// Done reports whether the enumeration of n stimuli is over, that is whether
// bit n of binary is set.
func Done(binary uint64, n int) bool {
	return binary&(1<<uint(n)) != 0
}

// Frames returns the number of frames generated for n stimuli.
func Frames(n int) uint64 {
	return 1 << uint(n)
}

// Enumerate calls fn for every combination of values of the given stimuli, in
// binary counting order. The first frame assigns every stimulus to '0'. The
// following frames only assign the stimuli whose bit changed.
//
// The Frame passed to fn is reused between calls and must not be retained.
// Enumeration stops at the first error returned by fn.
//
// No frames are generated for an empty names list.
func Enumerate(names []string, fn func(f *Frame) error) error {
	n := len(names)
	if n > MaxStimuli {
		return ErrTooManyStimuli
	}
	if n == 0 {
		return nil
	}

	f := &Frame{Assignments: make([]Assignment, 0, n)}

	// initial state: declare everything
	for _, name := range names {
		f.Assignments = append(f.Assignments, Assignment{Name: name})
	}
	if err := fn(f); err != nil {
		return err
	}

	for binary := uint64(1); !Done(binary, n); binary++ {
		f.Index = binary
		f.Assignments = f.Assignments[:0]
		for i, name := range names {
			if Changed(binary, uint(i)) {
				f.Assignments = append(f.Assignments, Assignment{name, binary&(1<<uint(i)) != 0})
			}
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}
