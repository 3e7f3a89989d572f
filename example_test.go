// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package stimuli_test

import (
	"fmt"

	"github.com/db47h/stimuli"
)

func ExampleEnumerate() {
	err := stimuli.Enumerate([]string{"a", "b", "c"}, func(f *stimuli.Frame) error {
		fmt.Print(f.Index, ":")
		for _, a := range f.Assignments {
			fmt.Print(" ", a.Name, "=", a.Literal())
		}
		fmt.Println()
		return nil
	})
	if err != nil {
		panic(err)
	}

	// Output:
	// 0: a='0' b='0' c='0'
	// 1: a='1'
	// 2: a='0' b='1'
	// 3: a='1'
	// 4: a='0' b='0' c='1'
	// 5: a='1'
	// 6: a='0' b='1'
	// 7: a='1'
}

func ExampleExpandNames() {
	names, err := stimuli.ExpandNames([]string{"rst", "d[2]", "sel[3..1]"})
	if err != nil {
		panic(err)
	}
	fmt.Println(names)

	// Output:
	// [rst d(0) d(1) sel(3) sel(2) sel(1)]
}
