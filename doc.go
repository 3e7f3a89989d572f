// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package stimuli generates exhaustive stimulus scripts for VHDL testbenches.

Given N input signals, it walks every combination of their values under plain
binary counting and, for each combination, assigns only the signals that
changed since the previous one, followed by a fixed wait:

	signal_generator: process is
	begin
	  a <= '0';
	  b <= '0';
	  wait for 10 ns;
	  a <= '1';
	  wait for 10 ns;
	  ...
	  wait;
	end process signal_generator;

Signal i follows bit i of the counter, so signal 0 toggles on every frame and
signal i every 2^i frames. Several signals may change in the same frame when a
carry ripples through, e.g. going from 3 to 4.

The generated process is meant to be pasted into a testbench such as the ones
produced by Wim Dolman's testbench generator.
*/
package stimuli
