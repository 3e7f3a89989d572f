package stimtest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/stimuli"
	"github.com/db47h/stimuli/stimtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var b bytes.Buffer
	err := stimuli.Generate(&b, []string{"a", "b", "c"}, stimuli.Options{Delay: "10 ns", Lang: stimuli.English})
	require.NoError(t, err)

	tr, err := stimtest.Parse(&b)
	require.NoError(t, err)
	assert.Equal(t, "10 ns", tr.Delay)
	assert.Equal(t, "signal_generator", tr.Process)
	assert.True(t, tr.Terminated)
	require.Len(t, tr.Frames, 8)
	assert.Equal(t, []string{"a", "b", "c"}, tr.Changes[0])
	assert.Equal(t, []string{"a", "b", "c"}, tr.Changes[4])
	assert.Equal(t, map[string]bool{"a": true, "b": false, "c": true}, tr.Frames[5])

	stimtest.CheckExhaustive(t, []string{"a", "b", "c"}, tr)
}

func TestParse_errors(t *testing.T) {
	const head = "--\n--  constant 1 ns : time := x;\n--\np: process is\nbegin\n"
	td := []struct {
		name string
		in   string
	}{
		{"garbage", head + "foo\n"},
		{"bad literal", head + "  a <= 'x';\n"},
		{"bad delay", head + "  a <= '1';\n  wait for 2 ns;\n"},
		{"after wait", head + "  wait;\n  a <= '1';\n"},
		{"double wait", head + "  wait;\n  wait;\n"},
		{"no final wait", head + "  a <= '1';\n  wait for 1 ns;\nend process p;\n"},
		{"wrong label", head + "  wait;\nend process q;\n"},
		{"after end", head + "  wait;\nend process p;\nx\n"},
		{"dangling", head + "  a <= '1';\n"},
	}
	for _, d := range td {
		_, err := stimtest.Parse(strings.NewReader(d.in))
		assert.Error(t, err, d.name)
	}
}

func TestCheckExhaustive(t *testing.T) {
	// a hand written script that counts a and b in the expected order, with
	// redundant assignments
	in := `--  constant 5 ns : time := x;
p: process is
begin
  a <= '0';
  b <= '0';
  wait for 5 ns;
  a <= '1';
  b <= '0';
  wait for 5 ns;
  a <= '0';
  b <= '1';
  wait for 5 ns;
  a <= '1';
  wait for 5 ns;
  wait;
end process p;
`
	tr, err := stimtest.Parse(strings.NewReader(in))
	require.NoError(t, err)
	stimtest.CheckExhaustive(t, []string{"a", "b"}, tr)
}
