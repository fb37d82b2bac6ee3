package parser

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treelang/treelang/pkg/source"
	"github.com/treelang/treelang/pkg/tree"
)

// parseOneItem parses "test <value>" and returns the second item of the
// only statement.
func parseOneItem(t *testing.T, value string) (tree.Item, *source.SourceMap) {
	t.Helper()

	tr, m, err := parseText(t, fmt.Sprintf("test %s", value))
	require.NoError(t, err)
	require.Len(t, tr.Roots, 1)

	stmt, ok := tr.Roots[0].(*tree.Statement)
	require.True(t, ok)
	require.Len(t, stmt.Items, 2)
	return stmt.Items[1], m
}

func TestScan_Words(t *testing.T) {
	words := []string{
		"a", "a_b", "a-b", "$a$", "a.b", "a23", "+", "&", "/",
		// Runs that flirt with the number grammar but fail it read as
		// words; numbers never abort a parse.
		"23abc", "-23abc", "23.abc", "1.2.3", "0x10", "1_000",
		"inf", "nan", "--1", "+-2", "1e", "1e+",
		// Word runs are runes, not bytes.
		"héllo", "日本",
	}

	for _, value := range words {
		t.Run(value, func(t *testing.T) {
			item, m := parseOneItem(t, value)

			word, ok := item.(tree.Word)
			require.True(t, ok, "expected a word, got %T", item)
			assert.Equal(t, value, word.Text)
			assert.Equal(t, value, spanText(t, m, word.Span()))
		})
	}
}

func TestScan_Ints(t *testing.T) {
	cases := []struct {
		value string
		want  int64
	}{
		{"0", 0},
		{"23", 23},
		{"-0", 0},
		{"-23", -23},
		{"+7", 7},
		{"9223372036854775807", math.MaxInt64},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			item, m := parseOneItem(t, tc.value)

			num, ok := item.(tree.Int)
			require.True(t, ok, "expected an int, got %T", item)
			assert.Equal(t, tc.want, num.Value)
			assert.Equal(t, tc.value, num.Text)
			assert.Equal(t, tc.value, spanText(t, m, num.Span()))
		})
	}
}

func TestScan_Floats(t *testing.T) {
	cases := []struct {
		value string
		want  float64
	}{
		{"0.0", 0},
		{"23.0", 23},
		{"-0.0", 0},
		{"-23.0", -23},
		{"3.14", 3.14},
		{"-7.5e-2", -0.075},
		{"1e3", 1000},
		{"1E2", 100},
		{".5", 0.5},
		{"23.", 23},
		{"+1.5", 1.5},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			item, _ := parseOneItem(t, tc.value)

			num, ok := item.(tree.Float)
			require.True(t, ok, "expected a float, got %T", item)
			assert.InDelta(t, tc.want, num.Value, 1e-9)
			assert.Equal(t, tc.value, num.Text)
		})
	}
}

func TestScan_IntOverflowReadsAsFloat(t *testing.T) {
	// Beyond int64 the literal still matches the grammar, so it keeps
	// its numeric reading instead of failing or degrading to a word.
	item, _ := parseOneItem(t, "99999999999999999999")

	num, ok := item.(tree.Float)
	require.True(t, ok, "expected a float, got %T", item)
	assert.InDelta(t, 1e20, num.Value, 1e6)
}

func TestScan_ExponentOverflow(t *testing.T) {
	item, _ := parseOneItem(t, "1e999")

	num, ok := item.(tree.Float)
	require.True(t, ok, "expected a float, got %T", item)
	assert.True(t, math.IsInf(num.Value, 1))
	assert.Equal(t, "1e999", num.Text)
}

func TestScan_Groups(t *testing.T) {
	cases := []struct {
		text  string
		delim tree.Delim
		open  string
	}{
		{"test (abc def)", tree.Parens, "("},
		{"test [abc def]", tree.Brackets, "["},
		{"test {abc def}", tree.Braces, "{"},
	}

	for _, tc := range cases {
		t.Run(tc.open, func(t *testing.T) {
			tr, m, err := parseText(t, tc.text)
			require.NoError(t, err)

			stmt := tr.Roots[0].(*tree.Statement)
			group, ok := stmt.Items[1].(tree.Group)
			require.True(t, ok)
			assert.Equal(t, tc.delim, group.Delim)

			// A group's span covers its opening delimiter.
			assert.Equal(t, tc.open, spanText(t, m, group.Span()))

			require.Len(t, group.Items, 2)
			assert.Equal(t, "abc", group.Items[0].(tree.Word).Text)
			assert.Equal(t, "def", group.Items[1].(tree.Word).Text)
		})
	}
}

func TestScan_EmptyGroup(t *testing.T) {
	for _, text := range []string{"test ()", "test []", "test {}"} {
		tr, _, err := parseText(t, text)
		require.NoError(t, err)

		stmt := tr.Roots[0].(*tree.Statement)
		group := stmt.Items[1].(tree.Group)
		assert.Empty(t, group.Items)
	}
}

func TestScan_NestedGroups(t *testing.T) {
	tr, _, err := parseText(t, "test (a [b {c}] 2.5)")
	require.NoError(t, err)

	stmt := tr.Roots[0].(*tree.Statement)
	outer := stmt.Items[1].(tree.Group)
	require.Len(t, outer.Items, 3)

	brackets := outer.Items[1].(tree.Group)
	assert.Equal(t, tree.Brackets, brackets.Delim)
	require.Len(t, brackets.Items, 2)

	braces := brackets.Items[1].(tree.Group)
	assert.Equal(t, tree.Braces, braces.Delim)

	assert.InDelta(t, 2.5, outer.Items[2].(tree.Float).Value, 1e-9)
}

func TestScan_UnterminatedGroup(t *testing.T) {
	cases := []struct {
		text    string
		missing byte
	}{
		{"test (abc", ')'},
		{"test [", ']'},
		{"test {", '}'},
		// A comment ends the line while the group is open.
		{"test (abc ;note", ')'},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			_, m, err := parseText(t, tc.text)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, ErrUnterminatedGroup, perr.Kind)
			assert.Equal(t, tc.missing, perr.Delim)
			// The error points back at the opening delimiter.
			assert.Equal(t, string(tc.text[5]), spanText(t, m, perr.Span))
		})
	}
}

func TestScan_MismatchedDelimiter(t *testing.T) {
	cases := []struct {
		text string
		char byte
	}{
		{"test )", ')'},
		{"test ]", ']'},
		{"test }", '}'},
		// The wrong closer inside an open group.
		{"test (abc]", ']'},
		{"test [x)", ')'},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			_, _, err := parseText(t, tc.text)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, ErrMismatchedDelimiter, perr.Kind)
			assert.Equal(t, tc.char, perr.Delim)
		})
	}
}

func TestScanNumeric(t *testing.T) {
	cases := []struct {
		s        string
		numeric  bool
		integral bool
	}{
		{"0", true, true},
		{"-23", true, true},
		{"+23", true, true},
		{"2.5", true, false},
		{"23.", true, false},
		{".5", true, false},
		{"1e3", true, false},
		{"1E-3", true, false},
		{"", false, false},
		{"-", false, false},
		{".", false, false},
		{"+.", false, false},
		{"1e", false, false},
		{"1e+", false, false},
		{"1.2.3", false, false},
		{"12a", false, false},
	}

	for _, tc := range cases {
		numeric, integral := scanNumeric(tc.s)
		assert.Equal(t, tc.numeric, numeric, "numeric(%q)", tc.s)
		assert.Equal(t, tc.integral, integral, "integral(%q)", tc.s)
	}
}
