package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerText registers content under a named origin and returns the
// map together with an offset constructor bound to the new index.
func registerText(t *testing.T, content string) (*SourceMap, func(byte_, line int) Offset) {
	t.Helper()

	m := NewMap()
	idx, err := m.Insert(Named("ctx"), content)
	require.NoError(t, err)

	return m, func(byte_, line int) Offset {
		return Offset{Source: idx, Byte: byte_, Line: line}
	}
}

func TestSourceMap_LineSpan(t *testing.T) {
	m, off := registerText(t, "abc\ndef")

	cases := []struct {
		name string
		at   Offset
		want Span
	}{
		{"line start", off(0, 1), off(0, 1).Span(3)},
		{"newline belongs to the line it ends", off(3, 1), off(0, 1).Span(3)},
		{"second line start", off(4, 2), off(4, 2).Span(3)},
		{"end of buffer", off(7, 2), off(4, 2).Span(3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.LineSpan(tc.at)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSourceMap_Text(t *testing.T) {
	m, off := registerText(t, "abc\ndef")

	got, err := m.Text(off(4, 2).Span(3))
	require.NoError(t, err)
	assert.Equal(t, "def", got)

	got, err = m.Text(off(0, 1).Span(0))
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestSourceMap_Text_OutOfRange(t *testing.T) {
	m, off := registerText(t, "abc")

	_, err := m.Text(off(2, 1).Span(5))
	assert.Error(t, err)
}

func TestSourceMap_Line(t *testing.T) {
	m, off := registerText(t, "abc\ndef")

	for _, at := range []Offset{off(0, 1), off(3, 1)} {
		got, err := m.Line(at)
		require.NoError(t, err)
		assert.Equal(t, "abc", got)
	}
	for _, at := range []Offset{off(4, 2), off(7, 2)} {
		got, err := m.Line(at)
		require.NoError(t, err)
		assert.Equal(t, "def", got)
	}
}

func TestSourceMap_Column(t *testing.T) {
	m, off := registerText(t, "abc\ndef")

	cases := []struct {
		at   Offset
		want int
	}{
		{off(0, 1), 1},
		{off(3, 1), 4},
		{off(4, 2), 1},
		{off(7, 2), 4},
	}
	for _, tc := range cases {
		got, err := m.Column(tc.at)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestSourceMap_Position(t *testing.T) {
	m, off := registerText(t, "abc\ndef")

	pos, err := m.Position(off(6, 2))
	require.NoError(t, err)
	assert.Equal(t, Point{Line: 2, Column: 3}, pos)
}

func TestSourceMap_LineSpanBefore(t *testing.T) {
	m, off := registerText(t, "abc\ndef")

	prev, ok, err := m.lineSpanBefore(off(4, 2))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, off(0, 1).Span(3), prev)

	_, ok, err = m.lineSpanBefore(off(0, 1))
	require.NoError(t, err)
	assert.False(t, ok)
}
