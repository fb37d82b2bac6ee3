package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/treelang/treelang/pkg/source"
)

func TestDelim(t *testing.T) {
	cases := []struct {
		delim Delim
		open  byte
		close byte
		name  string
	}{
		{Parens, '(', ')', "parens"},
		{Brackets, '[', ']', "brackets"},
		{Braces, '{', '}', "braces"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.open, tc.delim.Open())
		assert.Equal(t, tc.close, tc.delim.Close())
		assert.Equal(t, tc.name, tc.delim.String())
	}
}

func TestItem_Span(t *testing.T) {
	span := source.Offset{Byte: 4, Line: 1}.Span(3)

	var it Item = Word{Text: "abc", Location: span}
	assert.Equal(t, span, it.Span())

	it = Int{Text: "-42", Value: -42, Location: span}
	assert.Equal(t, span, it.Span())
}

func TestGroup_String(t *testing.T) {
	g := Group{
		Delim: Brackets,
		Items: []Item{
			Word{Text: "a"},
			Int{Text: "23", Value: 23},
			Group{Delim: Braces, Items: []Item{Float{Text: "1.5", Value: 1.5}}},
		},
	}

	assert.Equal(t, "[a 23 {1.5}]", g.String())
	assert.Equal(t, "()", Group{}.String())
}
