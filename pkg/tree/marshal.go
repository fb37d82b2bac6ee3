package tree

import (
	"encoding/json"
	"math"

	"github.com/treelang/treelang/pkg/source"
)

// Kind-tagged encodings shared by JSON and YAML, so `parse --format
// json|yaml` dumps are stable and self-describing.

type wordEnc struct {
	Kind string      `json:"kind"`
	Text string      `json:"text"`
	Span source.Span `json:"span"`
}

type intEnc struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text"`
	Value int64       `json:"value"`
	Span  source.Span `json:"span"`
}

type floatEnc struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	// Value holds the literal text instead when the parsed value is not
	// finite, since JSON has no encoding for infinities.
	Value any         `json:"value"`
	Span  source.Span `json:"span"`
}

type groupEnc struct {
	Kind  string      `json:"kind"`
	Delim string      `json:"delim"`
	Items []Item      `json:"items"`
	Span  source.Span `json:"span"`
}

type statementEnc struct {
	Kind  string        `json:"kind"`
	Items []Item        `json:"items"`
	Pos   source.Offset `json:"pos"`
}

type directiveEnc struct {
	Kind      string        `json:"kind"`
	Signature []Item        `json:"signature"`
	Arguments []Item        `json:"arguments"`
	Children  []Node        `json:"children"`
	Pos       source.Offset `json:"pos"`
}

func (w Word) encode() any {
	return wordEnc{Kind: "word", Text: w.Text, Span: w.Location}
}

func (i Int) encode() any {
	return intEnc{Kind: "int", Text: i.Text, Value: i.Value, Span: i.Location}
}

func (f Float) encode() any {
	enc := floatEnc{Kind: "float", Text: f.Text, Value: f.Value, Span: f.Location}
	if math.IsInf(f.Value, 0) || math.IsNaN(f.Value) {
		enc.Value = f.Text
	}
	return enc
}

func (g Group) encode() any {
	return groupEnc{Kind: "group", Delim: g.Delim.String(), Items: g.Items, Span: g.Location}
}

func (s *Statement) encode() any {
	return statementEnc{Kind: "statement", Items: s.Items, Pos: s.Location}
}

func (d *Directive) encode() any {
	return directiveEnc{
		Kind:      "directive",
		Signature: d.Signature,
		Arguments: d.Arguments,
		Children:  d.Children,
		Pos:       d.Location,
	}
}

func (w Word) MarshalJSON() ([]byte, error)  { return json.Marshal(w.encode()) }
func (i Int) MarshalJSON() ([]byte, error)   { return json.Marshal(i.encode()) }
func (f Float) MarshalJSON() ([]byte, error) { return json.Marshal(f.encode()) }
func (g Group) MarshalJSON() ([]byte, error) { return json.Marshal(g.encode()) }

func (s *Statement) MarshalJSON() ([]byte, error) { return json.Marshal(s.encode()) }
func (d *Directive) MarshalJSON() ([]byte, error) { return json.Marshal(d.encode()) }

func (w Word) MarshalYAML() (interface{}, error)  { return w.encode(), nil }
func (i Int) MarshalYAML() (interface{}, error)   { return i.encode(), nil }
func (f Float) MarshalYAML() (interface{}, error) { return f.encode(), nil }
func (g Group) MarshalYAML() (interface{}, error) { return g.encode(), nil }

func (s *Statement) MarshalYAML() (interface{}, error) { return s.encode(), nil }
func (d *Directive) MarshalYAML() (interface{}, error) { return d.encode(), nil }
