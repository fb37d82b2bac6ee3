//go:build wasm

package main

import (
	"encoding/json"
	"errors"
	"sync"
	"syscall/js"

	"github.com/treelang/treelang"
	"github.com/treelang/treelang/pkg/corpus"
	"github.com/treelang/treelang/pkg/parser"
	"github.com/treelang/treelang/pkg/source"
)

var (
	parsers   = make(map[int]*treelang.Parser)
	parsersMu sync.RWMutex
	nextID    int
)

// newParser creates a new parser with the given indent string.
// JS: TreelangNewParser(indent) -> handle (int) or error string
func newParser(this js.Value, args []js.Value) interface{} {
	indent := ""
	if len(args) > 0 {
		indent = args[0].String()
	}

	var opts []treelang.Option
	if indent != "" {
		unit, err := parser.ParseIndent(indent)
		if err != nil {
			return map[string]interface{}{"error": "invalid indent: " + err.Error()}
		}
		opts = append(opts, treelang.WithIndent(unit))
	}

	p, err := treelang.New(opts...)
	if err != nil {
		return map[string]interface{}{"error": "failed to create parser: " + err.Error()}
	}

	// Register parser
	parsersMu.Lock()
	id := nextID
	nextID++
	parsers[id] = p
	parsersMu.Unlock()

	return map[string]interface{}{"handle": id}
}

// parse parses a single text.
// JS: TreelangParse(handle, text, name) -> JSON tree or error map
func parse(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "handle and text arguments required"}
	}

	handle := args[0].Int()
	text := args[1].String()
	name := ""
	if len(args) > 2 {
		name = args[2].String()
	}

	parsersMu.RLock()
	p, ok := parsers[handle]
	parsersMu.RUnlock()

	if !ok {
		return map[string]interface{}{"error": "invalid parser handle"}
	}

	origin := source.Anonymous()
	if name != "" {
		origin = source.Named(name)
	}

	parsed, err := p.Parse(origin, text)
	if err != nil {
		return parseFailure(p, err)
	}

	jsonBytes, err := json.Marshal(parsed)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal tree: " + err.Error()}
	}

	return string(jsonBytes)
}

// parseFailure shapes a failed parse for JavaScript. ParseError values
// carry their kind and position alongside the message.
func parseFailure(p *treelang.Parser, err error) map[string]interface{} {
	result := map[string]interface{}{"error": err.Error()}

	var perr *treelang.ParseError
	if errors.As(err, &perr) {
		result["kind"] = perr.Kind.String()
		result["line"] = perr.Span.Start.Line
		if point, posErr := p.SourceMap().Position(perr.Span.Start); posErr == nil {
			result["column"] = point.Column
		}
	}
	return result
}

// batchItem is one named text in a TreelangParseBatch request.
type batchItem struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// batchResult is the outcome for one batch item.
type batchResult struct {
	Name    string          `json:"name"`
	Success bool            `json:"success"`
	Tree    json.RawMessage `json:"tree,omitempty"`
	Error   string          `json:"error,omitempty"`
	Kind    string          `json:"kind,omitempty"`
	Line    int             `json:"line,omitempty"`
}

// parseBatch parses multiple named texts.
// JS: TreelangParseBatch(handle, itemsJSON) -> JSON results or error map
func parseBatch(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "handle and itemsJSON arguments required"}
	}

	handle := args[0].Int()
	itemsJSON := args[1].String()

	parsersMu.RLock()
	p, ok := parsers[handle]
	parsersMu.RUnlock()

	if !ok {
		return map[string]interface{}{"error": "invalid parser handle"}
	}

	// Parse items
	var items []batchItem
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return map[string]interface{}{"error": "failed to parse items JSON: " + err.Error()}
	}

	results := make([]batchResult, 0, len(items))
	for _, item := range items {
		results = append(results, parseOne(p, item))
	}

	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal results: " + err.Error()}
	}

	return string(jsonBytes)
}

// parseOne registers and parses one batch item. Items share the
// handle's source map, so a name registered by an earlier call fails
// here as an ordinary per-item error.
func parseOne(p *treelang.Parser, item batchItem) batchResult {
	result := batchResult{Name: item.Name}

	origin := source.Anonymous()
	if item.Name != "" {
		origin = source.Named(item.Name)
	}

	parsed, err := p.Parse(origin, item.Text)
	if err != nil {
		result.Error = err.Error()
		var perr *treelang.ParseError
		if errors.As(err, &perr) {
			result.Kind = perr.Kind.String()
			result.Line = perr.Span.Start.Line
		}
		return result
	}

	data, err := json.Marshal(parsed)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Success = true
	result.Tree = data
	return result
}

// closeParser discards a parser and the sources it registered.
// JS: TreelangCloseParser(handle)
func closeParser(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	handle := args[0].Int()

	parsersMu.Lock()
	_, ok := parsers[handle]
	if ok {
		delete(parsers, handle)
	}
	parsersMu.Unlock()

	if !ok {
		return map[string]interface{}{"error": "invalid parser handle"}
	}

	return nil
}

// caseInfo is the JS-facing shape of one conformance case.
type caseInfo struct {
	Name    string `json:"name"`
	Indent  string `json:"indent"`
	Input   string `json:"input"`
	Outline string `json:"outline,omitempty"`
	Error   string `json:"error,omitempty"`
}

// getBuiltinCases returns the built-in conformance cases as JSON.
// JS: TreelangGetBuiltinCases() -> JSON cases array
func getBuiltinCases(this js.Value, args []js.Value) interface{} {
	cases, err := corpus.NewLoader().LoadBuiltinCases()
	if err != nil {
		return map[string]interface{}{"error": "failed to load builtin cases: " + err.Error()}
	}

	infos := make([]caseInfo, 0, len(cases))
	for _, c := range cases {
		info := caseInfo{
			Name:    c.Name,
			Indent:  c.Indent.String(),
			Input:   c.Input,
			Outline: c.Outline,
		}
		if c.Error != 0 {
			info.Error = c.Error.String()
		}
		infos = append(infos, info)
	}

	jsonBytes, err := json.Marshal(infos)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal cases: " + err.Error()}
	}

	return string(jsonBytes)
}
