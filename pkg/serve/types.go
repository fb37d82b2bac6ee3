package serve

import (
	"encoding/json"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "parse" | "parse_batch" | "close"
	Payload json.RawMessage `json:"payload"`
}

// ParsePayload is the payload for "parse" requests
type ParsePayload struct {
	Name   string `json:"name"`   // origin label; empty registers an anonymous buffer
	Text   string `json:"text"`
	Indent string `json:"indent"` // "tabs" or "spaces(N)"; empty uses the server default
}

// ParseBatchPayload is the payload for "parse_batch" requests
type ParseBatchPayload struct {
	Items  []BatchItem `json:"items"`
	Indent string      `json:"indent"`
}

// BatchItem is one named text in a batch
type BatchItem struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // "ready" | "parse" | "parse_batch"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string `json:"version"`
	Indent  string `json:"indent"` // the server default indent
}

// Diagnostic is the data field for failed parses
type Diagnostic struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Excerpt string `json:"excerpt,omitempty"` // rendered source excerpt with a caret row
}

// BatchData is the data field for "parse_batch" responses
type BatchData struct {
	Results []BatchResult `json:"results"`
}

// BatchResult is the outcome for one batch item
type BatchResult struct {
	Name       string          `json:"name"`
	Success    bool            `json:"success"`
	Tree       json.RawMessage `json:"tree,omitempty"`
	Error      string          `json:"error,omitempty"`
	Diagnostic *Diagnostic     `json:"diagnostic,omitempty"`
}
