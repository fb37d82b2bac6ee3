package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/treelang/treelang/pkg/parser"
	"github.com/treelang/treelang/pkg/source"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server answers parse requests over an NDJSON stream. Each request is
// parsed against a fresh source map, so names never collide across
// requests; within a batch the map is shared and collisions surface as
// per-item failures.
type Server struct {
	indent  parser.Indent
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server. indent is the unit applied
// when a request does not carry its own.
func NewServer(indent parser.Indent, in io.Reader, out io.Writer) *Server {
	return &Server{
		indent:  indent,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// Run starts the server main loop
func (s *Server) Run(ctx context.Context) error {
	// Send ready signal
	s.sendReady()

	// Use buffered channels for incoming requests
	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Process requests until stdin closes or context cancels
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(req) {
						return nil
					}
				default:
					// No more pending requests
					if err == io.EOF {
						return nil
					}
					s.sendError("decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	switch req.Type {
	case "parse":
		s.handleParse(req.Payload)
	case "parse_batch":
		s.handleParseBatch(req.Payload)
	case "close":
		return true
	default:
		s.sendError("unknown", "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) sendReady() {
	data, _ := json.Marshal(ReadyData{Version: Version, Indent: s.indent.String()})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "ready",
		Data:    data,
	})
}

func (s *Server) handleParse(payload json.RawMessage) {
	var p ParsePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("parse", err.Error())
		return
	}

	indent, err := s.requestIndent(p.Indent)
	if err != nil {
		s.sendError("parse", err.Error())
		return
	}

	sources := source.NewMap()
	in, err := register(sources, p.Name, p.Text)
	if err != nil {
		s.sendError("parse", err.Error())
		return
	}

	parsed, err := parser.Parse(in, indent)
	if err != nil {
		s.sendParseFailure("parse", sources, err)
		return
	}

	data, _ := json.Marshal(parsed)
	s.encoder.Encode(Response{
		Success: true,
		Type:    "parse",
		Data:    data,
	})
}

func (s *Server) handleParseBatch(payload json.RawMessage) {
	var p ParseBatchPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("parse_batch", err.Error())
		return
	}

	indent, err := s.requestIndent(p.Indent)
	if err != nil {
		s.sendError("parse_batch", err.Error())
		return
	}

	sources := source.NewMap()
	results := make([]BatchResult, 0, len(p.Items))
	for _, item := range p.Items {
		results = append(results, parseBatchItem(sources, indent, item))
	}

	data, _ := json.Marshal(BatchData{Results: results})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "parse_batch",
		Data:    data,
	})
}

// requestIndent resolves a request's indent spec, falling back to the
// server default when the request carries none.
func (s *Server) requestIndent(spec string) (parser.Indent, error) {
	if spec == "" {
		return s.indent, nil
	}
	return parser.ParseIndent(spec)
}

// parseBatchItem registers and parses one item against the batch's
// shared source map.
func parseBatchItem(sources *source.SourceMap, indent parser.Indent, item BatchItem) BatchResult {
	result := BatchResult{Name: item.Name}

	in, err := register(sources, item.Name, item.Text)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	parsed, err := parser.Parse(in, indent)
	if err != nil {
		result.Error = err.Error()
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			d := diagnose(sources, perr)
			result.Diagnostic = &d
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

// register inserts text under a named origin, or an anonymous one when
// name is empty, and returns the parse input.
func register(sources *source.SourceMap, name, text string) (source.Input, error) {
	origin := source.Anonymous()
	if name != "" {
		origin = source.Named(name)
	}
	idx, err := sources.Insert(origin, text)
	if err != nil {
		return source.Input{}, err
	}
	return sources.Input(idx)
}

// sendParseFailure reports a failed parse. ParseError values carry a
// structured diagnostic in the data field; anything else sends the
// message alone.
func (s *Server) sendParseFailure(reqType string, sources *source.SourceMap, err error) {
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		s.sendError(reqType, err.Error())
		return
	}

	data, _ := json.Marshal(diagnose(sources, perr))
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Data:    data,
		Error:   perr.Error(),
	})
}

// diagnose resolves a parse error against its sources into the wire
// diagnostic.
func diagnose(sources *source.SourceMap, perr *parser.ParseError) Diagnostic {
	d := Diagnostic{
		Kind: perr.Kind.String(),
		Line: perr.Span.Start.Line,
	}
	if point, err := sources.Position(perr.Span.Start); err == nil {
		d.Column = point.Column
	}
	if section, err := sources.Section(perr.Span); err == nil {
		d.Excerpt = section.String()
	}
	return d
}

func (s *Server) sendError(reqType, msg string) {
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	})
}
