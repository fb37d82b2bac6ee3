package treelang

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treelang/treelang/pkg/source"
)

func TestNew(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	assert.Equal(t, "spaces(2)", p.Indent().String())
	require.NotNil(t, p.SourceMap())
	assert.Equal(t, 0, p.SourceMap().Len())
}

func TestNewWithOptions(t *testing.T) {
	p, err := New(WithTabs())
	require.NoError(t, err)
	assert.Equal(t, "tabs", p.Indent().String())

	p, err = New(WithSpaces(4))
	require.NoError(t, err)
	assert.Equal(t, "spaces(4)", p.Indent().String())
}

func TestNewInvalidSpaces(t *testing.T) {
	_, err := New(WithSpaces(0))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrInvalidIndentUnit, perr.Kind)
}

func TestParseString(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	tr, err := p.ParseString("example", "server:\n  port 8080\n  host local")
	require.NoError(t, err)

	want := "" +
		"directive server:\n" +
		"  statement port 8080\n" +
		"  statement host local\n"
	assert.Equal(t, want, tr.Outline())
	assert.Equal(t, 1, p.SourceMap().Len())
}

func TestParseStringEmpty(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	tr, err := p.ParseString("empty", "")
	require.NoError(t, err)
	assert.Empty(t, tr.Roots)
}

func TestParseStringError(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	_, err = p.ParseString("broken", "task (build")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrUnterminatedGroup, perr.Kind)

	// The span resolves against the parser's own map.
	text, err := p.SourceMap().Text(perr.Span)
	require.NoError(t, err)
	assert.Equal(t, "(", text)
}

func TestParseDuplicateOrigin(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	_, err = p.ParseString("config", "a 1")
	require.NoError(t, err)

	_, err = p.ParseString("config", "b 2")
	require.Error(t, err)

	var dup *source.DuplicateOriginError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, source.Index(0), dup.Existing)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.conf")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  name demo\n"), 0o644))

	p, err := New()
	require.NoError(t, err)

	tr, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, tr.Roots, 1)

	origin, err := p.SourceMap().Origin(0)
	require.NoError(t, err)
	assert.Equal(t, path, origin.Name())
}

func TestParseFileMissing(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	_, err = p.ParseFile(filepath.Join(t.TempDir(), "absent.conf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithSourceMap(t *testing.T) {
	m := source.NewMap()

	spaced, err := New(WithSourceMap(m))
	require.NoError(t, err)
	tabbed, err := New(WithSourceMap(m), WithTabs())
	require.NoError(t, err)

	_, err = spaced.ParseString("one", "a 1")
	require.NoError(t, err)
	_, err = tabbed.ParseString("two", "b:\n\tc 2")
	require.NoError(t, err)

	// Both parsers registered into the shared map.
	assert.Equal(t, 2, m.Len())
	assert.Same(t, m, spaced.SourceMap())
	assert.Same(t, m, tabbed.SourceMap())
}

func TestConcurrentParses(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	// One parser, distinct inputs from several goroutines.
	done := make(chan bool, 8)
	for i := range 8 {
		go func(idx int) {
			tr, err := p.ParseString(fmt.Sprintf("doc-%d", idx), "job:\n  step run")
			assert.NoError(t, err)
			assert.Len(t, tr.Roots, 1)
			done <- true
		}(i)
	}

	for range 8 {
		<-done
	}

	assert.Equal(t, 8, p.SourceMap().Len())
}
