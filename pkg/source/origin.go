package source

import (
	"fmt"
	"sync/atomic"
)

// OriginKind discriminates the ways a buffer can enter a SourceMap.
type OriginKind int

const (
	// KindNamed labels a buffer with a caller-chosen name, such as a test
	// fixture or an embedded snippet.
	KindNamed OriginKind = iota
	// KindFile records the path the buffer was read from.
	KindFile
	// KindAnonymous marks a buffer with no external identity.
	KindAnonymous
)

// Origin identifies one registered buffer. Origins are immutable values:
// two origins address the same registry slot exactly when they compare
// equal, so Origin works as a map key.
type Origin struct {
	kind OriginKind
	name string
	seq  uint64
}

var anonSeq atomic.Uint64

// Named returns an origin labeled with name.
func Named(name string) Origin {
	return Origin{kind: KindNamed, name: name}
}

// File returns an origin for text read from path.
func File(path string) Origin {
	return Origin{kind: KindFile, name: path}
}

// Anonymous returns a fresh origin with no external identity. Each call
// yields a distinct value, so separate anonymous buffers never conflict
// in one map.
func Anonymous() Origin {
	return Origin{kind: KindAnonymous, seq: anonSeq.Add(1)}
}

// Kind reports which constructor produced o.
func (o Origin) Kind() OriginKind { return o.kind }

// Name returns the label of a named origin or the path of a file origin.
// It is empty for anonymous origins.
func (o Origin) Name() string { return o.name }

// String renders the origin the way diagnostics print it.
func (o Origin) String() string {
	if o.kind == KindAnonymous {
		return fmt.Sprintf("<anonymous-%d>", o.seq)
	}
	return o.name
}
