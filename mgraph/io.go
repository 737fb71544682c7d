// File: io.go
// Role: the "out of scope" external collaborator from spec.md §1 — reads
// a vertex count and edge list from a text stream. Kept minimal and
// separate from Graph/Bipartite construction so callers who already have
// an in-memory edge list can skip it entirely.
package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrBadHeader is returned when the input stream's first line cannot be
// parsed as the expected header (spec.md §6, §7: "Bad header"), and also
// when the edge list ends before the header's edge count is reached.
var ErrBadHeader = errors.New("graph: bad header")

// ReadGeneral parses the general-graph input format of spec.md §6:
//
//	n m
//	u v   (m times)
//
// and returns a Finalize'd Graph. Vertices out of [0,n), self-loops and
// duplicate edges are tolerated and normalized away by Graph.AddEdge/
// Finalize, per spec.md §4.1 and §8 B3.
func ReadGeneral(r io.Reader) (*Graph, error) {
	sc := newTokenScanner(r)

	n, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("graph: %w", ErrBadHeader)
	}
	m, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("graph: %w", ErrBadHeader)
	}

	g := New(n)
	for i := 0; i < m; i++ {
		u, errU := sc.nextInt()
		v, errV := sc.nextInt()
		if errU != nil || errV != nil {
			return nil, fmt.Errorf("graph: %w: truncated edge list", ErrBadHeader)
		}
		g.AddEdge(u, v)
	}
	g.Finalize()

	return g, nil
}

// ReadBipartite parses the Hopcroft-Karp input format of spec.md §6:
//
//	L R m
//	u v   (m times), u in [0,L), v in [0,R)
func ReadBipartite(r io.Reader) (*Bipartite, error) {
	sc := newTokenScanner(r)

	l, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("graph: %w", ErrBadHeader)
	}
	rr, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("graph: %w", ErrBadHeader)
	}
	m, err := sc.nextInt()
	if err != nil {
		return nil, fmt.Errorf("graph: %w", ErrBadHeader)
	}

	bg := NewBipartite(l, rr)
	for i := 0; i < m; i++ {
		u, errU := sc.nextInt()
		v, errV := sc.nextInt()
		if errU != nil || errV != nil {
			return nil, fmt.Errorf("graph: %w: truncated edge list", ErrBadHeader)
		}
		bg.AddEdge(u, v)
	}
	bg.Finalize()

	return bg, nil
}

// tokenScanner reads whitespace-separated integer tokens from a stream,
// spanning newlines freely (spec.md §6: "whitespace-separated text").
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &tokenScanner{sc: sc}
}

func (t *tokenScanner) nextInt() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return parseInt(t.sc.Text())
}

func parseInt(s string) (int, error) {
	neg := false
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	if i == len(s) {
		return 0, fmt.Errorf("graph: not an integer: %q", s)
	}
	n := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("graph: not an integer: %q", s)
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
