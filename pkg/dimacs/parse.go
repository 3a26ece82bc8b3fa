package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vertexlab/vertex/pkg/graph"
)

var (
	ErrMissingHeader   = errors.New("missing problem line")
	ErrDuplicateHeader = errors.New("duplicate problem line")
	ErrBadHeader       = errors.New("malformed problem line")
	ErrBadEdge         = errors.New("malformed edge line")
	ErrEdgeCount       = errors.New("edge count does not match problem line")
	ErrUnknownLine     = errors.New("unknown line type")
)

// ParseError reports the line a parse failure happened on. Line is 0 for
// failures that concern the whole input.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("dimacs: %v", e.Err)
	}
	return fmt.Sprintf("dimacs: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MaxOrder is the largest vertex count a problem line may declare. The
// adjacency matrix is allocated up front, so the limit caps memory at about
// 32 MiB before a single edge is read.
const MaxOrder = 1 << 14

// Parse reads a graph in DIMACS edge format. Vertices are numbered from 1 in
// the input and from 0 in the returned graph. An edge listed twice, in either
// direction, is rejected.
func Parse(r io.Reader) (*graph.Graph, error) {
	var (
		b        *graph.Builder
		declared int
		read     int
		line     int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
		case "p":
			if b != nil {
				return nil, &ParseError{Line: line, Err: ErrDuplicateHeader}
			}
			n, m, err := parseHeader(fields)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			if b, err = graph.NewBuilder(n); err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			declared = m
		case "e":
			if b == nil {
				return nil, &ParseError{Line: line, Err: ErrMissingHeader}
			}
			u, v, err := parseEdge(fields)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			if err := b.AddEdge(u-1, v-1); err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			read++
		default:
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: %q", ErrUnknownLine, fields[0])}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}
	if b == nil {
		return nil, &ParseError{Err: ErrMissingHeader}
	}
	if read != declared {
		return nil, &ParseError{Err: fmt.Errorf("%w: expected %d edges but read %d", ErrEdgeCount, declared, read)}
	}
	return b.Build(), nil
}

// parseHeader reads "p edge <n> <m>". The format word "col" is accepted as
// well since coloring instances use the same layout.
func parseHeader(fields []string) (n, m int, err error) {
	if len(fields) != 4 {
		return 0, 0, fmt.Errorf("%w: expected 4 fields, got %d", ErrBadHeader, len(fields))
	}
	if fields[1] != "edge" && fields[1] != "col" {
		return 0, 0, fmt.Errorf("%w: unsupported format %q", ErrBadHeader, fields[1])
	}
	n, err = strconv.Atoi(fields[2])
	if err != nil || n < 1 {
		return 0, 0, fmt.Errorf("%w: invalid vertex count %q", ErrBadHeader, fields[2])
	}
	if n > MaxOrder {
		return 0, 0, fmt.Errorf("%w: %d vertices exceed the limit of %d", ErrBadHeader, n, MaxOrder)
	}
	m, err = strconv.Atoi(fields[3])
	if err != nil || m < 0 {
		return 0, 0, fmt.Errorf("%w: invalid edge count %q", ErrBadHeader, fields[3])
	}
	return n, m, nil
}

func parseEdge(fields []string) (u, v int, err error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("%w: expected 3 fields, got %d", ErrBadEdge, len(fields))
	}
	u, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a vertex", ErrBadEdge, fields[1])
	}
	v, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a vertex", ErrBadEdge, fields[2])
	}
	return u, v, nil
}
