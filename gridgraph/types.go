// Package gridgraph defines core types, traversal orders, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/allrgb.
package gridgraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidDimensions indicates non-positive rows/cols or an overflowing cell count.
	ErrInvalidDimensions = errors.New("gridgraph: rows and cols must be positive")
	// ErrNilRand indicates Span was given no random source.
	ErrNilRand = errors.New("gridgraph: random source is nil")
	// ErrAlreadySpanned indicates Span was called on a graph that already holds a tree.
	ErrAlreadySpanned = errors.New("gridgraph: graph is already spanned")
	// ErrNotSpanned indicates a traversal was requested before Span.
	ErrNotSpanned = errors.New("gridgraph: graph has no spanning tree yet")
	// ErrUnknownOrder indicates an unrecognized traversal order.
	ErrUnknownOrder = errors.New("gridgraph: unknown traversal order")
)

// Rand is the random source consumed by Span.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Direction is one of the four grid neighbors.
type Direction uint8

const (
	// Up is the neighbor at index - cols.
	Up Direction = iota
	// Right is the neighbor at index + 1.
	Right
	// Down is the neighbor at index + cols.
	Down
	// Left is the neighbor at index - 1.
	Left
)

// directions enumerates neighbors in the fixed order used by every traversal.
var directions = [4]Direction{Up, Right, Down, Left}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String returns "up", "right", "down" or "left".
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Order selects a tree traversal. The zero value is ShortestFirstDFS.
type Order int

const (
	// ShortestFirstDFS is a preorder DFS that descends into the child with the
	// smallest subtree height first.
	ShortestFirstDFS Order = iota
	// PreorderDFS is a plain stack-based preorder DFS.
	PreorderDFS
	// BreadthFirst visits nodes by non-decreasing tree depth.
	BreadthFirst
)

// String returns the short name used on the command line.
func (o Order) String() string {
	switch o {
	case ShortestFirstDFS:
		return "sdfs"
	case PreorderDFS:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder accepts "sdfs", "dfs" or "bfs" (case-insensitive).
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sdfs":
		return ShortestFirstDFS, nil
	case "dfs":
		return PreorderDFS, nil
	case "bfs":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// Graph is a rows×cols 4-connected grid that holds, once spanned, a spanning
// tree rooted at Root. Cells are addressed row-major: index = row*cols + col.
//
// A Graph is written only by Span and is read-only afterwards; it is not safe
// for concurrent use during Span.
type Graph struct {
	rows, cols int
	nodes      []node

	// jump translates one step in each direction into an index offset.
	jump [4]int
	// neighbors lists the in-grid directions for each 4-bit boundary pattern.
	neighbors [16][]Direction

	root    int
	spanned bool
}
