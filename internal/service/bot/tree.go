package bot

import (
	"sync/atomic"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// ErrTreeTooLarge aborts a search whose tree would exceed the node budget.
const ErrTreeTooLarge domain.Error = "game tree exceeds node budget"

// Node is one reachable position. It owns its board and its children,
// which are ordered by the column played to reach them.
type Node struct {
	Board    domain.Board
	Column   int
	Children []*Node
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Size counts the nodes in the subtree rooted at n.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.Children {
		size += child.Size()
	}
	return size
}

// TreeBuilder expands positions into game trees. A zero MaxNodes means no budget.
// The node counter is shared, so one builder may serve several goroutines
// expanding disjoint subtrees.
type TreeBuilder struct {
	MaxNodes int64
	nodes    atomic.Int64
}

// BuildTree expands board up to depth plies without a node budget.
func BuildTree(board domain.Board, depth int) (*Node, error) {
	return (&TreeBuilder{}).Build(board, depth)
}

func (tb *TreeBuilder) Build(board domain.Board, depth int) (*Node, error) {
	return tb.expand(board, domain.NoMove, depth)
}

// Nodes reports how many nodes this builder has created so far.
func (tb *TreeBuilder) Nodes() int64 {
	return tb.nodes.Load()
}

func (tb *TreeBuilder) expand(board domain.Board, column, depth int) (*Node, error) {
	if n := tb.nodes.Add(1); tb.MaxNodes > 0 && n > tb.MaxNodes {
		return nil, ErrTreeTooLarge
	}

	node := &Node{Board: board, Column: column}
	if isTerminal(&node.Board, depth) {
		return node, nil
	}

	legal := board.LegalColumns()
	node.Children = make([]*Node, 0, len(legal))
	for _, col := range legal {
		// each child starts from its own copy of the parent position
		next := board
		next.Place(col)

		child, err := tb.expand(next, col, depth-1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func isTerminal(board *domain.Board, depth int) bool {
	return depth <= 0 || board.IsFull() || domain.Winner(board) != domain.Empty
}
