package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

const (
	WinScore  = 1000000
	LossScore = -WinScore
	DrawScore = 0
)

// Move is a column together with the evaluation that chose it.
type Move struct {
	Column int `json:"column"`
	Score  int `json:"score"`
}

// Minimax scores node by plain fixed-depth minimax. When maximizing is true the
// side to move at node is the one being maximized. The returned column is the
// child that produced the score; ties go to the lowest column.
//
// A decided leaf scores WinScore or LossScore shifted by its distance from
// node, so a quicker win always outranks a slower one.
func Minimax(node *Node, maximizing bool) Move {
	return minimax(node, maximizing, 0)
}

func minimax(node *Node, maximizing bool, ply int) Move {
	if node.IsLeaf() {
		return Move{Column: firstLegal(&node.Board), Score: leafScore(&node.Board, maximizing, ply)}
	}

	best := Move{Column: domain.NoMove}
	for i, child := range node.Children {
		score := minimax(child, !maximizing, ply+1).Score
		if i == 0 || improves(score, best.Score, maximizing) {
			best = Move{Column: child.Column, Score: score}
		}
	}
	return best
}

// leafScore is a pure win/lose/draw evaluation from the maximizing side's view.
// Prefer quicker wins and slower losses.
func leafScore(board *domain.Board, maximizing bool, ply int) int {
	maximizer := board.Turn()
	if !maximizing {
		maximizer = maximizer.Opponent()
	}

	switch domain.Winner(board) {
	case maximizer:
		return WinScore - ply
	case maximizer.Opponent():
		return LossScore + ply
	}
	return DrawScore
}

func improves(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

func firstLegal(board *domain.Board) int {
	if legal := board.LegalColumns(); len(legal) > 0 {
		return legal[0]
	}
	return domain.NoMove
}
