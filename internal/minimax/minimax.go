// Package minimax picks tic-tac-toe moves by exhaustive minimax search.
//
// The whole game tree of a 3x3 board is small enough to search without
// pruning or caching. Results are deterministic: among equally ranked moves
// the first empty cell in row-major order is chosen.
//
// Nothing in this package keeps state between calls, so independent boards
// may be searched from different goroutines. A single Board must not be
// shared by concurrent searches.
package minimax

// Analysis is the result of one full search.
type Analysis struct {
	Move  Location `json:"move"`
	Score Score    `json:"score"`
	// Nodes is the number of positions visited.
	Nodes int `json:"nodes"`
}

// Analyze - searches board with turn to move and reports the chosen move
// together with its score. The board is searched on a copy; the caller's
// value is never touched. A terminal board yields NoLocation.
func Analyze(board Board, turn Turn) Analysis {
	var s searcher

	score, move := s.search(&board, turn, 0)

	return Analysis{
		Move:  move,
		Score: score,
		Nodes: s.nodes,
	}
}

// ComputeNextMove - returns the optimal move for turn.
// The caller must check IsGameOver(Evaluate(&board)) first; a finished
// board yields NoLocation.
func ComputeNextMove(board Board, turn Turn) Location {
	return Analyze(board, turn).Move
}
