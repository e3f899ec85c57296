package minimax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  Outcome
	}{
		{name: "Empty board", board: ".../.../...", want: NotOver},
		{name: "X on the main diagonal only", board: "X../.X./..X", want: XWin},
		{name: "X top row", board: "XXX/.O./...", want: XWin},
		{name: "X top row and left column", board: "XXX/XO./X..", want: XWin},
		{name: "O middle column", board: "XO./.OX/XO.", want: OWin},
		{name: "O anti-diagonal", board: "X.O/XO./O.X", want: OWin},
		{name: "O bottom row", board: "XX./X../OOO", want: OWin},
		{name: "Full board without a line", board: "OXO/XXO/OOX", want: Draw},
		{name: "Another full board without a line", board: "XOX/XOO/OXX", want: Draw},
		{name: "Full board with a line is a win", board: "XXX/OOX/XOO", want: XWin},
		{name: "Open position", board: "O.X/X../XOO", want: NotOver},
		{name: "One empty cell left", board: "OXO/X.O/OOX", want: NotOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board
			board := mustParse(t, tt.board)
			before := board

			// When: evaluating it
			outcome := Evaluate(&board)

			// Then: the expected category is returned and the board is untouched
			assert.Equal(t, tt.want, outcome)
			assert.Equal(t, before, board)
		})
	}
}

func TestEvaluate_WinRequiresLine(t *testing.T) {
	// Given: every reachable position
	for board := range reachablePositions() {
		outcome := Evaluate(&board)

		// Then: a win is only reported when that mark owns a whole line
		switch outcome {
		case XWin:
			assert.True(t, ownsLine(board, X), board.String())
		case OWin:
			assert.True(t, ownsLine(board, O), board.String())
		case Draw:
			assert.True(t, board.IsFull(), board.String())
			assert.False(t, ownsLine(board, X) || ownsLine(board, O), board.String())
		case NotOver:
			assert.False(t, board.IsFull(), board.String())
		default:
			t.Fatalf("unexpected outcome %v for %s", outcome, board)
		}
	}
}

func TestIsGameOver(t *testing.T) {
	assert.False(t, IsGameOver(NotOver))
	assert.True(t, IsGameOver(XWin))
	assert.True(t, IsGameOver(OWin))
	assert.True(t, IsGameOver(Draw))
}

func TestRank(t *testing.T) {
	t.Run("Faster wins rank higher", func(t *testing.T) {
		assert.Greater(t, rank(XWin, 5).Rank, rank(XWin, 7).Rank)
		assert.Less(t, rank(OWin, 5).Rank, rank(OWin, 7).Rank)
	})

	t.Run("Any win outranks a draw", func(t *testing.T) {
		assert.Positive(t, rank(XWin, MaxPlies).Rank)
		assert.Negative(t, rank(OWin, MaxPlies).Rank)
	})

	t.Run("Draw ranks zero at any depth", func(t *testing.T) {
		assert.Equal(t, Score{Outcome: Draw}, rank(Draw, 3))
		assert.Equal(t, Score{Outcome: Draw}, rank(Draw, MaxPlies))
	})
}

func ownsLine(board Board, mark Cell) bool {
	for _, line := range Lines {
		if board.Get(line[0]) == mark && board.Get(line[1]) == mark && board.Get(line[2]) == mark {
			return true
		}
	}
	return false
}

// reachablePositions - every distinct board reachable from the empty board
// with X moving first and play stopping at a terminal position.
func reachablePositions() map[Board]Turn {
	seen := make(map[Board]Turn)

	var walk func(board *Board, turn Turn)
	walk = func(board *Board, turn Turn) {
		if _, ok := seen[*board]; ok {
			return
		}
		seen[*board] = turn

		if IsGameOver(Evaluate(board)) {
			return
		}

		for _, loc := range board.EmptyLocations() {
			board.Set(loc, turn.Mark())
			walk(board, turn.Next())
			board.Set(loc, Empty)
		}
	}

	var board Board
	walk(&board, XTurn)

	return seen
}
