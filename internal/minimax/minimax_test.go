package minimax

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNextMove_EmptyBoard(t *testing.T) {
	// Given: an empty board with X to move
	var board Board

	// When: analyzing the whole game tree
	analysis := Analyze(board, XTurn)

	// Then: every opening draws, so the first cell wins the tie
	assert.Equal(t, Location{0, 0}, analysis.Move)
	assert.Equal(t, Score{Outcome: Draw}, analysis.Score)

	// Then: the full tree was visited
	assert.Equal(t, 549946, analysis.Nodes)
}

func TestComputeNextMove_KnownPositions(t *testing.T) {
	tests := []struct {
		name    string
		board   string
		turn    Turn
		want    Location
		outcome Outcome
	}{
		{
			name:    "O takes an immediate win",
			board:   "XX./OO./X..",
			turn:    OTurn,
			want:    Location{1, 2},
			outcome: OWin,
		},
		{
			name:    "X takes an immediate win",
			board:   "XX./OO./...",
			turn:    XTurn,
			want:    Location{0, 2},
			outcome: XWin,
		},
		{
			name:    "X blocks O and builds a fork",
			board:   "OO./.X./..X",
			turn:    XTurn,
			want:    Location{0, 2},
			outcome: XWin,
		},
		{
			name:    "X blocks O even when the game is lost",
			board:   "OO./X../X..",
			turn:    XTurn,
			want:    Location{0, 2},
			outcome: OWin,
		},
		{
			name:    "O answers a corner opening in the center",
			board:   "X../.../...",
			turn:    OTurn,
			want:    Location{1, 1},
			outcome: Draw,
		},
		{
			name:    "Last empty cell",
			board:   "XOX/XOO/OX.",
			turn:    XTurn,
			want:    Location{2, 2},
			outcome: Draw,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a position that is not over
			board := mustParse(t, tt.board)
			require.False(t, IsGameOver(Evaluate(&board)))

			// When: computing the next move
			analysis := Analyze(board, tt.turn)

			// Then: the expected cell is chosen with the expected outcome
			assert.Equal(t, tt.want, analysis.Move)
			assert.Equal(t, tt.outcome, analysis.Score.Outcome)
			assert.Equal(t, tt.want, ComputeNextMove(board, tt.turn))
		})
	}
}

func TestComputeNextMove_PrefersFasterWin(t *testing.T) {
	// Given: X can win now, and O cannot stop X later either
	board := mustParse(t, "XX./OO./...")

	// When: analyzing
	analysis := Analyze(board, XTurn)

	// Then: the score reflects a win on the very next ply
	assert.Equal(t, WinRank+MaxPlies-1, analysis.Score.Rank)
}

func TestComputeNextMove_TerminalBoard(t *testing.T) {
	// Given: a board that is already won
	board := mustParse(t, "XXX/OO./...")

	// When: analyzing it anyway
	analysis := Analyze(board, OTurn)

	// Then: there is no move, only the terminal score
	assert.Equal(t, NoLocation, analysis.Move)
	assert.Equal(t, XWin, analysis.Score.Outcome)
	assert.Equal(t, 1, analysis.Nodes)
}

func TestComputeNextMove_AllPositions(t *testing.T) {
	for board, turn := range reachablePositions() {
		if IsGameOver(Evaluate(&board)) {
			continue
		}

		before := board

		analysis := Analyze(board, turn)

		// the chosen cell is on the board and empty
		require.True(t, analysis.Move.IsValid(), board.String())
		require.Equal(t, Empty, board.Get(analysis.Move), board.String())

		// the search settles on a terminal outcome
		require.True(t, IsGameOver(analysis.Score.Outcome), board.String())

		// the caller's board is untouched
		require.Equal(t, before, board)
	}
}

func TestComputeNextMove_SelfPlayDraws(t *testing.T) {
	// Given: an empty board
	var board Board
	turn := XTurn

	// When: both sides play the computed move until the game ends
	for !IsGameOver(Evaluate(&board)) {
		move := ComputeNextMove(board, turn)
		require.Equal(t, Empty, board.Get(move))

		board.Set(move, turn.Mark())
		turn = turn.Next()
	}

	// Then: perfect play draws
	assert.Equal(t, Draw, Evaluate(&board))
	assert.True(t, board.IsFull())
}

func TestComputeNextMove_SelfPlayFromEveryOpening(t *testing.T) {
	for index := 0; index < MaxPlies; index++ {
		var board Board
		board.Set(LocationFromIndex(index), X)

		turn := OTurn
		for !IsGameOver(Evaluate(&board)) {
			board.Set(ComputeNextMove(board, turn), turn.Mark())
			turn = turn.Next()
		}

		assert.Equal(t, Draw, Evaluate(&board), "opening %d ended %s", index, board)
	}
}

func TestComputeNextMove_Deterministic(t *testing.T) {
	// Given: one position searched from several goroutines, each with its own copy
	board := mustParse(t, "X../.O./...")
	expected := Analyze(board, XTurn)

	const workers = 8

	results := make([]Analysis, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Analyze(board, XTurn)
		}()
	}
	wg.Wait()

	// Then: every search returns the same move and score
	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}

func TestTurn(t *testing.T) {
	assert.Equal(t, X, XTurn.Mark())
	assert.Equal(t, O, OTurn.Mark())
	assert.Equal(t, OTurn, XTurn.Next())
	assert.Equal(t, XTurn, TurnOf(X))
	assert.Equal(t, OTurn, TurnOf(O))
	assert.Equal(t, "X", XTurn.String())
}
