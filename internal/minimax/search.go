package minimax

// Turn tells which mark moves next.
type Turn bool

const (
	XTurn Turn = true
	OTurn Turn = false
)

// TurnOf - returns the turn that places mark. Empty maps to OTurn.
func TurnOf(mark Cell) Turn {
	return mark == X
}

func (that Turn) Mark() Cell {
	if that == XTurn {
		return X
	}
	return O
}

func (that Turn) Next() Turn {
	return !that
}

func (that Turn) String() string {
	return that.Mark().String()
}

type searcher struct {
	nodes int
}

// search - exhaustive minimax over board. X maximizes and O minimizes.
// Every placement is undone before returning, so board is unchanged for
// the caller. The returned location is the move chosen at this level, or
// NoLocation when the position is already terminal.
func (that *searcher) search(board *Board, turn Turn, plies int) (Score, Location) {
	that.nodes++

	// only the mark that just moved, turn.Next(), can have completed a line here
	if outcome := Evaluate(board); IsGameOver(outcome) {
		return rank(outcome, plies), NoLocation
	}

	var (
		best     Score
		bestMove = NoLocation
	)

	mark := turn.Mark()
	for _, loc := range board.EmptyLocations() {
		board.Set(loc, mark)
		score, _ := that.search(board, turn.Next(), plies+1)
		board.Set(loc, Empty)

		if bestMove == NoLocation || better(turn, score, best) {
			best = score
			bestMove = loc
		}
	}

	return best, bestMove
}

// better - reports a strict improvement for the side to move, so ties keep
// the earliest candidate.
func better(turn Turn, candidate, kept Score) bool {
	if turn == XTurn {
		return candidate.Rank > kept.Rank
	}
	return candidate.Rank < kept.Rank
}
