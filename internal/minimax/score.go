package minimax

type Outcome uint8

const (
	NotOver Outcome = iota
	XWin
	OWin
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWin:
		return "x_win"
	case OWin:
		return "o_win"
	case Draw:
		return "draw"
	default:
		return "not_over"
	}
}

// Lines holds the 3 rows, 3 columns and 2 diagonals, in the order Evaluate tests them.
var Lines = [8][3]Location{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate - classifies the board. A completed line wins even when empty
// cells remain, and a full board with a completed line is never a draw.
// Boards holding winning lines for both marks report the first line found.
func Evaluate(board *Board) Outcome {
	for _, line := range Lines {
		a, b, c := board.Get(line[0]), board.Get(line[1]), board.Get(line[2])
		if a == Empty || a != b || b != c {
			continue
		}

		if a == X {
			return XWin
		}

		return OWin
	}

	if board.IsFull() {
		return Draw
	}

	return NotOver
}

func IsGameOver(outcome Outcome) bool {
	return outcome != NotOver
}

// WinRank is the base magnitude of a won or lost position before the depth bias.
const WinRank = 10

// Score is a terminal outcome together with the rank used to order
// candidate moves: positive favours X, negative favours O.
type Score struct {
	Outcome Outcome `json:"outcome"`
	Rank    int     `json:"rank"`
}

// rank - maps a terminal outcome reached after plies half-moves to a Score.
// Wins reached sooner and losses reached later rank further from zero and
// closer to zero respectively; a draw is always 0.
func rank(outcome Outcome, plies int) Score {
	bias := MaxPlies - plies

	switch outcome {
	case XWin:
		return Score{Outcome: outcome, Rank: WinRank + bias}
	case OWin:
		return Score{Outcome: outcome, Rank: -(WinRank + bias)}
	default:
		return Score{Outcome: outcome}
	}
}
