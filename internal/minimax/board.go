package minimax

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Rows    = 3
	Columns = 3

	// MaxPlies is the number of marks a full board holds.
	MaxPlies = Rows * Columns
)

var ErrInvalidBoard = errors.New("invalid board")

type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Location identifies one cell of the board.
type Location struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// NoLocation is returned when there is no move to make.
var NoLocation = Location{Row: -1, Column: -1}

func LocationFromIndex(index int) Location {
	return Location{Row: index / Columns, Column: index % Columns}
}

// Index - returns the row-major cell index of the location.
func (that Location) Index() int {
	return that.Row*Columns + that.Column
}

func (that Location) IsValid() bool {
	return that.Row >= 0 && that.Row < Rows && that.Column >= 0 && that.Column < Columns
}

// Board is a 3x3 grid in row-major order. It is a value type: assigning a
// Board copies all of its cells.
type Board [Rows][Columns]Cell

// ParseBoard - reads the 9-cell text form of a board, e.g. "XO./.X./..O".
// '/', '|', tabs and newlines separate rows; a space is an empty cell.
func ParseBoard(s string) (Board, error) {
	var board Board

	index := 0
	for _, r := range s {
		var cell Cell

		switch r {
		case 'X', 'x':
			cell = X
		case 'O', 'o', '0':
			cell = O
		case '.', '-', '_', ' ':
			cell = Empty
		case '/', '|', '\n', '\r', '\t':
			continue
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidBoard, r)
		}

		if index >= MaxPlies {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, MaxPlies)
		}

		board.Set(LocationFromIndex(index), cell)
		index++
	}

	if index != MaxPlies {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, index, MaxPlies)
	}

	return board, nil
}

// Reset - fills every cell with Empty.
func (that *Board) Reset() {
	*that = Board{}
}

func (that *Board) Get(loc Location) Cell {
	return that[loc.Row][loc.Column]
}

func (that *Board) Set(loc Location, mark Cell) {
	that[loc.Row][loc.Column] = mark
}

// IsFull - reports whether no Empty cell remains.
func (that *Board) IsFull() bool {
	for row := 0; row < Rows; row++ {
		for column := 0; column < Columns; column++ {
			if that[row][column] == Empty {
				return false
			}
		}
	}

	return true
}

// EmptyLocations - returns every Empty location in row-major order.
// Move selection breaks ties by this order, so it must not change.
func (that *Board) EmptyLocations() []Location {
	locations := make([]Location, 0, MaxPlies)

	for row := 0; row < Rows; row++ {
		for column := 0; column < Columns; column++ {
			if that[row][column] == Empty {
				locations = append(locations, Location{Row: row, Column: column})
			}
		}
	}

	return locations
}

func (that *Board) Count(mark Cell) int {
	count := 0

	for row := 0; row < Rows; row++ {
		for column := 0; column < Columns; column++ {
			if that[row][column] == mark {
				count++
			}
		}
	}

	return count
}

// String - renders the board as three rows separated by '/'.
func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < Rows; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for column := 0; column < Columns; column++ {
			sb.WriteString(that[row][column].String())
		}
	}

	return sb.String()
}
