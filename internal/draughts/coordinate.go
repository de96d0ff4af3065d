package draughts

import (
	"fmt"
)

// Dimension is the side length of the board.
const Dimension = 8

var directions = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// Coordinate is an immutable 0-based (row, column) position on the board.
type Coordinate struct {
	row    int
	column int
}

// NewCoordinate - builds a coordinate, rejecting positions outside the board.
func NewCoordinate(row, column int) (Coordinate, error) {
	if !isWithin(row, column) {
		return Coordinate{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBoard, row, column)
	}

	return Coordinate{row: row, column: column}, nil
}

func isWithin(row, column int) bool {
	return row >= 0 && row < Dimension && column >= 0 && column < Dimension
}

func (that Coordinate) Row() int {
	return that.row
}

func (that Coordinate) Column() int {
	return that.column
}

// IsDark - reports whether the square is a playable one.
func (that Coordinate) IsDark() bool {
	return (that.row+that.column)%2 != 0
}

// IsOnDiagonal - true when both coordinates share a diagonal and differ.
func (that Coordinate) IsOnDiagonal(other Coordinate) bool {
	rowDelta := abs(that.row - other.row)

	return rowDelta > 0 && rowDelta == abs(that.column-other.column)
}

// DiagonalDistance - number of diagonal steps between two aligned coordinates.
func (that Coordinate) DiagonalDistance(other Coordinate) int {
	if !that.IsOnDiagonal(other) {
		panic(fmt.Sprintf("draughts: %s and %s are not on a diagonal", that, other))
	}

	return abs(that.row - other.row)
}

// BetweenDiagonalCoordinates - the squares strictly between two aligned coordinates, ordered from that to other.
func (that Coordinate) BetweenDiagonalCoordinates(other Coordinate) []Coordinate {
	distance := that.DiagonalDistance(other)

	rowStep := sign(other.row - that.row)
	columnStep := sign(other.column - that.column)

	between := make([]Coordinate, 0, distance-1)
	for i := 1; i < distance; i++ {
		between = append(between, Coordinate{
			row:    that.row + i*rowStep,
			column: that.column + i*columnStep,
		})
	}

	return between
}

// DiagonalCoordinates - the coordinates exactly distance steps away on every diagonal that stay on the board.
func (that Coordinate) DiagonalCoordinates(distance int) []Coordinate {
	coordinates := make([]Coordinate, 0, len(directions))
	for _, direction := range directions {
		row := that.row + direction[0]*distance
		column := that.column + direction[1]*distance
		if isWithin(row, column) {
			coordinates = append(coordinates, Coordinate{row: row, column: column})
		}
	}

	return coordinates
}

// DestinationDiagonalCoordinates - candidate landing squares of a single jump.
func (that Coordinate) DestinationDiagonalCoordinates() []Coordinate {
	return that.DiagonalCoordinates(2)
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", that.row, that.column)
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

func sign(value int) int {
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	default:
		return 0
	}
}
