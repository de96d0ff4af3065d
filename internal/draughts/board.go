package draughts

import (
	"fmt"
	"strings"
)

const emptySquare = '.'

// Board maps occupied coordinates to their pieces.
type Board struct {
	pieces map[Coordinate]Piece
}

func NewBoard() *Board {
	return &Board{
		pieces: make(map[Coordinate]Piece),
	}
}

// ParseBoard - builds a board from Dimension rows of Dimension piece codes.
// 'w' and 'b' are men, 'W' and 'B' kings, ' ' or '.' an empty square.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != Dimension {
		return nil, fmt.Errorf("%w: %d rows", ErrBoardShape, len(rows))
	}

	board := NewBoard()
	for row, line := range rows {
		codes := []rune(line)
		if len(codes) != Dimension {
			return nil, fmt.Errorf("%w: row %d has %d squares", ErrBoardShape, row, len(codes))
		}

		for column, code := range codes {
			piece, ok, err := pieceFromCode(code)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", err, code, row, column)
			}

			if ok {
				board.Put(Coordinate{row: row, column: column}, piece)
			}
		}
	}

	return board, nil
}

// Put - places piece on coordinate; a nil piece clears the square.
func (that *Board) Put(coordinate Coordinate, piece Piece) {
	if piece == nil {
		delete(that.pieces, coordinate)
		return
	}

	that.pieces[coordinate] = piece
}

// Remove - clears the square and returns its previous occupant.
func (that *Board) Remove(coordinate Coordinate) Piece {
	piece := that.pieces[coordinate]
	delete(that.pieces, coordinate)

	return piece
}

// Move - relocates the piece on origin to target. Callers check that origin is occupied and target empty.
func (that *Board) Move(origin, target Coordinate) {
	that.Put(target, that.Remove(origin))
}

func (that *Board) Piece(coordinate Coordinate) Piece {
	return that.pieces[coordinate]
}

func (that *Board) IsEmpty(coordinate Coordinate) bool {
	_, ok := that.pieces[coordinate]
	return !ok
}

func (that *Board) Color(coordinate Coordinate) Color {
	piece, ok := that.pieces[coordinate]
	if !ok {
		return NoColor
	}

	return piece.Color()
}

// BetweenDiagonalPieces - occupants of the squares strictly between origin and target, nil for empty ones.
func (that *Board) BetweenDiagonalPieces(origin, target Coordinate) []Piece {
	between := origin.BetweenDiagonalCoordinates(target)

	pieces := make([]Piece, 0, len(between))
	for _, coordinate := range between {
		pieces = append(pieces, that.pieces[coordinate])
	}

	return pieces
}

// Coordinates - occupied coordinates of color in row-major order.
func (that *Board) Coordinates(color Color) []Coordinate {
	var coordinates []Coordinate
	for row := range Dimension {
		for column := range Dimension {
			coordinate := Coordinate{row: row, column: column}
			if that.Color(coordinate) == color {
				coordinates = append(coordinates, coordinate)
			}
		}
	}

	return coordinates
}

func (that *Board) Clone() *Board {
	clone := NewBoard()
	for coordinate, piece := range that.pieces {
		clone.pieces[coordinate] = piece
	}

	return clone
}

func (that *Board) Equal(other *Board) bool {
	if len(that.pieces) != len(other.pieces) {
		return false
	}

	for coordinate, piece := range that.pieces {
		if other.pieces[coordinate] != piece {
			return false
		}
	}

	return true
}

// Rows - textual form accepted by ParseBoard.
func (that *Board) Rows() []string {
	rows := make([]string, 0, Dimension)
	for row := range Dimension {
		var line strings.Builder
		for column := range Dimension {
			piece, ok := that.pieces[Coordinate{row: row, column: column}]
			if !ok {
				line.WriteRune(emptySquare)
				continue
			}
			line.WriteRune(piece.Code())
		}
		rows = append(rows, line.String())
	}

	return rows
}

func (that *Board) String() string {
	return strings.Join(that.Rows(), "\n")
}
