package draughts

// Piece decides whether one leg of a move is legal for it.
//
// between holds the occupants of the squares strictly between the leg's
// origin and target, in order, with nil for empty squares. pair is the
// zero-based index of the leg inside coordinates.
type Piece interface {
	Color() Color
	IsCorrectMovement(between []Piece, pair int, coordinates []Coordinate) error
	Code() rune
}

const manMaxDistance = 2

// Man moves one square forward or jumps two squares over an enemy piece.
type Man struct {
	color Color
}

func NewMan(color Color) Man {
	return Man{color: color}
}

func (that Man) Color() Color {
	return that.color
}

func (that Man) IsCorrectMovement(between []Piece, pair int, coordinates []Coordinate) error {
	origin, target := coordinates[pair], coordinates[pair+1]
	if err := checkDiagonalCapture(that.color, between, origin, target); err != nil {
		return err
	}

	if !that.isAdvanced(origin, target) {
		return ErrNotAdvanced
	}

	distance := origin.DiagonalDistance(target)
	if distance > manMaxDistance {
		return ErrTooMuchAdvanced
	}

	if distance == manMaxDistance && countOccupied(between) != 1 {
		return ErrWithoutEating
	}

	return nil
}

// isAdvanced - white men move towards row 0, black men towards the last row.
func (that Man) isAdvanced(origin, target Coordinate) bool {
	difference := target.Row() - origin.Row()
	if that.color == White {
		return difference < 0
	}

	return difference > 0
}

func (that Man) Code() rune {
	if that.color == White {
		return 'w'
	}
	return 'b'
}

// King moves any distance in any diagonal direction and captures at most one piece per leg.
type King struct {
	color Color
}

func NewKing(color Color) King {
	return King{color: color}
}

func (that King) Color() Color {
	return that.color
}

func (that King) IsCorrectMovement(between []Piece, pair int, coordinates []Coordinate) error {
	if err := checkDiagonalCapture(that.color, between, coordinates[pair], coordinates[pair+1]); err != nil {
		return err
	}

	if countOccupied(between) > 1 {
		return ErrTooMuchEatings
	}

	return nil
}

func (that King) Code() rune {
	if that.color == White {
		return 'W'
	}
	return 'B'
}

func checkDiagonalCapture(color Color, between []Piece, origin, target Coordinate) error {
	if !origin.IsOnDiagonal(target) {
		return ErrNotDiagonal
	}

	for _, piece := range between {
		if piece != nil && piece.Color() == color {
			return ErrColleagueEating
		}
	}

	return nil
}

func countOccupied(pieces []Piece) int {
	count := 0
	for _, piece := range pieces {
		if piece != nil {
			count++
		}
	}

	return count
}

// pieceFromCode - inverse of Piece.Code; ok is false for empty squares.
func pieceFromCode(code rune) (Piece, bool, error) {
	switch code {
	case 'w':
		return NewMan(White), true, nil
	case 'b':
		return NewMan(Black), true, nil
	case 'W':
		return NewKing(White), true, nil
	case 'B':
		return NewKing(Black), true, nil
	case ' ', '.':
		return nil, false, nil
	default:
		return nil, false, ErrUnknownPieceCode
	}
}
