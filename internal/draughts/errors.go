package draughts

import "errors"

var (
	ErrOutOfBoard = errors.New("coordinate is out of the board")
	ErrBadFormat  = errors.New("a move needs at least two coordinates")

	ErrEmptyOrigin    = errors.New("origin square is empty")
	ErrOppositePiece  = errors.New("origin piece belongs to the opponent")
	ErrNotEmptyTarget = errors.New("target square is not empty")

	ErrNotDiagonal      = errors.New("movement is not diagonal")
	ErrNotAdvanced      = errors.New("man can only move forward")
	ErrTooMuchAdvanced  = errors.New("man can not move that far")
	ErrWithoutEating    = errors.New("jump does not capture exactly one piece")
	ErrColleagueEating  = errors.New("can not capture a piece of the same color")
	ErrTooMuchEatings   = errors.New("can not capture more than one piece per jump")
	ErrTooMuchJumps     = errors.New("every jump of a chained move must capture")
	ErrUnknownPieceCode = errors.New("unknown piece code")
	ErrUnknownColor     = errors.New("unknown color")
	ErrBoardShape       = errors.New("board rows do not match the dimension")
)
