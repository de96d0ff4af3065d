// Package draughts implements the rules of draughts: move validation,
// chained captures, the missed capture penalty and blocked positions.
//
// A Game is not safe for concurrent use.
package draughts

import (
	"fmt"
	"math/rand"
	"time"
)

// Randomizer picks the piece removed by the missed capture penalty.
// *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

type Option func(game *Game)

// WithRandomizer - replaces the time seeded default source.
func WithRandomizer(randomizer Randomizer) Option {
	return func(game *Game) {
		game.randomizer = randomizer
	}
}

type Game struct {
	board      *Board
	turn       *Turn
	randomizer Randomizer
}

// step is one applied leg, kept so that a rejected move can be undone.
type step struct {
	origin     Coordinate
	target     Coordinate
	captured   Piece
	capturedAt Coordinate
}

// NewGame - a game in the starting position with white to move.
func NewGame(opts ...Option) *Game {
	game := NewGameWithBoard(NewBoard(), White, opts...)
	game.Reset()

	return game
}

// NewGameWithBoard - a game over an already populated board.
func NewGameWithBoard(board *Board, turn Color, opts ...Option) *Game {
	game := &Game{
		board:      board,
		turn:       &Turn{color: turn},
		randomizer: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint: gosec // not security sensitive
	}

	for _, opt := range opts {
		opt(game)
	}

	return game
}

// Reset - restores the starting position and gives the turn to white.
func (that *Game) Reset() {
	for row := range Dimension {
		for column := range Dimension {
			coordinate := Coordinate{row: row, column: column}

			var piece Piece
			if color := InitialColor(coordinate); color != NoColor {
				piece = NewMan(color)
			}
			that.board.Put(coordinate, piece)
		}
	}

	that.turn.color = White
}

// Move - validates and applies a simple move (two coordinates) or a chain of jumps.
// Either the whole move is applied and the turn passes, or the board is left untouched
// and the first error found is returned.
func (that *Game) Move(coordinates ...Coordinate) error {
	if len(coordinates) < 2 {
		return fmt.Errorf("%w: got %d", ErrBadFormat, len(coordinates))
	}

	var (
		steps []step
		err   error
	)
	for pair := 0; pair < len(coordinates)-1; pair++ {
		if err = that.isCorrectPairMove(pair, coordinates); err != nil {
			err = fmt.Errorf("%w: %s -> %s", err, coordinates[pair], coordinates[pair+1])
			break
		}
		steps = append(steps, that.pairMove(pair, coordinates))
	}

	if err == nil {
		err = isCorrectGlobalMove(steps, coordinates)
	}

	if err != nil {
		that.undo(steps)
		return err
	}

	that.penalizeMissedCapture(coordinates)
	that.turn.Change()

	return nil
}

func (that *Game) isCorrectPairMove(pair int, coordinates []Coordinate) error {
	origin, target := coordinates[pair], coordinates[pair+1]

	if that.board.IsEmpty(origin) {
		return ErrEmptyOrigin
	}

	if that.board.Color(origin) == that.turn.Opposite() {
		return ErrOppositePiece
	}

	if !that.board.IsEmpty(target) {
		return ErrNotEmptyTarget
	}

	if !origin.IsOnDiagonal(target) {
		return ErrNotDiagonal
	}

	between := that.board.BetweenDiagonalPieces(origin, target)

	return that.board.Piece(origin).IsCorrectMovement(between, pair, coordinates)
}

func (that *Game) pairMove(pair int, coordinates []Coordinate) step {
	applied := step{origin: coordinates[pair], target: coordinates[pair+1]}

	for _, coordinate := range applied.origin.BetweenDiagonalCoordinates(applied.target) {
		if !that.board.IsEmpty(coordinate) {
			applied.captured = that.board.Remove(coordinate)
			applied.capturedAt = coordinate
			break
		}
	}

	that.board.Move(applied.origin, applied.target)

	return applied
}

// isCorrectGlobalMove - in a chain every leg has to capture.
func isCorrectGlobalMove(steps []step, coordinates []Coordinate) error {
	if len(coordinates) <= 2 {
		return nil
	}

	captures := 0
	for _, applied := range steps {
		if applied.captured != nil {
			captures++
		}
	}

	if captures < len(coordinates)-1 {
		return ErrTooMuchJumps
	}

	return nil
}

func (that *Game) undo(steps []step) {
	for i := len(steps) - 1; i >= 0; i-- {
		that.board.Move(steps[i].target, steps[i].origin)
		if steps[i].captured != nil {
			that.board.Put(steps[i].capturedAt, steps[i].captured)
		}
	}
}

// penalizeMissedCapture - a simple move made while its origin could capture loses the moved piece,
// and any move leaving a capture available costs one randomly chosen capturing piece.
func (that *Game) penalizeMissedCapture(coordinates []Coordinate) {
	if len(coordinates) == 2 && that.canCapture(coordinates[0]) {
		that.board.Remove(coordinates[1])
	}

	var capturers []Coordinate
	for _, coordinate := range that.board.Coordinates(that.turn.Color()) {
		if that.canCapture(coordinate) {
			capturers = append(capturers, coordinate)
		}
	}

	if len(capturers) > 0 {
		that.board.Remove(capturers[that.randomizer.Intn(len(capturers))])
	}
}

// canCapture - an enemy piece sits next to origin with an empty square behind it.
func (that *Game) canCapture(origin Coordinate) bool {
	for _, landing := range origin.DestinationDiagonalCoordinates() {
		if !that.board.IsEmpty(landing) {
			continue
		}

		jumped := origin.BetweenDiagonalCoordinates(landing)[0]
		if color := that.board.Color(jumped); color != NoColor && color != that.turn.Color() {
			return true
		}
	}

	return false
}

// IsBlocked - the side to move has no legal step or jump.
func (that *Game) IsBlocked() bool {
	for _, coordinate := range that.board.Coordinates(that.turn.Color()) {
		if !that.isBlocked(coordinate) {
			return false
		}
	}

	return true
}

func (that *Game) isBlocked(origin Coordinate) bool {
	for distance := 1; distance <= manMaxDistance; distance++ {
		for _, target := range origin.DiagonalCoordinates(distance) {
			if that.isCorrectPairMove(0, []Coordinate{origin, target}) == nil {
				return false
			}
		}
	}

	return true
}

// Cancel - the side to move resigns: all its pieces leave the board and the turn passes.
func (that *Game) Cancel() {
	for _, coordinate := range that.board.Coordinates(that.turn.Color()) {
		that.board.Remove(coordinate)
	}

	that.turn.Change()
}

func (that *Game) Color(coordinate Coordinate) Color {
	return that.board.Color(coordinate)
}

func (that *Game) Piece(coordinate Coordinate) Piece {
	return that.board.Piece(coordinate)
}

func (that *Game) TurnColor() Color {
	return that.turn.Color()
}

func (that *Game) Dimension() int {
	return Dimension
}

// Board - a copy of the current position.
func (that *Game) Board() *Board {
	return that.board.Clone()
}

// Equal - same position and same side to move.
func (that *Game) Equal(other *Game) bool {
	return that.turn.Color() == other.turn.Color() && that.board.Equal(other.board)
}

func (that *Game) String() string {
	return that.board.String() + "\n" + that.turn.String()
}
