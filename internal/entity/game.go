package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/draughts-backend/internal/apperror"
	"github.com/rocketscienceinc/draughts-backend/internal/draughts"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	maxPlayers = 2
)

var (
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrCorruptedPosition = errors.New("stored position is corrupted")
)

// Game is the stored form of a draughts game: the position as rows of piece codes plus the side to move.
type Game struct {
	ID      string    `json:"id"`
	Board   []string  `json:"board"`
	Turn    string    `json:"turn"`
	Winner  string    `json:"winner,omitempty"`
	Status  string    `json:"status"`
	Players []*Player `json:"players,omitempty"`
}

func NewGame(id string) *Game {
	game := &Game{
		ID:     id,
		Status: StatusWaiting,
	}
	game.store(draughts.NewGame())

	return game
}

// Rules - rebuilds the rules engine over the stored position.
func (that *Game) Rules(randomizer draughts.Randomizer) (*draughts.Game, error) {
	board, err := draughts.ParseBoard(that.Board...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedPosition, err)
	}

	turn, err := draughts.ParseColor(that.Turn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedPosition, err)
	}

	return draughts.NewGameWithBoard(board, turn, draughts.WithRandomizer(randomizer)), nil
}

// MakeMove - applies a move of the player owning color and finishes the game when the opponent can not answer.
func (that *Game) MakeMove(color string, coordinates []draughts.Coordinate, randomizer draughts.Randomizer) error {
	rules, err := that.rulesFor(color, randomizer)
	if err != nil {
		return err
	}

	if err = rules.Move(coordinates...); err != nil {
		return fmt.Errorf("illegal move: %w", err)
	}

	that.store(rules)
	that.UpdateGameState(rules)

	return nil
}

// Resign - the player owning color gives up; its pieces leave the board.
func (that *Game) Resign(color string, randomizer draughts.Randomizer) error {
	rules, err := that.rulesFor(color, randomizer)
	if err != nil {
		return err
	}

	rules.Cancel()
	that.store(rules)
	that.finish(rules.TurnColor())

	return nil
}

func (that *Game) rulesFor(color string, randomizer draughts.Randomizer) (*draughts.Game, error) {
	if err := that.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if that.Turn != color {
		return nil, apperror.ErrNotYourTurn
	}

	return that.Rules(randomizer)
}

// UpdateGameState - a side to move without any legal move loses.
func (that *Game) UpdateGameState(rules *draughts.Game) {
	if rules.IsBlocked() {
		that.finish(rules.TurnColor().Opposite())
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) finish(winner draughts.Color) {
	that.Winner = winner.String()
	that.Status = StatusFinished
}

func (that *Game) store(rules *draughts.Game) {
	that.Board = rules.Board().Rows()
	that.Turn = rules.TurnColor().String()
}

// Join - seats player as black and starts the game.
func (that *Game) Join(player *Player) error {
	if len(that.Players) >= maxPlayers {
		return fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, that.ID)
	}

	player.GameID = that.ID
	player.Color = draughts.Black.String()

	that.Players = append(that.Players, player)
	that.Status = StatusOngoing

	return nil
}

func (that *Game) HasPlayer(playerID string) bool {
	for _, player := range that.Players {
		if player.ID == playerID {
			return true
		}
	}

	return false
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
