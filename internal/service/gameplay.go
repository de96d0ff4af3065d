package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/draughts-backend/internal/apperror"
	"github.com/rocketscienceinc/draughts-backend/internal/draughts"
	"github.com/rocketscienceinc/draughts-backend/internal/entity"
)

type GamePlayService interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	CreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeMove(ctx context.Context, gameID, playerID string, coordinates []draughts.Coordinate) (*entity.Game, error)
	Resign(ctx context.Context, gameID, playerID string) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	randomizer    draughts.Randomizer
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, randomizer draughts.Randomizer) GamePlayService {
	return &gamePlayService{
		logger:        logger.With("component", "gameplay"),
		playerService: playerService,
		gameService:   gameService,
		randomizer:    randomizer,
	}
}

func (that *gamePlayService) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player, err := that.playerService.CreatePlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// CreateGame - returns the player's current game or hosts a new one.
func (that *gamePlayService) CreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		if err == nil {
			return game, nil
		}

		if !errors.Is(err, apperror.ErrGameNotFound) {
			return nil, fmt.Errorf("failed to get game: %w", err)
		}
	}

	game, updatedPlayer, err := that.gameService.CreateGame(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, updatedPlayer); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == gameID {
		return that.GetGame(ctx, gameID)
	}

	if player.GameID != "" {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrAlreadyInGame, player.GameID)
	}

	game, err := that.gameService.UpdateGameByID(ctx, gameID, func(game *entity.Game) error {
		return game.Join(player)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) MakeMove(ctx context.Context, gameID, playerID string, coordinates []draughts.Coordinate) (*entity.Game, error) {
	return that.play(ctx, gameID, playerID, func(game *entity.Game, color string) error {
		return game.MakeMove(color, coordinates, that.randomizer)
	})
}

func (that *gamePlayService) Resign(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	return that.play(ctx, gameID, playerID, func(game *entity.Game, color string) error {
		return game.Resign(color, that.randomizer)
	})
}

func (that *gamePlayService) play(ctx context.Context, gameID, playerID string, action func(game *entity.Game, color string) error) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != gameID {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrNotInGame, gameID)
	}

	game, err := that.gameService.UpdateGameByID(ctx, gameID, func(game *entity.Game) error {
		return action(game, player.Color)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.CleanupGame(ctx, game)
	}

	return game, nil
}

// CleanupGame - drops a finished game and frees its players for a new one.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		released := *player
		released.Leave()
		if err := that.playerService.UpdatePlayer(ctx, &released); err != nil {
			log.Error("failed to update", "player", player.ID, "error", err)
		}
	}

	log.Info("game finished", "winner", game.Winner)
}
