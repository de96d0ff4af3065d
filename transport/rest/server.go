package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/draughts-backend/internal/draughts"
	"github.com/rocketscienceinc/draughts-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gamePlay interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	CreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeMove(ctx context.Context, gameID, playerID string, coordinates []draughts.Coordinate) (*entity.Game, error)
	Resign(ctx context.Context, gameID, playerID string) (*entity.Game, error)
}

type Server struct {
	logger   *slog.Logger
	gamePlay gamePlay
}

func New(logger *slog.Logger, gamePlay gamePlay) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
	}
}

// Handler - routes of the HTTP API.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.handlePing)

	mux.HandleFunc("POST /players", that.handleCreatePlayer)

	mux.HandleFunc("POST /games", that.handleCreateGame)
	mux.HandleFunc("GET /games/{id}", that.handleGetGame)
	mux.HandleFunc("POST /games/{id}/join", that.handleJoinGame)
	mux.HandleFunc("POST /games/{id}/moves", that.handleMove)
	mux.HandleFunc("POST /games/{id}/resign", that.handleResign)

	return mux
}

// Start - serves the API on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
