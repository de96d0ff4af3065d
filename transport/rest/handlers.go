package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rocketscienceinc/draughts-backend/internal/draughts"
)

var (
	ErrPlayerIDRequired = errors.New("player_id is required")
	ErrBadCoordinate    = errors.New("coordinate must be a [row, column] pair")
)

type playerRequest struct {
	PlayerID string `json:"player_id"`
}

type moveRequest struct {
	PlayerID    string  `json:"player_id"`
	Coordinates [][]int `json:"coordinates"`
}

// ToCoordinates - converts [[row, column], ...] into board coordinates.
func (that *moveRequest) ToCoordinates() ([]draughts.Coordinate, error) {
	coordinates := make([]draughts.Coordinate, 0, len(that.Coordinates))
	for _, pair := range that.Coordinates {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: %v", ErrBadCoordinate, pair)
		}

		coordinate, err := draughts.NewCoordinate(pair[0], pair[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadCoordinate, err)
		}

		coordinates = append(coordinates, coordinate)
	}

	return coordinates, nil
}

func (that *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			that.sendError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
			return
		}
	}

	player, err := that.gamePlay.GetOrCreatePlayer(r.Context(), req.PlayerID)
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, player)
}

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	req, ok := that.decodePlayer(w, r)
	if !ok {
		return
	}

	game, err := that.gamePlay.CreateGame(r.Context(), req.PlayerID)
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusCreated, game)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, game)
}

func (that *Server) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	req, ok := that.decodePlayer(w, r)
	if !ok {
		return
	}

	game, err := that.gamePlay.JoinGame(r.Context(), r.PathValue("id"), req.PlayerID)
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, game)
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.sendError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	if req.PlayerID == "" {
		that.sendError(w, r, fmt.Errorf("%w: %w", errBadRequest, ErrPlayerIDRequired))
		return
	}

	coordinates, err := req.ToCoordinates()
	if err != nil {
		that.sendError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	game, err := that.gamePlay.MakeMove(r.Context(), r.PathValue("id"), req.PlayerID, coordinates)
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, game)
}

func (that *Server) handleResign(w http.ResponseWriter, r *http.Request) {
	req, ok := that.decodePlayer(w, r)
	if !ok {
		return
	}

	game, err := that.gamePlay.Resign(r.Context(), r.PathValue("id"), req.PlayerID)
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, game)
}

func (that *Server) decodePlayer(w http.ResponseWriter, r *http.Request) (*playerRequest, bool) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.sendError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return nil, false
	}

	if req.PlayerID == "" {
		that.sendError(w, r, fmt.Errorf("%w: %w", errBadRequest, ErrPlayerIDRequired))
		return nil, false
	}

	return &req, true
}

func (that *Server) sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
