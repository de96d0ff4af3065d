package draughts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandomizer always picks the same index and remembers the bounds it was asked for.
type fixedRandomizer struct {
	index int
	calls []int
}

func (that *fixedRandomizer) Intn(n int) int {
	that.calls = append(that.calls, n)
	return that.index
}

func at(row, column int) Coordinate {
	return Coordinate{row: row, column: column}
}

func newTestGame(t *testing.T, turn Color, rows ...string) (*Game, *fixedRandomizer) {
	t.Helper()

	board, err := ParseBoard(rows...)
	require.NoError(t, err)

	randomizer := &fixedRandomizer{}

	return NewGameWithBoard(board, turn, WithRandomizer(randomizer)), randomizer
}

func assertPosition(t *testing.T, game *Game, turn Color, rows ...string) {
	t.Helper()

	expected, err := ParseBoard(rows...)
	require.NoError(t, err)

	if diff := cmp.Diff(expected.Rows(), game.Board().Rows()); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, turn, game.TurnColor())
}
