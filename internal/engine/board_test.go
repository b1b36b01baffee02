package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go_tutor/internal/domain/game"
)

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(9)
	b.set(2, 3, game.Black)
	b.set(4, 4, game.White)

	clone := b.Clone()
	require.True(t, b.Equal(clone))

	clone.set(2, 3, game.Empty)
	require.False(t, b.Equal(clone))
	require.Equal(t, game.Black, b.At(2, 3))
}

func TestBoardGridSnapshotIsACopy(t *testing.T) {
	b := NewBoard(9)
	b.set(1, 1, game.Black)

	grid := b.Grid()
	require.Equal(t, game.Black, grid[1][1])

	grid[1][1] = game.White
	require.Equal(t, game.Black, b.At(1, 1))
}

func TestBoardInBounds(t *testing.T) {
	b := NewBoard(13)
	require.True(t, b.InBounds(0, 0))
	require.True(t, b.InBounds(12, 12))
	require.False(t, b.InBounds(-1, 5))
	require.False(t, b.InBounds(5, 13))
}

func TestBoardCountStones(t *testing.T) {
	b := NewBoard(9)
	b.set(0, 0, game.Black)
	b.set(1, 0, game.Black)
	b.set(2, 0, game.White)

	require.Equal(t, 2, b.CountStones(game.Black))
	require.Equal(t, 1, b.CountStones(game.White))
	require.Equal(t, 9*9-3, b.CountStones(game.Empty))
}
