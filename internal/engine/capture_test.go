package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go_tutor/internal/domain/game"
)

func newTestGame(t *testing.T, size int) *Game {
	t.Helper()
	g, err := NewGame(size, Rules{Komi: 6.5, ScoreCaptures: true})
	require.NoError(t, err)
	return g
}

// A black L-group with every liberty filled except one. The capturing move
// must leave zero residual black stones, atomically.
func TestAtomicThreeStoneCapture(t *testing.T) {
	g := newTestGame(t, 9)
	black := []game.Point{{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 3}}
	white := []game.Point{
		{X: 2, Y: 3}, {X: 3, Y: 2}, {X: 2, Y: 4},
		{X: 3, Y: 5}, {X: 5, Y: 3}, {X: 4, Y: 2},
	}
	for _, p := range black {
		g.board.set(p.X, p.Y, game.Black)
	}
	for _, p := range white {
		g.board.set(p.X, p.Y, game.White)
	}
	g.current = game.White

	move, err := g.PlaceStone(4, 4)
	require.NoError(t, err)
	require.Len(t, move.Captured, 3)
	require.ElementsMatch(t, black, move.Captured)

	require.Equal(t, 0, g.board.CountStones(game.Black))
	for _, p := range black {
		require.Equal(t, game.Empty, g.board.At(p.X, p.Y), "residual stone at %v", p)
	}
	require.Equal(t, game.White, g.board.At(4, 4))
	require.Equal(t, len(white)+1, g.board.CountStones(game.White))
	require.Equal(t, 3, g.CapturedBy(game.White))
}

// One move bordering the same opponent group from two directions must count
// its stones exactly once.
func TestNoDoubleCountingSameGroup(t *testing.T) {
	g := newTestGame(t, 9)
	// White U-shape around (4,4): the move at (4,4) touches the group from
	// the left, the right and below.
	white := []game.Point{{X: 3, Y: 4}, {X: 5, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 5}, {X: 5, Y: 5}}
	// Black ring removing every white liberty except (4,4).
	black := []game.Point{
		{X: 2, Y: 4}, {X: 6, Y: 4}, {X: 3, Y: 3}, {X: 5, Y: 3},
		{X: 2, Y: 5}, {X: 6, Y: 5}, {X: 3, Y: 6}, {X: 4, Y: 6}, {X: 5, Y: 6},
	}
	for _, p := range white {
		g.board.set(p.X, p.Y, game.White)
	}
	for _, p := range black {
		g.board.set(p.X, p.Y, game.Black)
	}
	g.current = game.Black

	move, err := g.PlaceStone(4, 4)
	require.NoError(t, err)
	require.Len(t, move.Captured, len(white))
	require.ElementsMatch(t, white, move.Captured)
	require.Equal(t, len(white), g.CapturedBy(game.Black))
	require.Equal(t, 0, g.board.CountStones(game.White))
}

// Two separate opponent groups dying to the same move are both removed.
func TestCaptureTwoGroupsAtOnce(t *testing.T) {
	g := newTestGame(t, 9)
	// Two lone white stones on either side of (4,4), each down to the
	// shared point as its last liberty.
	g.board.set(3, 4, game.White)
	g.board.set(5, 4, game.White)
	for _, p := range []game.Point{
		{X: 2, Y: 4}, {X: 3, Y: 3}, {X: 3, Y: 5},
		{X: 6, Y: 4}, {X: 5, Y: 3}, {X: 5, Y: 5},
		{X: 4, Y: 3}, {X: 4, Y: 5},
	} {
		g.board.set(p.X, p.Y, game.Black)
	}
	g.current = game.Black

	move, err := g.PlaceStone(4, 4)
	require.NoError(t, err)
	require.ElementsMatch(t, []game.Point{{X: 3, Y: 4}, {X: 5, Y: 4}}, move.Captured)
	require.Equal(t, 0, g.board.CountStones(game.White))
	// Two single-stone captures do not create a ko point.
	require.Nil(t, g.KoPoint())
}

// Capture evaluation must run against the pre-removal board: a group that
// still has a liberty elsewhere survives even when its neighbor dies.
func TestOnlyDeadGroupsAreRemoved(t *testing.T) {
	g := newTestGame(t, 9)
	g.board.set(3, 4, game.White) // will die
	g.board.set(4, 3, game.White) // keeps a liberty at (4,2)... stays
	for _, p := range []game.Point{
		{X: 2, Y: 4}, {X: 3, Y: 3}, {X: 3, Y: 5}, {X: 5, Y: 3},
	} {
		g.board.set(p.X, p.Y, game.Black)
	}
	g.current = game.Black

	move, err := g.PlaceStone(4, 4)
	require.NoError(t, err)
	require.ElementsMatch(t, []game.Point{{X: 3, Y: 4}}, move.Captured)
	require.Equal(t, game.White, g.board.At(4, 3))
}
