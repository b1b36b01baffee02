package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"go_tutor/internal/domain/game"
	"go_tutor/internal/errors"
)

func TestNewGameValidatesSize(t *testing.T) {
	for _, size := range []int{9, 13, 19} {
		g, err := NewGame(size, DefaultRules())
		require.NoError(t, err)
		require.Equal(t, size, g.Size())
		require.Equal(t, game.Black, g.CurrentPlayer())
	}
	for _, size := range []int{0, 8, 10, 18, 21, -9} {
		_, err := NewGame(size, DefaultRules())
		require.ErrorIs(t, err, errors.ErrInvalidConfiguration)
	}
}

func TestPlaceStoneRejectsBadPoints(t *testing.T) {
	g := newTestGame(t, 9)

	_, err := g.PlaceStone(9, 0)
	require.ErrorIs(t, err, errors.ErrOutOfBounds)
	_, err = g.PlaceStone(-1, 4)
	require.ErrorIs(t, err, errors.ErrOutOfBounds)

	_, err = g.PlaceStone(4, 4)
	require.NoError(t, err)
	_, err = g.PlaceStone(4, 4)
	require.ErrorIs(t, err, errors.ErrPointOccupied)

	// Failed attempts must not advance the turn.
	require.Equal(t, game.White, g.CurrentPlayer())
	require.Equal(t, 1, g.MoveCount())
}

func TestSuicideIsRejectedAndRolledBack(t *testing.T) {
	g := newTestGame(t, 9)
	// Black hems in the corner point (0,0); White playing there would have
	// no liberties and captures nothing.
	g.board.set(1, 0, game.Black)
	g.board.set(0, 1, game.Black)
	g.current = game.White

	before := g.board.Clone()
	movesBefore := g.MoveCount()

	_, err := g.PlaceStone(0, 0)
	require.ErrorIs(t, err, errors.ErrSuicideMove)
	require.True(t, g.board.Equal(before), "board changed by a rejected move")
	require.Equal(t, game.White, g.CurrentPlayer())
	require.Equal(t, movesBefore, g.MoveCount())
	require.Equal(t, 0, g.CapturedBy(game.White))
}

func TestCaptureOnLastLibertyIsNotSuicide(t *testing.T) {
	g := newTestGame(t, 9)
	// White (0,0) has one liberty left at (1,0); Black filling it captures
	// instead of dying.
	g.board.set(0, 0, game.White)
	g.board.set(0, 1, game.Black)
	g.board.set(1, 1, game.Black)
	g.board.set(2, 0, game.Black)
	g.current = game.Black

	move, err := g.PlaceStone(1, 0)
	require.NoError(t, err)
	require.ElementsMatch(t, []game.Point{{X: 0, Y: 0}}, move.Captured)
}

// setupKo arranges the classic simple-ko shape and has Black take the ko.
func setupKo(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t, 9)
	for _, p := range []game.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}} {
		g.board.set(p.X, p.Y, game.Black)
	}
	for _, p := range []game.Point{{X: 2, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 2}} {
		g.board.set(p.X, p.Y, game.White)
	}
	g.current = game.Black

	move, err := g.PlaceStone(2, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, []game.Point{{X: 1, Y: 1}}, move.Captured)
	return g
}

func TestKoForbidsImmediateRecapture(t *testing.T) {
	g := setupKo(t)

	ko := g.KoPoint()
	require.NotNil(t, ko)
	require.Equal(t, game.Point{X: 1, Y: 1}, *ko)

	before := g.board.Clone()
	_, err := g.PlaceStone(1, 1)
	require.ErrorIs(t, err, errors.ErrKoViolation)
	require.True(t, g.board.Equal(before))
	require.Equal(t, game.White, g.CurrentPlayer())
}

func TestKoOpensAfterInterveningMove(t *testing.T) {
	g := setupKo(t)

	// White plays elsewhere, the ko point clears.
	_, err := g.PlaceStone(6, 6)
	require.NoError(t, err)
	require.Nil(t, g.KoPoint())

	// Black answers elsewhere, then White may retake the ko.
	_, err = g.PlaceStone(6, 7)
	require.NoError(t, err)

	move, err := g.PlaceStone(1, 1)
	require.NoError(t, err)
	require.ElementsMatch(t, []game.Point{{X: 2, Y: 1}}, move.Captured)
}

func TestKoNotSetForMultiStoneCapturingGroup(t *testing.T) {
	g := newTestGame(t, 9)
	// Black captures a single stone but the capturing stone joins an
	// existing group, so no ko point may be set.
	g.board.set(0, 0, game.White)
	g.board.set(0, 1, game.Black)
	g.board.set(1, 1, game.Black)
	g.board.set(2, 0, game.Black)
	g.current = game.Black

	move, err := g.PlaceStone(1, 0)
	require.NoError(t, err)
	require.Len(t, move.Captured, 1)
	require.Nil(t, g.KoPoint())
}

func TestPassClearsKo(t *testing.T) {
	g := setupKo(t)
	require.NotNil(t, g.KoPoint())

	_, err := g.Pass()
	require.NoError(t, err)
	require.Nil(t, g.KoPoint())
}

func TestTwoPassesFinishTheGame(t *testing.T) {
	g := newTestGame(t, 9)
	_, err := g.PlaceStone(4, 4)
	require.NoError(t, err)

	_, err = g.Pass()
	require.NoError(t, err)
	require.False(t, g.Finished())

	_, err = g.Pass()
	require.NoError(t, err)
	require.True(t, g.Finished())
	require.Equal(t, game.StatusFinished, g.Status())

	_, err = g.PlaceStone(5, 5)
	require.ErrorIs(t, err, errors.ErrGameOver)
	_, err = g.Pass()
	require.ErrorIs(t, err, errors.ErrGameOver)
}

func TestMoveBetweenPassesResetsCounter(t *testing.T) {
	g := newTestGame(t, 9)
	_, err := g.Pass()
	require.NoError(t, err)
	_, err = g.PlaceStone(3, 3)
	require.NoError(t, err)
	_, err = g.Pass()
	require.NoError(t, err)
	require.False(t, g.Finished())
}

func TestScoringCountsStonesTerritoryAndKomi(t *testing.T) {
	g, err := NewGame(9, Rules{Komi: 0.5, ScoreCaptures: true})
	require.NoError(t, err)
	// Black walls off the corner point (0,0); one point of exclusive black
	// territory. A lone white stone holds the far corner area open but
	// encloses nothing exclusively.
	g.board.set(1, 0, game.Black)
	g.board.set(0, 1, game.Black)
	g.board.set(1, 1, game.Black)
	g.board.set(7, 7, game.White)

	_, err = g.Pass()
	require.NoError(t, err)
	_, err = g.Pass()
	require.NoError(t, err)

	score := g.Score()
	// 3 stones + (0,0). The big open region touches both colors: neutral.
	require.InDelta(t, 4.0, score.Black, 1e-9)
	// 1 stone + komi.
	require.InDelta(t, 1.5, score.White, 1e-9)
	require.Equal(t, game.Black, score.Winner())
}

func TestScoringIdempotentOnTerminalGame(t *testing.T) {
	g := newTestGame(t, 9)
	_, err := g.PlaceStone(2, 2)
	require.NoError(t, err)
	_, err = g.PlaceStone(6, 6)
	require.NoError(t, err)
	_, err = g.Pass()
	require.NoError(t, err)
	_, err = g.Pass()
	require.NoError(t, err)

	first := g.Score()
	second := g.Score()
	require.Equal(t, first, second)
}

func TestTieIsReportedNotResolved(t *testing.T) {
	g, err := NewGame(9, Rules{Komi: 0, ScoreCaptures: true})
	require.NoError(t, err)
	// One stone each, no exclusive territory anywhere.
	g.board.set(2, 2, game.Black)
	g.board.set(6, 6, game.White)

	_, err = g.Pass()
	require.NoError(t, err)
	_, err = g.Pass()
	require.NoError(t, err)

	score := g.Score()
	require.Equal(t, score.Black, score.White)
	require.Equal(t, game.Empty, score.Winner())
}

func TestCapturesCanBeExcludedFromScore(t *testing.T) {
	withCaptures, err := NewGame(9, Rules{Komi: 0, ScoreCaptures: true})
	require.NoError(t, err)
	withoutCaptures, err := NewGame(9, Rules{Komi: 0, ScoreCaptures: false})
	require.NoError(t, err)

	for _, g := range []*Game{withCaptures, withoutCaptures} {
		g.board.set(0, 0, game.White)
		g.board.set(0, 1, game.Black)
		g.board.set(1, 1, game.Black)
		g.board.set(2, 0, game.Black)
		g.current = game.Black
		_, err := g.PlaceStone(1, 0)
		require.NoError(t, err)
	}

	require.Equal(t, withCaptures.Score().Black, withoutCaptures.Score().Black+1)
}

// IsLegal must agree with PlaceStone on every point of a random game, since
// the AI builds its candidate set from it.
func TestIsLegalMatchesPlaceStone(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	g := newTestGame(t, 9)

	for i := 0; i < 40; i++ {
		legal := g.LegalMoves()
		if len(legal) == 0 {
			break
		}
		p := legal[rng.Intn(len(legal))]
		_, err := g.PlaceStone(p.X, p.Y)
		require.NoError(t, err, "IsLegal approved a move PlaceStone rejects at %v", p)
	}

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if g.IsLegal(x, y) {
				continue
			}
			sim := g.Clone()
			_, err := sim.PlaceStone(x, y)
			require.Error(t, err, "IsLegal rejected a move PlaceStone accepts at (%d,%d)", x, y)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := newTestGame(t, 9)
	_, err := g.PlaceStone(4, 4)
	require.NoError(t, err)

	clone := g.Clone()
	_, err = clone.PlaceStone(5, 5)
	require.NoError(t, err)

	require.Equal(t, 1, g.MoveCount())
	require.Equal(t, 2, clone.MoveCount())
	require.Equal(t, game.Empty, g.board.At(5, 5))
}

func TestMoveRecordsAreAppendOnly(t *testing.T) {
	g := newTestGame(t, 9)
	_, err := g.PlaceStone(2, 2)
	require.NoError(t, err)
	_, err = g.Pass()
	require.NoError(t, err)

	moves := g.Moves()
	require.Len(t, moves, 2)
	require.Equal(t, 1, moves[0].Number)
	require.Equal(t, game.Black, moves[0].Color)
	require.False(t, moves[0].IsPass())
	require.True(t, moves[1].IsPass())

	// Mutating the returned slice must not touch the log.
	moves[0].Number = 99
	require.Equal(t, 1, g.Moves()[0].Number)
}
