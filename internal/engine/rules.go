package engine

import (
	"go_tutor/internal/domain/game"
	"go_tutor/internal/errors"
)

// Rules carries the configurable parts of the ruleset instead of a baked-in
// traditional variant: komi credited to White and whether captured stones
// count toward the final score.
type Rules struct {
	Komi          float64
	ScoreCaptures bool
}

func DefaultRules() Rules {
	return Rules{Komi: 6.5, ScoreCaptures: true}
}

// Game is the rules engine around a single board. It owns the grid
// exclusively: all mutation goes through PlaceStone and Pass. It performs no
// locking, the caller must serialize operations per game.
type Game struct {
	board           *Board
	current         game.Color
	capturedByBlack int
	capturedByWhite int
	passes          int
	koPoint         *game.Point
	moves           []game.Move
	status          game.Status
	score           *game.Score
	rules           Rules
}

func validSize(size int) bool {
	return size == 9 || size == 13 || size == 19
}

func NewGame(size int, rules Rules) (*Game, error) {
	if !validSize(size) {
		return nil, errors.ErrInvalidConfiguration
	}
	return &Game{
		board:   NewBoard(size),
		current: game.Black,
		status:  game.StatusInProgress,
		rules:   rules,
	}, nil
}

func (g *Game) Size() int                 { return g.board.Size() }
func (g *Game) Board() BoardView          { return g.board }
func (g *Game) CurrentPlayer() game.Color { return g.current }
func (g *Game) Status() game.Status       { return g.status }
func (g *Game) Finished() bool            { return g.status == game.StatusFinished }
func (g *Game) MoveCount() int            { return len(g.moves) }
func (g *Game) Rules() Rules              { return g.rules }

// CapturedBy reports how many opponent stones the given color has captured.
func (g *Game) CapturedBy(c game.Color) int {
	if c == game.Black {
		return g.capturedByBlack
	}
	return g.capturedByWhite
}

func (g *Game) KoPoint() *game.Point {
	if g.koPoint == nil {
		return nil
	}
	p := *g.koPoint
	return &p
}

func (g *Game) LastMove() *game.Move {
	if len(g.moves) == 0 {
		return nil
	}
	m := g.moves[len(g.moves)-1]
	return &m
}

// Moves copies the append-only move log.
func (g *Game) Moves() []game.Move {
	out := make([]game.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

func (g *Game) Snapshot() [][]game.Color {
	return g.board.Grid()
}

// PlaceStone plays the current player's stone at (x, y). On any rule
// violation the game is left byte-for-byte unchanged and a sentinel error
// from internal/errors is returned.
func (g *Game) PlaceStone(x, y int) (*game.Move, error) {
	if g.Finished() {
		return nil, errors.ErrGameOver
	}
	if !g.board.InBounds(x, y) {
		return nil, errors.ErrOutOfBounds
	}
	if g.board.At(x, y) != game.Empty {
		return nil, errors.ErrPointOccupied
	}
	if g.koPoint != nil && g.koPoint.X == x && g.koPoint.Y == y {
		return nil, errors.ErrKoViolation
	}

	mover := g.current
	opponent := mover.Opponent()

	g.board.set(x, y, mover)
	captured := resolveCaptures(g.board, x, y, opponent)

	_, own := GroupAt(g.board, x, y)
	ownLibs := Liberties(g.board, own)
	if len(captured) == 0 && len(ownLibs) == 0 {
		// Suicide: roll the tentative placement back, nothing else changed.
		g.board.set(x, y, game.Empty)
		return nil, errors.ErrSuicideMove
	}

	if mover == game.Black {
		g.capturedByBlack += len(captured)
	} else {
		g.capturedByWhite += len(captured)
	}

	// Simple ko: a lone capturing stone that itself has exactly one liberty
	// forbids the immediate recapture at the vacated point.
	if len(captured) == 1 && len(own) == 1 && len(ownLibs) == 1 {
		ko := captured[0]
		g.koPoint = &ko
	} else {
		g.koPoint = nil
	}

	g.passes = 0
	point := game.Point{X: x, Y: y}
	move := game.Move{
		Number:   len(g.moves) + 1,
		Color:    mover,
		Point:    &point,
		Captured: captured,
	}
	g.moves = append(g.moves, move)
	g.current = opponent

	return &move, nil
}

// Pass is always legal while the game is in progress. The second consecutive
// pass finishes the game and fixes the final score.
func (g *Game) Pass() (*game.Move, error) {
	if g.Finished() {
		return nil, errors.ErrGameOver
	}

	g.koPoint = nil
	g.passes++
	move := game.Move{
		Number: len(g.moves) + 1,
		Color:  g.current,
	}
	g.moves = append(g.moves, move)
	g.current = g.current.Opponent()

	if g.passes >= 2 {
		g.status = game.StatusFinished
		score := g.computeScore()
		g.score = &score
	}

	return &move, nil
}

// IsLegal dry-runs the current player's stone at (x, y) without committing
// anything. The AI relies on this being the exact same rule set PlaceStone
// enforces.
func (g *Game) IsLegal(x, y int) bool {
	if g.Finished() || !g.board.InBounds(x, y) || g.board.At(x, y) != game.Empty {
		return false
	}
	if g.koPoint != nil && g.koPoint.X == x && g.koPoint.Y == y {
		return false
	}

	tmp := g.board.Clone()
	tmp.set(x, y, g.current)
	captured := resolveCaptures(tmp, x, y, g.current.Opponent())
	if len(captured) > 0 {
		return true
	}
	_, own := GroupAt(tmp, x, y)
	return len(Liberties(tmp, own)) > 0
}

// LegalMoves enumerates every point PlaceStone would currently accept.
func (g *Game) LegalMoves() []game.Point {
	var moves []game.Point
	size := g.board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.IsLegal(x, y) {
				moves = append(moves, game.Point{X: x, Y: y})
			}
		}
	}
	return moves
}

// Clone deep-copies the game, move log included. Simulations mutate the
// clone, never the original.
func (g *Game) Clone() *Game {
	clone := *g
	clone.board = g.board.Clone()
	clone.moves = make([]game.Move, len(g.moves))
	copy(clone.moves, g.moves)
	if g.koPoint != nil {
		ko := *g.koPoint
		clone.koPoint = &ko
	}
	if g.score != nil {
		score := *g.score
		clone.score = &score
	}
	return &clone
}

// Simulate plays the current player's stone on a clone and returns it.
func (g *Game) Simulate(x, y int) (*Game, *game.Move, error) {
	clone := g.Clone()
	move, err := clone.PlaceStone(x, y)
	if err != nil {
		return nil, nil, err
	}
	return clone, move, nil
}

// Score is the position score under the configured rules: stones on the
// board plus exclusively-bordered empty territory per color, captured stones
// when configured, and komi to White. Once the game is finished the score is
// fixed and repeated calls return the identical value.
func (g *Game) Score() game.Score {
	if g.score != nil {
		return *g.score
	}
	return g.computeScore()
}

func (g *Game) computeScore() game.Score {
	var s game.Score
	if g.rules.ScoreCaptures {
		s.Black = float64(g.capturedByBlack)
		s.White = float64(g.capturedByWhite)
	}
	s.White += g.rules.Komi

	size := g.board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch g.board.At(x, y) {
			case game.Black:
				s.Black++
			case game.White:
				s.White++
			default:
				switch territoryOwner(g.board, x, y) {
				case game.Black:
					s.Black++
				case game.White:
					s.White++
				}
			}
		}
	}
	return s
}

// territoryOwner flood-fills the empty region containing (x, y) and returns
// the color owning it, or Empty when the region touches both colors (or
// nothing at all).
func territoryOwner(v BoardView, x, y int) game.Color {
	if v.At(x, y) != game.Empty {
		return game.Empty
	}

	touchesBlack, touchesWhite := false, false
	seen := map[game.Point]bool{}
	work := []game.Point{{X: x, Y: y}}

	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if seen[p] || !v.InBounds(p.X, p.Y) {
			continue
		}
		seen[p] = true

		switch v.At(p.X, p.Y) {
		case game.Black:
			touchesBlack = true
		case game.White:
			touchesWhite = true
		default:
			for _, d := range directions {
				work = append(work, game.Point{X: p.X + d[0], Y: p.Y + d[1]})
			}
		}
	}

	if touchesBlack && !touchesWhite {
		return game.Black
	}
	if touchesWhite && !touchesBlack {
		return game.White
	}
	return game.Empty
}
