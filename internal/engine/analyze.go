package engine

import (
	"fmt"
	"math"

	"go_tutor/internal/domain/game"
)

// Thresholds drawn on a 19x19 game; PhaseOf scales them by board area so a
// 9x9 game does not live in the opening forever.
const (
	openingMovesAt19 = 40
	endgameMovesAt19 = 120
)

func PhaseOf(moveCount, size int) game.Phase {
	scale := float64(size*size) / float64(19*19)
	opening := int(math.Max(1, float64(openingMovesAt19)*scale))
	endgame := int(math.Max(2, float64(endgameMovesAt19)*scale))
	switch {
	case moveCount < opening:
		return game.PhaseOpening
	case moveCount < endgame:
		return game.PhaseMiddlegame
	default:
		return game.PhaseEndgame
	}
}

// Analyze builds a read-only report of the position. It never mutates the
// game and may be called at any time, terminal or not.
func Analyze(g *Game) game.AnalysisReport {
	report := game.AnalysisReport{
		Phase:         PhaseOf(g.MoveCount(), g.Size()),
		MoveCount:     g.MoveCount(),
		CurrentPlayer: g.CurrentPlayer(),
		BlackStrength: strengthOf(g, game.Black),
		WhiteStrength: strengthOf(g, game.White),
		Territory:     territoryOf(g.Board()),
		Influence:     influenceOf(g.Board()),
	}
	report.Recommendations = recommendations(g, report)
	return report
}

func strengthOf(g *Game, color game.Color) game.StrengthStats {
	stats := game.StrengthStats{Captured: g.CapturedBy(color)}
	v := g.Board()
	size := v.Size()
	visited := map[game.Point]bool{}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := game.Point{X: x, Y: y}
			if v.At(x, y) != color || visited[p] {
				continue
			}
			_, group := GroupAt(v, x, y)
			for _, gp := range group {
				visited[gp] = true
			}
			stats.Groups++
			stats.Stones += len(group)
		}
	}
	if stats.Groups > 0 {
		stats.AvgGroupSize = math.Round(float64(stats.Stones)/float64(stats.Groups)*10) / 10
	}
	return stats
}

// territoryOf counts stones plus exclusively-enclosed empty points per color;
// regions bordered by both colors are neutral.
func territoryOf(v BoardView) game.TerritoryStats {
	var stats game.TerritoryStats
	size := v.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch v.At(x, y) {
			case game.Black:
				stats.Black++
			case game.White:
				stats.White++
			default:
				switch territoryOwner(v, x, y) {
				case game.Black:
					stats.Black++
				case game.White:
					stats.White++
				default:
					stats.Neutral++
				}
			}
		}
	}
	return stats
}

const influenceRange = 3

func influenceOf(v BoardView) game.InfluenceStats {
	var stats game.InfluenceStats
	size := v.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			for dy := -influenceRange; dy <= influenceRange; dy++ {
				for dx := -influenceRange; dx <= influenceRange; dx++ {
					nx, ny := x+dx, y+dy
					if !v.InBounds(nx, ny) {
						continue
					}
					dist := max(abs(dx), abs(dy))
					if dist == 0 {
						continue
					}
					weight := 1.0 / float64(dist)
					switch v.At(nx, ny) {
					case game.Black:
						stats.Black += weight
					case game.White:
						stats.White += weight
					}
				}
			}
		}
	}
	stats.Black = math.Round(stats.Black*10) / 10
	stats.White = math.Round(stats.White*10) / 10
	return stats
}

func recommendations(g *Game, report game.AnalysisReport) []string {
	var recs []string

	switch report.Phase {
	case game.PhaseOpening:
		recs = append(recs, "Opening: value the corners and sides, star points are solid choices.")
	case game.PhaseMiddlegame:
		recs = append(recs, "Middlegame: balance fighting against territory, look for cuts and connections.")
	default:
		recs = append(recs, "Endgame: close the borders and count the value of every remaining point.")
	}

	score := g.Score()
	diff := score.Black - score.White
	switch {
	case diff > 5:
		recs = append(recs, fmt.Sprintf("Black leads by about %.1f points.", diff))
	case diff < -5:
		recs = append(recs, fmt.Sprintf("White leads by about %.1f points.", -diff))
	default:
		recs = append(recs, "The game is close, every move counts.")
	}

	if weak := largestWeakGroup(g); weak != nil {
		recs = append(recs, fmt.Sprintf("The %s group of %d stones near %s is in atari and needs attention.",
			weak.color, weak.stones, weak.at))
	}

	return recs
}

type weakGroup struct {
	color  game.Color
	stones int
	at     game.Point
}

// largestWeakGroup finds the biggest group of either color down to its last
// liberty.
func largestWeakGroup(g *Game) *weakGroup {
	v := g.Board()
	size := v.Size()
	visited := map[game.Point]bool{}
	var weak *weakGroup

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := game.Point{X: x, Y: y}
			if visited[p] || v.At(x, y) == game.Empty {
				continue
			}
			color, group := GroupAt(v, x, y)
			for _, gp := range group {
				visited[gp] = true
			}
			if len(Liberties(v, group)) != 1 {
				continue
			}
			if weak == nil || len(group) > weak.stones {
				weak = &weakGroup{color: color, stones: len(group), at: group[0]}
			}
		}
	}
	return weak
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
