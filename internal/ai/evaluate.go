package ai

import (
	"go_tutor/internal/domain/game"
	"go_tutor/internal/engine"
)

type feature struct {
	name  string
	count int
	score float64
}

// evaluate scores one legal candidate by simulating it and weighing the
// outcome. It also returns the dominant positive feature, which later drives
// the explanation text. The full flag switches between the easy tier's
// tactical-only view and the complete evaluation.
func (s *Selector) evaluate(g *engine.Game, p game.Point, phase game.Phase, full bool) (float64, feature) {
	mover := g.CurrentPlayer()
	opponent := mover.Opponent()
	pre := g.Board()

	sim, move, err := g.Simulate(p.X, p.Y)
	if err != nil {
		// Candidates come from LegalMoves, so this would be an engine defect;
		// downrank hard instead of guessing.
		return negInf, feature{}
	}
	post := sim.Board()

	var score float64
	dominant := feature{name: "balance"}
	bump := func(name string, count int, delta float64) {
		score += delta
		if delta > dominant.score {
			dominant = feature{name: name, count: count, score: delta}
		}
	}

	if captures := len(move.Captured); captures > 0 {
		bump("capture", captures, 30+5*float64(captures))
	}

	if saved := rescuedStones(pre, p, mover); saved > 0 {
		bump("rescue", saved, 25+3*float64(saved))
	}

	_, own := engine.GroupAt(post, p.X, p.Y)
	ownLibs := engine.Liberties(post, own)
	if len(ownLibs) == 1 && len(move.Captured) == 0 {
		score -= 40 // self-atari
	}

	if atari := atariStones(post, p, opponent); atari > 0 {
		bump("atari", atari, 18+2*float64(atari))
	}

	if !full {
		if phase == game.PhaseOpening && (isCornerStar(g.Size(), p) || isSideStar(g.Size(), p)) {
			bump("star", 0, 15)
		}
		return score, dominant
	}

	if cutGroups(pre, p, opponent) >= 2 {
		bump("cut", 0, 20)
	}
	if friendlyNeighbors(pre, p, mover) >= 2 {
		bump("connect", 0, 15)
	}

	score += positionValue(g, p, phase, &dominant)

	if infl := influenceEstimate(pre, p); infl > 0 {
		bump("influence", 0, infl*0.3)
	}

	return score, dominant
}

// rescuedStones counts stones of the mover's adjacent one-liberty groups;
// playing at p (their last liberty or a connection) relieves them.
func rescuedStones(v engine.BoardView, p game.Point, mover game.Color) int {
	seen := map[game.Point]bool{}
	saved := 0
	for _, n := range orthogonal(v, p) {
		if v.At(n.X, n.Y) != mover || seen[n] {
			continue
		}
		_, group := engine.GroupAt(v, n.X, n.Y)
		for _, gp := range group {
			seen[gp] = true
		}
		if len(engine.Liberties(v, group)) == 1 {
			saved += len(group)
		}
	}
	return saved
}

// atariStones counts opponent stones left with a single liberty next to the
// played point.
func atariStones(v engine.BoardView, p game.Point, opponent game.Color) int {
	seen := map[game.Point]bool{}
	stones := 0
	for _, n := range orthogonal(v, p) {
		if v.At(n.X, n.Y) != opponent || seen[n] {
			continue
		}
		_, group := engine.GroupAt(v, n.X, n.Y)
		for _, gp := range group {
			seen[gp] = true
		}
		if len(engine.Liberties(v, group)) == 1 {
			stones += len(group)
		}
	}
	return stones
}

// cutGroups counts the distinct opponent groups touching p; two or more
// means the point keeps them apart.
func cutGroups(v engine.BoardView, p game.Point, opponent game.Color) int {
	seen := map[game.Point]bool{}
	count := 0
	for _, n := range orthogonal(v, p) {
		if v.At(n.X, n.Y) != opponent || seen[n] {
			continue
		}
		_, group := engine.GroupAt(v, n.X, n.Y)
		for _, gp := range group {
			seen[gp] = true
		}
		count++
	}
	return count
}

func friendlyNeighbors(v engine.BoardView, p game.Point, mover game.Color) int {
	n := 0
	for _, q := range orthogonal(v, p) {
		if v.At(q.X, q.Y) == mover {
			n++
		}
	}
	return n
}

func positionValue(g *engine.Game, p game.Point, phase game.Phase, dominant *feature) float64 {
	size := g.Size()
	v := g.Board()

	switch phase {
	case game.PhaseOpening:
		if isCornerStar(size, p) || isSideStar(size, p) {
			maybeDominate(dominant, "star", 0, 20)
			return 20
		}
		line := min(p.X, p.Y, size-1-p.X, size-1-p.Y)
		if line >= 2 && line <= 4 {
			return 12
		}
		if line > 4 {
			return -5
		}
		return 0
	case game.PhaseMiddlegame:
		centerDist := abs(p.X-size/2) + abs(p.Y-size/2)
		value := max(0, 15-float64(centerDist)*0.5)
		if nearEnemy(v, p, g.CurrentPlayer().Opponent(), 2) {
			value += 15
		}
		return value
	default:
		value := 5.0
		edge := min(p.X, p.Y, size-1-p.X, size-1-p.Y)
		if edge <= 2 {
			value += 5
		}
		value += 3 * float64(friendlyNeighbors(v, p, g.CurrentPlayer()))
		if value >= 10 {
			maybeDominate(dominant, "territory", 0, value)
		}
		return value
	}
}

func maybeDominate(dominant *feature, name string, count int, score float64) {
	if score > dominant.score {
		*dominant = feature{name: name, count: count, score: score}
	}
}

// influenceEstimate is a distance-weighted count of nearby empty points, a
// rough measure of how much open area the stone radiates into.
func influenceEstimate(v engine.BoardView, p game.Point) float64 {
	total := 0.0
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := p.X+dx, p.Y+dy
			if !v.InBounds(nx, ny) || v.At(nx, ny) != game.Empty {
				continue
			}
			dist := max(abs(dx), abs(dy))
			total += 1.0 / float64(dist)
		}
	}
	return total
}

func nearEnemy(v engine.BoardView, p game.Point, opponent game.Color, distance int) bool {
	for dy := -distance; dy <= distance; dy++ {
		for dx := -distance; dx <= distance; dx++ {
			nx, ny := p.X+dx, p.Y+dy
			if v.InBounds(nx, ny) && v.At(nx, ny) == opponent {
				return true
			}
		}
	}
	return false
}

func isCornerStar(size int, p game.Point) bool {
	var stars []game.Point
	switch size {
	case 19:
		stars = []game.Point{{X: 3, Y: 3}, {X: 3, Y: 15}, {X: 15, Y: 3}, {X: 15, Y: 15}}
	case 13:
		stars = []game.Point{{X: 3, Y: 3}, {X: 3, Y: 9}, {X: 9, Y: 3}, {X: 9, Y: 9}}
	case 9:
		stars = []game.Point{{X: 2, Y: 2}, {X: 2, Y: 6}, {X: 6, Y: 2}, {X: 6, Y: 6}}
	}
	for _, s := range stars {
		if s == p {
			return true
		}
	}
	return false
}

func isSideStar(size int, p game.Point) bool {
	var stars []game.Point
	switch size {
	case 19:
		stars = []game.Point{{X: 9, Y: 3}, {X: 9, Y: 15}, {X: 3, Y: 9}, {X: 15, Y: 9}}
	case 13:
		stars = []game.Point{{X: 6, Y: 3}, {X: 6, Y: 9}, {X: 3, Y: 6}, {X: 9, Y: 6}}
	case 9:
		stars = []game.Point{{X: 4, Y: 4}}
	}
	for _, s := range stars {
		if s == p {
			return true
		}
	}
	return false
}

func orthogonal(v engine.BoardView, p game.Point) []game.Point {
	out := make([]game.Point, 0, 4)
	for _, d := range [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
		n := game.Point{X: p.X + d[0], Y: p.Y + d[1]}
		if v.InBounds(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
