package engine

import (
	"sort"
	"strconv"
	"strings"

	"go_tutor/internal/domain/game"
)

// GroupAt returns the maximal connected component of same-colored stones
// containing (x, y), together with its color. The result is empty for an
// empty or out-of-range point. Pure: the view is never mutated, and repeated
// calls yield identical results.
//
// The traversal uses an explicit worklist so a full 19x19 group never pushes
// the goroutine stack.
func GroupAt(v BoardView, x, y int) (game.Color, []game.Point) {
	if !v.InBounds(x, y) {
		return game.Empty, nil
	}
	color := v.At(x, y)
	if color == game.Empty {
		return game.Empty, nil
	}

	var group []game.Point
	seen := map[game.Point]bool{}
	work := []game.Point{{X: x, Y: y}}

	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if seen[p] {
			continue
		}
		seen[p] = true

		if !v.InBounds(p.X, p.Y) || v.At(p.X, p.Y) != color {
			continue
		}
		group = append(group, p)

		for _, d := range directions {
			n := game.Point{X: p.X + d[0], Y: p.Y + d[1]}
			if !seen[n] {
				work = append(work, n)
			}
		}
	}

	return color, group
}

// Liberties returns the distinct empty points orthogonally adjacent to any
// stone of the group. A shared empty neighbor counts once.
func Liberties(v BoardView, group []game.Point) []game.Point {
	seen := map[game.Point]bool{}
	var libs []game.Point
	for _, p := range group {
		for _, d := range directions {
			n := game.Point{X: p.X + d[0], Y: p.Y + d[1]}
			if seen[n] || !v.InBounds(n.X, n.Y) {
				continue
			}
			if v.At(n.X, n.Y) == game.Empty {
				seen[n] = true
				libs = append(libs, n)
			}
		}
	}
	return libs
}

// groupKey is the canonical identity of a group within one resolution pass:
// the sorted full coordinate set, never a single representative stone.
func groupKey(group []game.Point) string {
	pts := make([]game.Point, len(group))
	copy(pts, group)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	var sb strings.Builder
	for _, p := range pts {
		sb.WriteString(strconv.Itoa(p.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Y))
		sb.WriteByte(';')
	}
	return sb.String()
}
