package engine

import (
	"go_tutor/internal/domain/game"
)

// resolveCaptures removes every opponent group left without liberties by the
// stone just placed at (x, y) and returns the removed points.
//
// The pass is strictly two-phase. Phase one evaluates all four neighbors
// against the board as it stands after the placement but before any removal,
// deduplicating groups by their full canonical coordinate set so a group
// reachable from two directions is processed once. Phase two commits all
// removals together. No removal ever happens while neighbor groups are still
// being evaluated.
func resolveCaptures(b *Board, x, y int, opponent game.Color) []game.Point {
	var toCapture []game.Point
	evaluated := map[string]bool{}

	var view BoardView = b
	for _, d := range directions {
		nx, ny := x+d[0], y+d[1]
		if !view.InBounds(nx, ny) || view.At(nx, ny) != opponent {
			continue
		}

		_, group := GroupAt(view, nx, ny)
		key := groupKey(group)
		if evaluated[key] {
			continue
		}
		evaluated[key] = true

		if len(Liberties(view, group)) == 0 {
			toCapture = append(toCapture, group...)
		}
	}

	for _, p := range toCapture {
		b.set(p.X, p.Y, game.Empty)
	}

	return toCapture
}
