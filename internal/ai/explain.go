package ai

import (
	"fmt"

	"go_tutor/internal/domain/game"
)

const passExplanation = "No legal point remains, so I pass."

// explain maps the winning heuristic feature to a sentence. Purely
// presentational, the choice itself is already made.
func explain(p game.Point, feat feature) string {
	at := fmt.Sprintf("(%d,%d)", p.X+1, p.Y+1)
	switch feat.name {
	case "capture":
		return fmt.Sprintf("Playing %s: captures %d stones.", at, feat.count)
	case "rescue":
		return fmt.Sprintf("Playing %s: defends a group of %d stones in atari.", at, feat.count)
	case "atari":
		return fmt.Sprintf("Playing %s: puts %d of your stones in atari.", at, feat.count)
	case "cut":
		return fmt.Sprintf("Playing %s: cuts your groups apart.", at)
	case "connect":
		return fmt.Sprintf("Playing %s: connects my stones into one group.", at)
	case "star":
		return fmt.Sprintf("Playing %s: takes a star point.", at)
	case "territory":
		return fmt.Sprintf("Playing %s: secures territory along the border.", at)
	case "influence":
		return fmt.Sprintf("Playing %s: builds influence over open space.", at)
	default:
		return fmt.Sprintf("Playing %s: the best overall balance I found.", at)
	}
}

func explainRandom(p game.Point) string {
	return fmt.Sprintf("Playing (%d,%d): trying this point.", p.X+1, p.Y+1)
}
