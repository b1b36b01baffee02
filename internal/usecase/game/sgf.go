package game

import (
	"strconv"

	"go_tutor/internal/domain/game"
	"go_tutor/internal/domain/sgf"
	"go_tutor/internal/engine"
)

func sgfRoot(session *Session, rules engine.Rules) string {
	playerBlack, playerWhite := "Human", "AI"
	if session.AIColor == game.Black {
		playerBlack, playerWhite = "AI", "Human"
	}

	record := sgf.SGF{
		Root: &sgf.GameTree{
			Nodes: []sgf.Node{
				{
					Properties: map[string][]string{
						"FF": {"4"},
						"GM": {"1"},
						"SZ": {strconv.Itoa(session.Engine.Size())},
						"PB": {playerBlack},
						"PW": {playerWhite},
						"DT": {session.CreatedAt.Format("2006-01-02")},
						"KM": {strconv.FormatFloat(rules.Komi, 'f', 1, 64)},
						"RU": {"Chinese"},
						"C":  {"Human vs AI, difficulty " + string(session.Difficulty)},
					},
				},
			},
		},
	}
	return sgf.Serialize(&record)
}

func (g *GameUseCase) appendMoveSGF(session *Session, move *game.Move) error {
	text, err := g.store.LoadSGF(session.Key)
	if err != nil {
		return err
	}

	colorKey := "B"
	if move.Color == game.White {
		colorKey = "W"
	}
	coords := ""
	if !move.IsPass() {
		coords = sgfCoordinate(*move.Point)
	}

	return g.store.SaveSGF(session.Key, sgf.AppendMove(text, colorKey, coords))
}

func sgfCoordinate(p game.Point) string {
	return string([]byte{byte('a' + p.X), byte('a' + p.Y)})
}

// letterCoordinate renders a point the way players read boards: column
// letters skip I, rows count from the top edge of White's side.
func letterCoordinate(p game.Point, size int) string {
	col := byte('A' + p.X)
	if col >= 'I' {
		col++
	}
	return string(col) + strconv.Itoa(size-p.Y)
}
