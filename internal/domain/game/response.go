package game

// GameInfo is returned on game creation.
type GameInfo struct {
	GameKey       string `json:"game_key"`
	PublicCode    string `json:"public_code"`
	BoardSize     int    `json:"board_size"`
	CurrentPlayer Color  `json:"current_player"`
	AIColor       Color  `json:"ai_color"`
	Difficulty    string `json:"difficulty"`
}

// StateResponse is the shared shape returned after every accepted move or pass.
type StateResponse struct {
	Board           [][]Color `json:"board"`
	CurrentPlayer   Color     `json:"current_player"`
	CapturedByBlack int       `json:"captured_by_black"`
	CapturedByWhite int       `json:"captured_by_white"`
	LastMove        *Move     `json:"last_move,omitempty"`
	GameOver        bool      `json:"game_over"`
	Score           *Score    `json:"score,omitempty"`
	Winner          string    `json:"winner,omitempty"`
}

type AIMoveResponse struct {
	StateResponse
	Move        *Move  `json:"ai_move,omitempty"`
	Passed      bool   `json:"passed"`
	Explanation string `json:"explanation"`
}

type StrengthStats struct {
	Stones       int     `json:"stones"`
	Groups       int     `json:"groups"`
	AvgGroupSize float64 `json:"avg_group_size"`
	Captured     int     `json:"captured"`
}

type TerritoryStats struct {
	Black   int `json:"black"`
	White   int `json:"white"`
	Neutral int `json:"neutral"`
}

type InfluenceStats struct {
	Black float64 `json:"black"`
	White float64 `json:"white"`
}

// AnalysisReport is a read-only snapshot of the position; producing it never
// mutates the game.
type AnalysisReport struct {
	Phase           Phase          `json:"game_phase"`
	MoveCount       int            `json:"move_count"`
	CurrentPlayer   Color          `json:"current_player"`
	BlackStrength   StrengthStats  `json:"black_strength"`
	WhiteStrength   StrengthStats  `json:"white_strength"`
	Territory       TerritoryStats `json:"territory"`
	Influence       InfluenceStats `json:"influence"`
	Recommendations []string       `json:"recommendations"`
}

// MoveLogEntry is the display form of a Move, with letter-grid coordinates.
type MoveLogEntry struct {
	Number   int    `json:"number"`
	Player   Color  `json:"player"`
	Action   string `json:"action"` // "D4"-style coordinate or "pass"
	Captured int    `json:"captured"`
}
