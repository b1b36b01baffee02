package game

import (
	"context"
	"iter"
	"time"

	"go.uber.org/zap"

	"go_tutor/internal/ai"
	"go_tutor/internal/bootstrap"
	"go_tutor/internal/domain/game"
	"go_tutor/internal/engine"
	"go_tutor/internal/errors"
)

// GameStore is what the session manager needs from its storage; the
// in-process implementation lives in internal/repository.
type GameStore interface {
	GenerateGameKeys(ctx context.Context) (gameKeySecret string, gameKeyPublic string)
	PutGame(ctx context.Context, session *Session) error
	GetGameByKey(ctx context.Context, gameKey string) (*Session, error)
	DeleteGame(ctx context.Context, gameKey string) error
	SaveSGF(gameKey string, sgfText string) error
	LoadSGF(gameKey string) (string, error)
}

// GameUseCase is the session manager: it maps external requests onto game
// instances, serializes turns per game and keeps the move records the
// display layer consumes.
type GameUseCase struct {
	store GameStore
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
}

func NewGameUseCase(store GameStore, cfg bootstrap.Config, log *zap.SugaredLogger) *GameUseCase {
	return &GameUseCase{store: store, cfg: cfg, log: log}
}

func (g *GameUseCase) aiConfig(tier ai.Tier) ai.Config {
	return ai.Config{
		Tier:             tier,
		EasyRandomChance: g.cfg.AIEasyRandomChance,
		EasyJitter:       g.cfg.AIEasyJitter,
		MediumJitter:     g.cfg.AIMediumJitter,
		HardJitter:       g.cfg.AIHardJitter,
		HardDepth:        g.cfg.AIHardDepth,
		HardMaxNodes:     g.cfg.AIHardMaxNodes,
		Seed:             g.cfg.AISeed,
	}
}

func (g *GameUseCase) CreateGame(ctx context.Context, size int, aiColor game.Color, difficulty string) (*game.GameInfo, error) {
	if difficulty == "" {
		difficulty = g.cfg.DefaultDifficulty
	}
	tier, err := ai.ParseTier(difficulty)
	if err != nil {
		return nil, err
	}
	if aiColor != game.Black && aiColor != game.White {
		return nil, errors.ErrInvalidConfiguration
	}

	rules := engine.Rules{Komi: g.cfg.Komi, ScoreCaptures: g.cfg.ScoreCaptures}
	eng, err := engine.NewGame(size, rules)
	if err != nil {
		return nil, err
	}

	secret, public := g.store.GenerateGameKeys(ctx)
	session := &Session{
		Key:        secret,
		PublicCode: public,
		CreatedAt:  time.Now(),
		Difficulty: tier,
		AIColor:    aiColor,
		Engine:     eng,
		AI:         ai.NewSelector(g.aiConfig(tier), g.log),
	}

	if err := g.store.PutGame(ctx, session); err != nil {
		return nil, err
	}
	if err := g.store.SaveSGF(secret, sgfRoot(session, rules)); err != nil {
		return nil, err
	}

	g.log.Infow("game created",
		"key", public, "size", size, "ai_color", aiColor.String(), "difficulty", tier)

	return &game.GameInfo{
		GameKey:       secret,
		PublicCode:    public,
		BoardSize:     size,
		CurrentPlayer: eng.CurrentPlayer(),
		AIColor:       aiColor,
		Difficulty:    string(tier),
	}, nil
}

// PlayerMove plays the human stone. The AI's answer is a separate AIMove
// call so the caller can render the human move immediately.
func (g *GameUseCase) PlayerMove(ctx context.Context, gameKey string, x, y int) (*game.StateResponse, error) {
	session, err := g.store.GetGameByKey(ctx, gameKey)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if !session.Engine.Finished() && session.Engine.CurrentPlayer() == session.AIColor {
		return nil, errors.ErrNotYourTurn
	}

	move, err := session.Engine.PlaceStone(x, y)
	if err != nil {
		return nil, err
	}
	g.recordMoveSGF(session, move)

	return stateResponse(session.Engine), nil
}

func (g *GameUseCase) Pass(ctx context.Context, gameKey string) (*game.StateResponse, error) {
	session, err := g.store.GetGameByKey(ctx, gameKey)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	if !session.Engine.Finished() && session.Engine.CurrentPlayer() == session.AIColor {
		return nil, errors.ErrNotYourTurn
	}

	move, err := session.Engine.Pass()
	if err != nil {
		return nil, err
	}
	g.recordMoveSGF(session, move)

	return stateResponse(session.Engine), nil
}

// AIMove lets the engine's opponent take its turn: selection never bypasses
// the rules engine, and having no legal point means the AI passes.
func (g *GameUseCase) AIMove(ctx context.Context, gameKey string) (*game.AIMoveResponse, error) {
	session, err := g.store.GetGameByKey(ctx, gameKey)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	eng := session.Engine
	if eng.Finished() {
		return nil, errors.ErrGameOver
	}
	if eng.CurrentPlayer() != session.AIColor {
		return nil, errors.ErrNotYourTurn
	}

	point, explanation, err := session.AI.Select(eng)
	if err != nil {
		return nil, err
	}

	var move *game.Move
	if point != nil {
		move, err = eng.PlaceStone(point.X, point.Y)
	} else {
		move, err = eng.Pass()
	}
	if err != nil {
		// The selector only proposes moves the engine accepts; reaching this
		// is a defect worth loud logging, not silent recovery.
		g.log.Errorw("ai proposed an illegal move", "key", session.PublicCode, "err", err)
		return nil, err
	}
	g.recordMoveSGF(session, move)

	resp := &game.AIMoveResponse{
		StateResponse: *stateResponse(eng),
		Move:          move,
		Passed:        move.IsPass(),
		Explanation:   explanation,
	}
	return resp, nil
}

// State reports the current position without changing anything.
func (g *GameUseCase) State(ctx context.Context, gameKey string) (*game.StateResponse, error) {
	session, err := g.store.GetGameByKey(ctx, gameKey)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	return stateResponse(session.Engine), nil
}

// Analyze is read-only; it locks only to get a consistent snapshot.
func (g *GameUseCase) Analyze(ctx context.Context, gameKey string) (*game.AnalysisReport, error) {
	session, err := g.store.GetGameByKey(ctx, gameKey)
	if err != nil {
		return nil, err
	}
	session.Lock()
	defer session.Unlock()

	report := engine.Analyze(session.Engine)
	return &report, nil
}

// MoveLog returns a restartable sequence over the immutable move records,
// formatted for display.
func (g *GameUseCase) MoveLog(ctx context.Context, gameKey string) (iter.Seq[game.MoveLogEntry], error) {
	session, err := g.store.GetGameByKey(ctx, gameKey)
	if err != nil {
		return nil, err
	}
	session.Lock()
	moves := session.Engine.Moves()
	size := session.Engine.Size()
	session.Unlock()

	return func(yield func(game.MoveLogEntry) bool) {
		for _, m := range moves {
			entry := game.MoveLogEntry{
				Number:   m.Number,
				Player:   m.Color,
				Action:   "pass",
				Captured: len(m.Captured),
			}
			if !m.IsPass() {
				entry.Action = letterCoordinate(*m.Point, size)
			}
			if !yield(entry) {
				return
			}
		}
	}, nil
}

func (g *GameUseCase) SGF(ctx context.Context, gameKey string) (string, error) {
	return g.store.LoadSGF(gameKey)
}

// GetGameByKey hands out the session itself. Callers touching the Engine or
// AI through it must hold the session's lock; prefer the operations above,
// which lock for you.
func (g *GameUseCase) GetGameByKey(ctx context.Context, gameKey string) (*Session, error) {
	return g.store.GetGameByKey(ctx, gameKey)
}

func stateResponse(eng *engine.Game) *game.StateResponse {
	resp := &game.StateResponse{
		Board:           eng.Snapshot(),
		CurrentPlayer:   eng.CurrentPlayer(),
		CapturedByBlack: eng.CapturedBy(game.Black),
		CapturedByWhite: eng.CapturedBy(game.White),
		LastMove:        eng.LastMove(),
		GameOver:        eng.Finished(),
	}
	if eng.Finished() {
		score := eng.Score()
		resp.Score = &score
		winner := score.Winner()
		if winner == game.Empty {
			resp.Winner = "draw"
		} else {
			resp.Winner = winner.String()
		}
	}
	return resp
}

func (g *GameUseCase) recordMoveSGF(session *Session, move *game.Move) {
	if err := g.appendMoveSGF(session, move); err != nil {
		// The record is a convenience artifact; a failed append must not
		// reject the already-committed move.
		g.log.Warnw("failed to append move to sgf", "key", session.PublicCode, "err", err)
	}
}
