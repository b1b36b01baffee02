package repo

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go_tutor/internal/errors"
	gameuc "go_tutor/internal/usecase/game"
)

// GameRepository keeps every active session in process memory. Nothing
// outlives the process and two games never share state, which is exactly the
// contract the session manager assumes.
type GameRepository struct {
	log *zap.SugaredLogger

	mu       sync.RWMutex
	games    map[string]*gameuc.Session
	byPublic map[string]string
	sgf      map[string]string
}

func NewGameRepository(log *zap.SugaredLogger) *GameRepository {
	return &GameRepository{
		log:      log,
		games:    make(map[string]*gameuc.Session),
		byPublic: make(map[string]string),
		sgf:      make(map[string]string),
	}
}

// GenerateGameKeys returns a secret uuid key and a short public code derived
// from it, retrying until the code is unique among live games.
func (g *GameRepository) GenerateGameKeys(ctx context.Context) (gameKeySecret string, gameKeyPublic string) {
	for {
		gameKeySecret = uuid.New().String()
		gameKeyPublic = generateHash(gameKeySecret)

		g.mu.RLock()
		_, taken := g.byPublic[gameKeyPublic]
		g.mu.RUnlock()
		if !taken {
			return gameKeySecret, gameKeyPublic
		}
	}
}

func generateHash(s string) string {
	h := md5.New()
	h.Write([]byte(s))
	hashBytes := h.Sum(nil)
	number := binary.BigEndian.Uint32(hashBytes[:4])
	code := number % 100000
	return fmt.Sprintf("%05d", code)
}

func (g *GameRepository) PutGame(ctx context.Context, session *gameuc.Session) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.games[session.Key] = session
	g.byPublic[session.PublicCode] = session.Key
	g.log.Infow("session stored", "public_code", session.PublicCode)
	return nil
}

// GetGameByKey resolves either the secret key or the public code.
func (g *GameRepository) GetGameByKey(ctx context.Context, gameKey string) (*gameuc.Session, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if session, ok := g.games[gameKey]; ok {
		return session, nil
	}
	if secret, ok := g.byPublic[gameKey]; ok {
		return g.games[secret], nil
	}
	return nil, errors.ErrGameNotFound
}

func (g *GameRepository) DeleteGame(ctx context.Context, gameKey string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	session, ok := g.games[gameKey]
	if !ok {
		return errors.ErrGameNotFound
	}
	delete(g.byPublic, session.PublicCode)
	delete(g.games, gameKey)
	delete(g.sgf, gameKey)
	return nil
}

func (g *GameRepository) SaveSGF(gameKey string, sgfText string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sgf[gameKey] = sgfText
	return nil
}

func (g *GameRepository) LoadSGF(gameKey string) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	text, ok := g.sgf[gameKey]
	if !ok {
		return "", errors.ErrGameNotFound
	}
	return text, nil
}
