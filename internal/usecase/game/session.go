package game

import (
	"sync"
	"time"

	"go_tutor/internal/ai"
	"go_tutor/internal/domain/game"
	"go_tutor/internal/engine"
)

// Session binds one rules engine to one AI opponent. The mutex serializes
// every operation touching the pair; the engine itself does no locking and
// assumes exclusive access during a call. Two sessions share nothing and may
// run concurrently.
type Session struct {
	Key        string
	PublicCode string
	CreatedAt  time.Time
	Difficulty ai.Tier
	AIColor    game.Color
	Engine     *engine.Game
	AI         *ai.Selector

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }
