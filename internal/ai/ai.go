// Package ai selects moves for the scripted opponent. Difficulty is a
// configuration value choosing among a closed set of policies, not a type
// hierarchy: easy keeps randomness high so novices can win, medium plays the
// best heuristic move, hard adds a budgeted one-reply lookahead.
package ai

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"go_tutor/internal/domain/game"
	"go_tutor/internal/engine"
	"go_tutor/internal/errors"
)

type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierEasy, TierMedium, TierHard:
		return Tier(s), nil
	default:
		return "", errors.ErrInvalidConfiguration
	}
}

// Config carries the knobs of every tier so none of them is hardcoded per
// call. Zero Seed means a time-based seed.
type Config struct {
	Tier             Tier
	EasyRandomChance float64
	EasyJitter       float64
	MediumJitter     float64
	HardJitter       float64
	HardDepth        int
	HardMaxNodes     int
	Seed             int64
}

func DefaultConfig(tier Tier) Config {
	return Config{
		Tier:             tier,
		EasyRandomChance: 0.3,
		EasyJitter:       5.0,
		MediumJitter:     3.0,
		HardJitter:       0.5,
		HardDepth:        1,
		HardMaxNodes:     2500,
	}
}

type Selector struct {
	cfg Config
	rng *rand.Rand
	log *zap.SugaredLogger
}

func NewSelector(cfg Config, log *zap.SugaredLogger) *Selector {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.HardDepth < 1 {
		cfg.HardDepth = 1
	}
	return &Selector{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		log: log,
	}
}

// Select picks the current player's move, or nil for a pass, together with a
// short explanation. Every returned point passed the rules engine's own
// IsLegal check; having no legal point is the pass outcome, not an error.
func (s *Selector) Select(g *engine.Game) (*game.Point, string, error) {
	if g.Finished() {
		return nil, "", errors.ErrGameOver
	}

	legal := g.LegalMoves()
	if len(legal) == 0 {
		return nil, passExplanation, nil
	}

	phase := engine.PhaseOf(g.MoveCount(), g.Size())

	var best candidate
	switch s.cfg.Tier {
	case TierEasy:
		if s.rng.Float64() < s.cfg.EasyRandomChance {
			p := legal[s.rng.Intn(len(legal))]
			return &p, explainRandom(p), nil
		}
		best = s.pickBest(g, legal, phase, false, s.cfg.EasyJitter)
	case TierHard:
		best = s.selectHard(g, legal, phase)
	default:
		best = s.pickBest(g, legal, phase, true, s.cfg.MediumJitter)
	}

	p := best.point
	s.log.Debugw("ai selected move",
		"tier", s.cfg.Tier, "x", p.X, "y", p.Y, "score", best.score, "feature", best.feature.name)
	return &p, explain(p, best.feature), nil
}

type candidate struct {
	point   game.Point
	score   float64
	feature feature
}

// pickBest evaluates every candidate and keeps the highest score; jitter
// breaks ties randomly and, for the easier tiers, deliberately blurs the
// ranking.
func (s *Selector) pickBest(g *engine.Game, legal []game.Point, phase game.Phase, full bool, jitter float64) candidate {
	best := candidate{score: negInf}
	for _, p := range legal {
		score, feat := s.evaluate(g, p, phase, full)
		score += s.rng.Float64() * jitter
		if score > best.score {
			best = candidate{point: p, score: score, feature: feat}
		}
	}
	return best
}

// hardPreselect bounds the lookahead frontier.
const hardPreselect = 8

// selectHard ranks candidates statically, then spends the node budget on a
// lookahead where the opponent answers with the medium policy. When the
// budget runs out the best candidate found so far wins; exhaustion is
// degradation, never failure.
func (s *Selector) selectHard(g *engine.Game, legal []game.Point, phase game.Phase) candidate {
	ranked := make([]candidate, 0, len(legal))
	for _, p := range legal {
		score, feat := s.evaluate(g, p, phase, true)
		ranked = append(ranked, candidate{point: p, score: score, feature: feat})
	}
	sortCandidates(ranked)

	frontier := ranked
	if len(frontier) > hardPreselect {
		frontier = frontier[:hardPreselect]
	}

	nodes := s.cfg.HardMaxNodes
	mover := g.CurrentPlayer()
	best := frontier[0]
	best.score = negInf

	for _, cand := range frontier {
		if nodes <= 0 {
			s.log.Debugw("ai lookahead budget exhausted", "remaining", nodes)
			break
		}
		sim, _, err := g.Simulate(cand.point.X, cand.point.Y)
		nodes--
		if err != nil {
			continue
		}
		for depth := 0; depth < s.cfg.HardDepth && !sim.Finished(); depth++ {
			if !s.replyMedium(sim, &nodes) {
				break
			}
			if sim.Finished() || nodes <= 0 {
				break
			}
			// Let the simulated mover answer back so deeper configs compare
			// like positions.
			if depth+1 < s.cfg.HardDepth && !s.replyMedium(sim, &nodes) {
				break
			}
		}

		total := cand.score + 2*scoreDiff(sim, mover) + s.rng.Float64()*s.cfg.HardJitter
		if total > best.score {
			best = candidate{point: cand.point, score: total, feature: cand.feature}
		}
	}

	if best.score == negInf {
		best = frontier[0]
	}
	return best
}

// replyMedium commits the medium-policy answer on the simulation, spending
// one node per evaluated reply. Reports false once the budget is gone.
func (s *Selector) replyMedium(sim *engine.Game, nodes *int) bool {
	legal := sim.LegalMoves()
	if len(legal) == 0 {
		_, _ = sim.Pass()
		return true
	}

	phase := engine.PhaseOf(sim.MoveCount(), sim.Size())
	best := candidate{score: negInf}
	for _, p := range legal {
		if *nodes <= 0 {
			break
		}
		score, feat := s.evaluate(sim, p, phase, true)
		*nodes--
		if score > best.score {
			best = candidate{point: p, score: score, feature: feat}
		}
	}
	if best.score == negInf {
		return false
	}
	_, err := sim.PlaceStone(best.point.X, best.point.Y)
	return err == nil
}

func scoreDiff(g *engine.Game, mover game.Color) float64 {
	score := g.Score()
	if mover == game.Black {
		return score.Black - score.White
	}
	return score.White - score.Black
}

func sortCandidates(cands []candidate) {
	sort.Slice(cands, func(i, j int) bool { return cands[i].score > cands[j].score })
}

var negInf = math.Inf(-1)
