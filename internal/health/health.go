// Package health grades each position group on a roster: how much the
// optimal starters out-produce the free-agent replacement level, how much
// weighted depth sits behind them, and which surplus could be traded
// against which shortage.
package health

import (
	"fmt"
	"sort"

	"lineup-advisor-mcp/internal/eligibility"
	"lineup-advisor-mcp/internal/model"
)

// Input is one analysis pass over an already-optimized roster.
type Input struct {
	OptimalStarters []model.StarterSlot
	Bench           []model.ScoredPlayer
	FreeAgents      []model.ScoredPlayer
}

var positionOrder = []string{"QB", "RB", "WR", "TE", "K", "DEF"}

// observedPositions orders every position present in the given groups:
// canonical positions first, anything unusual after, alphabetically.
func observedPositions(groups ...map[string][]model.ScoredPlayer) []string {
	seen := make(map[string]bool)
	for _, g := range groups {
		for pos := range g {
			seen[pos] = true
		}
	}
	var out []string
	for _, pos := range positionOrder {
		if seen[pos] {
			out = append(out, pos)
			delete(seen, pos)
		}
	}
	var rest []string
	for pos := range seen {
		rest = append(rest, pos)
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Depth weights for the top three bench players at a position. Deep bench
// beyond three players adds nothing: it can't realistically start.
var depthWeights = []float64{0.5, 0.3, 0.2}

const (
	replacementPoolSize = 5
	addDropMargin       = 0.5
	maxTradeIdeas       = 3
)

// Analyze builds the positional report over every position observed among
// the optimal starters or the bench.
func Analyze(in Input) model.RosterHealthReport {
	byPos := func(pool []model.ScoredPlayer) map[string][]model.ScoredPlayer {
		m := make(map[string][]model.ScoredPlayer)
		for _, p := range pool {
			pos := eligibility.Normalize(p.Player.Position)
			m[pos] = append(m[pos], p)
		}
		for pos := range m {
			list := m[pos]
			sort.SliceStable(list, func(i, j int) bool { return list[i].Points > list[j].Points })
			m[pos] = list
		}
		return m
	}

	starterPool := make([]model.ScoredPlayer, 0, len(in.OptimalStarters))
	for _, s := range in.OptimalStarters {
		starterPool = append(starterPool, s.Player)
	}
	starters := byPos(starterPool)
	bench := byPos(in.Bench)
	fas := byPos(in.FreeAgents)

	positions := observedPositions(starters, bench)

	var report model.RosterHealthReport
	for _, pos := range positions {
		ps := model.PosStrength{Position: pos, Demand: len(starters[pos])}
		for _, p := range starters[pos] {
			ps.StartersProj += p.Points
		}
		for i, p := range bench[pos] {
			if i >= len(depthWeights) {
				break
			}
			ps.DepthProjWeighted += p.Points * depthWeights[i]
		}
		ps.ReplacementBaseline = baseline(fas[pos])

		// Surplus keeps its sign; only shortage is clamped.
		diff := ps.StartersProj - float64(ps.Demand)*ps.ReplacementBaseline
		ps.Surplus = diff
		if diff < 0 {
			ps.Shortage = -diff
		}

		for _, p := range append(append([]model.ScoredPlayer{}, starters[pos]...), bench[pos]...) {
			ps.Tiers = append(ps.Tiers, model.PlayerTier{
				PlayerID: p.Player.ID,
				Name:     p.Player.Name,
				Points:   p.Points,
				Tier:     tier(p.Points - ps.ReplacementBaseline),
			})
		}
		report.Positions = append(report.Positions, ps)
	}

	report.Strongest = topPositions(report.Positions, func(p model.PosStrength) float64 {
		return p.Surplus + p.DepthProjWeighted
	})
	report.Weakest = topPositions(report.Positions, func(p model.PosStrength) float64 {
		return p.Shortage
	})
	report.TradeIdeas = tradeIdeas(report.Positions, report.Strongest, report.Weakest)
	report.AddDropIdeas = addDrops(positions, bench, fas)
	return report
}

// baseline is the mean of the top free agents at a position: what the roster
// could replace a player with at zero cost.
func baseline(fas []model.ScoredPlayer) float64 {
	if len(fas) == 0 {
		return 0
	}
	n := len(fas)
	if n > replacementPoolSize {
		n = replacementPoolSize
	}
	var sum float64
	for _, p := range fas[:n] {
		sum += p.Points
	}
	return sum / float64(n)
}

func tier(diff float64) string {
	switch {
	case diff >= 6:
		return model.TierElite
	case diff >= 3:
		return model.TierStarter
	case diff >= 1:
		return model.TierFlexWorthy
	case diff >= 0:
		return model.TierDepth
	default:
		return model.TierReplaceable
	}
}

// topPositions returns up to two position labels ranked by score, skipping
// zero scores.
func topPositions(positions []model.PosStrength, score func(model.PosStrength) float64) []string {
	ranked := make([]model.PosStrength, len(positions))
	copy(ranked, positions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	var out []string
	for _, p := range ranked {
		if score(p) <= 0 || len(out) == 2 {
			break
		}
		out = append(out, p.Position)
	}
	return out
}

func tradeIdeas(positions []model.PosStrength, strongest, weakest []string) []model.TradeIdea {
	byPos := make(map[string]model.PosStrength, len(positions))
	for _, p := range positions {
		byPos[p.Position] = p
	}
	var out []model.TradeIdea
	for _, give := range strongest {
		for _, get := range weakest {
			if give == get || len(out) >= maxTradeIdeas {
				continue
			}
			out = append(out, model.TradeIdea{
				GivePosition: give,
				GetPosition:  get,
				Rationale: fmt.Sprintf("%s surplus %.1f pts vs %s shortage %.1f pts",
					give, byPos[give].Surplus, get, byPos[get].Shortage),
			})
		}
	}
	return out
}

// addDrops suggests cutting the weakest bench player at a position when a
// free agent there clearly beats them.
func addDrops(positions []string, bench, fas map[string][]model.ScoredPlayer) []model.AddDropIdea {
	var out []model.AddDropIdea
	for _, pos := range positions {
		b, f := bench[pos], fas[pos]
		if len(b) == 0 || len(f) == 0 {
			continue
		}
		weakest := b[len(b)-1]
		best := f[0]
		if best.Points > weakest.Points+addDropMargin {
			out = append(out, model.AddDropIdea{
				Position: pos,
				Add:      best,
				Drop:     weakest,
				Delta:    best.Points - weakest.Points,
			})
		}
	}
	return out
}
