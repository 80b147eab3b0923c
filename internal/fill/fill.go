// Package fill ranks candidates for currently-unoccupied starting slots:
// bench players first-class, free agents only when waiver consideration is
// on and pickup budget remains.
package fill

import (
	"sort"
	"time"

	"lineup-advisor-mcp/internal/eligibility"
	"lineup-advisor-mcp/internal/lock"
	"lineup-advisor-mcp/internal/model"
)

// Options gate the candidate pool.
type Options struct {
	ConsiderWaivers bool
	PickupBudget    int
	MaxAlternatives int // 0 means the default of 3
}

// Suggest returns one suggestion per empty slot, in slot order. Game locks
// never filter a candidate out; the best candidate is reported with a
// blocked flag and reason so callers know why it can't be used right now.
func Suggest(slotLabels []string, currentIDs []string, bench, freeAgents []model.ScoredPlayer, sched lock.Schedule, now time.Time, opts Options) []model.FillSuggestion {
	maxAlt := opts.MaxAlternatives
	if maxAlt <= 0 {
		maxAlt = 3
	}

	pool := make([]model.FillCandidate, 0, len(bench)+len(freeAgents))
	for _, p := range bench {
		pool = append(pool, candidate(p, model.SourceBench, sched, now))
	}
	if opts.ConsiderWaivers && opts.PickupBudget > 0 {
		for _, p := range freeAgents {
			pool = append(pool, candidate(p, model.SourceFA, sched, now))
		}
	}

	var out []model.FillSuggestion
	for i, label := range slotLabels {
		if i >= len(currentIDs) || currentIDs[i] != "" {
			continue
		}
		eligible := make([]model.FillCandidate, 0, len(pool))
		for _, c := range pool {
			if c.Player.Points <= 0 {
				continue
			}
			if !eligibility.PlayerCanFill(c.Player.Player, label) {
				continue
			}
			eligible = append(eligible, c)
		}
		sort.SliceStable(eligible, func(a, b int) bool {
			return eligible[a].Player.Points > eligible[b].Player.Points
		})

		sugg := model.FillSuggestion{Slot: label, SlotIndex: i}
		if len(eligible) > 0 {
			best := eligible[0]
			sugg.Best = &best
			sugg.PotentialDelta = best.Player.Points
			if !best.Blocked {
				sugg.ReachableDelta = best.Player.Points
			}
			rest := eligible[1:]
			if len(rest) > maxAlt {
				rest = rest[:maxAlt]
			}
			if len(rest) > 0 {
				sugg.Alternatives = append([]model.FillCandidate(nil), rest...)
			}
		}
		out = append(out, sugg)
	}
	return out
}

func candidate(p model.ScoredPlayer, source string, sched lock.Schedule, now time.Time) model.FillCandidate {
	c := model.FillCandidate{Player: p, Source: source}
	if reason := lock.BlockReason(sched, p.Player.Team, now); reason != "" {
		c.Blocked = true
		c.BlockReason = reason
	}
	return c
}
