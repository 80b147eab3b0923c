// Package waiver compares a scored free-agent pool against the weakest
// current starter per slot and surfaces upgrades, plus the ordered action
// plan that turns one lineup into another.
package waiver

import (
	"sort"
	"time"

	"lineup-advisor-mcp/internal/eligibility"
	"lineup-advisor-mcp/internal/lock"
	"lineup-advisor-mcp/internal/model"
)

// Config tunes the upgrade scan. Zero values fall back to defaults.
type Config struct {
	MinGain         float64 // minimum points delta, default 1.5
	MaxPerPosition  int     // top-K per position, default 3
	MaxTotal        int     // global cap, default 10
	MaxAlternatives int     // alternative displaced players per add, default 2
	Exclude         map[string]bool
}

func (c Config) withDefaults() Config {
	if c.MinGain == 0 {
		c.MinGain = 1.5
	}
	if c.MaxPerPosition <= 0 {
		c.MaxPerPosition = 3
	}
	if c.MaxTotal <= 0 {
		c.MaxTotal = 10
	}
	if c.MaxAlternatives <= 0 {
		c.MaxAlternatives = 2
	}
	return c
}

// Floor is the lowest-projected current starter eligible for a slot label.
type Floor struct {
	Slot   string             `json:"slot"`
	Player model.ScoredPlayer `json:"player"`
}

// Floors computes the floor for every slot label that exists in the
// configured roster. Flex floors restrict the candidate set to starters
// eligible for that flex slot before taking the minimum.
func Floors(slotLabels []string, starters []model.StarterSlot) map[string]Floor {
	out := make(map[string]Floor)
	for _, label := range dedupe(slotLabels) {
		found := false
		var floor model.ScoredPlayer
		for _, s := range starters {
			if !eligibility.PlayerCanFill(s.Player.Player, label) {
				continue
			}
			if !found || s.Player.Points < floor.Points {
				floor = s.Player
				found = true
			}
		}
		if found {
			out[label] = Floor{Slot: label, Player: floor}
		}
	}
	return out
}

// Upgrades scans the free-agent pool against the slot floors. Kickers are
// never suggested, OUT players and (with a usable schedule) bye-week teams
// are skipped, and the injectable exclusion set is honored.
func Upgrades(freeAgents []model.ScoredPlayer, starters []model.StarterSlot, slotLabels []string, sched lock.Schedule, cfg Config) []model.GroupedWaiverSuggestion {
	cfg = cfg.withDefaults()
	floors := Floors(slotLabels, starters)
	labels := dedupe(slotLabels)

	// Deduplicate per (slot, free agent), keeping the max delta.
	type slotKey struct{ slot, id string }
	bySlotFA := make(map[slotKey]model.WaiverSuggestion)
	faOrder := make([]string, 0, len(freeAgents))
	seenFA := make(map[string]bool)

	for _, fa := range freeAgents {
		id := fa.Player.ID
		if cfg.Exclude[id] || id == "" {
			continue
		}
		if eligibility.Normalize(fa.Player.Position) == "K" {
			continue
		}
		if fa.Player.Out() {
			continue
		}
		if len(sched) > 0 {
			if _, ok := sched.Lookup(fa.Player.Team); !ok {
				continue // bye week
			}
		}
		for _, label := range labels {
			if !eligibility.PlayerCanFill(fa.Player, label) {
				continue
			}
			floor, ok := floors[label]
			if !ok {
				continue
			}
			if !eligibility.Interchangeable(floor.Player.Player.Position, fa.Player.Position) {
				continue
			}
			delta := fa.Points - floor.Player.Points
			if delta < cfg.MinGain {
				continue
			}
			key := slotKey{label, id}
			if prev, ok := bySlotFA[key]; ok && prev.Delta >= delta {
				continue
			}
			bySlotFA[key] = model.WaiverSuggestion{Slot: label, In: fa, Out: floor.Player, Delta: delta}
			if !seenFA[id] {
				seenFA[id] = true
				faOrder = append(faOrder, id)
			}
		}
	}

	// Group per free agent: best delta plus distinct-outgoing alternatives.
	grouped := make([]model.GroupedWaiverSuggestion, 0, len(faOrder))
	for _, id := range faOrder {
		var suggs []model.WaiverSuggestion
		for _, label := range labels {
			if s, ok := bySlotFA[slotKey{label, id}]; ok {
				suggs = append(suggs, s)
			}
		}
		sort.SliceStable(suggs, func(i, j int) bool {
			return suggs[i].Delta > suggs[j].Delta
		})
		best := suggs[0]
		g := model.GroupedWaiverSuggestion{
			In:        best.In,
			Slot:      best.Slot,
			Out:       best.Out,
			BestDelta: best.Delta,
		}
		seenOut := map[string]bool{best.Out.Player.ID: true}
		for _, s := range suggs[1:] {
			if seenOut[s.Out.Player.ID] {
				continue
			}
			seenOut[s.Out.Player.ID] = true
			g.Alternatives = append(g.Alternatives, s)
			if len(g.Alternatives) >= cfg.MaxAlternatives {
				break
			}
		}
		grouped = append(grouped, g)
	}

	// Rank positions independently before the final global sort.
	byPos := make(map[string][]model.GroupedWaiverSuggestion)
	posOrder := make([]string, 0, 8)
	for _, g := range grouped {
		pos := eligibility.Normalize(g.In.Player.Position)
		if _, ok := byPos[pos]; !ok {
			posOrder = append(posOrder, pos)
		}
		byPos[pos] = append(byPos[pos], g)
	}
	final := make([]model.GroupedWaiverSuggestion, 0, len(grouped))
	for _, pos := range posOrder {
		list := byPos[pos]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].BestDelta > list[j].BestDelta
		})
		if len(list) > cfg.MaxPerPosition {
			list = list[:cfg.MaxPerPosition]
		}
		final = append(final, list...)
	}
	sort.SliceStable(final, func(i, j int) bool {
		return final[i].BestDelta > final[j].BestDelta
	})
	if len(final) > cfg.MaxTotal {
		final = final[:cfg.MaxTotal]
	}
	return final
}

// ComputeLineupDiff decomposes an old-to-new lineup change into ordered
// steps: additions, then slot moves, then benchings. The reachable delta is
// all-or-nothing — one blocked step zeroes it, because a partially executed
// plan may not be coherent.
func ComputeLineupDiff(oldLineup, newLineup []model.StarterSlot, sched lock.Schedule, now time.Time) model.ActionPlan {
	oldSlot := make(map[string]string, len(oldLineup))
	for _, s := range oldLineup {
		oldSlot[s.Player.Player.ID] = s.Label
	}
	newSlot := make(map[string]string, len(newLineup))
	for _, s := range newLineup {
		newSlot[s.Player.Player.ID] = s.Label
	}

	var plan model.ActionPlan
	var oldTotal, newTotal float64
	for _, s := range oldLineup {
		oldTotal += s.Player.Points
	}
	for _, s := range newLineup {
		newTotal += s.Player.Points
	}
	plan.Delta = newTotal - oldTotal

	step := func(kind string, p model.ScoredPlayer, from, to string) model.ActionStep {
		st := model.ActionStep{
			Kind:     kind,
			PlayerID: p.Player.ID,
			Name:     p.Player.Name,
			FromSlot: from,
			ToSlot:   to,
		}
		if reason := lock.BlockReason(sched, p.Player.Team, now); reason != "" {
			st.Blocked = true
			st.BlockReason = reason
		}
		return st
	}

	for _, s := range newLineup {
		if _, ok := oldSlot[s.Player.Player.ID]; !ok {
			plan.Steps = append(plan.Steps, step(model.StepAdd, s.Player, "", s.Label))
		}
	}
	for _, s := range newLineup {
		from, ok := oldSlot[s.Player.Player.ID]
		if ok && from != s.Label {
			plan.Steps = append(plan.Steps, step(model.StepMove, s.Player, from, s.Label))
		}
	}
	for _, s := range oldLineup {
		if _, ok := newSlot[s.Player.Player.ID]; !ok {
			plan.Steps = append(plan.Steps, step(model.StepBench, s.Player, s.Label, ""))
		}
	}

	plan.ReachableDelta = plan.Delta
	for _, st := range plan.Steps {
		if st.Blocked {
			plan.ReachableDelta = 0
			break
		}
	}
	return plan
}

func dedupe(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
