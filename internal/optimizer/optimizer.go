// Package optimizer assigns players to roster slots to maximize total
// projected points.
//
// The default mode reproduces the established two-pass greedy order exactly:
// fixed slots first, then flex slots, each taking the highest-ranked unused
// candidate. That order is not guaranteed to hit the global points optimum
// when fixed and flex eligibility overlap, but downstream diffing depends on
// it. Matching mode is the explicitly-labeled exact alternative.
package optimizer

import (
	"sort"

	"lineup-advisor-mcp/internal/eligibility"
	"lineup-advisor-mcp/internal/model"
)

// Modes.
const (
	ModeGreedy   = "greedy"
	ModeMatching = "matching"
)

// SlotCount is one entry of the league slot-count map, order-preserving.
type SlotCount struct {
	Label string
	Count int
}

// ExpandSlots expands label/count pairs into the ordered slot list: labels as
// given, repeated count times.
func ExpandSlots(counts []SlotCount) []string {
	out := make([]string, 0, len(counts))
	for _, sc := range counts {
		for i := 0; i < sc.Count; i++ {
			out = append(out, sc.Label)
		}
	}
	return out
}

// rank sorts a copy of the pool descending by points. The sort is stable so
// equal-score players keep their input order on every run.
func rank(pool []model.ScoredPlayer) []model.ScoredPlayer {
	ranked := make([]model.ScoredPlayer, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	return ranked
}

// Optimize runs the two-pass greedy assignment. A slot with no eligible
// unused candidate is left unassigned; the optimizer never errors.
func Optimize(slots []string, pool []model.ScoredPlayer) []model.RosterSlot {
	ranked := rank(pool)
	out := make([]model.RosterSlot, len(slots))
	for i, label := range slots {
		out[i] = model.RosterSlot{Label: label}
	}
	used := make(map[string]bool, len(ranked))

	assign := func(i int, label string) {
		for j := range ranked {
			p := ranked[j]
			if used[p.Player.ID] {
				continue
			}
			if !eligibility.PlayerCanFill(p.Player, label) {
				continue
			}
			cp := p
			out[i].Player = &cp
			used[p.Player.ID] = true
			return
		}
	}

	// Pass 1: fixed slots in list order.
	for i, label := range slots {
		if eligibility.IsFlex(label) {
			continue
		}
		assign(i, label)
	}
	// Pass 2: flex slots in list order.
	for i, label := range slots {
		if !eligibility.IsFlex(label) {
			continue
		}
		assign(i, label)
	}
	return out
}

// OptimizeMatching computes an exact maximum-points assignment. Because a
// player scores the same in any slot it can fill, inserting players in
// descending point order and keeping each one only if an augmenting path
// exists yields the optimum. Slot placement within a player's eligible set is
// whatever the augmenting paths settle on, visited in slot-list order, so the
// output is deterministic even though it may differ from greedy placement.
func OptimizeMatching(slots []string, pool []model.ScoredPlayer) []model.RosterSlot {
	ranked := rank(pool)
	out := make([]model.RosterSlot, len(slots))
	for i, label := range slots {
		out[i] = model.RosterSlot{Label: label}
	}

	// slotOf[s] = index into placed, -1 if open.
	slotOf := make([]int, len(slots))
	for i := range slotOf {
		slotOf[i] = -1
	}
	placed := make([]model.ScoredPlayer, 0, len(slots))
	eligibleSlots := func(p model.Player) []int {
		idx := make([]int, 0, len(slots))
		for s, label := range slots {
			if eligibility.PlayerCanFill(p, label) {
				idx = append(idx, s)
			}
		}
		return idx
	}

	var augment func(pi int, visited []bool) bool
	augment = func(pi int, visited []bool) bool {
		for _, s := range eligibleSlots(placed[pi].Player) {
			if visited[s] {
				continue
			}
			visited[s] = true
			if slotOf[s] == -1 || augment(slotOf[s], visited) {
				slotOf[s] = pi
				return true
			}
		}
		return false
	}

	for _, p := range ranked {
		placed = append(placed, p)
		visited := make([]bool, len(slots))
		if !augment(len(placed)-1, visited) {
			placed = placed[:len(placed)-1]
		}
	}

	for s, pi := range slotOf {
		if pi == -1 {
			continue
		}
		cp := placed[pi]
		out[s].Player = &cp
	}
	return out
}

// Total sums assigned projected points.
func Total(slots []model.RosterSlot) float64 {
	var sum float64
	for _, s := range slots {
		if s.Player != nil {
			sum += s.Player.Points
		}
	}
	return sum
}
