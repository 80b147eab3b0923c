// Package diff compares the current lineup against the optimizer's output
// and produces human-actionable, deduplicated recommendations: who to start,
// who sits for them, and which starters merely change seats.
package diff

import (
	"sort"

	"lineup-advisor-mcp/internal/model"
)

// Input is one diff pass. CurrentIDs is index-aligned with SlotLabels and
// keeps an empty string per empty slot; the array is never compacted, since
// index fidelity is what the whole pairing rests on.
type Input struct {
	SlotLabels []string
	CurrentIDs []string
	Optimal    []model.RosterSlot
	// Players resolves every id appearing in either lineup. Missing entries
	// degrade to zero-point placeholders rather than failing.
	Players    map[string]model.ScoredPlayer
	IRSet      map[string]bool
	FreeAgents map[string]bool
}

// Result is the full diff output for one pass.
type Result struct {
	Ins      []model.ScoredPlayer           `json:"ins,omitempty"`
	Outs     []model.ScoredPlayer           `json:"outs,omitempty"`
	Moves    []model.Move                   `json:"moves,omitempty"`
	Cascades []model.CascadeMove            `json:"cascade_moves,omitempty"`
	Enriched []model.EnrichedRecommendation `json:"recommendations,omitempty"`
	Totals   model.LineupTotals             `json:"totals"`
}

func (in Input) resolve(id string) model.ScoredPlayer {
	if p, ok := in.Players[id]; ok {
		return p
	}
	return model.ScoredPlayer{Player: model.Player{ID: id}}
}

func (in Input) source(id string) string {
	switch {
	case in.IRSet[id]:
		return model.SourceIR
	case in.FreeAgents[id]:
		return model.SourceFA
	default:
		return model.SourceBench
	}
}

// Compute runs one diff pass. Output order is fully determined by the input:
// slot order for moves and cascades, descending points for enriched
// recommendations, with stable sorts throughout.
func Compute(in Input) Result {
	currentIndex := make(map[string]int, len(in.CurrentIDs))
	for i, id := range in.CurrentIDs {
		if id == "" {
			continue
		}
		if _, ok := currentIndex[id]; !ok {
			currentIndex[id] = i
		}
	}
	optimalIndex := make(map[string]int, len(in.Optimal))
	optimalID := func(i int) string {
		if i < len(in.Optimal) && in.Optimal[i].Player != nil {
			return in.Optimal[i].Player.Player.ID
		}
		return ""
	}
	for i := range in.Optimal {
		if id := optimalID(i); id != "" {
			if _, ok := optimalIndex[id]; !ok {
				optimalIndex[id] = i
			}
		}
	}

	var res Result

	// Informational set differences, in slot order.
	seenIn := make(map[string]bool)
	for i := range in.Optimal {
		id := optimalID(i)
		if id == "" || seenIn[id] {
			continue
		}
		seenIn[id] = true
		if _, ok := currentIndex[id]; !ok {
			res.Ins = append(res.Ins, *in.Optimal[i].Player)
		}
	}
	for _, id := range in.CurrentIDs {
		if id == "" {
			continue
		}
		if _, ok := optimalIndex[id]; !ok {
			res.Outs = append(res.Outs, in.resolve(id))
		}
	}

	// Totals.
	for _, id := range in.CurrentIDs {
		if id != "" {
			res.Totals.Current += in.resolve(id).Points
		}
	}
	for i := range in.Optimal {
		if in.Optimal[i].Player != nil {
			res.Totals.Optimal += in.Optimal[i].Player.Points
		}
	}
	res.Totals.Delta = res.Totals.Optimal - res.Totals.Current

	// Slot-level moves.
	emitted := make(map[string]bool)
	for i := range in.Optimal {
		inID := optimalID(i)
		curID := ""
		if i < len(in.CurrentIDs) {
			curID = in.CurrentIDs[i]
		}
		if inID == "" || inID == curID {
			continue
		}
		if _, isStarter := currentIndex[inID]; isStarter && curID != "" {
			// Pure intra-starter reshuffle: recorded as a cascade, not a move.
			continue
		}
		if emitted[inID] {
			continue
		}
		emitted[inID] = true

		incoming := *in.Optimal[i].Player
		move := model.Move{
			Slot:           in.SlotLabels[i],
			SlotIndex:      i,
			In:             incoming,
			Gain:           incoming.Points,
			Source:         in.source(inID),
			IsFillingEmpty: curID == "",
		}
		if curID != "" {
			// Report who was benched here even if they are optimal elsewhere;
			// the narrative of this slot stays accurate.
			out := in.resolve(curID)
			move.Out = &out
			move.Gain = incoming.Points - out.Points
		}
		res.Moves = append(res.Moves, move)
	}

	// Cascade moves: in both lineups, different slot index, and not already
	// surfaced as a Move (a starter promoted into an empty slot is a Move,
	// not a cascade). Walked in current slot order so the list is stable.
	for ci, id := range in.CurrentIDs {
		if id == "" || currentIndex[id] != ci || emitted[id] {
			continue
		}
		oi, ok := optimalIndex[id]
		if !ok || oi == ci {
			continue
		}
		p := in.resolve(id)
		res.Cascades = append(res.Cascades, model.CascadeMove{
			PlayerID: id,
			Name:     p.Player.Name,
			From:     in.SlotLabels[ci],
			To:       in.SlotLabels[oi],
		})
	}

	res.Enriched = enrich(in, res, currentIndex, optimalIndex)
	return res
}

// enrich builds the narrative recommendation list: each truly-new player is
// paired with the weakest still-unconsumed benched starter, so no bench
// player is sacrificed twice across recommendations.
func enrich(in Input, res Result, currentIndex, optimalIndex map[string]int) []model.EnrichedRecommendation {
	if len(res.Ins) == 0 {
		return nil
	}

	benched := make([]model.ScoredPlayer, len(res.Outs))
	copy(benched, res.Outs)
	sort.SliceStable(benched, func(i, j int) bool {
		return benched[i].Points < benched[j].Points // weakest sacrifice first
	})
	consumed := make([]bool, len(benched))

	newcomers := make([]model.ScoredPlayer, len(res.Ins))
	copy(newcomers, res.Ins)
	sort.SliceStable(newcomers, func(i, j int) bool {
		return newcomers[i].Points > newcomers[j].Points
	})

	out := make([]model.EnrichedRecommendation, 0, len(newcomers))
	for _, nc := range newcomers {
		oi := optimalIndex[nc.Player.ID]
		rec := model.EnrichedRecommendation{
			Slot:         in.SlotLabels[oi],
			In:           nc,
			Source:       in.source(nc.Player.ID),
			CascadeMoves: res.Cascades,
		}
		slotWasEmpty := oi < len(in.CurrentIDs) && in.CurrentIDs[oi] == ""
		if slotWasEmpty {
			// Truly empty slot: no displacement, ever — absence of a pairing
			// candidate is not what decides this.
			rec.IsFillingEmpty = true
			rec.NetDelta = nc.Points
		} else {
			for bi := range benched {
				if consumed[bi] {
					continue
				}
				consumed[bi] = true
				d := benched[bi]
				rec.Displaced = &d
				break
			}
			rec.NetDelta = nc.Points
			if rec.Displaced != nil {
				rec.NetDelta = nc.Points - rec.Displaced.Points
			}
		}
		out = append(out, rec)
	}
	return out
}
