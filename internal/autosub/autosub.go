// Package autosub flags questionable starters and ranks bench players who
// could cover the slot if the starter is ruled out close to kickoff.
package autosub

import (
	"fmt"
	"sort"
	"time"

	"lineup-advisor-mcp/internal/eligibility"
	"lineup-advisor-mcp/internal/lock"
	"lineup-advisor-mcp/internal/model"
)

// Options tune the candidate filter.
type Options struct {
	// RequireLaterStart keeps only bench candidates whose game kicks off at
	// or after the questionable starter's game, so the swap can still be
	// made after inactives are announced.
	RequireLaterStart bool
	MaxCandidates     int // 0 means the default of 2
}

// Advise returns one recommendation per questionable starter, in slot
// order. Starters with no eligible cover still appear with an empty
// candidate list so the caller can surface the exposure.
func Advise(starters []model.StarterSlot, bench []model.ScoredPlayer, sched lock.Schedule, opts Options) []model.AutoSubRecommendation {
	maxC := opts.MaxCandidates
	if maxC <= 0 {
		maxC = 2
	}

	kickoff := func(team string) (time.Time, bool) {
		g, ok := sched.Lookup(team)
		if !ok || g.Kickoff.IsZero() {
			return time.Time{}, false
		}
		return g.Kickoff, true
	}

	var out []model.AutoSubRecommendation
	for _, s := range starters {
		if !s.Player.Player.Questionable() {
			continue
		}
		starterKick, starterKnown := kickoff(s.Player.Player.Team)

		var cands []model.AutoSubCandidate
		for _, b := range bench {
			if !eligibility.PlayerCanFill(b.Player, s.Label) {
				continue
			}
			benchKick, benchKnown := kickoff(b.Player.Team)
			var hoursLater float64
			if starterKnown && benchKnown {
				hoursLater = benchKick.Sub(starterKick).Hours()
				if opts.RequireLaterStart && hoursLater < 0 {
					continue
				}
			}
			cands = append(cands, model.AutoSubCandidate{
				Player:     b,
				Delta:      b.Points - s.Player.Points,
				Floor:      b.Points * 0.7,
				HoursLater: hoursLater,
			})
		}
		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].Player.Points != cands[j].Player.Points {
				return cands[i].Player.Points > cands[j].Player.Points
			}
			return cands[i].Floor > cands[j].Floor
		})
		if len(cands) > maxC {
			cands = cands[:maxC]
		}
		for i := range cands {
			cands[i].Rationale = rationale(cands[i], s.Player.Player.Name)
		}
		out = append(out, model.AutoSubRecommendation{
			Slot:       s.Label,
			Starter:    s.Player,
			Candidates: cands,
		})
	}
	return out
}

func rationale(c model.AutoSubCandidate, starterName string) string {
	r := fmt.Sprintf("%+.1f pts vs %s", c.Delta, starterName)
	if c.HoursLater > 0 {
		r += fmt.Sprintf(", kicks off %.1fh later", c.HoursLater)
	}
	return r
}
