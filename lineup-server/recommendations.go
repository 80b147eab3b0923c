package main

import (
	"time"

	"lineup-advisor-mcp/internal/config"
	"lineup-advisor-mcp/internal/diff"
	"lineup-advisor-mcp/internal/model"
	"lineup-advisor-mcp/internal/waiver"
)

type LineupRecommendationsArgs struct {
	LeagueID int    `json:"league_id" jsonschema:"League id (required)"`
	TeamID   int    `json:"team_id" jsonschema:"Team id (required)"`
	Week     int    `json:"week" jsonschema:"Week (0 = current)"`
	Mode     string `json:"mode,omitempty" jsonschema:"Assignment mode: greedy|matching (default greedy)"`
}

type LineupRecommendationsReport struct {
	Season          int                            `json:"season"`
	Week            int                            `json:"week"`
	Mode            string                         `json:"mode"`
	Totals          model.LineupTotals             `json:"totals"`
	Moves           []model.Move                   `json:"moves,omitempty"`
	CascadeMoves    []model.CascadeMove            `json:"cascade_moves,omitempty"`
	Recommendations []model.EnrichedRecommendation `json:"recommendations,omitempty"`
	ActionPlan      model.ActionPlan               `json:"action_plan"`
	Warnings        []string                       `json:"warnings,omitempty"`
}

// buildLineupRecommendations is the full pipeline: load, score, optimize,
// diff, and decompose the change into an ordered action plan.
func buildLineupRecommendations(cfg ServerConfig, league config.League, args LineupRecommendationsArgs, now time.Time) (LineupRecommendationsReport, error) {
	snap, err := loadSnapshot(cfg, league, args.LeagueID, args.TeamID, args.Week)
	if err != nil {
		return LineupRecommendationsReport{}, err
	}
	mode := normalizeMode(args.Mode)
	optimal := optimizeSnapshot(snap, mode)

	res := diff.Compute(diff.Input{
		SlotLabels: snap.Roster.SlotLabels,
		CurrentIDs: snap.Roster.Starters,
		Optimal:    optimal,
		Players:    snap.Scored,
		IRSet:      snap.irSet(),
		FreeAgents: snap.freeAgentSet(),
	})

	plan := waiver.ComputeLineupDiff(
		snap.currentStarters(),
		optimalStarters(optimal),
		snap.Schedule,
		now,
	)

	return LineupRecommendationsReport{
		Season:          snap.Season,
		Week:            snap.Week,
		Mode:            mode,
		Totals:          res.Totals,
		Moves:           res.Moves,
		CascadeMoves:    res.Cascades,
		Recommendations: res.Enriched,
		ActionPlan:      plan,
		Warnings:        snap.Warnings,
	}, nil
}

func optimalStarters(optimal []model.RosterSlot) []model.StarterSlot {
	var out []model.StarterSlot
	for _, slot := range optimal {
		if slot.Player == nil {
			continue
		}
		out = append(out, model.StarterSlot{Label: slot.Label, Player: *slot.Player})
	}
	return out
}
