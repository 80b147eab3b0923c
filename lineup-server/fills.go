package main

import (
	"time"

	"lineup-advisor-mcp/internal/config"
	"lineup-advisor-mcp/internal/fill"
	"lineup-advisor-mcp/internal/model"
)

type EmptySlotFillsArgs struct {
	LeagueID        int  `json:"league_id" jsonschema:"League id (required)"`
	TeamID          int  `json:"team_id" jsonschema:"Team id (required)"`
	Week            int  `json:"week" jsonschema:"Week (0 = current)"`
	ConsiderWaivers bool `json:"consider_waivers,omitempty" jsonschema:"Allow free-agent candidates"`
	PickupBudget    int  `json:"pickup_budget,omitempty" jsonschema:"Remaining pickups; free agents need at least 1"`
}

type EmptySlotFillsReport struct {
	Season      int                    `json:"season"`
	Week        int                    `json:"week"`
	EmptySlots  int                    `json:"empty_slots"`
	Suggestions []model.FillSuggestion `json:"suggestions,omitempty"`
	Warnings    []string               `json:"warnings,omitempty"`
}

func buildEmptySlotFills(cfg ServerConfig, league config.League, args EmptySlotFillsArgs, now time.Time) (EmptySlotFillsReport, error) {
	snap, err := loadSnapshot(cfg, league, args.LeagueID, args.TeamID, args.Week)
	if err != nil {
		return EmptySlotFillsReport{}, err
	}

	suggestions := fill.Suggest(
		snap.Roster.SlotLabels,
		snap.Roster.Starters,
		snap.benchPool(),
		snap.FreeAgents,
		snap.Schedule,
		now,
		fill.Options{
			ConsiderWaivers: args.ConsiderWaivers,
			PickupBudget:    args.PickupBudget,
		},
	)

	return EmptySlotFillsReport{
		Season:      snap.Season,
		Week:        snap.Week,
		EmptySlots:  len(suggestions),
		Suggestions: suggestions,
		Warnings:    snap.Warnings,
	}, nil
}
