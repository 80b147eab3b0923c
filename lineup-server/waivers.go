package main

import (
	"time"

	"lineup-advisor-mcp/internal/config"
	"lineup-advisor-mcp/internal/model"
	"lineup-advisor-mcp/internal/waiver"
)

type WaiverUpgradesArgs struct {
	LeagueID   int      `json:"league_id" jsonschema:"League id (required)"`
	TeamID     int      `json:"team_id" jsonschema:"Team id (required)"`
	Week       int      `json:"week" jsonschema:"Week (0 = current)"`
	MinGain    *float64 `json:"min_gain,omitempty" jsonschema:"Minimum projected gain in points (default from league config)"`
	MaxTotal   *int     `json:"max_total,omitempty" jsonschema:"Cap on total suggestions (default from league config)"`
	ExcludeIDs []string `json:"exclude_ids,omitempty" jsonschema:"Player ids to never suggest"`
}

type WaiverUpgradesReport struct {
	Season      int                             `json:"season"`
	Week        int                             `json:"week"`
	MinGain     float64                         `json:"min_gain"`
	Suggestions []model.GroupedWaiverSuggestion `json:"suggestions"`
	Warnings    []string                        `json:"warnings,omitempty"`
}

// buildWaiverUpgrades runs the free-agent scan against the lineup as set:
// the floor is the weakest current starter at each slot, so a weak starter
// the optimizer would bench still defines the bar a pickup must clear.
func buildWaiverUpgrades(cfg ServerConfig, league config.League, args WaiverUpgradesArgs, _ time.Time) (WaiverUpgradesReport, error) {
	snap, err := loadSnapshot(cfg, league, args.LeagueID, args.TeamID, args.Week)
	if err != nil {
		return WaiverUpgradesReport{}, err
	}

	wcfg := waiver.Config{
		MinGain:         league.Waiver.MinGain,
		MaxPerPosition:  league.Waiver.MaxPerPosition,
		MaxTotal:        league.Waiver.MaxTotal,
		MaxAlternatives: league.Waiver.MaxAlternatives,
		Exclude:         make(map[string]bool),
	}
	for _, id := range league.Waiver.ExcludeIDs {
		wcfg.Exclude[id] = true
	}
	for _, id := range args.ExcludeIDs {
		wcfg.Exclude[id] = true
	}
	if args.MinGain != nil && *args.MinGain > 0 {
		wcfg.MinGain = *args.MinGain
	}
	if args.MaxTotal != nil && *args.MaxTotal > 0 {
		wcfg.MaxTotal = *args.MaxTotal
	}

	suggestions := waiver.Upgrades(
		snap.FreeAgents,
		snap.currentStarters(),
		snap.Roster.SlotLabels,
		snap.Schedule,
		wcfg,
	)

	return WaiverUpgradesReport{
		Season:      snap.Season,
		Week:        snap.Week,
		MinGain:     wcfg.MinGain,
		Suggestions: suggestions,
		Warnings:    snap.Warnings,
	}, nil
}
