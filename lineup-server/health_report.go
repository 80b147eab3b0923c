package main

import (
	"time"

	"lineup-advisor-mcp/internal/config"
	"lineup-advisor-mcp/internal/health"
	"lineup-advisor-mcp/internal/model"
)

type RosterHealthArgs struct {
	LeagueID int `json:"league_id" jsonschema:"League id (required)"`
	TeamID   int `json:"team_id" jsonschema:"Team id (required)"`
	Week     int `json:"week" jsonschema:"Week (0 = current)"`
}

type RosterHealthReport struct {
	Season   int                      `json:"season"`
	Week     int                      `json:"week"`
	Report   model.RosterHealthReport `json:"report"`
	Warnings []string                 `json:"warnings,omitempty"`
}

// buildRosterHealth grades positions against the lineup the optimizer would
// run, not the one currently set, so a badly-set lineup doesn't read as a
// weak roster.
func buildRosterHealth(cfg ServerConfig, league config.League, args RosterHealthArgs, _ time.Time) (RosterHealthReport, error) {
	snap, err := loadSnapshot(cfg, league, args.LeagueID, args.TeamID, args.Week)
	if err != nil {
		return RosterHealthReport{}, err
	}
	optimal := optimizeSnapshot(snap, normalizeMode(""))
	starters := optimalStarters(optimal)

	inLineup := make(map[string]bool, len(starters))
	for _, s := range starters {
		inLineup[s.Player.Player.ID] = true
	}
	var bench []model.ScoredPlayer
	for _, sp := range snap.starterPool() {
		if !inLineup[sp.Player.ID] {
			bench = append(bench, sp)
		}
	}

	report := health.Analyze(health.Input{
		OptimalStarters: starters,
		Bench:           bench,
		FreeAgents:      snap.FreeAgents,
	})

	return RosterHealthReport{
		Season:   snap.Season,
		Week:     snap.Week,
		Report:   report,
		Warnings: snap.Warnings,
	}, nil
}
