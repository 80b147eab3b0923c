package main

import (
	"sort"
	"time"

	"lineup-advisor-mcp/internal/config"
	"lineup-advisor-mcp/internal/lock"
)

type LockStatusArgs struct {
	LeagueID int `json:"league_id" jsonschema:"League id (required)"`
	TeamID   int `json:"team_id" jsonschema:"Team id (required)"`
	Week     int `json:"week" jsonschema:"Week (0 = current)"`
}

type starterLockView struct {
	Slot     string `json:"slot"`
	PlayerID string `json:"player_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Team     string `json:"team,omitempty"`
	Locked   bool   `json:"locked"`
	Reason   string `json:"reason,omitempty"`
}

type teamLockView struct {
	Team       string `json:"team"`
	State      string `json:"state"`
	KickoffUTC string `json:"kickoff_utc,omitempty"`
}

type LockStatusReport struct {
	Season   int               `json:"season"`
	Week     int               `json:"week"`
	AsOf     string            `json:"as_of_utc"`
	Starters []starterLockView `json:"starters"`
	Games    []teamLockView    `json:"games,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

// buildLockStatus reports which starters can still be changed. With no
// schedule data every slot reads unlocked, matching the fail-open gate the
// engines use.
func buildLockStatus(cfg ServerConfig, league config.League, args LockStatusArgs, now time.Time) (LockStatusReport, error) {
	snap, err := loadSnapshot(cfg, league, args.LeagueID, args.TeamID, args.Week)
	if err != nil {
		return LockStatusReport{}, err
	}

	report := LockStatusReport{
		Season:   snap.Season,
		Week:     snap.Week,
		AsOf:     now.UTC().Format(time.RFC3339),
		Warnings: snap.Warnings,
	}

	for i, id := range snap.Roster.Starters {
		if i >= len(snap.Roster.SlotLabels) {
			break
		}
		view := starterLockView{Slot: snap.Roster.SlotLabels[i]}
		if id != "" {
			sp := snap.Scored[id]
			view.PlayerID = id
			view.Name = sp.Player.Name
			view.Team = sp.Player.Team
			if reason := lock.BlockReason(snap.Schedule, sp.Player.Team, now); reason != "" {
				view.Locked = true
				view.Reason = reason
			}
		}
		report.Starters = append(report.Starters, view)
	}

	teams := make([]string, 0, len(snap.Schedule))
	for team := range snap.Schedule {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	for _, team := range teams {
		g := snap.Schedule[team]
		view := teamLockView{Team: team, State: g.State}
		if !g.Kickoff.IsZero() {
			view.KickoffUTC = g.Kickoff.UTC().Format(time.RFC3339)
		}
		report.Games = append(report.Games, view)
	}
	return report, nil
}
