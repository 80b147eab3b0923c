package main

import (
	"strings"
	"time"

	"lineup-advisor-mcp/internal/config"
	"lineup-advisor-mcp/internal/model"
	"lineup-advisor-mcp/internal/optimizer"
)

type OptimizeLineupArgs struct {
	LeagueID int    `json:"league_id" jsonschema:"League id (required)"`
	TeamID   int    `json:"team_id" jsonschema:"Team id (required)"`
	Week     int    `json:"week" jsonschema:"Week (0 = current)"`
	Mode     string `json:"mode,omitempty" jsonschema:"Assignment mode: greedy|matching (default greedy)"`
}

type OptimizeLineupReport struct {
	Season   int                `json:"season"`
	Week     int                `json:"week"`
	Mode     string             `json:"mode"`
	Lineup   []optimalSlotView  `json:"lineup"`
	Totals   model.LineupTotals `json:"totals"`
	Warnings []string           `json:"warnings,omitempty"`
}

type optimalSlotView struct {
	Slot   string              `json:"slot"`
	Player *model.ScoredPlayer `json:"player,omitempty"`
}

func normalizeMode(mode string) string {
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case optimizer.ModeMatching:
		return optimizer.ModeMatching
	default:
		return optimizer.ModeGreedy
	}
}

// optimizeSnapshot runs the configured assignment over the snapshot's pool.
func optimizeSnapshot(snap *snapshot, mode string) []model.RosterSlot {
	pool := snap.starterPool()
	if mode == optimizer.ModeMatching {
		return optimizer.OptimizeMatching(snap.Roster.SlotLabels, pool)
	}
	return optimizer.Optimize(snap.Roster.SlotLabels, pool)
}

func currentTotal(snap *snapshot) float64 {
	var total float64
	for _, id := range snap.Roster.Starters {
		if id == "" {
			continue
		}
		total += snap.Scored[id].Points
	}
	return total
}

func buildOptimizeLineup(cfg ServerConfig, league config.League, args OptimizeLineupArgs, _ time.Time) (OptimizeLineupReport, error) {
	snap, err := loadSnapshot(cfg, league, args.LeagueID, args.TeamID, args.Week)
	if err != nil {
		return OptimizeLineupReport{}, err
	}
	mode := normalizeMode(args.Mode)
	optimal := optimizeSnapshot(snap, mode)

	report := OptimizeLineupReport{
		Season:   snap.Season,
		Week:     snap.Week,
		Mode:     mode,
		Warnings: snap.Warnings,
	}
	for _, slot := range optimal {
		report.Lineup = append(report.Lineup, optimalSlotView{Slot: slot.Label, Player: slot.Player})
	}
	report.Totals.Current = currentTotal(snap)
	report.Totals.Optimal = optimizer.Total(optimal)
	report.Totals.Delta = report.Totals.Optimal - report.Totals.Current
	return report, nil
}
