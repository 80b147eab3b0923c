package main

import (
	"time"

	"lineup-advisor-mcp/internal/autosub"
	"lineup-advisor-mcp/internal/config"
	"lineup-advisor-mcp/internal/model"
)

type AutoSubsArgs struct {
	LeagueID          int   `json:"league_id" jsonschema:"League id (required)"`
	TeamID            int   `json:"team_id" jsonschema:"Team id (required)"`
	Week              int   `json:"week" jsonschema:"Week (0 = current)"`
	RequireLaterStart *bool `json:"require_later_start,omitempty" jsonschema:"Only suggest subs whose game starts at or after the starter's (default from league config)"`
}

type AutoSubsReport struct {
	Season          int                           `json:"season"`
	Week            int                           `json:"week"`
	Recommendations []model.AutoSubRecommendation `json:"recommendations,omitempty"`
	Warnings        []string                      `json:"warnings,omitempty"`
}

func buildAutoSubs(cfg ServerConfig, league config.League, args AutoSubsArgs, _ time.Time) (AutoSubsReport, error) {
	snap, err := loadSnapshot(cfg, league, args.LeagueID, args.TeamID, args.Week)
	if err != nil {
		return AutoSubsReport{}, err
	}

	requireLater := league.AutoSub.RequireLaterStart
	if args.RequireLaterStart != nil {
		requireLater = *args.RequireLaterStart
	}

	recs := autosub.Advise(
		snap.currentStarters(),
		snap.benchPool(),
		snap.Schedule,
		autosub.Options{RequireLaterStart: requireLater},
	)

	return AutoSubsReport{
		Season:          snap.Season,
		Week:            snap.Week,
		Recommendations: recs,
		Warnings:        snap.Warnings,
	}, nil
}
