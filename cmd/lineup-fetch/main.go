// Command lineup-fetch pulls the raw league snapshots the MCP server reads:
// meta, player directory, projections, schedule, rosters, and free agents.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lineup-advisor-mcp/internal/fetch"
	"lineup-advisor-mcp/internal/store"
)

func main() {
	var (
		leagueID = flag.Int("league", 0, "league id (required)")
		teamIDs  = flag.String("teams", "", "comma-separated team ids to fetch rosters for")
		week     = flag.Int("week", 0, "week to fetch (0 = current from meta)")
		baseURL  = flag.String("base-url", "https://api.lineup-advisor.dev/v1", "league API base URL")
		rawRoot  = flag.String("raw-root", "data/raw", "root directory for raw JSON")
		force    = flag.Bool("force", false, "refetch even when cached on disk")
		sleepMS  = flag.Int("sleep-ms", 250, "sleep between requests in ms")
		debug    = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	if *leagueID == 0 {
		logger.Fatal().Msg("-league is required")
	}

	st := store.NewJSONStore(*rawRoot)
	client := fetch.NewClient(st, *baseURL, logger)
	client.Sleep = time.Duration(*sleepMS) * time.Millisecond

	ctx := context.Background()

	metaBody, err := client.Meta(ctx, *force)
	if err != nil {
		logger.Fatal().Err(err).Msg("fetch meta")
	}
	var meta struct {
		Season      int `json:"season"`
		CurrentWeek int `json:"current_week"`
	}
	if err := json.Unmarshal(metaBody, &meta); err != nil {
		logger.Fatal().Err(err).Msg("decode meta")
	}
	wk := *week
	if wk == 0 {
		wk = meta.CurrentWeek
	}
	if meta.Season == 0 || wk == 0 {
		logger.Fatal().Int("season", meta.Season).Int("week", wk).Msg("meta missing season or week")
	}

	if _, err := client.PlayerDirectory(ctx, *force); err != nil {
		logger.Fatal().Err(err).Msg("fetch player directory")
	}
	if _, err := client.Projections(ctx, meta.Season, wk, *force); err != nil {
		logger.Warn().Err(err).Msg("fetch projections")
	}
	if _, err := client.Schedule(ctx, meta.Season, wk, *force); err != nil {
		logger.Warn().Err(err).Msg("fetch schedule")
	}
	if _, err := client.FreeAgents(ctx, *leagueID, *force); err != nil {
		logger.Warn().Err(err).Msg("fetch free agents")
	}
	for _, teamID := range splitIDs(*teamIDs) {
		if _, err := client.Roster(ctx, *leagueID, teamID, *force); err != nil {
			logger.Fatal().Err(err).Int("team", teamID).Msg("fetch roster")
		}
	}

	logger.Info().Int("season", meta.Season).Int("week", wk).Msg("snapshots up to date")
}

func splitIDs(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			continue
		}
		out = append(out, id)
	}
	return out
}
