package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"lineup-advisor-mcp/internal/config"
	"lineup-advisor-mcp/internal/lock"
	"lineup-advisor-mcp/internal/model"
	"lineup-advisor-mcp/internal/projcache"
	"lineup-advisor-mcp/internal/scoring"
	"lineup-advisor-mcp/internal/store"
)

// snapshot is everything one tool call needs, loaded from the raw store and
// scored with the league's weights. Missing optional files degrade to
// warnings; missing required files fail the call.
type snapshot struct {
	Season   int
	Week     int
	Roster   model.RosterSnapshot
	Players  map[string]model.Player
	Scored   map[string]model.ScoredPlayer
	Schedule lock.Schedule
	// FreeAgents is the scored unrostered pool, descending by points.
	FreeAgents []model.ScoredPlayer
	Warnings   []string
}

func loadSnapshot(cfg ServerConfig, league config.League, leagueID, teamID, week int) (*snapshot, error) {
	if leagueID == 0 {
		return nil, fmt.Errorf("league_id is required")
	}
	if teamID == 0 {
		return nil, fmt.Errorf("team_id is required")
	}
	st := store.NewJSONStore(cfg.RawRoot)

	season, wk, err := resolveWeek(st, week)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{Season: season, Week: wk}

	if err := st.ReadJSON(fmt.Sprintf("league/%d/roster/%d.json", leagueID, teamID), &snap.Roster); err != nil {
		return nil, fmt.Errorf("roster snapshot: %w", err)
	}
	if len(snap.Roster.SlotLabels) == 0 {
		snap.Roster.SlotLabels = league.RosterPositions
	}
	if len(snap.Roster.Starters) < len(snap.Roster.SlotLabels) {
		// Pad so every configured slot exists, empty ones included.
		padded := make([]string, len(snap.Roster.SlotLabels))
		copy(padded, snap.Roster.Starters)
		snap.Roster.Starters = padded
	}

	var directory []model.Player
	if err := st.ReadJSON("players/directory.json", &directory); err != nil {
		return nil, fmt.Errorf("player directory: %w", err)
	}
	snap.Players = make(map[string]model.Player, len(directory))
	for _, p := range directory {
		snap.Players[p.ID] = p
	}

	projections, err := loadProjections(cfg, st, season, wk)
	if err != nil {
		if !store.IsNotExist(err) {
			return nil, fmt.Errorf("projections: %w", err)
		}
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("no projections for season %d week %d; all players score 0", season, wk))
	}

	if err := st.ReadJSON(fmt.Sprintf("schedule/%d/%d.json", season, wk), &snap.Schedule); err != nil {
		if !store.IsNotExist(err) {
			return nil, fmt.Errorf("schedule: %w", err)
		}
		snap.Warnings = append(snap.Warnings, "no schedule data; lineup locks disabled")
	}

	snap.Scored = scorePool(snap.Players, projections, league.Scoring)

	snap.FreeAgents = freeAgentPool(st, leagueID, snap)
	return snap, nil
}

// loadProjections reads through two cache tiers: the in-process snapshot
// cache, then Redis when configured, then the raw store.
func loadProjections(cfg ServerConfig, st *store.JSONStore, season, week int) ([]model.Projection, error) {
	key := projcache.Key(season, week)
	if out, ok := cfg.Cache.Get(key); ok {
		return out, nil
	}
	if cfg.Redis != nil {
		if out, ok := cfg.Redis.Get(context.Background(), key); ok {
			cfg.Cache.Put(key, out)
			return out, nil
		}
	}
	var out []model.Projection
	if err := st.ReadJSON(fmt.Sprintf("projections/%d/%d.json", season, week), &out); err != nil {
		return nil, err
	}
	cfg.Cache.Put(key, out)
	if cfg.Redis != nil {
		if err := cfg.Redis.Put(context.Background(), key, out); err != nil {
			cfg.Log.Warn().Err(err).Msg("redis projection write failed")
		}
	}
	return out, nil
}

// resolveWeek returns the requested week, or the current one from meta.json
// when the argument is zero.
func resolveWeek(st *store.JSONStore, week int) (int, int, error) {
	var meta struct {
		Season      int `json:"season"`
		CurrentWeek int `json:"current_week"`
	}
	if err := st.ReadJSON("meta.json", &meta); err != nil {
		return 0, 0, fmt.Errorf("missing meta snapshot: %w", err)
	}
	if meta.Season == 0 {
		return 0, 0, fmt.Errorf("season missing in meta.json")
	}
	if week > 0 {
		return meta.Season, week, nil
	}
	if meta.CurrentWeek == 0 {
		return 0, 0, fmt.Errorf("current_week missing in meta.json")
	}
	return meta.Season, meta.CurrentWeek, nil
}

// scorePool resolves every directory player to a league-scored projection.
// Projections match by player id first, then by the name|team|pos fallback.
func scorePool(players map[string]model.Player, projections []model.Projection, w scoring.Weights) map[string]model.ScoredPlayer {
	byID := make(map[string]model.Projection, len(projections))
	byKey := make(map[string]model.Projection)
	for _, pr := range projections {
		if pr.PlayerID != "" {
			byID[pr.PlayerID] = pr
		} else if pr.FallbackKey != "" {
			byKey[strings.ToLower(pr.FallbackKey)] = pr
		}
	}

	out := make(map[string]model.ScoredPlayer, len(players))
	for id, p := range players {
		pr, ok := byID[id]
		if !ok {
			key := strings.ToLower(fmt.Sprintf("%s|%s|%s", p.Name, p.Team, p.Position))
			pr, ok = byKey[key]
		}
		sp := model.ScoredPlayer{Player: p}
		if ok {
			sp.Points = scoring.Score(p.Position, pr.Stats, w, pr.Points)
		}
		out[id] = sp
	}
	return out
}

// freeAgentPool prefers the league's explicit free-agent list and falls back
// to directory-minus-rostered when the file is absent.
func freeAgentPool(st *store.JSONStore, leagueID int, snap *snapshot) []model.ScoredPlayer {
	rostered := make(map[string]bool)
	for _, group := range [][]string{snap.Roster.Starters, snap.Roster.Bench, snap.Roster.Reserve, snap.Roster.Taxi} {
		for _, id := range group {
			if id != "" {
				rostered[id] = true
			}
		}
	}

	var ids []string
	if err := st.ReadJSON(fmt.Sprintf("league/%d/free_agents.json", leagueID), &ids); err != nil {
		for id := range snap.Players {
			if !rostered[id] {
				ids = append(ids, id)
			}
		}
		sort.Strings(ids)
	}

	out := make([]model.ScoredPlayer, 0, len(ids))
	for _, id := range ids {
		if rostered[id] {
			continue
		}
		if sp, ok := snap.Scored[id]; ok {
			out = append(out, sp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	return out
}

// benchPool resolves the bench ids to scored players, skipping unknowns.
func (s *snapshot) benchPool() []model.ScoredPlayer {
	out := make([]model.ScoredPlayer, 0, len(s.Bench()))
	for _, id := range s.Bench() {
		if sp, ok := s.Scored[id]; ok {
			out = append(out, sp)
		}
	}
	return out
}

func (s *snapshot) Bench() []string { return s.Roster.Bench }

// starterPool is every non-empty starter plus the bench: the set the
// optimizer chooses from.
func (s *snapshot) starterPool() []model.ScoredPlayer {
	seen := make(map[string]bool)
	var out []model.ScoredPlayer
	for _, id := range s.Roster.Starters {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if sp, ok := s.Scored[id]; ok {
			out = append(out, sp)
		}
	}
	for _, sp := range s.benchPool() {
		if !seen[sp.Player.ID] {
			seen[sp.Player.ID] = true
			out = append(out, sp)
		}
	}
	return out
}

// currentStarters is the occupied slice of the lineup as StarterSlots.
func (s *snapshot) currentStarters() []model.StarterSlot {
	var out []model.StarterSlot
	for i, id := range s.Roster.Starters {
		if id == "" || i >= len(s.Roster.SlotLabels) {
			continue
		}
		sp, ok := s.Scored[id]
		if !ok {
			sp = model.ScoredPlayer{Player: model.Player{ID: id}}
		}
		out = append(out, model.StarterSlot{Label: s.Roster.SlotLabels[i], Player: sp})
	}
	return out
}

// irSet marks players on reserve, used to tag move sources.
func (s *snapshot) irSet() map[string]bool {
	out := make(map[string]bool, len(s.Roster.Reserve))
	for _, id := range s.Roster.Reserve {
		if id != "" {
			out[id] = true
		}
	}
	return out
}

func (s *snapshot) freeAgentSet() map[string]bool {
	out := make(map[string]bool, len(s.FreeAgents))
	for _, sp := range s.FreeAgents {
		out[sp.Player.ID] = true
	}
	return out
}
