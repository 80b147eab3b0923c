package fetch

import (
	"context"
	"fmt"
)

// /league/{league_id}/roster/{team_id}
func (c *Client) Roster(ctx context.Context, leagueID, teamID int, force bool) ([]byte, error) {
	return c.FetchRaw(ctx,
		fmt.Sprintf("/league/%d/roster/%d", leagueID, teamID),
		fmt.Sprintf("league/%d/roster/%d.json", leagueID, teamID),
		force,
	)
}

// /players
func (c *Client) PlayerDirectory(ctx context.Context, force bool) ([]byte, error) {
	return c.FetchRaw(ctx, "/players", "players/directory.json", force)
}

// /projections/{season}/{week}
func (c *Client) Projections(ctx context.Context, season, week int, force bool) ([]byte, error) {
	return c.FetchRaw(ctx,
		fmt.Sprintf("/projections/%d/%d", season, week),
		fmt.Sprintf("projections/%d/%d.json", season, week),
		force,
	)
}

// /schedule/{season}/{week}
func (c *Client) Schedule(ctx context.Context, season, week int, force bool) ([]byte, error) {
	return c.FetchRaw(ctx,
		fmt.Sprintf("/schedule/%d/%d", season, week),
		fmt.Sprintf("schedule/%d/%d.json", season, week),
		force,
	)
}

// /league/{league_id}/free_agents
func (c *Client) FreeAgents(ctx context.Context, leagueID int, force bool) ([]byte, error) {
	return c.FetchRaw(ctx,
		fmt.Sprintf("/league/%d/free_agents", leagueID),
		fmt.Sprintf("league/%d/free_agents.json", leagueID),
		force,
	)
}

// /meta
func (c *Client) Meta(ctx context.Context, force bool) ([]byte, error) {
	return c.FetchRaw(ctx, "/meta", "meta.json", force)
}
