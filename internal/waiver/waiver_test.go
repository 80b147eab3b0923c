package waiver

import (
	"testing"
	"time"

	"lineup-advisor-mcp/internal/lock"
	"lineup-advisor-mcp/internal/model"
)

var now = time.Date(2025, time.September, 7, 17, 0, 0, 0, time.UTC)

func sp(id, pos, team string, points float64) model.ScoredPlayer {
	return model.ScoredPlayer{
		Player: model.Player{ID: id, Name: id, Team: team, Position: pos},
		Points: points,
	}
}

func st(label string, p model.ScoredPlayer) model.StarterSlot {
	return model.StarterSlot{Label: label, Player: p}
}

func openSched(teams ...string) lock.Schedule {
	s := lock.Schedule{}
	for _, t := range teams {
		s[t] = lock.Game{Kickoff: now.Add(4 * time.Hour), State: lock.StatePre}
	}
	return s
}

func TestFloors_PerLabelMinimum(t *testing.T) {
	labels := []string{"QB", "RB", "RB", "FLEX"}
	starters := []model.StarterSlot{
		st("QB", sp("qb1", "QB", "KC", 18)),
		st("RB", sp("rb1", "RB", "BUF", 14)),
		st("RB", sp("rb2", "RB", "MIA", 8)),
		st("FLEX", sp("wr1", "WR", "DAL", 11)),
	}
	floors := Floors(labels, starters)

	if f := floors["RB"]; f.Player.Player.ID != "rb2" {
		t.Errorf("RB floor = %s; want rb2 (the weaker of two RBs)", f.Player.Player.ID)
	}
	// FLEX admits both RBs and the WR; rb2 at 8 is the minimum.
	if f := floors["FLEX"]; f.Player.Player.ID != "rb2" {
		t.Errorf("FLEX floor = %s; want rb2", f.Player.Player.ID)
	}
	if f := floors["QB"]; f.Player.Player.ID != "qb1" {
		t.Errorf("QB floor = %s; want qb1", f.Player.Player.ID)
	}
	if _, ok := floors["WR"]; ok {
		t.Error("no WR label configured; floor map must not invent one")
	}
}

func TestUpgrades_BeatsFloorByMinGain(t *testing.T) {
	labels := []string{"WR", "WR"}
	starters := []model.StarterSlot{
		st("WR", sp("wr1", "WR", "KC", 13)),
		st("WR", sp("wr2", "WR", "BUF", 9)),
	}
	fas := []model.ScoredPlayer{
		sp("wr3", "WR", "DAL", 12),   // +3.0 over the 9.0 floor
		sp("wrLow", "WR", "NYJ", 10), // +1.0, under the 1.5 default
	}
	out := Upgrades(fas, starters, labels, openSched("KC", "BUF", "DAL", "NYJ"), Config{})
	if len(out) != 1 {
		t.Fatalf("len = %d; want 1", len(out))
	}
	g := out[0]
	if g.In.Player.ID != "wr3" || g.Out.Player.ID != "wr2" {
		t.Errorf("suggestion = %s over %s; want wr3 over wr2", g.In.Player.ID, g.Out.Player.ID)
	}
	if g.BestDelta != 3.0 {
		t.Errorf("delta = %.1f; want 3.0", g.BestDelta)
	}
}

func TestUpgrades_KickersNeverSuggested(t *testing.T) {
	labels := []string{"K"}
	starters := []model.StarterSlot{st("K", sp("k1", "K", "KC", 6))}
	fas := []model.ScoredPlayer{sp("k2", "K", "DAL", 12)}

	out := Upgrades(fas, starters, labels, openSched("KC", "DAL"), Config{})
	if len(out) != 0 {
		t.Fatalf("kicker suggested: %+v", out)
	}
}

func TestUpgrades_InterchangeableGuardsFlexFloor(t *testing.T) {
	// The weakest FLEX-eligible starter is a TE; a QB free agent can fill
	// SUPER_FLEX but shares no slot with a kicker floor and must not be
	// paired against a non-interchangeable outgoing player.
	labels := []string{"SUPER_FLEX"}
	starters := []model.StarterSlot{
		st("SUPER_FLEX", sp("te1", "TE", "KC", 7)),
	}
	fas := []model.ScoredPlayer{sp("qb2", "QB", "DAL", 15)}

	out := Upgrades(fas, starters, labels, openSched("KC", "DAL"), Config{})
	if len(out) != 1 {
		t.Fatalf("len = %d; want 1 (QB and TE share SUPER_FLEX)", len(out))
	}
	if out[0].Out.Player.ID != "te1" || out[0].BestDelta != 8 {
		t.Errorf("got %s delta %.1f; want te1 delta 8.0", out[0].Out.Player.ID, out[0].BestDelta)
	}
}

func TestUpgrades_DSTAliasFillsDefenseSlot(t *testing.T) {
	labels := []string{"DEF"}
	starters := []model.StarterSlot{st("DEF", sp("def1", "DEF", "KC", 3))}
	fas := []model.ScoredPlayer{sp("dst9", "DST", "DAL", 9)}

	out := Upgrades(fas, starters, labels, openSched("KC", "DAL"), Config{})
	if len(out) != 1 || out[0].In.Player.ID != "dst9" || out[0].BestDelta != 6 {
		t.Fatalf("got %+v; want dst9 over def1 with delta 6.0", out)
	}
}

func TestUpgrades_SkipsOutAndByeAndExcluded(t *testing.T) {
	labels := []string{"WR"}
	starters := []model.StarterSlot{st("WR", sp("wr1", "WR", "KC", 5))}
	outPlayer := sp("wrOut", "WR", "DAL", 15)
	outPlayer.Player.InjuryStatus = "OUT"
	fas := []model.ScoredPlayer{
		outPlayer,
		sp("wrBye", "WR", "SEA", 14), // SEA not in the schedule
		sp("wrExcl", "WR", "DAL", 13),
		sp("wrOK", "WR", "DAL", 12),
	}
	out := Upgrades(fas, starters, labels, openSched("KC", "DAL"),
		Config{Exclude: map[string]bool{"wrExcl": true}})
	if len(out) != 1 || out[0].In.Player.ID != "wrOK" {
		t.Fatalf("got %+v; want only wrOK", out)
	}
}

func TestUpgrades_EmptyScheduleDoesNotExcludeByes(t *testing.T) {
	labels := []string{"WR"}
	starters := []model.StarterSlot{st("WR", sp("wr1", "WR", "KC", 5))}
	fas := []model.ScoredPlayer{sp("wr9", "WR", "SEA", 12)}

	out := Upgrades(fas, starters, labels, nil, Config{})
	if len(out) != 1 {
		t.Fatalf("no schedule data means no bye filtering; got %+v", out)
	}
}

func TestUpgrades_GroupsAlternativesByDistinctOutgoing(t *testing.T) {
	// One multi-slot free agent beats both the WR floor and the FLEX floor,
	// and each floor is a different starter.
	labels := []string{"WR", "FLEX"}
	starters := []model.StarterSlot{
		st("WR", sp("wr1", "WR", "KC", 9)),
		st("FLEX", sp("rb1", "RB", "BUF", 8)),
	}
	fas := []model.ScoredPlayer{sp("wrHot", "WR", "DAL", 14)}

	out := Upgrades(fas, starters, labels, openSched("KC", "BUF", "DAL"), Config{})
	if len(out) != 1 {
		t.Fatalf("len = %d; want a single grouped suggestion", len(out))
	}
	g := out[0]
	if g.Slot != "FLEX" || g.Out.Player.ID != "rb1" || g.BestDelta != 6 {
		t.Errorf("best = %s out %s delta %.1f; want FLEX/rb1/6.0", g.Slot, g.Out.Player.ID, g.BestDelta)
	}
	if len(g.Alternatives) != 1 || g.Alternatives[0].Out.Player.ID != "wr1" || g.Alternatives[0].Delta != 5 {
		t.Fatalf("alternatives = %+v; want one WR alternative displacing wr1", g.Alternatives)
	}
}

func TestUpgrades_PerPositionAndTotalCaps(t *testing.T) {
	labels := []string{"WR"}
	starters := []model.StarterSlot{st("WR", sp("wr1", "WR", "KC", 1))}
	fas := []model.ScoredPlayer{
		sp("a", "WR", "DAL", 20), sp("b", "WR", "DAL", 19),
		sp("c", "WR", "DAL", 18), sp("d", "WR", "DAL", 17),
	}
	sched := openSched("KC", "DAL")

	out := Upgrades(fas, starters, labels, sched, Config{MaxPerPosition: 2})
	if len(out) != 2 {
		t.Fatalf("per-position cap: len = %d; want 2", len(out))
	}
	if out[0].In.Player.ID != "a" || out[1].In.Player.ID != "b" {
		t.Errorf("order = %s,%s; want a,b", out[0].In.Player.ID, out[1].In.Player.ID)
	}

	out = Upgrades(fas, starters, labels, sched, Config{MaxTotal: 3})
	if len(out) != 3 {
		t.Fatalf("global cap: len = %d; want 3", len(out))
	}
}

func TestComputeLineupDiff_StepOrderAndDelta(t *testing.T) {
	sched := openSched("KC", "BUF", "DAL")
	oldLineup := []model.StarterSlot{
		st("WR", sp("wr1", "WR", "KC", 6)),
		st("FLEX", sp("rb1", "RB", "BUF", 8)),
	}
	newLineup := []model.StarterSlot{
		st("WR", sp("wrNew", "WR", "DAL", 14)),
		st("FLEX", sp("wr1", "WR", "KC", 6)),
	}
	plan := ComputeLineupDiff(oldLineup, newLineup, sched, now)

	if len(plan.Steps) != 3 {
		t.Fatalf("len(Steps) = %d; want 3", len(plan.Steps))
	}
	wantKinds := []string{model.StepAdd, model.StepMove, model.StepBench}
	wantIDs := []string{"wrNew", "wr1", "rb1"}
	for i := range plan.Steps {
		if plan.Steps[i].Kind != wantKinds[i] || plan.Steps[i].PlayerID != wantIDs[i] {
			t.Errorf("step[%d] = %s %s; want %s %s",
				i, plan.Steps[i].Kind, plan.Steps[i].PlayerID, wantKinds[i], wantIDs[i])
		}
	}
	if plan.Steps[1].FromSlot != "WR" || plan.Steps[1].ToSlot != "FLEX" {
		t.Errorf("move = %s->%s; want WR->FLEX", plan.Steps[1].FromSlot, plan.Steps[1].ToSlot)
	}
	if plan.Delta != 6 || plan.ReachableDelta != 6 {
		t.Errorf("delta/reachable = %.1f/%.1f; want 6/6", plan.Delta, plan.ReachableDelta)
	}
}

func TestComputeLineupDiff_BlockedStepZeroesReachable(t *testing.T) {
	sched := lock.Schedule{
		"KC":  {Kickoff: now.Add(-time.Hour), State: lock.StateIn},
		"DAL": {Kickoff: now.Add(time.Hour), State: lock.StatePre},
	}
	oldLineup := []model.StarterSlot{st("WR", sp("wr1", "WR", "KC", 6))}
	newLineup := []model.StarterSlot{st("WR", sp("wrNew", "WR", "DAL", 14))}

	plan := ComputeLineupDiff(oldLineup, newLineup, sched, now)
	if plan.Delta != 8 {
		t.Errorf("delta = %.1f; want 8", plan.Delta)
	}
	var bench *model.ActionStep
	for i := range plan.Steps {
		if plan.Steps[i].Kind == model.StepBench {
			bench = &plan.Steps[i]
		}
	}
	if bench == nil || !bench.Blocked || bench.BlockReason != "game in progress" {
		t.Fatalf("bench step = %+v; want blocked with reason", bench)
	}
	if plan.ReachableDelta != 0 {
		t.Errorf("reachable = %.1f; want 0 when any step is blocked", plan.ReachableDelta)
	}
}
