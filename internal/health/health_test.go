package health

import (
	"testing"

	"lineup-advisor-mcp/internal/model"
)

func sp(id, pos string, points float64) model.ScoredPlayer {
	return model.ScoredPlayer{
		Player: model.Player{ID: id, Name: id, Team: "KC", Position: pos},
		Points: points,
	}
}

func st(label string, p model.ScoredPlayer) model.StarterSlot {
	return model.StarterSlot{Label: label, Player: p}
}

func posByName(t *testing.T, r model.RosterHealthReport, pos string) model.PosStrength {
	t.Helper()
	for _, p := range r.Positions {
		if p.Position == pos {
			return p
		}
	}
	t.Fatalf("position %s missing from report", pos)
	return model.PosStrength{}
}

func TestAnalyze_BaselineIsTopFiveFreeAgentMean(t *testing.T) {
	in := Input{
		OptimalStarters: []model.StarterSlot{st("WR", sp("wr1", "WR", 15))},
		FreeAgents: []model.ScoredPlayer{
			sp("f1", "WR", 10), sp("f2", "WR", 9), sp("f3", "WR", 8),
			sp("f4", "WR", 7), sp("f5", "WR", 6), sp("f6", "WR", 1),
		},
	}
	wr := posByName(t, Analyze(in), "WR")
	if wr.ReplacementBaseline != 8 {
		t.Errorf("baseline = %.1f; want 8.0 (mean of top 5, f6 ignored)", wr.ReplacementBaseline)
	}
	if wr.Surplus != 7 || wr.Shortage != 0 {
		t.Errorf("surplus/shortage = %.1f/%.1f; want 7/0", wr.Surplus, wr.Shortage)
	}
}

func TestAnalyze_ShortageWhenStartersBelowReplacement(t *testing.T) {
	in := Input{
		OptimalStarters: []model.StarterSlot{
			st("RB", sp("rb1", "RB", 4)),
			st("RB", sp("rb2", "RB", 3)),
		},
		FreeAgents: []model.ScoredPlayer{sp("f1", "RB", 6)},
	}
	rb := posByName(t, Analyze(in), "RB")
	if rb.Demand != 2 {
		t.Errorf("demand = %d; want 2", rb.Demand)
	}
	// 7 projected vs 2*6 replacement; surplus keeps its sign.
	if rb.Shortage != 5 || rb.Surplus != -5 {
		t.Errorf("surplus/shortage = %.1f/%.1f; want -5/5", rb.Surplus, rb.Shortage)
	}
}

func TestAnalyze_DepthWeights(t *testing.T) {
	in := Input{
		Bench: []model.ScoredPlayer{
			sp("b1", "TE", 10), sp("b2", "TE", 10),
			sp("b3", "TE", 10), sp("b4", "TE", 10),
		},
	}
	te := posByName(t, Analyze(in), "TE")
	// 0.5+0.3+0.2 of 10 each; the fourth bench player contributes nothing.
	if te.DepthProjWeighted != 10 {
		t.Errorf("depth = %.1f; want 10.0", te.DepthProjWeighted)
	}
}

func TestAnalyze_Tiers(t *testing.T) {
	in := Input{
		OptimalStarters: []model.StarterSlot{
			st("QB", sp("elite", "QB", 18)),
		},
		Bench: []model.ScoredPlayer{
			sp("starter", "QB", 13.5),
			sp("flexy", "QB", 11.5),
			sp("depth", "QB", 10.5),
			sp("cut", "QB", 9),
		},
		FreeAgents: []model.ScoredPlayer{sp("f1", "QB", 10)},
	}
	qb := posByName(t, Analyze(in), "QB")
	want := map[string]string{
		"elite":   model.TierElite,
		"starter": model.TierStarter,
		"flexy":   model.TierFlexWorthy,
		"depth":   model.TierDepth,
		"cut":     model.TierReplaceable,
	}
	for _, pt := range qb.Tiers {
		if pt.Tier != want[pt.PlayerID] {
			t.Errorf("%s tier = %s; want %s", pt.PlayerID, pt.Tier, want[pt.PlayerID])
		}
	}
	if len(qb.Tiers) != len(want) {
		t.Errorf("len(Tiers) = %d; want %d", len(qb.Tiers), len(want))
	}
}

func TestAnalyze_StrongestWeakestAndTradeIdeas(t *testing.T) {
	in := Input{
		OptimalStarters: []model.StarterSlot{
			st("WR", sp("wr1", "WR", 20)), // far above its baseline
			st("RB", sp("rb1", "RB", 2)),  // far below its baseline
		},
		FreeAgents: []model.ScoredPlayer{
			sp("fw", "WR", 5),
			sp("fr", "RB", 10),
		},
	}
	r := Analyze(in)
	if len(r.Strongest) == 0 || r.Strongest[0] != "WR" {
		t.Fatalf("strongest = %v; want WR first", r.Strongest)
	}
	if len(r.Weakest) == 0 || r.Weakest[0] != "RB" {
		t.Fatalf("weakest = %v; want RB first", r.Weakest)
	}
	if len(r.TradeIdeas) == 0 {
		t.Fatal("no trade ideas for a clear surplus/shortage pair")
	}
	ti := r.TradeIdeas[0]
	if ti.GivePosition != "WR" || ti.GetPosition != "RB" {
		t.Errorf("trade = give %s get %s; want give WR get RB", ti.GivePosition, ti.GetPosition)
	}
}

func TestAnalyze_AddDropNeedsMargin(t *testing.T) {
	in := Input{
		Bench: []model.ScoredPlayer{sp("bWeak", "WR", 8), sp("bOK", "WR", 12)},
		FreeAgents: []model.ScoredPlayer{
			sp("faBig", "WR", 9),
		},
	}
	r := Analyze(in)
	if len(r.AddDropIdeas) != 1 {
		t.Fatalf("len(AddDropIdeas) = %d; want 1", len(r.AddDropIdeas))
	}
	ad := r.AddDropIdeas[0]
	if ad.Add.Player.ID != "faBig" || ad.Drop.Player.ID != "bWeak" || ad.Delta != 1 {
		t.Errorf("got add %s drop %s delta %.1f; want faBig/bWeak/1.0", ad.Add.Player.ID, ad.Drop.Player.ID, ad.Delta)
	}

	// Inside the margin: no idea.
	in.FreeAgents = []model.ScoredPlayer{sp("faSmall", "WR", 8.4)}
	if r := Analyze(in); len(r.AddDropIdeas) != 0 {
		t.Errorf("got %+v; want none within the 0.5 margin", r.AddDropIdeas)
	}
}

func TestAnalyze_PositionsFollowRoster(t *testing.T) {
	r := Analyze(Input{})
	if len(r.Positions) != 0 {
		t.Fatalf("len(Positions) = %d; want none for an empty roster", len(r.Positions))
	}
	if len(r.Strongest) != 0 || len(r.Weakest) != 0 {
		t.Errorf("strongest/weakest = %v/%v; want empty on an empty roster", r.Strongest, r.Weakest)
	}

	// Unusual position tags on the roster still get a row, after the
	// canonical positions.
	r = Analyze(Input{
		OptimalStarters: []model.StarterSlot{st("QB", sp("qb1", "QB", 18))},
		Bench:           []model.ScoredPlayer{sp("lb1", "LB", 5)},
	})
	if len(r.Positions) != 2 || r.Positions[0].Position != "QB" || r.Positions[1].Position != "LB" {
		t.Fatalf("positions = %+v; want QB then LB", r.Positions)
	}
}
