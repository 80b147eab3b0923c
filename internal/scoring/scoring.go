// Package scoring converts raw per-stat projections into league-scored
// fantasy points using configurable weights.
package scoring

import (
	"math"

	"lineup-advisor-mcp/internal/eligibility"
	"lineup-advisor-mcp/internal/model"
)

// Weights are the league scoring settings. Offensive positions use a linear
// combination; kickers and defenses use their own stat buckets.
type Weights struct {
	PassYdsPer   float64 `yaml:"pass_yds_per"`
	PassTD       float64 `yaml:"pass_td"`
	Interception float64 `yaml:"interception"`
	RushYdsPer   float64 `yaml:"rush_yds_per"`
	RushTD       float64 `yaml:"rush_td"`
	Reception    float64 `yaml:"reception"`
	RecYdsPer    float64 `yaml:"rec_yds_per"`
	RecTD        float64 `yaml:"rec_td"`
	FumbleLost   float64 `yaml:"fumble_lost"`
	TwoPoint     float64 `yaml:"two_point"`

	XP     float64 `yaml:"xp"`
	FG0039 float64 `yaml:"fg_0_39"`
	FG4049 float64 `yaml:"fg_40_49"`
	FG50   float64 `yaml:"fg_50_plus"`

	Sack      float64 `yaml:"sack"`
	DefInt    float64 `yaml:"def_int"`
	FumbleRec float64 `yaml:"fumble_rec"`
	DefTD     float64 `yaml:"def_td"`
	Safety    float64 `yaml:"safety"`
}

// Default returns half-PPR scoring with standard kicker and DST values.
func Default() Weights {
	return Weights{
		PassYdsPer:   0.04,
		PassTD:       4,
		Interception: -2,
		RushYdsPer:   0.1,
		RushTD:       6,
		Reception:    0.5,
		RecYdsPer:    0.1,
		RecTD:        6,
		FumbleLost:   -2,
		TwoPoint:     2,

		XP:     1,
		FG0039: 3,
		FG4049: 4,
		FG50:   5,

		Sack:      1,
		DefInt:    2,
		FumbleRec: 2,
		DefTD:     6,
		Safety:    2,
	}
}

// Score computes league points for one player's stat breakdown. A zero or
// non-finite result falls back to the caller-supplied total, which keeps
// scoring resilient to incomplete breakdowns.
func Score(pos string, stats *model.StatLine, w Weights, fallback float64) float64 {
	if stats == nil {
		return fallback
	}
	var pts float64
	switch eligibility.Normalize(pos) {
	case "K":
		pts = scoreKicker(stats, w)
	case "DEF":
		pts = scoreDefense(stats, w)
	default:
		pts = scoreOffense(stats, w)
	}
	if pts == 0 || math.IsNaN(pts) || math.IsInf(pts, 0) {
		return fallback
	}
	return pts
}

func scoreOffense(s *model.StatLine, w Weights) float64 {
	return s.PassYds*w.PassYdsPer +
		s.PassTD*w.PassTD +
		s.PassInt*w.Interception +
		s.RushYds*w.RushYdsPer +
		s.RushTD*w.RushTD +
		s.Receptions*w.Reception +
		s.RecYds*w.RecYdsPer +
		s.RecTD*w.RecTD +
		s.FumblesLost*w.FumbleLost +
		s.TwoPoint*w.TwoPoint
}

func scoreKicker(s *model.StatLine, w Weights) float64 {
	return s.XP*w.XP + s.FG0039*w.FG0039 + s.FG4049*w.FG4049 + s.FG50*w.FG50
}

func scoreDefense(s *model.StatLine, w Weights) float64 {
	return s.Sacks*w.Sack +
		s.DefInt*w.DefInt +
		s.FumbleRec*w.FumbleRec +
		s.DefTD*w.DefTD +
		s.Safeties*w.Safety +
		pointsAllowedScore(s.PointsAllowed)
}

// pointsAllowedScore is the standard tiered DST points-allowed table.
func pointsAllowedScore(pa float64) float64 {
	switch {
	case pa <= 0:
		return 10
	case pa <= 6:
		return 7
	case pa <= 13:
		return 4
	case pa <= 20:
		return 1
	case pa <= 27:
		return 0
	case pa <= 34:
		return -1
	default:
		return -4
	}
}
