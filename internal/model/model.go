// Package model holds the shared value types passed between the lineup
// engines. Everything here is a derived, immutable snapshot: recomputed in
// full on every cycle and never mutated in place.
package model

import "strings"

// Move sources.
const (
	SourceBench = "BENCH"
	SourceFA    = "FA"
	SourceIR    = "IR"
)

// Player is the read-only directory record for one player. The canonical
// position is already aliased (DST is stored as DEF).
type Player struct {
	ID                string   `json:"player_id"`
	Name              string   `json:"name"`
	Team              string   `json:"team"`
	Position          string   `json:"position"`
	EligiblePositions []string `json:"eligible_positions,omitempty"`
	InjuryStatus      string   `json:"injury_status,omitempty"`
}

// Questionable reports whether the player carries a questionable tag.
func (p Player) Questionable() bool {
	s := strings.ToUpper(strings.TrimSpace(p.InjuryStatus))
	return s == "Q" || s == "QUESTIONABLE"
}

// Out reports whether the player is ruled out for the week.
func (p Player) Out() bool {
	s := strings.ToUpper(strings.TrimSpace(p.InjuryStatus))
	return s == "O" || s == "OUT"
}

// StatLine is the optional per-stat projection breakdown.
type StatLine struct {
	PassYds     float64 `json:"pass_yds,omitempty"`
	PassTD      float64 `json:"pass_td,omitempty"`
	PassInt     float64 `json:"pass_int,omitempty"`
	RushYds     float64 `json:"rush_yds,omitempty"`
	RushTD      float64 `json:"rush_td,omitempty"`
	Receptions  float64 `json:"receptions,omitempty"`
	RecYds      float64 `json:"rec_yds,omitempty"`
	RecTD       float64 `json:"rec_td,omitempty"`
	FumblesLost float64 `json:"fumbles_lost,omitempty"`
	TwoPoint    float64 `json:"two_point,omitempty"`

	XP     float64 `json:"xp,omitempty"`
	FG0039 float64 `json:"fg_0_39,omitempty"`
	FG4049 float64 `json:"fg_40_49,omitempty"`
	FG50   float64 `json:"fg_50_plus,omitempty"`

	Sacks         float64 `json:"sacks,omitempty"`
	DefInt        float64 `json:"def_int,omitempty"`
	FumbleRec     float64 `json:"fumble_rec,omitempty"`
	DefTD         float64 `json:"def_td,omitempty"`
	Safeties      float64 `json:"safeties,omitempty"`
	PointsAllowed float64 `json:"points_allowed,omitempty"`
}

// Projection carries one resolved weekly point projection. The fallback key
// (name|team|pos) is only used when the upstream row lacks a player id.
type Projection struct {
	PlayerID    string    `json:"player_id,omitempty"`
	FallbackKey string    `json:"fallback_key,omitempty"`
	Points      float64   `json:"points"`
	Stats       *StatLine `json:"stats,omitempty"`
}

// ScoredPlayer pairs a player with its league-scored projection.
type ScoredPlayer struct {
	Player Player  `json:"player"`
	Points float64 `json:"points"`
}

// RosterSlot is one position in the ordered starting lineup. Slot identity is
// index-based: two slots with the same label are distinct entities.
type RosterSlot struct {
	Label  string        `json:"label"`
	Player *ScoredPlayer `json:"player,omitempty"`
}

// StarterSlot is an occupied roster slot.
type StarterSlot struct {
	Label  string       `json:"label"`
	Player ScoredPlayer `json:"player"`
}

// RosterSnapshot is the league-provided roster state. Starters is
// index-aligned with SlotLabels; an empty string marks an empty slot and is
// never compacted away.
type RosterSnapshot struct {
	SlotLabels []string `json:"slot_labels"`
	Starters   []string `json:"starters"`
	Bench      []string `json:"bench"`
	Reserve    []string `json:"reserve,omitempty"`
	Taxi       []string `json:"taxi,omitempty"`
}

// LineupTotals summarizes the gap between current and optimal lineups.
type LineupTotals struct {
	Current float64 `json:"current"`
	Optimal float64 `json:"optimal"`
	Delta   float64 `json:"delta"`
}

// Move is one actionable lineup change.
type Move struct {
	Slot           string        `json:"slot"`
	SlotIndex      int           `json:"slot_index"`
	In             ScoredPlayer  `json:"in"`
	Out            *ScoredPlayer `json:"out,omitempty"`
	Gain           float64       `json:"gain"`
	Source         string        `json:"source"`
	IsFillingEmpty bool          `json:"is_filling_empty"`
}

// CascadeMove records a starter that changes slot between current and optimal
// without being added or benched.
type CascadeMove struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	From     string `json:"from_slot"`
	To       string `json:"to_slot"`
}

// EnrichedRecommendation is the narrative view of a promotion: who comes in,
// who is sacrificed for it, and which starters merely shuffle slots.
type EnrichedRecommendation struct {
	Slot           string        `json:"slot"`
	In             ScoredPlayer  `json:"in"`
	Displaced      *ScoredPlayer `json:"displaced,omitempty"`
	NetDelta       float64       `json:"net_delta"`
	Source         string        `json:"source"`
	IsFillingEmpty bool          `json:"is_filling_empty"`
	CascadeMoves   []CascadeMove `json:"cascade_moves,omitempty"`
}

// WaiverSuggestion is one free-agent upgrade over a slot floor.
type WaiverSuggestion struct {
	Slot  string       `json:"slot"`
	In    ScoredPlayer `json:"in"`
	Out   ScoredPlayer `json:"out"`
	Delta float64      `json:"delta"`
}

// GroupedWaiverSuggestion is the per-free-agent rollup: the single best
// upgrade plus alternative displaced players.
type GroupedWaiverSuggestion struct {
	In           ScoredPlayer       `json:"in"`
	Slot         string             `json:"slot"`
	Out          ScoredPlayer       `json:"out"`
	BestDelta    float64            `json:"best_delta"`
	Alternatives []WaiverSuggestion `json:"alternatives,omitempty"`
}

// ActionStep kinds.
const (
	StepAdd   = "add"
	StepMove  = "move"
	StepBench = "bench"
)

// ActionStep is one ordered step of an ActionPlan.
type ActionStep struct {
	Kind        string `json:"kind"`
	PlayerID    string `json:"player_id"`
	Name        string `json:"name,omitempty"`
	FromSlot    string `json:"from_slot,omitempty"`
	ToSlot      string `json:"to_slot,omitempty"`
	Blocked     bool   `json:"blocked,omitempty"`
	BlockReason string `json:"block_reason,omitempty"`
}

// ActionPlan decomposes an old-to-new lineup change into ordered steps. The
// reachable delta is all-or-nothing: a single blocked step zeroes it.
type ActionPlan struct {
	Steps          []ActionStep `json:"steps"`
	Delta          float64      `json:"delta"`
	ReachableDelta float64      `json:"reachable_delta"`
}

// FillCandidate is one ranked candidate for an empty slot.
type FillCandidate struct {
	Player      ScoredPlayer `json:"player"`
	Source      string       `json:"source"`
	Blocked     bool         `json:"blocked,omitempty"`
	BlockReason string       `json:"block_reason,omitempty"`
}

// FillSuggestion ranks candidates for one currently-empty starting slot.
type FillSuggestion struct {
	Slot           string          `json:"slot"`
	SlotIndex      int             `json:"slot_index"`
	Best           *FillCandidate  `json:"best,omitempty"`
	Alternatives   []FillCandidate `json:"alternatives,omitempty"`
	PotentialDelta float64         `json:"potential_delta"`
	ReachableDelta float64         `json:"reachable_delta"`
}

// AutoSubCandidate is one contingency substitute for a questionable starter.
type AutoSubCandidate struct {
	Player     ScoredPlayer `json:"player"`
	Delta      float64      `json:"delta"`
	Floor      float64      `json:"estimated_floor"`
	HoursLater float64      `json:"hours_later,omitempty"`
	Rationale  string       `json:"rationale"`
}

// AutoSubRecommendation pairs a questionable starter with bench contingencies.
type AutoSubRecommendation struct {
	Slot       string             `json:"slot"`
	Starter    ScoredPlayer       `json:"starter"`
	Candidates []AutoSubCandidate `json:"candidates"`
}

// Player tiers relative to the positional replacement baseline.
const (
	TierElite       = "Elite"
	TierStarter     = "Starter"
	TierFlexWorthy  = "Flex-worthy"
	TierDepth       = "Depth"
	TierReplaceable = "Replaceable"
)

// PlayerTier labels one rostered player relative to the replacement baseline.
type PlayerTier struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Points   float64 `json:"points"`
	Tier     string  `json:"tier"`
}

// PosStrength aggregates starter quality, bench depth, and replacement value
// for one position.
type PosStrength struct {
	Position            string       `json:"position"`
	Demand              int          `json:"demand"`
	StartersProj        float64      `json:"starters_proj"`
	DepthProjWeighted   float64      `json:"depth_proj_weighted"`
	ReplacementBaseline float64      `json:"replacement_baseline"`
	Surplus             float64      `json:"surplus"`
	Shortage            float64      `json:"shortage"`
	Tiers               []PlayerTier `json:"tiers,omitempty"`
}

// TradeIdea pairs a surplus position with a shortage position.
type TradeIdea struct {
	GivePosition string `json:"give_position"`
	GetPosition  string `json:"get_position"`
	Rationale    string `json:"rationale"`
}

// AddDropIdea suggests swapping the weakest bench player at a position for
// the best free agent there.
type AddDropIdea struct {
	Position string       `json:"position"`
	Add      ScoredPlayer `json:"add"`
	Drop     ScoredPlayer `json:"drop"`
	Delta    float64      `json:"delta"`
}

// RosterHealthReport is the positional surplus/shortage summary.
type RosterHealthReport struct {
	Positions    []PosStrength `json:"positions"`
	Strongest    []string      `json:"strongest,omitempty"`
	Weakest      []string      `json:"weakest,omitempty"`
	TradeIdeas   []TradeIdea   `json:"trade_ideas,omitempty"`
	AddDropIdeas []AddDropIdea `json:"add_drop_ideas,omitempty"`
}
