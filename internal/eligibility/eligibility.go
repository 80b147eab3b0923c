// Package eligibility is the static rule table for which positions may fill
// which roster slots, including flex variants. Unrecognized slot labels have
// empty eligibility, so they silently match no candidate.
package eligibility

import (
	"strings"

	"lineup-advisor-mcp/internal/model"
)

var slotEligibility = map[string][]string{
	"QB":         {"QB"},
	"RB":         {"RB"},
	"WR":         {"WR"},
	"TE":         {"TE"},
	"K":          {"K"},
	"DEF":        {"DEF"},
	"REC_FLEX":   {"WR", "TE"},
	"FLEX":       {"RB", "WR", "TE"},
	"SUPER_FLEX": {"QB", "RB", "WR", "TE"},
}

// slotOrder fixes iteration order over the rule table so every caller sees
// the same answer for the same inputs.
var slotOrder = []string{"QB", "RB", "WR", "TE", "K", "DEF", "REC_FLEX", "FLEX", "SUPER_FLEX"}

// Normalize canonicalizes a position label. DST is an alias for DEF.
func Normalize(pos string) string {
	up := strings.ToUpper(strings.TrimSpace(pos))
	if up == "DST" {
		return "DEF"
	}
	return up
}

// CanFillSlot reports whether a position may occupy a slot label.
func CanFillSlot(pos, slot string) bool {
	pos = Normalize(pos)
	for _, p := range slotEligibility[strings.ToUpper(slot)] {
		if p == pos {
			return true
		}
	}
	return false
}

// IsFlex reports whether a slot label accepts more than one position.
func IsFlex(slot string) bool {
	return len(slotEligibility[strings.ToUpper(slot)]) > 1
}

// EligibleSlots lists the slot labels a position may occupy, in table order.
func EligibleSlots(pos string) []string {
	out := make([]string, 0, 4)
	for _, slot := range slotOrder {
		if CanFillSlot(pos, slot) {
			out = append(out, slot)
		}
	}
	return out
}

// Interchangeable reports whether two positions share at least one eligible
// slot. This is what blocks cross-position waiver swaps like a kicker being
// replaced by a running back.
func Interchangeable(posA, posB string) bool {
	for _, slot := range slotOrder {
		if CanFillSlot(posA, slot) && CanFillSlot(posB, slot) {
			return true
		}
	}
	return false
}

// PlayerPositions returns the player's canonical position followed by any
// extra multi-position tags, normalized and deduplicated.
func PlayerPositions(p model.Player) []string {
	out := make([]string, 0, 1+len(p.EligiblePositions))
	seen := make(map[string]bool, 1+len(p.EligiblePositions))
	add := func(pos string) {
		n := Normalize(pos)
		if n == "" || seen[n] {
			return
		}
		seen[n] = true
		out = append(out, n)
	}
	add(p.Position)
	for _, pos := range p.EligiblePositions {
		add(pos)
	}
	return out
}

// PlayerCanFill reports whether any of the player's position tags fits the
// slot label.
func PlayerCanFill(p model.Player, slot string) bool {
	for _, pos := range PlayerPositions(p) {
		if CanFillSlot(pos, slot) {
			return true
		}
	}
	return false
}

// FindBestSlot picks the most specific open slot for a position: an
// exact-position slot wins over any flex variant, and among flex variants the
// narrowest eligibility set wins. Ties keep the first slot in the available
// list, so the ordering is stable.
func FindBestSlot(pos string, available []string) (string, bool) {
	pos = Normalize(pos)
	best := ""
	bestRank := int(^uint(0) >> 1)
	found := false
	for _, slot := range available {
		if !CanFillSlot(pos, slot) {
			continue
		}
		rank := len(slotEligibility[strings.ToUpper(slot)])
		if strings.ToUpper(slot) == pos {
			rank = 0
		}
		if rank < bestRank {
			bestRank = rank
			best = slot
			found = true
		}
	}
	return best, found
}
