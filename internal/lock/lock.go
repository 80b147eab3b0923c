// Package lock decides whether lineup changes touching a player are barred
// because their game has started or finished, or their team is on bye. The
// caller always supplies "now"; nothing here reads the clock.
package lock

import (
	"strings"
	"time"
)

// Game states as reported by the schedule snapshot.
const (
	StatePre  = "pre"
	StateIn   = "in"
	StatePost = "post"
)

// Game is one team's schedule entry for the week.
type Game struct {
	Kickoff time.Time `json:"kickoff_utc"`
	State   string    `json:"state"`
}

// Schedule maps team abbreviation to its game. A team with no entry is on
// bye for the week.
type Schedule map[string]Game

// Lookup returns the team's game, tolerating case differences in the key.
func (s Schedule) Lookup(team string) (Game, bool) {
	if g, ok := s[team]; ok {
		return g, true
	}
	g, ok := s[strings.ToUpper(strings.TrimSpace(team))]
	return g, ok
}

// TeamLocked reports whether the team's players are locked at the given time.
// An empty schedule locks nothing: a missing upstream snapshot must not
// freeze every recommendation behind a blanket lock.
func TeamLocked(s Schedule, team string, now time.Time) bool {
	if len(s) == 0 {
		return false
	}
	g, ok := s.Lookup(team)
	if !ok {
		return true // bye week counts as locked for exclusion purposes
	}
	if g.State != StatePre {
		return true
	}
	if g.Kickoff.IsZero() {
		return false
	}
	return !now.Before(g.Kickoff)
}

// PlayerLocked is TeamLocked plus an already-played id set override.
func PlayerLocked(s Schedule, team, playerID string, now time.Time, played map[string]bool) bool {
	if played[playerID] {
		return true
	}
	return TeamLocked(s, team, now)
}

// BlockReason explains a lock in caller-facing terms. Empty string means not
// locked.
func BlockReason(s Schedule, team string, now time.Time) string {
	if len(s) == 0 {
		return ""
	}
	g, ok := s.Lookup(team)
	if !ok {
		return "on bye"
	}
	switch g.State {
	case StateIn:
		return "game in progress"
	case StatePost:
		return "game finished"
	}
	if !g.Kickoff.IsZero() && !now.Before(g.Kickoff) {
		return "kickoff has passed"
	}
	return ""
}
