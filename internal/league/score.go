package league

import (
	"fmt"
	"strconv"
	"strings"
)

// Score is a parsed final score. The wire representation is the string
// "H-A" stored on the match document.
type Score struct {
	Home int
	Away int
}

func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}

// Draw reports whether the score is level.
func (s Score) Draw() bool {
	return s.Home == s.Away
}

// ParseScore parses a "H-A" score string. Anything that is not two
// non-negative integers separated by a single dash is reported as not
// parseable. Callers treat unparseable scores as "match not finished"
// rather than as errors.
func ParseScore(raw string) (Score, bool) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 2 {
		return Score{}, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || h < 0 {
		return Score{}, false
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || a < 0 {
		return Score{}, false
	}
	return Score{Home: h, Away: a}, true
}

// Outcome resolves the winner and loser of a finished match. A drawn score
// yields no outcome: there is no tie-break in a bracket, so the match stays
// pending until a decisive score is entered.
func Outcome(home, away string, s Score) (winner, loser string, ok bool) {
	if home == "" || away == "" {
		return "", "", false
	}
	switch {
	case s.Home > s.Away:
		return home, away, true
	case s.Away > s.Home:
		return away, home, true
	}
	return "", "", false
}
