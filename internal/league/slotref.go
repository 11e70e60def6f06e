package league

import (
	"fmt"
	"strings"
)

// SlotKind says which side of a finished match a slot reference draws from.
type SlotKind int

const (
	WinnerOf SlotKind = iota
	LoserOf
)

func (k SlotKind) String() string {
	if k == LoserOf {
		return "L"
	}
	return "W"
}

// SlotRef identifies "the winner (or loser) of match MatchID". Bracket
// placeholders carry a SlotRef in place of a team id until the referenced
// match is decided. The zero SlotRef means the slot is filled directly.
type SlotRef struct {
	Kind    SlotKind
	MatchID string
}

// IsZero reports whether the reference is unset.
func (r SlotRef) IsZero() bool {
	return r.MatchID == ""
}

// String renders the compact wire token ("W:<matchId>" or "L:<matchId>")
// stored on match documents. An unset reference renders empty.
func (r SlotRef) String() string {
	if r.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s:%s", r.Kind, r.MatchID)
}

// ParseSlotRef parses a wire token. An empty token parses to the zero
// SlotRef; anything else must be a well-formed "W:<id>" or "L:<id>".
func ParseSlotRef(tok string) (SlotRef, error) {
	if tok == "" {
		return SlotRef{}, nil
	}
	kind, id, found := strings.Cut(tok, ":")
	if !found || id == "" {
		return SlotRef{}, fmt.Errorf("malformed slot reference %q", tok)
	}
	switch kind {
	case "W":
		return SlotRef{Kind: WinnerOf, MatchID: id}, nil
	case "L":
		return SlotRef{Kind: LoserOf, MatchID: id}, nil
	}
	return SlotRef{}, fmt.Errorf("malformed slot reference %q", tok)
}

// Resolve returns the team the slot should be filled with once matchID has
// a decisive result. It reports false when the reference points at a
// different match or is unset.
func (r SlotRef) Resolve(matchID, winner, loser string) (string, bool) {
	if r.IsZero() || r.MatchID != matchID {
		return "", false
	}
	if r.Kind == LoserOf {
		return loser, true
	}
	return winner, true
}
