package firestore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	fs "cloud.google.com/go/firestore"
)

// EVENTS_COLLECTION is the name of the events subcollection under a match.
const EVENTS_COLLECTION = "events"

// Recognized event types.
const (
	EVENT_GOAL    = "goal"
	EVENT_OWNGOAL = "own goal"
	EVENT_ASSIST  = "assist"
	EVENT_YELLOW  = "yellow"
	EVENT_RED     = "red"
)

// EventTypes lists the recognized match event types.
var EventTypes = []string{EVENT_GOAL, EVENT_OWNGOAL, EVENT_ASSIST, EVENT_YELLOW, EVENT_RED}

// ValidEventType reports whether s names a recognized event type.
func ValidEventType(s string) bool {
	for _, t := range EventTypes {
		if s == t {
			return true
		}
	}
	return false
}

// MatchEvent is a timeline entry of a match. Team and player fields are
// denormalized so public pages can render events without extra lookups.
type MatchEvent struct {
	// Minute is the match minute the event occurred in.
	Minute int `firestore:"minute"`

	// Type is one of EventTypes.
	Type string `firestore:"type"`

	// TeamKey is "home" or "away".
	TeamKey string `firestore:"teamKey"`

	// TeamID and TeamName identify the crediting team.
	TeamID   string `firestore:"teamId,omitempty"`
	TeamName string `firestore:"teamName,omitempty"`

	// PlayerID and PlayerName identify the credited player, if any.
	PlayerID   string `firestore:"playerId,omitempty"`
	PlayerName string `firestore:"playerName,omitempty"`

	// MatchID and Bucket tie the event back to its match for collection
	// group queries.
	MatchID string `firestore:"matchId,omitempty"`
	Bucket  string `firestore:"div,omitempty"`

	// CreatedAt is set by the server on first write.
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

func (e MatchEvent) String() string {
	var sb strings.Builder
	sb.WriteString("MatchEvent\n")
	sb.WriteString(treeInt("Minute", 0, false, e.Minute))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Type", 0, false, e.Type))
	sb.WriteRune('\n')
	sb.WriteString(treeString("TeamKey", 0, false, e.TeamKey))
	sb.WriteRune('\n')
	sb.WriteString(treeString("TeamName", 0, false, e.TeamName))
	sb.WriteRune('\n')
	sb.WriteString(treeString("PlayerName", 0, true, e.PlayerName))
	return sb.String()
}

// EventsCollection returns the events subcollection of a match.
func EventsCollection(match *fs.DocumentRef) *fs.CollectionRef {
	return match.Collection(EVENTS_COLLECTION)
}

// GetEvents gets a match's events sorted by minute.
func GetEvents(ctx context.Context, match *fs.DocumentRef) ([]MatchEvent, []*fs.DocumentRef, error) {
	snaps, err := EventsCollection(match).Documents(ctx).GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("GetEvents: failed to get events for match %s: %w", match.ID, err)
	}
	events := make([]MatchEvent, len(snaps))
	refs := make([]*fs.DocumentRef, len(snaps))
	for i, snap := range snaps {
		var e MatchEvent
		if err := snap.DataTo(&e); err != nil {
			return nil, nil, fmt.Errorf("GetEvents: failed to read event snapshot %s: %w", snap.Ref.ID, err)
		}
		events[i] = e
		refs[i] = snap.Ref
	}
	sort.Sort(&eventSorter{events, refs})
	return events, refs, nil
}

type eventSorter struct {
	events []MatchEvent
	refs   []*fs.DocumentRef
}

func (s *eventSorter) Len() int { return len(s.events) }

func (s *eventSorter) Less(i, j int) bool {
	if s.events[i].Minute != s.events[j].Minute {
		return s.events[i].Minute < s.events[j].Minute
	}
	return s.refs[i].ID < s.refs[j].ID
}

func (s *eventSorter) Swap(i, j int) {
	s.events[i], s.events[j] = s.events[j], s.events[i]
	s.refs[i], s.refs[j] = s.refs[j], s.refs[i]
}
