package firestore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PLAYERS_COLLECTION is the name of the players subcollection under a team.
const PLAYERS_COLLECTION = "players"

// STATS_COLLECTION is the name of the stats subcollection under a player.
// It holds a single document keyed by the player's own ID.
const STATS_COLLECTION = "stats"

// Player is a registered player on a team's roster.
type Player struct {
	// Name is the player's given name.
	Name string `firestore:"name"`

	// Surname is the player's family name.
	Surname string `firestore:"surname,omitempty"`

	// Number is the player's shirt number, zero if unassigned.
	Number int `firestore:"number,omitempty"`

	// Position is a free-form position label.
	Position string `firestore:"position,omitempty"`

	// Born is the player's date of birth in YYYY-MM-DD form.
	Born string `firestore:"dob,omitempty"`

	// Photo is the public URL of the player's photo, if one has been uploaded.
	Photo string `firestore:"photo,omitempty"`
}

// FullName joins surname and given name the way rosters print them.
func (p Player) FullName() string {
	switch {
	case p.Surname == "":
		return p.Name
	case p.Name == "":
		return p.Surname
	}
	return p.Surname + " " + p.Name
}

func (p Player) String() string {
	var sb strings.Builder
	sb.WriteString("Player\n")
	sb.WriteString(treeString("Name", 0, false, p.Name))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Surname", 0, false, p.Surname))
	sb.WriteRune('\n')
	sb.WriteString(treeInt("Number", 0, false, p.Number))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Position", 0, false, p.Position))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Born", 0, true, p.Born))
	return sb.String()
}

// PlayerStats are the running season totals stored alongside a player.
type PlayerStats struct {
	Games   int `firestore:"games"`
	Goals   int `firestore:"goals"`
	Assists int `firestore:"assists"`
	Yellow  int `firestore:"yellow"`
	Red     int `firestore:"red"`
}

func (s PlayerStats) String() string {
	var sb strings.Builder
	sb.WriteString("PlayerStats\n")
	sb.WriteString(treeInt("Games", 0, false, s.Games))
	sb.WriteRune('\n')
	sb.WriteString(treeInt("Goals", 0, false, s.Goals))
	sb.WriteRune('\n')
	sb.WriteString(treeInt("Assists", 0, false, s.Assists))
	sb.WriteRune('\n')
	sb.WriteString(treeInt("Yellow", 0, false, s.Yellow))
	sb.WriteRune('\n')
	sb.WriteString(treeInt("Red", 0, true, s.Red))
	return sb.String()
}

// PlayersCollection returns the roster subcollection of a team.
func PlayersCollection(team *fs.DocumentRef) *fs.CollectionRef {
	return team.Collection(PLAYERS_COLLECTION)
}

type PlayerNotFound string

func (e PlayerNotFound) Error() string {
	return string(e)
}

// GetPlayer looks a roster player up by document ID.
func GetPlayer(ctx context.Context, team *fs.DocumentRef, id string) (Player, *fs.DocumentRef, error) {
	var p Player
	ref := PlayersCollection(team).Doc(id)
	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return p, nil, PlayerNotFound(fmt.Sprintf("no player with ID \"%s\" on team %s", id, team.ID))
	}
	if err != nil {
		return p, nil, fmt.Errorf("GetPlayer: failed to get player %s: %w", id, err)
	}
	if err := snap.DataTo(&p); err != nil {
		return p, nil, fmt.Errorf("GetPlayer: failed to read player snapshot %s: %w", id, err)
	}
	return p, ref, nil
}

// GetPlayers gets a team's full roster, sorted by surname then given name.
func GetPlayers(ctx context.Context, team *fs.DocumentRef) ([]Player, []*fs.DocumentRef, error) {
	snaps, err := PlayersCollection(team).Documents(ctx).GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("GetPlayers: failed to get players for team %s: %w", team.ID, err)
	}
	players := make([]Player, len(snaps))
	refs := make([]*fs.DocumentRef, len(snaps))
	for i, snap := range snaps {
		var p Player
		if err := snap.DataTo(&p); err != nil {
			return nil, nil, fmt.Errorf("GetPlayers: failed to read player snapshot %s: %w", snap.Ref.ID, err)
		}
		players[i] = p
		refs[i] = snap.Ref
	}
	sort.Sort(&playerSorter{players, refs})
	return players, refs, nil
}

type playerSorter struct {
	players []Player
	refs    []*fs.DocumentRef
}

func (s *playerSorter) Len() int { return len(s.players) }

func (s *playerSorter) Less(i, j int) bool {
	a, b := s.players[i], s.players[j]
	if a.Surname != b.Surname {
		return a.Surname < b.Surname
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return s.refs[i].ID < s.refs[j].ID
}

func (s *playerSorter) Swap(i, j int) {
	s.players[i], s.players[j] = s.players[j], s.players[i]
	s.refs[i], s.refs[j] = s.refs[j], s.refs[i]
}

// StatsRef returns the player's season totals document.
func StatsRef(player *fs.DocumentRef) *fs.DocumentRef {
	return player.Collection(STATS_COLLECTION).Doc(player.ID)
}

// GetPlayerStats reads a player's season totals. A missing stats document is
// not an error: the second return value reports whether one exists.
func GetPlayerStats(ctx context.Context, player *fs.DocumentRef) (PlayerStats, bool, error) {
	var s PlayerStats
	snap, err := StatsRef(player).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return s, false, nil
	}
	if err != nil {
		return s, false, fmt.Errorf("GetPlayerStats: failed to get stats for player %s: %w", player.ID, err)
	}
	if err := snap.DataTo(&s); err != nil {
		return s, false, fmt.Errorf("GetPlayerStats: failed to read stats snapshot %s: %w", player.ID, err)
	}
	return s, true, nil
}
