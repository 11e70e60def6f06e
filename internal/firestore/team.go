package firestore

import (
	"context"
	"fmt"
	"strings"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TEAMS_COLLECTION is the path to the teams collection in Firestore.
const TEAMS_COLLECTION = "teams"

// Division names. These double as the bucket names for regular-season
// match days under the matches collection.
const (
	DIVISION_HIGH  = "high"
	DIVISION_FIRST = "first"
)

// Divisions lists the recognized divisions in rank order.
var Divisions = []string{DIVISION_HIGH, DIVISION_FIRST}

// ValidDivision reports whether s names a recognized division.
func ValidDivision(s string) bool {
	for _, d := range Divisions {
		if s == d {
			return true
		}
	}
	return false
}

// Team is a club registered with the league.
type Team struct {
	// Name is the club's display name.
	Name string `firestore:"name"`

	// Division is the division the club plays in.
	Division string `firestore:"division"`

	// Logo is the public URL of the club's crest, if one has been uploaded.
	Logo string `firestore:"logo,omitempty"`

	// Tournaments lists the knockout competitions the club is entered in.
	Tournaments []string `firestore:"tournaments,omitempty"`
}

func (t Team) String() string {
	var sb strings.Builder
	sb.WriteString("Team\n")
	sb.WriteString(treeString("Name", 0, false, t.Name))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Division", 0, false, t.Division))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Logo", 0, false, t.Logo))
	sb.WriteRune('\n')
	sb.WriteString(treeStringSlice("Tournaments", 0, true, t.Tournaments))
	return sb.String()
}

// InTournament reports whether the team is entered in the named tournament.
func (t Team) InTournament(name string) bool {
	for _, tn := range t.Tournaments {
		if tn == name {
			return true
		}
	}
	return false
}

type TeamNotFound string

func (e TeamNotFound) Error() string {
	return string(e)
}

// GetTeam looks a team up by document ID.
func GetTeam(ctx context.Context, client *fs.Client, id string) (Team, *fs.DocumentRef, error) {
	var t Team
	ref := client.Collection(TEAMS_COLLECTION).Doc(id)
	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return t, nil, TeamNotFound(fmt.Sprintf("no team with ID \"%s\" defined", id))
	}
	if err != nil {
		return t, nil, fmt.Errorf("GetTeam: failed to get team %s: %w", id, err)
	}
	if err := snap.DataTo(&t); err != nil {
		return t, nil, fmt.Errorf("GetTeam: failed to read team snapshot %s: %w", id, err)
	}
	return t, ref, nil
}

// GetTeams gets all teams in the datastore.
func GetTeams(ctx context.Context, client *fs.Client) ([]Team, []*fs.DocumentRef, error) {
	return teamQuery(ctx, client.Collection(TEAMS_COLLECTION).Query)
}

// GetTeamsByDivision gets the teams registered in a given division.
func GetTeamsByDivision(ctx context.Context, client *fs.Client, division string) ([]Team, []*fs.DocumentRef, error) {
	q := client.Collection(TEAMS_COLLECTION).Where("division", "==", division)
	return teamQuery(ctx, q)
}

// GetTeamsByTournament gets the teams entered in a given knockout tournament.
func GetTeamsByTournament(ctx context.Context, client *fs.Client, tournament string) ([]Team, []*fs.DocumentRef, error) {
	q := client.Collection(TEAMS_COLLECTION).Where("tournaments", "array-contains", tournament)
	return teamQuery(ctx, q)
}

func teamQuery(ctx context.Context, q fs.Query) ([]Team, []*fs.DocumentRef, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("teamQuery: failed to get team snapshots: %w", err)
	}
	teams := make([]Team, len(snaps))
	refs := make([]*fs.DocumentRef, len(snaps))
	for i, snap := range snaps {
		var t Team
		if err := snap.DataTo(&t); err != nil {
			return nil, nil, fmt.Errorf("teamQuery: failed to read team snapshot %s: %w", snap.Ref.ID, err)
		}
		teams[i] = t
		refs[i] = snap.Ref
	}
	return teams, refs, nil
}

// TeamNames builds a lookup from team document ID to display name.
func TeamNames(teams []Team, refs []*fs.DocumentRef) map[string]string {
	names := make(map[string]string, len(teams))
	for i, t := range teams {
		names[refs[i].ID] = t.Name
	}
	return names
}
