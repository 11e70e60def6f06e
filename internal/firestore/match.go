package firestore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/amffhub/amfftool/internal/league"
)

// MATCHES_COLLECTION is the path to the matches collection in Firestore.
// Each document under it is a bucket whose games subcollection holds the
// actual match documents.
const MATCHES_COLLECTION = "matches"

// GAMES_COLLECTION is the name of the games subcollection under a bucket.
const GAMES_COLLECTION = "games"

// Knockout tournament bucket names. The two division names from team.go
// complete the set of buckets.
const (
	BUCKET_CUP       = "cup"
	BUCKET_STRUCTURE = "structure"
	BUCKET_SUPERCUP  = "supercup"
)

// Buckets lists every recognized bucket under the matches collection.
var Buckets = []string{DIVISION_HIGH, DIVISION_FIRST, BUCKET_CUP, BUCKET_STRUCTURE, BUCKET_SUPERCUP}

// ValidBucket reports whether s names a recognized match bucket.
func ValidBucket(s string) bool {
	for _, b := range Buckets {
		if s == b {
			return true
		}
	}
	return false
}

// Kickoff times are wall-clock local to the league.
const KickoffZone = "Asia/Yerevan"

// RosterEntry is one line of a match-day roster.
type RosterEntry struct {
	// PlayerID is the document ID of the player on the fielding team's roster.
	PlayerID string `firestore:"playerId"`

	// Number is the shirt number worn in this match.
	Number int `firestore:"number,omitempty"`

	// Captain marks the team captain.
	Captain bool `firestore:"isCaptain,omitempty"`

	// Goalkeeper marks a goalkeeper.
	Goalkeeper bool `firestore:"isGoalkeeper,omitempty"`
}

// Match is a single game document. League matches carry a round; knockout
// matches carry a stage, a game index, and possibly slot references naming
// the earlier matches their participants advance from.
type Match struct {
	// Stage is the knockout stage name, empty for league matches.
	Stage string `firestore:"stage,omitempty"`

	// Round is the 1-based league match day, zero for knockout matches.
	Round int `firestore:"round,omitempty"`

	// GameIndex orders matches within a knockout stage.
	GameIndex int `firestore:"gameIndex,omitempty"`

	// Date is the local match date in YYYY-MM-DD form.
	Date string `firestore:"date,omitempty"`

	// Time is the local kickoff time in HH:MM form.
	Time string `firestore:"time,omitempty"`

	// Kickoff is the combined date and time as a timestamp for ordering
	// queries on public pages.
	Kickoff time.Time `firestore:"kickoff,omitempty"`

	// Score is the final score in "H-A" form, empty while unplayed.
	Score string `firestore:"score,omitempty"`

	// Home and Away are team document IDs. Either may be empty while the
	// slot awaits propagation from an earlier match.
	Home string `firestore:"home,omitempty"`
	Away string `firestore:"away,omitempty"`

	// HomeName and AwayName denormalize the team names for display.
	HomeName string `firestore:"homeName,omitempty"`
	AwayName string `firestore:"awayName,omitempty"`

	// HomeFrom and AwayFrom are slot reference tokens ("W:<id>" or "L:<id>")
	// naming the match each unresolved side advances from.
	HomeFrom string `firestore:"homeFrom,omitempty"`
	AwayFrom string `firestore:"awayFrom,omitempty"`

	// Label is a display label for bracket placeholders.
	Label string `firestore:"label,omitempty"`

	// Note is a free-form admin note.
	Note string `firestore:"note,omitempty"`

	// HomeWildcard and AwayWildcard mark sides filled outside the normal
	// qualification path.
	HomeWildcard bool `firestore:"homeWildcard,omitempty"`
	AwayWildcard bool `firestore:"awayWildcard,omitempty"`

	// HomeRoster and AwayRoster are the match-day squads.
	HomeRoster []RosterEntry `firestore:"roster_home,omitempty"`
	AwayRoster []RosterEntry `firestore:"roster_away,omitempty"`
}

func (m Match) String() string {
	var sb strings.Builder
	sb.WriteString("Match\n")
	sb.WriteString(treeString("Stage", 0, false, m.Stage))
	sb.WriteRune('\n')
	sb.WriteString(treeInt("Round", 0, false, m.Round))
	sb.WriteRune('\n')
	sb.WriteString(treeInt("GameIndex", 0, false, m.GameIndex))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Date", 0, false, m.Date))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Time", 0, false, m.Time))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Score", 0, false, m.Score))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Home", 0, false, m.Home))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Away", 0, false, m.Away))
	sb.WriteRune('\n')
	sb.WriteString(treeString("HomeFrom", 0, false, m.HomeFrom))
	sb.WriteRune('\n')
	sb.WriteString(treeString("AwayFrom", 0, false, m.AwayFrom))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Label", 0, false, m.Label))
	sb.WriteRune('\n')
	sb.WriteString(treeBool("HomeWildcard", 0, false, m.HomeWildcard))
	sb.WriteRune('\n')
	sb.WriteString(treeBool("AwayWildcard", 0, true, m.AwayWildcard))
	return sb.String()
}

// Resolved reports whether both sides of the match are known.
func (m Match) Resolved() bool {
	return m.Home != "" && m.Away != ""
}

// Result parses the stored score. The second return value is false while
// the match is unplayed or the score is malformed.
func (m Match) Result() (league.Score, bool) {
	return league.ParseScore(m.Score)
}

// KickoffTime combines the date and time fields into a local wall-clock
// kickoff. A match without a time kicks off at midnight; a match without a
// date has no kickoff.
func (m Match) KickoffTime() (time.Time, error) {
	if m.Date == "" {
		return time.Time{}, fmt.Errorf("KickoffTime: match has no date set")
	}
	hhmm := m.Time
	if hhmm == "" {
		hhmm = "00:00"
	}
	loc, err := time.LoadLocation(KickoffZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("KickoffTime: failed to load location %s: %w", KickoffZone, err)
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", m.Date+" "+hhmm, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("KickoffTime: failed to parse \"%s %s\": %w", m.Date, hhmm, err)
	}
	return t, nil
}

// GamesCollection returns the games subcollection of a bucket.
func GamesCollection(client *fs.Client, bucket string) *fs.CollectionRef {
	return client.Collection(MATCHES_COLLECTION).Doc(bucket).Collection(GAMES_COLLECTION)
}

type MatchNotFound string

func (e MatchNotFound) Error() string {
	return string(e)
}

// GetMatch looks a match up by bucket and document ID.
func GetMatch(ctx context.Context, client *fs.Client, bucket, id string) (Match, *fs.DocumentRef, error) {
	var m Match
	ref := GamesCollection(client, bucket).Doc(id)
	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return m, nil, MatchNotFound(fmt.Sprintf("no match with ID \"%s\" in bucket %s", id, bucket))
	}
	if err != nil {
		return m, nil, fmt.Errorf("GetMatch: failed to get match %s/%s: %w", bucket, id, err)
	}
	if err := snap.DataTo(&m); err != nil {
		return m, nil, fmt.Errorf("GetMatch: failed to read match snapshot %s: %w", id, err)
	}
	return m, ref, nil
}

// GetMatches gets every match in a bucket, ordered for display: knockout
// stages first by stage then game index, league match days by round then
// kickoff. Ordering happens client-side so no composite index is needed.
func GetMatches(ctx context.Context, client *fs.Client, bucket string) ([]Match, []*fs.DocumentRef, error) {
	snaps, err := GamesCollection(client, bucket).Documents(ctx).GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("GetMatches: failed to get matches in bucket %s: %w", bucket, err)
	}
	matches := make([]Match, len(snaps))
	refs := make([]*fs.DocumentRef, len(snaps))
	for i, snap := range snaps {
		var m Match
		if err := snap.DataTo(&m); err != nil {
			return nil, nil, fmt.Errorf("GetMatches: failed to read match snapshot %s: %w", snap.Ref.ID, err)
		}
		matches[i] = m
		refs[i] = snap.Ref
	}
	sort.Sort(&matchSorter{matches, refs})
	return matches, refs, nil
}

type matchSorter struct {
	matches []Match
	refs    []*fs.DocumentRef
}

func (s *matchSorter) Len() int { return len(s.matches) }

func (s *matchSorter) Less(i, j int) bool {
	a, b := s.matches[i], s.matches[j]
	if oa, ob := league.StageOrder(a.Stage), league.StageOrder(b.Stage); oa != ob {
		return oa < ob
	}
	if a.Round != b.Round {
		return a.Round < b.Round
	}
	if a.GameIndex != b.GameIndex {
		return a.GameIndex < b.GameIndex
	}
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	return s.refs[i].ID < s.refs[j].ID
}

func (s *matchSorter) Swap(i, j int) {
	s.matches[i], s.matches[j] = s.matches[j], s.matches[i]
	s.refs[i], s.refs[j] = s.refs[j], s.refs[i]
}
