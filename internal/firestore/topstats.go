package firestore

import (
	"context"
	"fmt"
	"strings"

	fs "cloud.google.com/go/firestore"
)

// TOP_STATS_COLLECTION is the path to the published leaderboards. Each
// division document holds one subcollection per stat category.
const TOP_STATS_COLLECTION = "topStats"

// StatCategory binds a leaderboard subcollection name to the player stats
// field it ranks by.
type StatCategory struct {
	Collection string
	Field      string
}

// StatCategories lists the published leaderboards in display order.
var StatCategories = []StatCategory{
	{Collection: "scorers", Field: "goals"},
	{Collection: "assists", Field: "assists"},
	{Collection: "yellow", Field: "yellow"},
	{Collection: "red", Field: "red"},
}

// LeaderboardEntry is one row of a published leaderboard. Entries are
// denormalized: public pages render them without touching the teams tree.
type LeaderboardEntry struct {
	// PlayerID is the entry's document ID.
	PlayerID string

	// Name is the player's display name.
	Name string

	// Team and Logo identify the player's club.
	Team string
	Logo string

	// Value is the ranked stat.
	Value int
}

func (e LeaderboardEntry) String() string {
	var sb strings.Builder
	sb.WriteString("LeaderboardEntry\n")
	sb.WriteString(treeString("Name", 0, false, e.Name))
	sb.WriteRune('\n')
	sb.WriteString(treeString("Team", 0, false, e.Team))
	sb.WriteRune('\n')
	sb.WriteString(treeInt("Value", 0, true, e.Value))
	return sb.String()
}

// Data flattens the entry into the stored document shape. Only the ranked
// category's field is written.
func (e LeaderboardEntry) Data(field string) map[string]interface{} {
	return map[string]interface{}{
		"name": e.Name,
		"team": e.Team,
		"logo": e.Logo,
		field:  e.Value,
	}
}

// TopStatsCollection returns the leaderboard subcollection for a division
// and category.
func TopStatsCollection(client *fs.Client, division, category string) *fs.CollectionRef {
	return client.Collection(TOP_STATS_COLLECTION).Doc(division).Collection(category)
}

// GetLeaderboard reads a published leaderboard back, sorted by descending
// value.
func GetLeaderboard(ctx context.Context, client *fs.Client, division string, cat StatCategory) ([]LeaderboardEntry, error) {
	snaps, err := TopStatsCollection(client, division, cat.Collection).
		OrderBy(cat.Field, fs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("GetLeaderboard: failed to get %s/%s entries: %w", division, cat.Collection, err)
	}
	entries := make([]LeaderboardEntry, len(snaps))
	for i, snap := range snaps {
		data := snap.Data()
		e := LeaderboardEntry{PlayerID: snap.Ref.ID}
		if v, ok := data["name"].(string); ok {
			e.Name = v
		}
		if v, ok := data["team"].(string); ok {
			e.Team = v
		}
		if v, ok := data["logo"].(string); ok {
			e.Logo = v
		}
		if v, ok := data[cat.Field].(int64); ok {
			e.Value = int(v)
		}
		entries[i] = e
	}
	return entries, nil
}
