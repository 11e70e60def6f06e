package topstats

import (
	"fmt"
	"log"
	"sort"

	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/constraints"
)

const defaultTopN = 6

// playerTotals is one player's aggregated season line, tagged with the
// display fields the published leaderboards carry.
type playerTotals struct {
	playerID string
	name     string
	team     string
	logo     string
	stats    firestore.PlayerStats
}

// UpdateTopStats recomputes the published leaderboards from the stats
// documents under every roster. Each division and category collection is
// deleted and rewritten whole, so removed players drop off the boards.
func UpdateTopStats(ctx *Context) error {
	divisions := ctx.Divisions
	if len(divisions) == 0 {
		divisions = firestore.Divisions
	}
	topN := ctx.TopN
	if topN == 0 {
		topN = defaultTopN
	}

	for _, division := range divisions {
		if !firestore.ValidDivision(division) {
			return fmt.Errorf("UpdateTopStats: division must be one of %v", firestore.Divisions)
		}
		if err := updateDivision(ctx, division, topN); err != nil {
			return fmt.Errorf("UpdateTopStats: %w", err)
		}
	}
	return nil
}

func updateDivision(ctx *Context, division string, topN int) error {
	teams, teamRefs, err := firestore.GetTeamsByDivision(ctx, ctx.FirestoreClient, division)
	if err != nil {
		return fmt.Errorf("updateDivision: failed to get teams: %w", err)
	}

	totals := make([]playerTotals, 0)
	bar := progressbar.NewOptions(len(teams), progressbar.OptionSetVisibility(!ctx.NoProgress))
	for i, team := range teams {
		players, playerRefs, err := firestore.GetPlayers(ctx, teamRefs[i])
		if err != nil {
			return fmt.Errorf("updateDivision: failed to get players for team %s: %w", teamRefs[i].ID, err)
		}
		for j, player := range players {
			stats, ok, err := firestore.GetPlayerStats(ctx, playerRefs[j])
			if err != nil {
				return fmt.Errorf("updateDivision: failed to get stats for player %s: %w", playerRefs[j].ID, err)
			}
			if !ok {
				continue
			}
			totals = append(totals, playerTotals{
				playerID: playerRefs[j].ID,
				name:     displayName(player),
				team:     team.Name,
				logo:     team.Logo,
				stats:    stats,
			})
		}
		bar.Add(1)
	}

	for _, cat := range firestore.StatCategories {
		top := topBy(totals, topN, statValue(cat.Field))
		entries := make([]firestore.LeaderboardEntry, len(top))
		for i, t := range top {
			entries[i] = firestore.LeaderboardEntry{
				PlayerID: t.playerID,
				Name:     t.name,
				Team:     t.team,
				Logo:     t.logo,
				Value:    statValue(cat.Field)(t),
			}
		}
		if err := publish(ctx, division, cat, entries); err != nil {
			return fmt.Errorf("updateDivision: %w", err)
		}
	}
	log.Printf("Published leaderboards for division %s (%d players considered)", division, len(totals))
	return nil
}

func publish(ctx *Context, division string, cat firestore.StatCategory, entries []firestore.LeaderboardEntry) error {
	col := firestore.TopStatsCollection(ctx.FirestoreClient, division, cat.Collection)

	if ctx.DryRun {
		log.Printf("DRY RUN: would rewrite %s with the following:", col.Path)
		for _, e := range entries {
			log.Printf("%s -> %v", e.PlayerID, e.Data(cat.Field))
		}
		return nil
	}

	stale, err := col.DocumentRefs(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("publish: failed to list %s: %w", col.Path, err)
	}
	for _, ref := range stale {
		if _, err := ref.Delete(ctx); err != nil {
			return fmt.Errorf("publish: failed to delete stale entry %s: %w", ref.ID, err)
		}
	}
	for _, e := range entries {
		if _, err := col.Doc(e.PlayerID).Set(ctx, e.Data(cat.Field)); err != nil {
			return fmt.Errorf("publish: failed to write entry %s: %w", e.PlayerID, err)
		}
	}
	return nil
}

func displayName(p firestore.Player) string {
	switch {
	case p.Surname == "":
		return p.Name
	case p.Name == "":
		return p.Surname
	}
	return p.Name + " " + p.Surname
}

func statValue(field string) func(playerTotals) int {
	return func(t playerTotals) int {
		switch field {
		case "goals":
			return t.stats.Goals
		case "assists":
			return t.stats.Assists
		case "yellow":
			return t.stats.Yellow
		case "red":
			return t.stats.Red
		}
		return 0
	}
}

// topBy returns the n items with the greatest keys, ties broken by input
// order.
func topBy[T any, O constraints.Ordered](items []T, n int, key func(T) O) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
