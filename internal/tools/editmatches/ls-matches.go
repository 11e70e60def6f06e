package editmatches

import (
	"fmt"

	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/amffhub/amfftool/internal/league"
)

func LsMatches(ctx *Context) error {
	if !firestore.ValidBucket(ctx.Bucket) {
		return fmt.Errorf("LsMatches: bucket must be one of %v", firestore.Buckets)
	}
	matches, refs, err := firestore.GetMatches(ctx, ctx.FirestoreClient, ctx.Bucket)
	if err != nil {
		return fmt.Errorf("LsMatches: failed to get matches: %w", err)
	}

	for i, m := range matches {
		label := m.Stage
		if label == "" || label == league.StageLeague {
			label = fmt.Sprintf("round %d", m.Round)
		}
		score := m.Score
		if score == "" {
			score = "-"
		}
		home := m.HomeName
		if home == "" {
			home = orToken(m.HomeFrom)
		}
		away := m.AwayName
		if away == "" {
			away = orToken(m.AwayFrom)
		}
		fmt.Printf("%s -> [%s] %s %s  %s vs %s  %s\n", refs[i].ID, label, m.Date, m.Time, home, away, score)
	}
	return nil
}

func orToken(tok string) string {
	if tok == "" {
		return "?"
	}
	return tok
}
