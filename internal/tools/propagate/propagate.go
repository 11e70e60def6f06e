package propagate

import (
	"fmt"
	"log"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/amffhub/amfftool/internal/league"
)

type patch struct {
	ref  *fs.DocumentRef
	data map[string]interface{}
}

// Propagate pushes decided match outcomes into the slot references of later
// bracket matches. Only direct references to a decided match are filled:
// filling one slot does not decide the referencing match, so there is never
// a deeper chain to follow in a single pass. Drawn or unparsable scores
// propagate nothing.
func Propagate(ctx *Context) error {
	if !firestore.ValidBucket(ctx.Bucket) {
		return fmt.Errorf("Propagate: bucket must be one of %v", firestore.Buckets)
	}

	matches, refs, err := firestore.GetMatches(ctx, ctx.FirestoreClient, ctx.Bucket)
	if err != nil {
		return fmt.Errorf("Propagate: failed to get matches: %w", err)
	}
	teams, teamRefs, err := firestore.GetTeams(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("Propagate: failed to get teams: %w", err)
	}
	names := firestore.TeamNames(teams, teamRefs)

	byID := make(map[string]firestore.Match, len(matches))
	for i := range matches {
		byID[refs[i].ID] = matches[i]
	}

	var sourceIDs []string
	if ctx.MatchID != "" {
		if _, ok := byID[ctx.MatchID]; !ok {
			return firestore.MatchNotFound(fmt.Sprintf("no match with ID \"%s\" in bucket %s", ctx.MatchID, ctx.Bucket))
		}
		sourceIDs = []string{ctx.MatchID}
	} else {
		for i := range matches {
			sourceIDs = append(sourceIDs, refs[i].ID)
		}
	}

	patches := make([]patch, 0)
	for _, srcID := range sourceIDs {
		src := byID[srcID]
		score, ok := src.Result()
		if !ok {
			continue
		}
		winner, loser, ok := league.Outcome(src.Home, src.Away, score)
		if !ok {
			continue
		}

		for i, m := range matches {
			data := make(map[string]interface{})
			if id, ok := resolveToken(m.HomeFrom, srcID, winner, loser); ok {
				data["home"] = id
				data["homeName"] = names[id]
			}
			if id, ok := resolveToken(m.AwayFrom, srcID, winner, loser); ok {
				data["away"] = id
				data["awayName"] = names[id]
			}
			if len(data) > 0 {
				patches = append(patches, patch{ref: refs[i], data: data})
			}
		}
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following:")
		for _, p := range patches {
			log.Printf("%s -> %v", p.ref.Path, p.data)
		}
		return nil
	}

	for _, p := range patches {
		if _, err := p.ref.Set(ctx, p.data, fs.MergeAll); err != nil {
			return fmt.Errorf("Propagate: failed to patch match %s: %w", p.ref.ID, err)
		}
	}
	if len(patches) > 0 {
		log.Printf("Propagated outcomes into %d slots in bucket %s", len(patches), ctx.Bucket)
	}
	return nil
}

func resolveToken(tok, srcID, winner, loser string) (string, bool) {
	if tok == "" {
		return "", false
	}
	ref, err := league.ParseSlotRef(tok)
	if err != nil {
		log.Printf("Skipping malformed slot reference '%s': %v", tok, err)
		return "", false
	}
	return ref.Resolve(srcID, winner, loser)
}
