package editmatches

import (
	"fmt"
	"log"

	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/amffhub/amfftool/internal/league"
	"github.com/amffhub/amfftool/internal/tools/propagate"
)

// SaveMatch validates and writes a match document, then pushes any decided
// outcome into downstream bracket slots. With an empty ctx.ID, Firestore
// assigns a random document ID; an explicit ID creates the document or,
// with the force flag, overwrites it.
func SaveMatch(ctx *Context) error {
	m := ctx.Match

	if err := validate(ctx.Bucket, &m); err != nil {
		return fmt.Errorf("SaveMatch: %w", err)
	}

	teams, teamRefs, err := firestore.GetTeams(ctx, ctx.FirestoreClient)
	if err != nil {
		return fmt.Errorf("SaveMatch: failed to get teams: %w", err)
	}
	names := firestore.TeamNames(teams, teamRefs)
	if m.Home != "" {
		name, ok := names[m.Home]
		if !ok {
			return fmt.Errorf("SaveMatch: home team '%s' does not exist", m.Home)
		}
		m.HomeName = name
	}
	if m.Away != "" {
		name, ok := names[m.Away]
		if !ok {
			return fmt.Errorf("SaveMatch: away team '%s' does not exist", m.Away)
		}
		m.AwayName = name
	}

	if kickoff, err := m.KickoffTime(); err == nil {
		m.Kickoff = kickoff
	}

	col := firestore.GamesCollection(ctx.FirestoreClient, ctx.Bucket)

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following:")
		if ctx.ID == "" {
			log.Printf("%s/(new) -> %s", col.Path, m)
		} else {
			log.Printf("%s -> %s", col.Doc(ctx.ID).Path, m)
		}
		return nil
	}

	savedID := ctx.ID
	if ctx.ID == "" {
		ref, _, err := col.Add(ctx, &m)
		if err != nil {
			return fmt.Errorf("SaveMatch: failed to add match: %w", err)
		}
		savedID = ref.ID
		log.Printf("Added match %s", savedID)
	} else {
		ref := col.Doc(ctx.ID)
		if ctx.Force {
			_, err = ref.Set(ctx, &m)
		} else {
			_, err = ref.Create(ctx, &m)
		}
		if err != nil {
			return fmt.Errorf("SaveMatch: failed to write match %s: %w", ctx.ID, err)
		}
	}

	// Knockout buckets resolve slot references as soon as results land.
	if ctx.Bucket == firestore.BUCKET_CUP || ctx.Bucket == firestore.BUCKET_STRUCTURE {
		pctx := propagate.NewContext(ctx.Context)
		pctx.FirestoreClient = ctx.FirestoreClient
		pctx.Bucket = ctx.Bucket
		pctx.MatchID = savedID
		if err := propagate.Propagate(pctx); err != nil {
			return fmt.Errorf("SaveMatch: %w", err)
		}
	}
	return nil
}

func validate(bucket string, m *firestore.Match) error {
	if !firestore.ValidBucket(bucket) {
		return fmt.Errorf("bucket must be one of %v", firestore.Buckets)
	}
	if m.Date == "" {
		return fmt.Errorf("match date must be specified")
	}
	if m.Home != "" && m.Home == m.Away {
		return fmt.Errorf("home and away cannot be the same team")
	}
	if m.Score != "" {
		if _, ok := league.ParseScore(m.Score); !ok {
			return fmt.Errorf("score '%s' is not of the form H-A", m.Score)
		}
	}

	switch bucket {
	case firestore.BUCKET_CUP:
		if m.Stage == "" {
			m.Stage = "1/12"
		}
		if m.Home == "" || m.Away == "" {
			return fmt.Errorf("cup matches need both teams")
		}

	case firestore.BUCKET_STRUCTURE:
		if m.Stage == "" {
			m.Stage = league.StageLeague
		}
		if _, err := league.ParseSlotRef(m.HomeFrom); err != nil {
			return fmt.Errorf("homeFrom: %w", err)
		}
		if _, err := league.ParseSlotRef(m.AwayFrom); err != nil {
			return fmt.Errorf("awayFrom: %w", err)
		}
		if m.Stage == league.StageLeague {
			if m.Round == 0 {
				return fmt.Errorf("league-stage matches need a round")
			}
			if m.Home == "" || m.Away == "" {
				return fmt.Errorf("league-stage matches need both teams")
			}
		} else if (m.Home == "" || m.Away == "") && m.HomeFrom == "" && m.AwayFrom == "" {
			return fmt.Errorf("playoff matches need either both teams or a slot reference")
		}

	default:
		if m.Round == 0 {
			return fmt.Errorf("league matches need a round")
		}
		if m.Home == "" || m.Away == "" {
			return fmt.Errorf("league matches need both teams")
		}
	}
	return nil
}
