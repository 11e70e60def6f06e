package genschedule

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/AlecAivazis/survey/v2"
	"github.com/amffhub/amfftool/internal/firestore"
	"github.com/amffhub/amfftool/internal/league"
	"github.com/schollz/progressbar/v3"
	"github.com/segmentio/fasthash/fnv1a"
	"google.golang.org/api/iterator"
)

const defaultMaxRounds = 10

// GenSchedule draws a league schedule for a tournament's entrants and
// writes it to the tournament bucket. The full round-robin is computed, a
// random subset of match days is kept, and matches are laid out one round
// per day starting tomorrow. Existing matches in the bucket are wiped
// first.
func GenSchedule(ctx *Context) error {
	if !firestore.ValidBucket(ctx.Tournament) {
		return fmt.Errorf("GenSchedule: tournament must be one of %v", firestore.Buckets)
	}

	teams, teamRefs, err := firestore.GetTeamsByTournament(ctx, ctx.FirestoreClient, ctx.Tournament)
	if err != nil {
		return fmt.Errorf("GenSchedule: failed to get teams: %w", err)
	}
	if len(teams) < 4 {
		return fmt.Errorf("GenSchedule: tournament %s has %d entrants, need at least 4", ctx.Tournament, len(teams))
	}
	if len(teams) != 24 && !ctx.Force && !ctx.DryRun {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Tournament %s has %d entrants instead of 24. Continue?", ctx.Tournament, len(teams)),
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return fmt.Errorf("GenSchedule: failed to ask for confirmation: %w", err)
		}
		if !ok {
			log.Print("Canceled.")
			return nil
		}
	}

	names := firestore.TeamNames(teams, teamRefs)
	ids := make([]string, len(teamRefs))
	for i, ref := range teamRefs {
		ids[i] = ref.ID
	}

	rng := rand.New(rand.NewSource(seedSource(ctx.Seed)))
	rounds, err := league.RoundRobin(league.ShuffleTeams(rng, ids))
	if err != nil {
		return fmt.Errorf("GenSchedule: %w", err)
	}
	maxRounds := ctx.MaxRounds
	if maxRounds == 0 {
		maxRounds = defaultMaxRounds
	}
	picked := league.PickRounds(rng, rounds, maxRounds)

	start := time.Now().AddDate(0, 0, 1)
	if ctx.StartDate != "" {
		start, err = time.Parse("2006-01-02", ctx.StartDate)
		if err != nil {
			return fmt.Errorf("GenSchedule: failed to parse start date '%s': %w", ctx.StartDate, err)
		}
	}
	kickoffAt := ctx.KickoffAt
	if kickoffAt == "" {
		kickoffAt = "20:00"
	}

	type write struct {
		id    string
		match firestore.Match
	}
	writes := make([]write, 0, len(picked)*len(ids)/2)
	for r, pairs := range picked {
		date := start.AddDate(0, 0, r).Format("2006-01-02")
		for i, pair := range pairs {
			m := firestore.Match{
				Stage:     league.StageLeague,
				Round:     r + 1,
				GameIndex: i + 1,
				Date:      date,
				Time:      kickoffAt,
				Home:      pair.Home,
				Away:      pair.Away,
				HomeName:  names[pair.Home],
				AwayName:  names[pair.Away],
			}
			if kickoff, err := m.KickoffTime(); err == nil {
				m.Kickoff = kickoff
			}
			writes = append(writes, write{id: fmt.Sprintf("league-%d-%02d", r+1, i+1), match: m})
		}
	}

	col := firestore.GamesCollection(ctx.FirestoreClient, ctx.Tournament)

	if ctx.DryRun {
		log.Print("DRY RUN: would wipe the bucket and write the following:")
		for _, w := range writes {
			log.Printf("%s -> %s", col.Doc(w.id).Path, w.match)
		}
		return nil
	}

	if err := wipeBucket(ctx, col); err != nil {
		return fmt.Errorf("GenSchedule: %w", err)
	}

	bar := progressbar.NewOptions(len(writes), progressbar.OptionSetVisibility(!ctx.NoProgress))
	for _, w := range writes {
		if _, err := col.Doc(w.id).Set(ctx, &w.match); err != nil {
			return fmt.Errorf("GenSchedule: failed to write match %s: %w", w.id, err)
		}
		bar.Add(1)
	}
	log.Printf("Generated %d match days (%d matches) for tournament %s", len(picked), len(writes), ctx.Tournament)
	return nil
}

// wipeBucket deletes every match in the bucket: generation replaces the
// whole schedule.
func wipeBucket(ctx *Context, col *fs.CollectionRef) error {
	refs := make([]*fs.DocumentRef, 0)
	refIter := col.DocumentRefs(ctx)
	for {
		ref, err := refIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("wipeBucket: failed to list matches: %w", err)
		}
		refs = append(refs, ref)
	}
	if len(refs) == 0 {
		return nil
	}
	if !ctx.Force {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Bucket %s already holds %d matches. Delete them and regenerate?", ctx.Tournament, len(refs)),
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return fmt.Errorf("wipeBucket: failed to ask for confirmation: %w", err)
		}
		if !ok {
			return fmt.Errorf("wipeBucket: canceled")
		}
	}
	for _, ref := range refs {
		if _, err := ref.Delete(ctx); err != nil {
			return fmt.Errorf("wipeBucket: failed to delete match %s: %w", ref.ID, err)
		}
	}
	return nil
}

func seedSource(seed string) int64 {
	if seed == "" {
		return time.Now().UnixNano()
	}
	return int64(fnv1a.HashString64(seed))
}
