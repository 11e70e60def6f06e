package editevents

import (
	"fmt"
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/amffhub/amfftool/internal/firestore"
)

// AddEvent appends a timeline event to a match. The crediting team and
// player names are denormalized into the event from the match and roster.
func AddEvent(ctx *Context) error {
	e := ctx.Event
	if e.TeamKey != "home" && e.TeamKey != "away" {
		return fmt.Errorf("AddEvent: team key must be 'home' or 'away'")
	}
	if !firestore.ValidEventType(e.Type) {
		return fmt.Errorf("AddEvent: event type must be one of %v", firestore.EventTypes)
	}
	if e.Minute < 0 {
		return fmt.Errorf("AddEvent: minute cannot be negative")
	}

	match, matchRef, err := firestore.GetMatch(ctx, ctx.FirestoreClient, ctx.Bucket, ctx.MatchID)
	if err != nil {
		return fmt.Errorf("AddEvent: %w", err)
	}

	e.TeamID = match.Home
	e.TeamName = match.HomeName
	if e.TeamKey == "away" {
		e.TeamID = match.Away
		e.TeamName = match.AwayName
	}
	if e.TeamID == "" {
		return fmt.Errorf("AddEvent: the %s slot of match %s is not resolved yet", e.TeamKey, ctx.MatchID)
	}
	e.MatchID = ctx.MatchID
	e.Bucket = ctx.Bucket

	if e.PlayerID != "" {
		_, teamRef, err := firestore.GetTeam(ctx, ctx.FirestoreClient, e.TeamID)
		if err != nil {
			return fmt.Errorf("AddEvent: %w", err)
		}
		player, _, err := firestore.GetPlayer(ctx, teamRef, e.PlayerID)
		if err != nil {
			return fmt.Errorf("AddEvent: %w", err)
		}
		e.PlayerName = player.FullName()
	}

	col := firestore.EventsCollection(matchRef)

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following:")
		log.Printf("%s/(new) -> %s", col.Path, e)
		return nil
	}

	ref, _, err := col.Add(ctx, &e)
	if err != nil {
		return fmt.Errorf("AddEvent: failed to add event: %w", err)
	}
	log.Printf("Added event %s", ref.ID)
	return nil
}

// RmEvent deletes a single timeline event.
func RmEvent(ctx *Context) error {
	_, matchRef, err := firestore.GetMatch(ctx, ctx.FirestoreClient, ctx.Bucket, ctx.MatchID)
	if err != nil {
		return fmt.Errorf("RmEvent: %w", err)
	}
	ref := firestore.EventsCollection(matchRef).Doc(ctx.ID)
	snap, err := ref.Get(ctx)
	if err != nil {
		return fmt.Errorf("RmEvent: failed to get event %s: %w", ctx.ID, err)
	}
	var e firestore.MatchEvent
	if err := snap.DataTo(&e); err != nil {
		return fmt.Errorf("RmEvent: failed to read event snapshot %s: %w", ctx.ID, err)
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would delete the following:")
		log.Printf("%s: %s", ref.Path, e)
		return nil
	}

	if !ctx.Force {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete event '%d' %s (%s)?", e.Minute, e.Type, e.PlayerName),
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return fmt.Errorf("RmEvent: failed to ask for confirmation: %w", err)
		}
		if !ok {
			log.Print("Canceled.")
			return nil
		}
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("RmEvent: failed to delete event %s: %w", ctx.ID, err)
	}
	return nil
}

// LsEvents prints a match's timeline sorted by minute.
func LsEvents(ctx *Context) error {
	match, matchRef, err := firestore.GetMatch(ctx, ctx.FirestoreClient, ctx.Bucket, ctx.MatchID)
	if err != nil {
		return fmt.Errorf("LsEvents: %w", err)
	}
	events, refs, err := firestore.GetEvents(ctx, matchRef)
	if err != nil {
		return fmt.Errorf("LsEvents: failed to get events: %w", err)
	}

	fmt.Printf("%s vs %s (%s)\n", match.HomeName, match.AwayName, match.Date)
	for i, e := range events {
		fmt.Printf("%s -> %d' %s %s (%s)\n", refs[i].ID, e.Minute, e.Type, e.PlayerName, e.TeamName)
	}
	return nil
}
