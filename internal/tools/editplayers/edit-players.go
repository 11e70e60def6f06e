package editplayers

import (
	"context"
	"fmt"
	"log"

	fs "cloud.google.com/go/firestore"
	"github.com/AlecAivazis/survey/v2"
	"github.com/amffhub/amfftool/internal/firestore"
)

// AddPlayer creates a player document on a team's roster. With an empty
// ctx.ID, Firestore assigns a random document ID.
func AddPlayer(ctx *Context) error {
	if ctx.Player.Name == "" && ctx.Player.Surname == "" {
		return fmt.Errorf("AddPlayer: player name or surname must be specified")
	}

	_, teamRef, err := firestore.GetTeam(ctx, ctx.FirestoreClient, ctx.TeamID)
	if err != nil {
		return fmt.Errorf("AddPlayer: %w", err)
	}

	col := firestore.PlayersCollection(teamRef)

	if ctx.DryRun {
		log.Print("DRY RUN: would write the following:")
		if ctx.ID == "" {
			log.Printf("%s/(new) -> %s", col.Path, ctx.Player)
		} else {
			log.Printf("%s -> %s", col.Doc(ctx.ID).Path, ctx.Player)
		}
		return nil
	}

	if ctx.ID == "" {
		ref, _, err := col.Add(ctx, &ctx.Player)
		if err != nil {
			return fmt.Errorf("AddPlayer: failed to add player: %w", err)
		}
		log.Printf("Added player %s", ref.ID)
		return nil
	}

	ref := col.Doc(ctx.ID)
	if ctx.Force {
		_, err = ref.Set(ctx, &ctx.Player)
	} else {
		_, err = ref.Create(ctx, &ctx.Player)
	}
	if err != nil {
		return fmt.Errorf("AddPlayer: failed to write player %s: %w", ctx.ID, err)
	}
	return nil
}

// EditPlayer updates individual fields of a roster player. Empty fields of
// ctx.Player are left untouched.
func EditPlayer(ctx *Context) error {
	newPlayer := ctx.Player
	if newPlayer.Name == "" && newPlayer.Surname == "" && newPlayer.Number == 0 && newPlayer.Position == "" && newPlayer.Born == "" && newPlayer.Photo == "" {
		return fmt.Errorf("EditPlayer: at least one field to edit must be specified")
	}

	_, teamRef, err := firestore.GetTeam(ctx, ctx.FirestoreClient, ctx.TeamID)
	if err != nil {
		return fmt.Errorf("EditPlayer: %w", err)
	}
	player, ref, err := firestore.GetPlayer(ctx, teamRef, ctx.ID)
	if err != nil {
		return fmt.Errorf("EditPlayer: %w", err)
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would make the following edits:")
		log.Printf("%s: %s", ref.Path, player)
		if newPlayer.Name != "" {
			log.Printf("Name to '%s'", newPlayer.Name)
		}
		if newPlayer.Surname != "" {
			log.Printf("Surname to '%s'", newPlayer.Surname)
		}
		if newPlayer.Number != 0 {
			log.Printf("Number to %d", newPlayer.Number)
		}
		if newPlayer.Position != "" {
			log.Printf("Position to '%s'", newPlayer.Position)
		}
		if newPlayer.Born != "" {
			log.Printf("Born to '%s'", newPlayer.Born)
		}
		if newPlayer.Photo != "" {
			log.Printf("Photo to '%s'", newPlayer.Photo)
		}
		return nil
	}

	if !ctx.Force {
		return fmt.Errorf("EditPlayer: edit of players is dangerous: use force flag to force edit")
	}

	err = ctx.FirestoreClient.RunTransaction(ctx, func(c context.Context, t *fs.Transaction) error {
		updates := make([]fs.Update, 0, 6)
		if newPlayer.Name != "" {
			updates = append(updates, fs.Update{Path: "name", Value: newPlayer.Name})
		}
		if newPlayer.Surname != "" {
			updates = append(updates, fs.Update{Path: "surname", Value: newPlayer.Surname})
		}
		if newPlayer.Number != 0 {
			updates = append(updates, fs.Update{Path: "number", Value: newPlayer.Number})
		}
		if newPlayer.Position != "" {
			updates = append(updates, fs.Update{Path: "position", Value: newPlayer.Position})
		}
		if newPlayer.Born != "" {
			updates = append(updates, fs.Update{Path: "dob", Value: newPlayer.Born})
		}
		if newPlayer.Photo != "" {
			updates = append(updates, fs.Update{Path: "photo", Value: newPlayer.Photo})
		}
		return t.Update(ref, updates)
	})
	if err != nil {
		return fmt.Errorf("EditPlayer: failed to update player %s: %w", ctx.ID, err)
	}
	return nil
}

// RmPlayer deletes a roster player and the player's stats document.
func RmPlayer(ctx *Context) error {
	_, teamRef, err := firestore.GetTeam(ctx, ctx.FirestoreClient, ctx.TeamID)
	if err != nil {
		return fmt.Errorf("RmPlayer: %w", err)
	}
	player, ref, err := firestore.GetPlayer(ctx, teamRef, ctx.ID)
	if err != nil {
		return fmt.Errorf("RmPlayer: %w", err)
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would delete the following:")
		log.Printf("%s: %s", ref.Path, player)
		log.Printf("%s", firestore.StatsRef(ref).Path)
		return nil
	}

	if !ctx.Force {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete player '%s' from team %s?", player.FullName(), ctx.TeamID),
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return fmt.Errorf("RmPlayer: failed to ask for confirmation: %w", err)
		}
		if !ok {
			log.Print("Canceled.")
			return nil
		}
	}

	if _, err := firestore.StatsRef(ref).Delete(ctx); err != nil {
		return fmt.Errorf("RmPlayer: failed to delete stats for player %s: %w", ctx.ID, err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("RmPlayer: failed to delete player %s: %w", ctx.ID, err)
	}
	return nil
}

// LsPlayers prints a team's roster with season totals.
func LsPlayers(ctx *Context) error {
	_, teamRef, err := firestore.GetTeam(ctx, ctx.FirestoreClient, ctx.TeamID)
	if err != nil {
		return fmt.Errorf("LsPlayers: %w", err)
	}
	players, refs, err := firestore.GetPlayers(ctx, teamRef)
	if err != nil {
		return fmt.Errorf("LsPlayers: failed to get players: %w", err)
	}

	for i, player := range players {
		stats, ok, err := firestore.GetPlayerStats(ctx, refs[i])
		if err != nil {
			return fmt.Errorf("LsPlayers: failed to get stats: %w", err)
		}
		if !ok {
			fmt.Printf("%s -> %s (no stats)\n", refs[i].ID, player.FullName())
			continue
		}
		fmt.Printf("%s -> %s (G:%d Gl:%d A:%d Y:%d R:%d)\n", refs[i].ID, player.FullName(),
			stats.Games, stats.Goals, stats.Assists, stats.Yellow, stats.Red)
	}
	return nil
}
