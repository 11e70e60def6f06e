package editmatches

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/amffhub/amfftool/internal/firestore"
)

type Context struct {
	context.Context

	Force  bool
	DryRun bool

	FirestoreClient *fs.Client

	Bucket string
	ID     string
	Match  firestore.Match

	// Roster settings for SetRoster.
	Side      string
	Roster    []firestore.RosterEntry
	BumpGames bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
