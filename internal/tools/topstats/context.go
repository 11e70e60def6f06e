package topstats

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	Force  bool
	DryRun bool

	FirestoreClient *fs.Client

	// Divisions to publish leaderboards for. Empty means all.
	Divisions []string

	// TopN is the number of entries per leaderboard.
	TopN int

	NoProgress bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
