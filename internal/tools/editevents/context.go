package editevents

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

	Bucket  string
	MatchID string
	ID      string
	Event   firestore.MatchEvent
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
