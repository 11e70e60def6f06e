package editplayers

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

	TeamID string
	ID     string
	Player firestore.Player
	Stats  firestore.PlayerStats

	// RosterFile is a local path or gs:// URL of a roster spreadsheet.
	RosterFile string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
