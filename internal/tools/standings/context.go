package standings

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	Force  bool
	DryRun bool

	FirestoreClient *fs.Client

	// Bucket names the table to compute: a division or a tournament with a
	// league phase.
	Bucket string

	// HeadToHead applies the mini-table tie-break to equal-points groups.
	HeadToHead bool

	// Output is a local path or gs:// URL for ExportStandings.
	Output string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
