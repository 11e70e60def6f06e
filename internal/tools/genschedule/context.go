package genschedule

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	Force  bool
	DryRun bool

	FirestoreClient *fs.Client

	Tournament string
	Seed       string
	MaxRounds  int

	// StartDate is the first match day in YYYY-MM-DD form. Empty means
	// tomorrow.
	StartDate string

	// KickoffAt is the shared kickoff time in HH:MM form.
	KickoffAt string

	NoProgress bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
