package propagate

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	Force  bool
	DryRun bool

	FirestoreClient *fs.Client

	Bucket string

	// MatchID names the source match whose outcome is pushed downstream.
	// Empty means propagate every decided match in the bucket.
	MatchID string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
