package genbracket

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
	NoProgress bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
