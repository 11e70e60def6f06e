package editteams

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

	ID         string
	Team       firestore.Team
	Tournament string
	Append     bool

	// LogoFile is a local path or gs:// URL of a crest image to upload.
	LogoFile string

	// LogoBucket is the Cloud Storage bucket public crests are served from.
	LogoBucket string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
