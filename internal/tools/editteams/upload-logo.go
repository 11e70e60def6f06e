package editteams

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	fs "cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/amffhub/amfftool/internal/firestore"
)

// UploadLogo copies a crest image into the public logos bucket and points
// the team's logo field at its public URL. The object name is prefixed with
// a timestamp so re-uploads never collide.
func UploadLogo(ctx *Context) error {
	if ctx.LogoFile == "" {
		return fmt.Errorf("UploadLogo: logo file must be specified")
	}
	if ctx.LogoBucket == "" {
		return fmt.Errorf("UploadLogo: logo bucket must be specified")
	}

	team, ref, err := firestore.GetTeam(ctx, ctx.FirestoreClient, ctx.ID)
	if err != nil {
		return fmt.Errorf("UploadLogo: %w", err)
	}

	object := fmt.Sprintf("team-logos/%d_%s", time.Now().Unix(), path.Base(ctx.LogoFile))
	publicURL := fmt.Sprintf("https://storage.googleapis.com/%s/%s", ctx.LogoBucket, object)

	if ctx.DryRun {
		log.Print("DRY RUN: would upload the following:")
		log.Printf("%s -> gs://%s/%s", ctx.LogoFile, ctx.LogoBucket, object)
		log.Printf("%s: logo to '%s' (was '%s')", ref.Path, publicURL, team.Logo)
		return nil
	}

	r, err := getFileOrGSReader(ctx, ctx.LogoFile)
	if err != nil {
		return fmt.Errorf("UploadLogo: failed to open logo file '%s': %w", ctx.LogoFile, err)
	}
	defer r.Close()

	gsClient, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("UploadLogo: failed to create storage client: %w", err)
	}
	defer gsClient.Close()

	w := gsClient.Bucket(ctx.LogoBucket).Object(object).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("UploadLogo: failed to copy logo to bucket: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("UploadLogo: failed to finish logo upload: %w", err)
	}

	err = ctx.FirestoreClient.RunTransaction(ctx, func(c context.Context, t *fs.Transaction) error {
		return t.Update(ref, []fs.Update{{Path: "logo", Value: publicURL}})
	})
	if err != nil {
		return fmt.Errorf("UploadLogo: failed to update team %s: %w", ctx.ID, err)
	}

	log.Printf("Uploaded logo for %s: %s", team.Name, publicURL)
	return nil
}

func getFileOrGSReader(ctx context.Context, f string) (io.ReadCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		obj := bucket.Object(strings.Trim(u.Path, "/"))
		r, err = obj.NewReader(ctx)
		if err != nil {
			return nil, err
		}

	case "file":
		fallthrough
	case "":
		r, err = os.Open(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}

	return r, nil
}
